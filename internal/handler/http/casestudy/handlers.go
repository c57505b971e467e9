package casestudy

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"portfolio-backend/internal/domain/entity"
	"portfolio-backend/internal/handler/http/pathutil"
	"portfolio-backend/internal/handler/http/respond"
	csUC "portfolio-backend/internal/usecase/casestudy"
)

type ListPublishedHandler struct{ Svc *csUC.Service }

// ServeHTTP lists published case studies for the public site. The long-form
// content is omitted from list responses.
func (h ListPublishedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	studies, err := h.Svc.ListPublished(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, toListDTOs(studies))
}

type GetBySlugHandler struct{ Svc *csUC.Service }

// ServeHTTP retrieves a published case study by slug. Drafts yield 404.
func (h GetBySlugHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimPrefix(r.URL.Path, "/case-studies/")

	cs, err := h.Svc.GetPublishedBySlug(r.Context(), slug)
	if err != nil {
		code := http.StatusInternalServerError
		var validationErr *entity.ValidationError
		switch {
		case errors.Is(err, csUC.ErrCaseStudyNotFound):
			code = http.StatusNotFound
		case errors.As(err, &validationErr):
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(cs))
}

type AdminListHandler struct{ Svc *csUC.Service }

// ServeHTTP lists every case study including drafts.
func (h AdminListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	studies, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, toListDTOs(studies))
}

type AdminGetHandler struct{ Svc *csUC.Service }

// ServeHTTP retrieves a case study by ID regardless of publication state.
func (h AdminGetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/admin/case-studies/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	cs, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, csUC.ErrCaseStudyNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(cs))
}

type createRequest struct {
	Title      string   `json:"title"`
	Subtitle   string   `json:"subtitle"`
	Slug       string   `json:"slug"`
	Summary    string   `json:"summary"`
	Content    string   `json:"content"`
	CoverImage string   `json:"cover_image"`
	Category   string   `json:"category"`
	Duration   string   `json:"duration"`
	Tags       []string `json:"tags"`
	Featured   bool     `json:"featured"`
	Published  bool     `json:"published"`
}

type CreateHandler struct{ Svc *csUC.Service }

// ServeHTTP creates a new case study.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	cs, err := h.Svc.Create(r.Context(), csUC.CreateInput{
		Title:      req.Title,
		Subtitle:   req.Subtitle,
		Slug:       req.Slug,
		Summary:    req.Summary,
		Content:    req.Content,
		CoverImage: req.CoverImage,
		Category:   req.Category,
		Duration:   req.Duration,
		Tags:       req.Tags,
		Featured:   req.Featured,
		Published:  req.Published,
	})
	if err != nil {
		respond.SafeError(w, writeErrorCode(err), err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDTO(cs))
}

type UpdateHandler struct{ Svc *csUC.Service }

// ServeHTTP updates an existing case study. Absent fields are left unchanged.
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/admin/case-studies/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Title      *string  `json:"title"`
		Subtitle   *string  `json:"subtitle"`
		Slug       *string  `json:"slug"`
		Summary    *string  `json:"summary"`
		Content    *string  `json:"content"`
		CoverImage *string  `json:"cover_image"`
		Category   *string  `json:"category"`
		Duration   *string  `json:"duration"`
		Tags       []string `json:"tags"`
		Featured   *bool    `json:"featured"`
		Published  *bool    `json:"published"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	cs, err := h.Svc.Update(r.Context(), csUC.UpdateInput{
		ID:         id,
		Title:      req.Title,
		Subtitle:   req.Subtitle,
		Slug:       req.Slug,
		Summary:    req.Summary,
		Content:    req.Content,
		CoverImage: req.CoverImage,
		Category:   req.Category,
		Duration:   req.Duration,
		Tags:       req.Tags,
		Featured:   req.Featured,
		Published:  req.Published,
	})
	if err != nil {
		respond.SafeError(w, writeErrorCode(err), err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(cs))
}

type DeleteHandler struct{ Svc *csUC.Service }

// ServeHTTP removes a case study by ID.
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/admin/case-studies/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeErrorCode maps create/update errors to HTTP status codes.
func writeErrorCode(err error) int {
	var validationErr *entity.ValidationError
	switch {
	case errors.Is(err, csUC.ErrCaseStudyNotFound):
		return http.StatusNotFound
	case errors.Is(err, csUC.ErrSlugTaken):
		return http.StatusConflict
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

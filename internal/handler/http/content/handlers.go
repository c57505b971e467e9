// Package content provides HTTP handlers for editable site copy sections.
package content

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"portfolio-backend/internal/domain/entity"
	"portfolio-backend/internal/handler/http/respond"
	contentUC "portfolio-backend/internal/usecase/content"
)

// DTO represents the JSON structure for a site content section.
type DTO struct {
	Section   string          `json:"section"`
	Content   json.RawMessage `json:"content"`
	UpdatedAt string          `json:"updated_at,omitempty"`
}

func toDTO(sc *entity.SiteContent) DTO {
	dto := DTO{
		Section: sc.Section,
		Content: sc.Content,
	}
	if !sc.UpdatedAt.IsZero() {
		dto.UpdatedAt = sc.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
	}
	return dto
}

type ListHandler struct{ Svc *contentUC.Service }

// ServeHTTP lists every content section.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sections, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]DTO, 0, len(sections))
	for _, sc := range sections {
		out = append(out, toDTO(sc))
	}
	noCache(w)
	respond.JSON(w, http.StatusOK, out)
}

// noCache keeps intermediaries from serving stale copy after an admin edit.
func noCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-cache")
}

type GetHandler struct{ Svc *contentUC.Service }

// ServeHTTP retrieves a single content section by name.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	section := strings.TrimPrefix(r.URL.Path, "/content/")

	sc, err := h.Svc.Get(r.Context(), section)
	if err != nil {
		code := http.StatusInternalServerError
		var validationErr *entity.ValidationError
		switch {
		case errors.Is(err, contentUC.ErrSectionNotFound):
			code = http.StatusNotFound
		case errors.As(err, &validationErr):
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	noCache(w)
	respond.JSON(w, http.StatusOK, toDTO(sc))
}

type UpdateHandler struct{ Svc *contentUC.Service }

// ServeHTTP replaces a section's content, creating the section if needed.
// The request body is the raw JSON payload for the section.
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	section := strings.TrimPrefix(r.URL.Path, "/admin/content/")
	if section == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("section is required"))
		return
	}

	var payload json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	sc, err := h.Svc.Update(r.Context(), section, payload)
	if err != nil {
		code := http.StatusInternalServerError
		var validationErr *entity.ValidationError
		if errors.As(err, &validationErr) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(sc))
}

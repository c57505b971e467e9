package portfolio

import (
	"encoding/json"
	"errors"
	"net/http"

	"portfolio-backend/internal/domain/entity"
	"portfolio-backend/internal/handler/http/pathutil"
	"portfolio-backend/internal/handler/http/respond"
	pfUC "portfolio-backend/internal/usecase/portfolio"
)

type UpdateHandler struct{ Svc *pfUC.Service }

// ServeHTTP updates an existing portfolio item. Absent fields are left
// unchanged; edits to synced items stick.
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/admin/portfolio/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Title       *string  `json:"title"`
		Description *string  `json:"description"`
		ImageURL    *string  `json:"image_url"`
		Category    *string  `json:"category"`
		Tags        []string `json:"tags"`
		ProjectURL  *string  `json:"project_url"`
		Featured    *bool    `json:"featured"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	item, err := h.Svc.Update(r.Context(), pfUC.UpdateInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Tags:        req.Tags,
		ProjectURL:  req.ProjectURL,
		Featured:    req.Featured,
	})
	if err != nil {
		code := http.StatusInternalServerError
		var validationErr *entity.ValidationError
		switch {
		case errors.Is(err, pfUC.ErrItemNotFound):
			code = http.StatusNotFound
		case errors.As(err, &validationErr):
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(item))
}

type DeleteHandler struct{ Svc *pfUC.Service }

// ServeHTTP removes a portfolio item by ID.
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/admin/portfolio/")
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

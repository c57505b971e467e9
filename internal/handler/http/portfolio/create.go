package portfolio

import (
	"encoding/json"
	"errors"
	"net/http"

	"portfolio-backend/internal/domain/entity"
	"portfolio-backend/internal/handler/http/respond"
	pfUC "portfolio-backend/internal/usecase/portfolio"
)

type CreateHandler struct{ Svc *pfUC.Service }

// ServeHTTP creates a manually curated portfolio item.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		ImageURL    string   `json:"image_url"`
		Category    string   `json:"category"`
		Tags        []string `json:"tags"`
		ProjectURL  string   `json:"project_url"`
		Featured    bool     `json:"featured"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	item, err := h.Svc.Create(r.Context(), pfUC.CreateInput{
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
		if errors.As(err, &validationErr) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDTO(item))
}

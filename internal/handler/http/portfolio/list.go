package portfolio

import (
	"net/http"

	"portfolio-backend/internal/domain/entity"
	"portfolio-backend/internal/handler/http/respond"
	pfUC "portfolio-backend/internal/usecase/portfolio"
)

type ListHandler struct{ Svc *pfUC.Service }

// ServeHTTP lists portfolio items, newest first. An optional ?category=
// query parameter filters by category.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var (
		items []*entity.PortfolioItem
		err   error
	)

	if category := r.URL.Query().Get("category"); category != "" {
		items, err = h.Svc.ListByCategory(r.Context(), category)
	} else {
		items, err = h.Svc.List(r.Context())
	}
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTOs(items))
}

type FeaturedHandler struct{ Svc *pfUC.Service }

// ServeHTTP lists only the featured items for the landing page.
func (h FeaturedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	items, err := h.Svc.ListFeatured(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(items))
}

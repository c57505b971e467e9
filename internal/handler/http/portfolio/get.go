package portfolio

import (
	"errors"
	"net/http"

	"portfolio-backend/internal/handler/http/pathutil"
	"portfolio-backend/internal/handler/http/respond"
	pfUC "portfolio-backend/internal/usecase/portfolio"
)

type GetHandler struct{ Svc *pfUC.Service }

// ServeHTTP retrieves a single portfolio item by ID.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/portfolio/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	item, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, pfUC.ErrItemNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(item))
}

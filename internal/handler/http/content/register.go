package content

import (
	"net/http"

	"portfolio-backend/internal/handler/http/auth"
	contentUC "portfolio-backend/internal/usecase/content"
)

// Register registers all site content HTTP handlers with the given mux.
// Reads are public; updates require authentication.
func Register(mux *http.ServeMux, svc *contentUC.Service) {
	mux.Handle("GET /content", ListHandler{svc})
	mux.Handle("GET /content/", GetHandler{svc})

	mux.Handle("PUT /admin/content/", auth.Authz(UpdateHandler{svc}))
}

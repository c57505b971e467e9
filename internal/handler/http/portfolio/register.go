package portfolio

import (
	"net/http"

	"portfolio-backend/internal/handler/http/auth"
	pfUC "portfolio-backend/internal/usecase/portfolio"
)

// Register registers all portfolio HTTP handlers with the given mux.
// Read endpoints are public; writes and the sync trigger live under /admin
// and require authentication via the auth middleware.
func Register(mux *http.ServeMux, svc *pfUC.Service, runner SyncRunner) {
	mux.Handle("GET    /portfolio", ListHandler{svc})
	mux.Handle("GET    /portfolio/featured", FeaturedHandler{svc})
	mux.Handle("GET    /portfolio/", GetHandler{svc})

	mux.Handle("POST   /admin/portfolio", auth.Authz(CreateHandler{svc}))
	mux.Handle("PUT    /admin/portfolio/", auth.Authz(UpdateHandler{svc}))
	mux.Handle("DELETE /admin/portfolio/", auth.Authz(DeleteHandler{svc}))
	mux.Handle("POST   /admin/sync", auth.Authz(SyncHandler{runner}))
}

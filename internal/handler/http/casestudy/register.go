package casestudy

import (
	"net/http"

	"portfolio-backend/internal/handler/http/auth"
	csUC "portfolio-backend/internal/usecase/casestudy"
)

// Register registers all case study HTTP handlers with the given mux.
// Published reads are public; drafts and writes require authentication.
func Register(mux *http.ServeMux, svc *csUC.Service) {
	mux.Handle("GET    /case-studies", ListPublishedHandler{svc})
	mux.Handle("GET    /case-studies/", GetBySlugHandler{svc})

	mux.Handle("GET    /admin/case-studies", auth.Authz(AdminListHandler{svc}))
	mux.Handle("GET    /admin/case-studies/", auth.Authz(AdminGetHandler{svc}))
	mux.Handle("POST   /admin/case-studies", auth.Authz(CreateHandler{svc}))
	mux.Handle("PUT    /admin/case-studies/", auth.Authz(UpdateHandler{svc}))
	mux.Handle("DELETE /admin/case-studies/", auth.Authz(DeleteHandler{svc}))
}

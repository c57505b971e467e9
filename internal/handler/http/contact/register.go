package contact

import (
	"net/http"

	"portfolio-backend/internal/handler/http/auth"
	contactUC "portfolio-backend/internal/usecase/contact"
)

// Register registers the contact HTTP handlers with the given mux. The form
// submission endpoint is public; the inbox lives under /admin and requires
// authentication. The submit handler is additionally wrapped with a rate
// limiter so the form cannot be abused.
func Register(mux *http.ServeMux, svc *contactUC.Service, limit func(http.Handler) http.Handler) {
	submit := http.Handler(SubmitHandler{svc})
	if limit != nil {
		submit = limit(submit)
	}
	mux.Handle("POST   /contact", submit)

	mux.Handle("GET    /admin/messages", auth.Authz(ListHandler{svc}))
	mux.Handle("GET    /admin/messages/unread-count", auth.Authz(UnreadCountHandler{svc}))
	mux.Handle("POST   /admin/messages/", auth.Authz(MarkReadHandler{svc}))
	mux.Handle("DELETE /admin/messages/", auth.Authz(DeleteHandler{svc}))
}

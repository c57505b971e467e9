package analytics

import (
	"net/http"

	"portfolio-backend/internal/handler/http/auth"
	analyticsUC "portfolio-backend/internal/usecase/analytics"
)

// Register registers the analytics HTTP handlers with the given mux. The
// tracking endpoint is public and rate limited; the summary requires
// authentication.
func Register(mux *http.ServeMux, svc *analyticsUC.Service, limit func(http.Handler) http.Handler) {
	track := http.Handler(TrackHandler{svc})
	if limit != nil {
		track = limit(track)
	}
	mux.Handle("POST /analytics/track", track)

	mux.Handle("GET  /admin/analytics/summary", auth.Authz(SummaryHandler{svc}))
}

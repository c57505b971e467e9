// Package analytics provides HTTP handlers for page view tracking and the
// admin traffic summary.
package analytics

import (
	"encoding/json"
	"errors"
	"net/http"

	"portfolio-backend/internal/domain/entity"
	"portfolio-backend/internal/handler/http/respond"
	analyticsUC "portfolio-backend/internal/usecase/analytics"
)

type TrackHandler struct{ Svc *analyticsUC.Service }

// ServeHTTP records a single page view event.
func (h TrackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Path      string `json:"path"`
		Referrer  string `json:"referrer"`
		VisitorID string `json:"visitor_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	err := h.Svc.Track(r.Context(), analyticsUC.TrackInput{
		Path:      req.Path,
		Referrer:  req.Referrer,
		UserAgent: r.UserAgent(),
		VisitorID: req.VisitorID,
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

	w.WriteHeader(http.StatusAccepted)
}

// pageCountDTO represents the JSON structure for a ranked path or referrer.
type pageCountDTO struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}

// SummaryDTO represents the JSON structure for the analytics summary.
type SummaryDTO struct {
	TotalViews     int64          `json:"total_views"`
	UniqueVisitors int64          `json:"unique_visitors"`
	TopPages       []pageCountDTO `json:"top_pages"`
	TopReferrers   []pageCountDTO `json:"top_referrers"`
}

func toSummaryDTO(summary *entity.AnalyticsSummary) SummaryDTO {
	out := SummaryDTO{
		TotalViews:     summary.TotalViews,
		UniqueVisitors: summary.UniqueVisitors,
		TopPages:       make([]pageCountDTO, 0, len(summary.TopPages)),
		TopReferrers:   make([]pageCountDTO, 0, len(summary.TopReferrers)),
	}
	for _, p := range summary.TopPages {
		out.TopPages = append(out.TopPages, pageCountDTO{Value: p.Value, Count: p.Count})
	}
	for _, p := range summary.TopReferrers {
		out.TopReferrers = append(out.TopReferrers, pageCountDTO{Value: p.Value, Count: p.Count})
	}
	return out
}

type SummaryHandler struct{ Svc *analyticsUC.Service }

// ServeHTTP returns the 30-day traffic summary.
func (h SummaryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Svc.Summary(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, toSummaryDTO(summary))
}

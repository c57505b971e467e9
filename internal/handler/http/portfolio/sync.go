package portfolio

import (
	"context"
	"errors"
	"net/http"

	"portfolio-backend/internal/handler/http/respond"
	syncUC "portfolio-backend/internal/usecase/sync"
)

// SyncRunner triggers a reconciliation pass against the external showcase.
type SyncRunner interface {
	Reconcile(ctx context.Context) (*syncUC.Result, error)
}

// SyncResultDTO represents the JSON structure for a sync run outcome.
type SyncResultDTO struct {
	Created    int    `json:"created"`
	Deleted    int    `json:"deleted"`
	Skipped    int    `json:"skipped"`
	DurationMS int64  `json:"duration_ms"`
	Status     string `json:"status"`
}

type SyncHandler struct{ Runner SyncRunner }

// ServeHTTP triggers an on-demand sync run. A run already in progress yields
// 409 Conflict; an unreachable upstream yields 502 Bad Gateway. Local data is
// untouched in both cases.
func (h SyncHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	result, err := h.Runner.Reconcile(r.Context())
	if err != nil {
		if errors.Is(err, syncUC.ErrSyncInProgress) {
			respond.SafeError(w, http.StatusConflict, err)
			return
		}
		respond.SafeError(w, http.StatusBadGateway, err)
		return
	}

	respond.JSON(w, http.StatusOK, SyncResultDTO{
		Created:    result.Created,
		Deleted:    result.Deleted,
		Skipped:    result.Skipped,
		DurationMS: result.Duration.Milliseconds(),
		Status:     "completed",
	})
}

package metrics

import "time"

// RecordSyncRun records the outcome of a portfolio reconciliation run.
// Result should be one of "success", "failure", "skipped", or "not_configured".
func RecordSyncRun(result string, duration time.Duration) {
	SyncRunsTotal.WithLabelValues(result).Inc()
	if result == "success" || result == "failure" {
		SyncDuration.Observe(duration.Seconds())
	}
}

// RecordSyncItems records the per-item breakdown of a reconciliation run.
func RecordSyncItems(created, deleted, skipped int) {
	if created > 0 {
		SyncItemsTotal.WithLabelValues("created").Add(float64(created))
	}
	if deleted > 0 {
		SyncItemsTotal.WithLabelValues("deleted").Add(float64(deleted))
	}
	if skipped > 0 {
		SyncItemsTotal.WithLabelValues("skipped").Add(float64(skipped))
	}
}

// UpdatePortfolioItemsTotal updates the total count of portfolio items.
// This gauge should be updated after each sync run and on item mutations.
func UpdatePortfolioItemsTotal(count int64) {
	PortfolioItemsTotal.Set(float64(count))
}

// RecordContactMessage records a contact form submission.
// Status should be either "accepted" or "rejected".
func RecordContactMessage(accepted bool) {
	status := "accepted"
	if !accepted {
		status = "rejected"
	}
	ContactMessagesTotal.WithLabelValues(status).Inc()
}

// RecordPageView records an accepted page view event.
func RecordPageView() {
	PageViewsRecordedTotal.Inc()
}

// RecordDBQuery records the duration of a database query operation.
// Operation should describe the query type (e.g., "list_items", "insert_item").
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

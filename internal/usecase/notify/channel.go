// Package notify provides use cases for dispatching site notifications across
// delivery channels (Slack webhook, no-op) with worker pooling, per-channel
// circuit breakers, and observability.
package notify

import "context"

// Event is a notification about something that happened in the system.
type Event struct {
	// Kind classifies the event, e.g. "contact_message" or "sync_failure".
	Kind string

	// Title is a short human-readable headline.
	Title string

	// Body is the long-form message text.
	Body string

	// Meta carries structured key/value details.
	Meta []MetaField
}

// MetaField is a labelled value attached to an Event.
type MetaField struct {
	Label string
	Value string
}

// Channel represents a notification delivery channel.
// Each implementation handles its own rate limiting, retries, and error
// handling, and must be safe for concurrent use.
//
// Retry policy contract:
//   - Transient failures (5xx, network errors): retry with backoff (max 2 attempts)
//   - Rate limits (429): sleep for retry_after, then retry
//   - Client errors (4xx except 429): no retry
//   - Context timeout: no retry
type Channel interface {
	// Name returns the channel identifier used for logging and metrics.
	Name() string

	// IsEnabled reports whether the channel should receive notifications.
	// Disabled channels are skipped during dispatch.
	IsEnabled() bool

	// Send delivers the event to this channel. Implementations must respect
	// context cancellation and sanitize sensitive data in error messages.
	Send(ctx context.Context, event *Event) error
}

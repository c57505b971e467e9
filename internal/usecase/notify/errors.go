package notify

import "errors"

// Sentinel errors for notification dispatch.
var (
	// ErrChannelDisabled indicates Send was called on a disabled channel.
	ErrChannelDisabled = errors.New("notification channel is disabled")

	// ErrInvalidEvent indicates the event is nil or missing required fields.
	ErrInvalidEvent = errors.New("invalid notification event")
)

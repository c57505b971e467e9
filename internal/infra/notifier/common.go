package notifier

import (
	"fmt"
	"time"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const requestIDKey contextKey = "request_id"

// Common webhook error types.

// RateLimitError represents a 429 rate limit error from a webhook service.
type RateLimitError struct {
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s (retry after %v)", e.Message, e.RetryAfter)
	}
	return fmt.Sprintf("rate limit exceeded (retry after %v)", e.RetryAfter)
}

// Retryable marks rate limits as worth another attempt.
func (e *RateLimitError) Retryable() bool { return true }

// DelayHint reports the wait Slack asked for via Retry-After.
func (e *RateLimitError) DelayHint() time.Duration { return e.RetryAfter }

// ClientError represents a 4xx client error from a webhook service.
type ClientError struct {
	StatusCode int
	Message    string
}

func (e *ClientError) Error() string {
	return e.Message
}

// Retryable marks client errors as permanent; the payload will not get
// better on a second attempt.
func (e *ClientError) Retryable() bool { return false }

// ServerError represents a 5xx server error from a webhook service.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return e.Message
}

// Retryable marks server errors as transient.
func (e *ServerError) Retryable() bool { return true }

// truncateText truncates text to maxLength characters, appending suffix
// when anything was cut.
func truncateText(text string, maxLength int, suffix string) string {
	if len(text) <= maxLength {
		return text
	}

	truncateAt := maxLength - len(suffix)
	if truncateAt < 0 {
		truncateAt = 0
	}

	return text[:truncateAt] + suffix
}

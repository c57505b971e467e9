// Package retry runs operations again on transient failure, backing off
// exponentially with jitter between attempts.
package retry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net"
	"net/http"
	"syscall"
	"time"
)

// Config controls the backoff schedule for one operation.
type Config struct {
	MaxAttempts    int
	InitialDelay   time.Duration
	MaxDelay       time.Duration
	Multiplier     float64
	JitterFraction float64
}

// DefaultConfig is a general-purpose schedule: three attempts, one second
// initial delay, doubling up to thirty seconds.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:    3,
		InitialDelay:   1 * time.Second,
		MaxDelay:       30 * time.Second,
		Multiplier:     2.0,
		JitterFraction: 0.1,
	}
}

// WebhookConfig returns the schedule for notification webhook delivery:
// one retry after five seconds. Notifications are best-effort, so a
// stubborn webhook gets dropped rather than hammered.
func WebhookConfig() Config {
	return Config{
		MaxAttempts:    2,
		InitialDelay:   5 * time.Second,
		MaxDelay:       10 * time.Second,
		Multiplier:     2.0,
		JitterFraction: 0.1,
	}
}

// Retryable lets error types outside this package decide their own
// retryability, overriding the built-in classification.
type Retryable interface {
	error
	Retryable() bool
}

// DelayHinter lets an error dictate the wait before the next attempt,
// as a 429 response does through its Retry-After header.
type DelayHinter interface {
	error
	DelayHint() time.Duration
}

// WithBackoff runs fn until it succeeds, fails non-retryably, exhausts
// cfg.MaxAttempts, or the context is cancelled during a backoff wait.
func WithBackoff(ctx context.Context, cfg Config, fn func() error) error {
	var lastErr error
	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			if attempt > 1 {
				slog.Info("operation succeeded after retry", slog.Int("attempt", attempt))
			}
			return nil
		}

		if !IsRetryable(lastErr) {
			slog.Warn("non-retryable error, aborting",
				slog.Int("attempt", attempt),
				slog.Any("error", lastErr))
			return lastErr
		}

		if attempt == cfg.MaxAttempts {
			break
		}

		wait := delay
		var hinter DelayHinter
		if errors.As(lastErr, &hinter) {
			if hint := hinter.DelayHint(); hint > 0 {
				wait = hint
			}
		}

		slog.Warn("operation failed, retrying",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", cfg.MaxAttempts),
			slog.Duration("delay", wait),
			slog.Any("error", lastErr))

		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return fmt.Errorf("retry aborted: %w", ctx.Err())
		}

		delay = nextDelay(delay, cfg)
	}

	return fmt.Errorf("max retry attempts (%d) exceeded: %w", cfg.MaxAttempts, lastErr)
}

// IsRetryable reports whether another attempt could plausibly succeed:
// network timeouts, connection-level syscall failures, and HTTP 5xx, 429,
// or 408. Context cancellation is never retryable, and errors implementing
// Retryable classify themselves.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var r Retryable
	if errors.As(err, &r) {
		return r.Retryable()
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ETIMEDOUT) ||
		errors.Is(err, syscall.ENETUNREACH) {
		return true
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		switch {
		case httpErr.StatusCode >= 500 && httpErr.StatusCode < 600:
			return true
		case httpErr.StatusCode == http.StatusTooManyRequests:
			return true
		case httpErr.StatusCode == http.StatusRequestTimeout:
			return true
		}
	}

	return false
}

// HTTPError carries a response status through the retryability check.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

func nextDelay(current time.Duration, cfg Config) time.Duration {
	delay := time.Duration(float64(current) * cfg.Multiplier)
	if delay > cfg.MaxDelay {
		delay = cfg.MaxDelay
	}

	jitter := cfg.JitterFraction
	if jitter <= 0 {
		return delay
	}
	if jitter > 1.0 {
		jitter = 1.0
	}
	// #nosec G404 -- jitter does not need cryptographic randomness
	return delay + time.Duration(rand.Float64()*float64(delay)*jitter)
}

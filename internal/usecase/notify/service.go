package notify

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/domain/entity"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const requestIDKey contextKey = "request_id"

// Circuit breaker and dispatch constants
const (
	circuitBreakerThreshold = 5                // consecutive failures before opening
	circuitBreakerTimeout   = 5 * time.Minute  // how long an open circuit stays open
	workerPoolTimeout       = 5 * time.Second  // timeout for acquiring worker slot
	notificationTimeout     = 30 * time.Second // timeout for individual notification
)

// Service dispatches notifications to all enabled channels without blocking
// the caller. Failures are logged and counted, never propagated.
type Service interface {
	// NotifyContactMessage announces a new contact form submission.
	NotifyContactMessage(ctx context.Context, msg *entity.ContactMessage) error

	// NotifySyncFailure announces a failed portfolio sync run.
	NotifySyncFailure(ctx context.Context, cause error) error

	// GetChannelHealth returns circuit breaker state per channel for
	// health check endpoints.
	GetChannelHealth() []ChannelHealthStatus

	// Shutdown blocks until in-flight notifications complete or the
	// context expires.
	Shutdown(ctx context.Context) error
}

// ChannelHealthStatus represents the health of a notification channel.
type ChannelHealthStatus struct {
	Name               string
	Enabled            bool
	CircuitBreakerOpen bool
	DisabledUntil      *time.Time
}

type service struct {
	channels       []Channel
	workerPool     chan struct{}
	channelHealth  map[string]*channelHealth
	healthMu       sync.RWMutex
	wg             sync.WaitGroup
	shutdownCtx    context.Context
	shutdownCancel context.CancelFunc
}

// channelHealth tracks circuit breaker state for a channel.
type channelHealth struct {
	consecutiveFailures int
	disabledUntil       time.Time
	mu                  sync.Mutex
}

// NewService creates a notification service fanning out to the given channels
// with at most maxConcurrent in-flight sends.
func NewService(channels []Channel, maxConcurrent int) Service {
	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())

	svc := &service{
		channels:       channels,
		workerPool:     make(chan struct{}, maxConcurrent),
		channelHealth:  make(map[string]*channelHealth),
		shutdownCtx:    shutdownCtx,
		shutdownCancel: shutdownCancel,
	}

	for _, ch := range channels {
		svc.channelHealth[ch.Name()] = &channelHealth{}
	}

	return svc
}

// NotifyContactMessage implements Service.NotifyContactMessage.
func (s *service) NotifyContactMessage(ctx context.Context, msg *entity.ContactMessage) error {
	if msg == nil {
		slog.Warn("Invalid notification input: nil contact message")
		return nil
	}

	event := &Event{
		Kind:  "contact_message",
		Title: "New contact message",
		Body:  msg.Message,
		Meta: []MetaField{
			{Label: "From", Value: fmt.Sprintf("%s <%s>", msg.Name, msg.Email)},
			{Label: "Subject", Value: msg.Subject},
		},
	}
	s.dispatch(ctx, event)
	return nil
}

// NotifySyncFailure implements Service.NotifySyncFailure.
func (s *service) NotifySyncFailure(ctx context.Context, cause error) error {
	if cause == nil {
		return nil
	}

	event := &Event{
		Kind:  "sync_failure",
		Title: "Portfolio sync failed",
		Body:  cause.Error(),
		Meta: []MetaField{
			{Label: "At", Value: time.Now().Format(time.RFC3339)},
		},
	}
	s.dispatch(ctx, event)
	return nil
}

// dispatch fans the event out to every enabled channel in its own goroutine.
func (s *service) dispatch(ctx context.Context, event *Event) {
	requestID, ok := ctx.Value(requestIDKey).(string)
	if !ok || requestID == "" {
		requestID = uuid.New().String()
	}

	enabledCount := 0
	for _, ch := range s.channels {
		if ch.IsEnabled() {
			enabledCount++
		}
	}
	notifyChannelsEnabled.Set(float64(enabledCount))

	if enabledCount == 0 {
		slog.Debug("No notification channels enabled",
			slog.String("request_id", requestID),
			slog.String("event_kind", event.Kind))
		return
	}

	slog.Info("Dispatching notification",
		slog.String("request_id", requestID),
		slog.String("event_kind", event.Kind),
		slog.Int("enabled_channels", enabledCount))

	for _, ch := range s.channels {
		if ch.IsEnabled() {
			channel := ch
			s.wg.Add(1)
			go s.notifyChannel(requestID, channel, event)
		}
	}
}

// notifyChannel sends an event to a single channel in a goroutine.
func (s *service) notifyChannel(requestID string, channel Channel, event *Event) {
	defer s.wg.Done()

	notifyActiveGoroutines.Inc()
	defer notifyActiveGoroutines.Dec()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("Panic in notification channel",
				slog.String("request_id", requestID),
				slog.String("channel", channel.Name()),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())))
		}
	}()

	select {
	case s.workerPool <- struct{}{}:
		defer func() { <-s.workerPool }()
	case <-time.After(workerPoolTimeout):
		slog.Warn("Notification dropped: worker pool full",
			slog.String("request_id", requestID),
			slog.String("channel", channel.Name()))
		notifyDroppedTotal.WithLabelValues(channel.Name(), "pool_full").Inc()
		return
	}

	health := s.getChannelHealth(channel.Name())
	health.mu.Lock()
	if time.Now().Before(health.disabledUntil) {
		slog.Warn("Channel temporarily disabled due to circuit breaker",
			slog.String("request_id", requestID),
			slog.String("channel", channel.Name()),
			slog.Time("disabled_until", health.disabledUntil))
		health.mu.Unlock()
		notifyDroppedTotal.WithLabelValues(channel.Name(), "circuit_open").Inc()
		return
	}
	health.mu.Unlock()

	ctx, cancel := context.WithTimeout(s.shutdownCtx, notificationTimeout)
	defer cancel()
	ctx = context.WithValue(ctx, requestIDKey, requestID)

	startTime := time.Now()
	notifyDispatchTotal.WithLabelValues(channel.Name()).Inc()

	err := channel.Send(ctx, event)
	duration := time.Since(startTime)

	health.mu.Lock()
	if err != nil {
		health.consecutiveFailures++
		if health.consecutiveFailures >= circuitBreakerThreshold {
			health.disabledUntil = time.Now().Add(circuitBreakerTimeout)
			slog.Error("Circuit breaker opened for channel",
				slog.String("request_id", requestID),
				slog.String("channel", channel.Name()),
				slog.Int("consecutive_failures", health.consecutiveFailures))
			notifyCircuitOpenTotal.WithLabelValues(channel.Name()).Inc()
		}
	} else {
		health.consecutiveFailures = 0
	}
	health.mu.Unlock()

	notifyDuration.WithLabelValues(channel.Name()).Observe(duration.Seconds())
	if err != nil {
		notifyResultTotal.WithLabelValues(channel.Name(), "failure").Inc()
		slog.Warn("Channel notification failed",
			slog.String("request_id", requestID),
			slog.String("channel", channel.Name()),
			slog.String("event_kind", event.Kind),
			slog.Duration("send_duration", duration),
			slog.Any("error", err))
	} else {
		notifyResultTotal.WithLabelValues(channel.Name(), "success").Inc()
		slog.Info("Channel notification sent successfully",
			slog.String("request_id", requestID),
			slog.String("channel", channel.Name()),
			slog.String("event_kind", event.Kind),
			slog.Duration("send_duration", duration))
	}
}

// getChannelHealth returns circuit breaker state for a channel.
func (s *service) getChannelHealth(channelName string) *channelHealth {
	s.healthMu.RLock()
	defer s.healthMu.RUnlock()
	return s.channelHealth[channelName]
}

// GetChannelHealth implements Service.GetChannelHealth.
func (s *service) GetChannelHealth() []ChannelHealthStatus {
	s.healthMu.RLock()
	defer s.healthMu.RUnlock()

	statuses := make([]ChannelHealthStatus, 0, len(s.channels))
	for _, ch := range s.channels {
		health := s.channelHealth[ch.Name()]

		health.mu.Lock()
		var disabledUntil *time.Time
		circuitBreakerOpen := false
		if time.Now().Before(health.disabledUntil) {
			circuitBreakerOpen = true
			until := health.disabledUntil
			disabledUntil = &until
		}
		health.mu.Unlock()

		statuses = append(statuses, ChannelHealthStatus{
			Name:               ch.Name(),
			Enabled:            ch.IsEnabled(),
			CircuitBreakerOpen: circuitBreakerOpen,
			DisabledUntil:      disabledUntil,
		})
	}

	return statuses
}

// Shutdown implements Service.Shutdown.
func (s *service) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down notification service")

	s.shutdownCancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Notification service shutdown complete")
		return nil
	case <-ctx.Done():
		slog.Warn("Notification service shutdown timeout")
		return ctx.Err()
	}
}

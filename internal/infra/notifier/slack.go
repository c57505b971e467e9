package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/resilience/circuitbreaker"
	"portfolio-backend/internal/resilience/retry"
)

// SlackConfig contains configuration for Slack webhook notifications.
type SlackConfig struct {
	// Enabled indicates whether Slack notifications are enabled
	Enabled bool

	// WebhookURL is the Slack Incoming Webhook URL (includes authentication token)
	WebhookURL string

	// Timeout is the HTTP request timeout for Slack API calls
	Timeout time.Duration
}

// SlackNotifier delivers messages to Slack via Incoming Webhook.
type SlackNotifier struct {
	config      SlackConfig
	httpClient  *http.Client
	rateLimiter *RateLimiter
	breaker     *circuitbreaker.CircuitBreaker
	retryCfg    retry.Config
}

// NewSlackNotifier creates a new SlackNotifier with the specified configuration.
// The rate limiter is set to 1 request/second with burst of 1, matching the
// Slack webhook limit. Deliveries are retried with backoff and run through a
// circuit breaker so a dead webhook stops consuming retries quickly.
func NewSlackNotifier(config SlackConfig) *SlackNotifier {
	return &SlackNotifier{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		rateLimiter: NewRateLimiter(1.0, 1),
		breaker:     circuitbreaker.New(circuitbreaker.WebhookConfig()),
		retryCfg:    retry.WebhookConfig(),
	}
}

// SlackWebhookPayload represents the JSON payload sent to Slack webhook using Block Kit.
type SlackWebhookPayload struct {
	Text   string       `json:"text"`
	Blocks []SlackBlock `json:"blocks"`
}

// SlackBlock represents a Slack Block Kit block.
type SlackBlock struct {
	Type     string            `json:"type"`
	Text     *SlackTextObject  `json:"text,omitempty"`
	Elements []SlackTextObject `json:"elements,omitempty"`
}

// SlackTextObject represents a text object in Slack Block Kit.
type SlackTextObject struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

const (
	// Slack Block Kit limits
	maxSectionTextLength = 3000
	maxContextTextLength = 2000
	maxFallbackLength    = 150

	slackTruncationSuffix = "..."

	defaultRetryAfter = 5 * time.Second
)

// buildBlockKitPayload creates a Slack webhook payload from a Message:
// a section block with the bold title and body, and a context block with
// the structured fields.
func (s *SlackNotifier) buildBlockKitPayload(msg *Message) SlackWebhookPayload {
	fallbackText := truncateText(msg.Title, maxFallbackLength, slackTruncationSuffix)

	sectionText := fmt.Sprintf("*%s*\n\n%s", msg.Title, msg.Text)
	sectionText = truncateText(sectionText, maxSectionTextLength, slackTruncationSuffix)

	blocks := []SlackBlock{{
		Type: "section",
		Text: &SlackTextObject{Type: "mrkdwn", Text: sectionText},
	}}

	if len(msg.Fields) > 0 {
		contextText := ""
		for i, f := range msg.Fields {
			if i > 0 {
				contextText += " • "
			}
			contextText += fmt.Sprintf("%s: %s", f.Label, f.Value)
		}
		contextText = truncateText(contextText, maxContextTextLength, slackTruncationSuffix)
		blocks = append(blocks, SlackBlock{
			Type:     "context",
			Elements: []SlackTextObject{{Type: "mrkdwn", Text: contextText}},
		})
	}

	return SlackWebhookPayload{Text: fallbackText, Blocks: blocks}
}

// sendWebhookRequest performs a single webhook POST and classifies failures:
// 429 → RateLimitError, 4xx → ClientError (non-retryable), 5xx → ServerError.
func (s *SlackNotifier) sendWebhookRequest(ctx context.Context, msg *Message) error {
	payload := s.buildBlockKitPayload(msg)

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.WebhookURL, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return &RateLimitError{
			Message:    "Slack rate limit exceeded",
			RetryAfter: extractRetryAfter(resp),
		}
	}

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return &ClientError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("Slack API client error: %s", string(body)),
		}
	}

	if resp.StatusCode >= 500 {
		return &ServerError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("Slack API server error: %s", string(body)),
		}
	}

	return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body))
}

// extractRetryAfter reads the Retry-After header, falling back to a fixed delay.
func extractRetryAfter(resp *http.Response) time.Duration {
	if header := resp.Header.Get("Retry-After"); header != "" {
		if seconds, err := strconv.Atoi(header); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultRetryAfter
}

// deliver sends a webhook request with retry: transient failures back off
// per the webhook schedule, a 429 honours the retry_after from Slack, and
// client errors fail immediately.
func (s *SlackNotifier) deliver(ctx context.Context, msg *Message) error {
	requestID, _ := ctx.Value(requestIDKey).(string)

	err := retry.WithBackoff(ctx, s.retryCfg, func() error {
		return s.sendWebhookRequest(ctx, msg)
	})
	if err != nil {
		slog.Error("Slack notification failed",
			slog.String("request_id", requestID),
			slog.Any("error", err))
		return fmt.Errorf("slack notification: %w", err)
	}

	slog.Info("Slack notification successful",
		slog.String("request_id", requestID),
		slog.String("title", msg.Title))
	return nil
}

// Notify sends a message to the configured Slack webhook.
// This method implements the Notifier interface.
func (s *SlackNotifier) Notify(ctx context.Context, msg *Message) error {
	requestID := uuid.New().String()
	ctx = context.WithValue(ctx, requestIDKey, requestID)

	slog.Info("Starting Slack notification",
		slog.String("request_id", requestID),
		slog.String("title", msg.Title))

	if err := s.rateLimiter.Allow(ctx); err != nil {
		slog.Error("Rate limiter error",
			slog.String("request_id", requestID),
			slog.Any("error", err))
		return fmt.Errorf("rate limiter error: %w", err)
	}

	_, err := s.breaker.Execute(func() (interface{}, error) {
		return nil, s.deliver(ctx, msg)
	})
	return err
}

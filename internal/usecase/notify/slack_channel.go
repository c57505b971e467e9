package notify

import (
	"context"
	"fmt"

	"portfolio-backend/internal/infra/notifier"
)

// SlackChannel adapts a Slack notifier to the Channel interface.
type SlackChannel struct {
	enabled  bool
	notifier notifier.Notifier
}

// NewSlackChannel creates a Channel backed by the given Slack notifier.
func NewSlackChannel(n notifier.Notifier, enabled bool) *SlackChannel {
	return &SlackChannel{enabled: enabled, notifier: n}
}

// Name implements Channel.Name.
func (c *SlackChannel) Name() string { return "slack" }

// IsEnabled implements Channel.IsEnabled.
func (c *SlackChannel) IsEnabled() bool { return c.enabled }

// Send implements Channel.Send by converting the event into a webhook message.
func (c *SlackChannel) Send(ctx context.Context, event *Event) error {
	if !c.enabled {
		return ErrChannelDisabled
	}
	if event == nil || event.Title == "" {
		return ErrInvalidEvent
	}

	msg := &notifier.Message{
		Title:  event.Title,
		Text:   event.Body,
		Fields: make([]notifier.Field, 0, len(event.Meta)),
	}
	for _, meta := range event.Meta {
		msg.Fields = append(msg.Fields, notifier.Field{Label: meta.Label, Value: meta.Value})
	}

	if err := c.notifier.Notify(ctx, msg); err != nil {
		return fmt.Errorf("slack channel send: %w", err)
	}
	return nil
}

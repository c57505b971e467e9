// Package notifier provides webhook delivery for site notifications.
// It defines the Notifier interface which allows different delivery mechanisms
// (Slack webhook, no-op) to be used interchangeably through dependency injection.
package notifier

import "context"

// Message is a channel-agnostic notification payload.
type Message struct {
	// Title is the short headline, e.g. "New contact message".
	Title string

	// Text is the message body. Long bodies are truncated by the channel.
	Text string

	// Fields carry structured key/value details rendered by the channel.
	Fields []Field
}

// Field is a labelled value within a Message.
type Field struct {
	Label string
	Value string
}

// Notifier delivers notification messages.
// Implementations handle rate limiting, retries, and error logging internally.
type Notifier interface {
	Notify(ctx context.Context, msg *Message) error
}

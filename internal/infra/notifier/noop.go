package notifier

import "context"

// NoOpNotifier is a no-operation implementation of the Notifier interface.
// It is used when notifications are disabled to avoid nil checks in the code.
type NoOpNotifier struct{}

// NewNoOpNotifier creates a new NoOpNotifier instance.
func NewNoOpNotifier() *NoOpNotifier {
	return &NoOpNotifier{}
}

// Notify does nothing and returns nil immediately.
func (n *NoOpNotifier) Notify(ctx context.Context, msg *Message) error {
	return nil
}

package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/infra/notifier"
)

type stubNotifier struct {
	err  error
	last *notifier.Message
}

func (n *stubNotifier) Notify(_ context.Context, msg *notifier.Message) error {
	n.last = msg
	return n.err
}

func TestSlackChannel_Send(t *testing.T) {
	stub := &stubNotifier{}
	ch := NewSlackChannel(stub, true)

	event := &Event{
		Kind:  "contact_message",
		Title: "New contact message",
		Body:  "Hello there",
		Meta: []MetaField{
			{Label: "From", Value: "Ada <ada@example.com>"},
		},
	}

	err := ch.Send(context.Background(), event)
	require.NoError(t, err)
	require.NotNil(t, stub.last)
	assert.Equal(t, "New contact message", stub.last.Title)
	assert.Equal(t, "Hello there", stub.last.Text)
	require.Len(t, stub.last.Fields, 1)
	assert.Equal(t, "From", stub.last.Fields[0].Label)
}

func TestSlackChannel_Send_Disabled(t *testing.T) {
	ch := NewSlackChannel(&stubNotifier{}, false)

	err := ch.Send(context.Background(), &Event{Title: "x"})
	assert.ErrorIs(t, err, ErrChannelDisabled)
}

func TestSlackChannel_Send_InvalidEvent(t *testing.T) {
	ch := NewSlackChannel(&stubNotifier{}, true)

	assert.ErrorIs(t, ch.Send(context.Background(), nil), ErrInvalidEvent)
	assert.ErrorIs(t, ch.Send(context.Background(), &Event{}), ErrInvalidEvent)
}

func TestSlackChannel_Send_NotifierError(t *testing.T) {
	stub := &stubNotifier{err: errors.New("webhook down")}
	ch := NewSlackChannel(stub, true)

	err := ch.Send(context.Background(), &Event{Title: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slack channel send")
}

func TestSlackChannel_Metadata(t *testing.T) {
	ch := NewSlackChannel(&stubNotifier{}, true)
	assert.Equal(t, "slack", ch.Name())
	assert.True(t, ch.IsEnabled())
}

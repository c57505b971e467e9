package notifier

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMessage() *Message {
	return &Message{
		Title: "New contact message",
		Text:  "Ada Lovelace wrote: I'd love to collaborate.",
		Fields: []Field{
			{Label: "From", Value: "ada@example.com"},
		},
	}
}

func newTestNotifier(url string) *SlackNotifier {
	return NewSlackNotifier(SlackConfig{
		Enabled:    true,
		WebhookURL: url,
		Timeout:    2 * time.Second,
	})
}

func TestSlackNotifier_Notify_Success(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	n := newTestNotifier(server.URL)
	err := n.Notify(context.Background(), testMessage())
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestSlackNotifier_Notify_ClientErrorNotRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("invalid_payload"))
	}))
	defer server.Close()

	n := newTestNotifier(server.URL)
	err := n.Notify(context.Background(), testMessage())
	require.Error(t, err)

	var clientErr *ClientError
	assert.ErrorAs(t, err, &clientErr)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "4xx must not be retried")
}

func TestSlackNotifier_Notify_ServerErrorRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	n := newTestNotifier(server.URL)

	done := make(chan error, 1)
	go func() { done <- n.Notify(context.Background(), testMessage()) }()

	select {
	case err := <-done:
		require.NoError(t, err)
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	case <-time.After(30 * time.Second):
		t.Fatal("retry did not complete in time")
	}
}

func TestSlackNotifier_Notify_ContextCanceledDuringBackoff(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	n := newTestNotifier(server.URL)
	err := n.Notify(ctx, testMessage())
	require.Error(t, err)
}

func TestExtractRetryAfter(t *testing.T) {
	resp := &http.Response{Header: http.Header{}}
	assert.Equal(t, defaultRetryAfter, extractRetryAfter(resp))

	resp.Header.Set("Retry-After", "12")
	assert.Equal(t, 12*time.Second, extractRetryAfter(resp))

	resp.Header.Set("Retry-After", "garbage")
	assert.Equal(t, defaultRetryAfter, extractRetryAfter(resp))
}

func TestBuildBlockKitPayload(t *testing.T) {
	n := newTestNotifier("https://hooks.slack.example/x")
	payload := n.buildBlockKitPayload(testMessage())

	require.Len(t, payload.Blocks, 2)
	assert.Equal(t, "section", payload.Blocks[0].Type)
	assert.Contains(t, payload.Blocks[0].Text.Text, "*New contact message*")
	assert.Equal(t, "context", payload.Blocks[1].Type)
	assert.Contains(t, payload.Blocks[1].Elements[0].Text, "From: ada@example.com")
}

func TestNoOpNotifier(t *testing.T) {
	n := NewNoOpNotifier()
	assert.NoError(t, n.Notify(context.Background(), testMessage()))
}

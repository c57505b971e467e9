package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domain/entity"
	contactUC "portfolio-backend/internal/usecase/contact"
)

type stubContactRepo struct {
	messages map[int64]*entity.ContactMessage
	nextID   int64
	err      error
}

func newStubContactRepo() *stubContactRepo {
	return &stubContactRepo{messages: make(map[int64]*entity.ContactMessage), nextID: 1}
}

func (r *stubContactRepo) Get(_ context.Context, id int64) (*entity.ContactMessage, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.messages[id], nil
}

func (r *stubContactRepo) List(_ context.Context) ([]*entity.ContactMessage, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*entity.ContactMessage, 0, len(r.messages))
	for _, msg := range r.messages {
		out = append(out, msg)
	}
	return out, nil
}

func (r *stubContactRepo) Create(_ context.Context, msg *entity.ContactMessage) error {
	if r.err != nil {
		return r.err
	}
	msg.ID = r.nextID
	msg.CreatedAt = time.Now()
	r.nextID++
	r.messages[msg.ID] = msg
	return nil
}

func (r *stubContactRepo) MarkRead(_ context.Context, id int64) error {
	if msg, ok := r.messages[id]; ok {
		msg.Read = true
	}
	return r.err
}

func (r *stubContactRepo) Delete(_ context.Context, id int64) error {
	delete(r.messages, id)
	return r.err
}

func (r *stubContactRepo) CountUnread(_ context.Context) (int64, error) {
	var count int64
	for _, msg := range r.messages {
		if !msg.Read {
			count++
		}
	}
	return count, r.err
}

func seedMessage(t *testing.T, repo *stubContactRepo) *entity.ContactMessage {
	t.Helper()
	msg := &entity.ContactMessage{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Subject: "Collaboration",
		Message: "I have a project in mind.",
	}
	require.NoError(t, repo.Create(context.Background(), msg))
	return msg
}

func TestSubmitHandler(t *testing.T) {
	repo := newStubContactRepo()
	svc := contactUC.NewService(repo, nil)

	body := `{"name":"Ada Lovelace","email":"ada@example.com","subject":"Hi","message":"Let us talk."}`
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()

	SubmitHandler{svc}.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp map[string]int64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp["id"])
	require.Len(t, repo.messages, 1)
	assert.False(t, repo.messages[1].Read)
}

func TestSubmitHandler_ValidationError(t *testing.T) {
	svc := contactUC.NewService(newStubContactRepo(), nil)

	body := `{"name":"","email":"not-an-email","message":""}`
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()

	SubmitHandler{svc}.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitHandler_MalformedBody(t *testing.T) {
	svc := contactUC.NewService(newStubContactRepo(), nil)

	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	SubmitHandler{svc}.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitHandler_RepoError(t *testing.T) {
	repo := newStubContactRepo()
	repo.err = errors.New("db down")
	svc := contactUC.NewService(repo, nil)

	body := `{"name":"Ada","email":"ada@example.com","subject":"Hi","message":"Hello."}`
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()

	SubmitHandler{svc}.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db down")
}

func TestListHandler(t *testing.T) {
	repo := newStubContactRepo()
	seedMessage(t, repo)
	svc := contactUC.NewService(repo, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/messages", nil)
	rec := httptest.NewRecorder()

	ListHandler{svc}.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var out []DTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "Ada Lovelace", out[0].Name)
	assert.Equal(t, "Collaboration", out[0].Subject)
}

func TestUnreadCountHandler(t *testing.T) {
	repo := newStubContactRepo()
	seedMessage(t, repo)
	read := seedMessage(t, repo)
	read.Read = true
	svc := contactUC.NewService(repo, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/messages/unread-count", nil)
	rec := httptest.NewRecorder()

	UnreadCountHandler{svc}.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var out map[string]int64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, int64(1), out["unread"])
}

func TestMarkReadHandler(t *testing.T) {
	repo := newStubContactRepo()
	msg := seedMessage(t, repo)
	svc := contactUC.NewService(repo, nil)

	req := httptest.NewRequest(http.MethodPost, "/admin/messages/1/read", nil)
	rec := httptest.NewRecorder()

	MarkReadHandler{svc}.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, msg.Read)
}

func TestMarkReadHandler_NotFound(t *testing.T) {
	svc := contactUC.NewService(newStubContactRepo(), nil)

	req := httptest.NewRequest(http.MethodPost, "/admin/messages/42/read", nil)
	rec := httptest.NewRecorder()

	MarkReadHandler{svc}.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMarkReadHandler_InvalidID(t *testing.T) {
	svc := contactUC.NewService(newStubContactRepo(), nil)

	req := httptest.NewRequest(http.MethodPost, "/admin/messages/abc/read", nil)
	rec := httptest.NewRecorder()

	MarkReadHandler{svc}.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteHandler(t *testing.T) {
	repo := newStubContactRepo()
	seedMessage(t, repo)
	svc := contactUC.NewService(repo, nil)

	req := httptest.NewRequest(http.MethodDelete, "/admin/messages/1", nil)
	rec := httptest.NewRecorder()

	DeleteHandler{svc}.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, repo.messages)
}

func TestDeleteHandler_NotFound(t *testing.T) {
	svc := contactUC.NewService(newStubContactRepo(), nil)

	req := httptest.NewRequest(http.MethodDelete, "/admin/messages/42", nil)
	rec := httptest.NewRecorder()

	DeleteHandler{svc}.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

package content

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domain/entity"
)

type stubContentRepo struct {
	sections map[string]*entity.SiteContent
}

func newStubContentRepo() *stubContentRepo {
	return &stubContentRepo{sections: make(map[string]*entity.SiteContent)}
}

func (r *stubContentRepo) GetBySection(_ context.Context, section string) (*entity.SiteContent, error) {
	return r.sections[section], nil
}

func (r *stubContentRepo) List(_ context.Context) ([]*entity.SiteContent, error) {
	out := make([]*entity.SiteContent, 0, len(r.sections))
	for _, sc := range r.sections {
		out = append(out, sc)
	}
	return out, nil
}

func (r *stubContentRepo) Upsert(_ context.Context, section string, content json.RawMessage) (*entity.SiteContent, error) {
	sc := &entity.SiteContent{Section: section, Content: content}
	r.sections[section] = sc
	return sc, nil
}

func TestService_Update_CreatesSection(t *testing.T) {
	repo := newStubContentRepo()
	svc := &Service{Repo: repo}

	payload := json.RawMessage(`{"headline":"Designer & Developer"}`)
	sc, err := svc.Update(context.Background(), entity.SectionHero, payload)
	require.NoError(t, err)
	assert.Equal(t, entity.SectionHero, sc.Section)
	assert.JSONEq(t, `{"headline":"Designer & Developer"}`, string(sc.Content))
}

func TestService_Update_ReplacesExisting(t *testing.T) {
	repo := newStubContentRepo()
	svc := &Service{Repo: repo}

	_, err := svc.Update(context.Background(), entity.SectionHero, json.RawMessage(`{"headline":"old"}`))
	require.NoError(t, err)

	sc, err := svc.Update(context.Background(), entity.SectionHero, json.RawMessage(`{"headline":"new"}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"headline":"new"}`, string(sc.Content))
	assert.Len(t, repo.sections, 1)
}

func TestService_Update_MalformedJSON(t *testing.T) {
	svc := &Service{Repo: newStubContentRepo()}

	_, err := svc.Update(context.Background(), entity.SectionHero, json.RawMessage(`{"headline":`))
	require.Error(t, err)
	var validationErr *entity.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestService_Update_Oversized(t *testing.T) {
	svc := &Service{Repo: newStubContentRepo()}

	big := `{"text":"` + strings.Repeat("a", maxContentSize) + `"}`
	_, err := svc.Update(context.Background(), entity.SectionHero, json.RawMessage(big))
	require.Error(t, err)
	var validationErr *entity.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestService_Get(t *testing.T) {
	repo := newStubContentRepo()
	svc := &Service{Repo: repo}

	_, err := svc.Update(context.Background(), entity.SectionContact, json.RawMessage(`{"email":"hi@example.com"}`))
	require.NoError(t, err)

	sc, err := svc.Get(context.Background(), entity.SectionContact)
	require.NoError(t, err)
	assert.Equal(t, entity.SectionContact, sc.Section)
}

func TestService_Get_NotFound(t *testing.T) {
	svc := &Service{Repo: newStubContentRepo()}

	_, err := svc.Get(context.Background(), entity.SectionSocial)
	assert.ErrorIs(t, err, ErrSectionNotFound)
}

func TestService_Get_EmptySection(t *testing.T) {
	svc := &Service{Repo: newStubContentRepo()}

	_, err := svc.Get(context.Background(), "")
	var validationErr *entity.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestService_List(t *testing.T) {
	repo := newStubContentRepo()
	svc := &Service{Repo: repo}

	_, err := svc.Update(context.Background(), entity.SectionHero, json.RawMessage(`{}`))
	require.NoError(t, err)
	_, err = svc.Update(context.Background(), entity.SectionContact, json.RawMessage(`{}`))
	require.NoError(t, err)

	sections, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, sections, 2)
}

package casestudy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domain/entity"
)

type stubCaseStudyRepo struct {
	studies map[int64]*entity.CaseStudy
	nextID  int64
}

func newStubCaseStudyRepo() *stubCaseStudyRepo {
	return &stubCaseStudyRepo{studies: make(map[int64]*entity.CaseStudy), nextID: 1}
}

func (r *stubCaseStudyRepo) Get(_ context.Context, id int64) (*entity.CaseStudy, error) {
	return r.studies[id], nil
}

func (r *stubCaseStudyRepo) GetBySlug(_ context.Context, slug string) (*entity.CaseStudy, error) {
	for _, cs := range r.studies {
		if cs.Slug == slug {
			return cs, nil
		}
	}
	return nil, nil
}

func (r *stubCaseStudyRepo) List(_ context.Context) ([]*entity.CaseStudy, error) {
	out := make([]*entity.CaseStudy, 0, len(r.studies))
	for _, cs := range r.studies {
		out = append(out, cs)
	}
	return out, nil
}

func (r *stubCaseStudyRepo) ListPublished(ctx context.Context) ([]*entity.CaseStudy, error) {
	all, _ := r.List(ctx)
	out := make([]*entity.CaseStudy, 0, len(all))
	for _, cs := range all {
		if cs.Published {
			out = append(out, cs)
		}
	}
	return out, nil
}

func (r *stubCaseStudyRepo) Create(_ context.Context, cs *entity.CaseStudy) error {
	for _, existing := range r.studies {
		if existing.Slug == cs.Slug {
			return entity.ErrAlreadyExists
		}
	}
	cs.ID = r.nextID
	r.nextID++
	r.studies[cs.ID] = cs
	return nil
}

func (r *stubCaseStudyRepo) Update(_ context.Context, cs *entity.CaseStudy) error {
	for id, existing := range r.studies {
		if id != cs.ID && existing.Slug == cs.Slug {
			return entity.ErrAlreadyExists
		}
	}
	r.studies[cs.ID] = cs
	return nil
}

func (r *stubCaseStudyRepo) Delete(_ context.Context, id int64) error {
	delete(r.studies, id)
	return nil
}

func validCreateInput() CreateInput {
	return CreateInput{
		Title:    "Roastery Rebrand",
		Subtitle: "From sketch to shelf",
		Slug:     "roastery-rebrand",
		Summary:  "A complete identity refresh",
		Content:  "## Background\nThe client wanted...",
		Category: "Branding",
		Duration: "6 weeks",
		Tags:     []string{"branding"},
	}
}

func TestService_Create_Draft(t *testing.T) {
	svc := &Service{Repo: newStubCaseStudyRepo()}

	cs, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)
	assert.NotZero(t, cs.ID)
	assert.False(t, cs.Published)
	assert.Nil(t, cs.PublishedAt)
	assert.Equal(t, "From sketch to shelf", cs.Subtitle)
	assert.Equal(t, "Branding", cs.Category)
	assert.Equal(t, "6 weeks", cs.Duration)
	assert.False(t, cs.Featured)
}

func TestService_Update_FeaturedAndCategory(t *testing.T) {
	svc := &Service{Repo: newStubCaseStudyRepo()}

	cs, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	featured := true
	category := "Product Design"
	duration := "3 months"
	updated, err := svc.Update(context.Background(), UpdateInput{
		ID:       cs.ID,
		Featured: &featured,
		Category: &category,
		Duration: &duration,
	})
	require.NoError(t, err)
	assert.True(t, updated.Featured)
	assert.Equal(t, "Product Design", updated.Category)
	assert.Equal(t, "3 months", updated.Duration)
	// Untouched fields survive a partial update.
	assert.Equal(t, "From sketch to shelf", updated.Subtitle)
	assert.Equal(t, "roastery-rebrand", updated.Slug)
}

func TestService_Create_PublishedStampsPublishedAt(t *testing.T) {
	svc := &Service{Repo: newStubCaseStudyRepo()}

	input := validCreateInput()
	input.Published = true

	cs, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.True(t, cs.Published)
	require.NotNil(t, cs.PublishedAt)
}

func TestService_Create_SlugTaken(t *testing.T) {
	svc := &Service{Repo: newStubCaseStudyRepo()}

	_, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validCreateInput())
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestService_Create_InvalidSlug(t *testing.T) {
	svc := &Service{Repo: newStubCaseStudyRepo()}

	input := validCreateInput()
	input.Slug = "Not A Slug"

	_, err := svc.Create(context.Background(), input)
	require.Error(t, err)
	var validationErr *entity.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestService_GetPublishedBySlug(t *testing.T) {
	svc := &Service{Repo: newStubCaseStudyRepo()}

	input := validCreateInput()
	input.Published = true
	_, err := svc.Create(context.Background(), input)
	require.NoError(t, err)

	cs, err := svc.GetPublishedBySlug(context.Background(), "roastery-rebrand")
	require.NoError(t, err)
	assert.Equal(t, "Roastery Rebrand", cs.Title)
}

func TestService_GetPublishedBySlug_DraftHidden(t *testing.T) {
	svc := &Service{Repo: newStubCaseStudyRepo()}

	_, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	_, err = svc.GetPublishedBySlug(context.Background(), "roastery-rebrand")
	assert.ErrorIs(t, err, ErrCaseStudyNotFound)
}

func TestService_GetPublishedBySlug_Unknown(t *testing.T) {
	svc := &Service{Repo: newStubCaseStudyRepo()}

	_, err := svc.GetPublishedBySlug(context.Background(), "no-such-study")
	assert.ErrorIs(t, err, ErrCaseStudyNotFound)
}

func TestService_Update_PublishFlipStampsPublishedAt(t *testing.T) {
	svc := &Service{Repo: newStubCaseStudyRepo()}

	cs, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)
	require.Nil(t, cs.PublishedAt)

	published := true
	updated, err := svc.Update(context.Background(), UpdateInput{ID: cs.ID, Published: &published})
	require.NoError(t, err)
	assert.True(t, updated.Published)
	require.NotNil(t, updated.PublishedAt)

	unpublished := false
	updated, err = svc.Update(context.Background(), UpdateInput{ID: cs.ID, Published: &unpublished})
	require.NoError(t, err)
	assert.False(t, updated.Published)
	assert.Nil(t, updated.PublishedAt)
}

func TestService_Update_SlugConflict(t *testing.T) {
	svc := &Service{Repo: newStubCaseStudyRepo()}

	first, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	second := validCreateInput()
	second.Slug = "another-study"
	secondCS, err := svc.Create(context.Background(), second)
	require.NoError(t, err)

	conflict := first.Slug
	_, err = svc.Update(context.Background(), UpdateInput{ID: secondCS.ID, Slug: &conflict})
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestService_Update_NotFound(t *testing.T) {
	svc := &Service{Repo: newStubCaseStudyRepo()}

	title := "x"
	_, err := svc.Update(context.Background(), UpdateInput{ID: 42, Title: &title})
	assert.ErrorIs(t, err, ErrCaseStudyNotFound)
}

func TestService_ListPublished(t *testing.T) {
	svc := &Service{Repo: newStubCaseStudyRepo()}

	published := validCreateInput()
	published.Published = true
	_, err := svc.Create(context.Background(), published)
	require.NoError(t, err)

	draft := validCreateInput()
	draft.Slug = "draft-study"
	_, err = svc.Create(context.Background(), draft)
	require.NoError(t, err)

	studies, err := svc.ListPublished(context.Background())
	require.NoError(t, err)
	require.Len(t, studies, 1)
	assert.True(t, studies[0].Published)
}

func TestService_Delete(t *testing.T) {
	repo := newStubCaseStudyRepo()
	svc := &Service{Repo: repo}

	cs, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), cs.ID))
	assert.Empty(t, repo.studies)
}

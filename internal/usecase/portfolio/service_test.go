package portfolio

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domain/entity"
)

type stubItemRepo struct {
	items   map[int64]*entity.PortfolioItem
	nextID  int64
	listErr error
	getErr  error
	saveErr error
}

func newStubItemRepo() *stubItemRepo {
	return &stubItemRepo{items: make(map[int64]*entity.PortfolioItem), nextID: 1}
}

func (r *stubItemRepo) Get(_ context.Context, id int64) (*entity.PortfolioItem, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.items[id], nil
}

func (r *stubItemRepo) List(_ context.Context) ([]*entity.PortfolioItem, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*entity.PortfolioItem, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	return out, nil
}

func (r *stubItemRepo) ListFeatured(ctx context.Context) ([]*entity.PortfolioItem, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.PortfolioItem, 0, len(all))
	for _, item := range all {
		if item.Featured {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *stubItemRepo) ListByCategory(ctx context.Context, category string) ([]*entity.PortfolioItem, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.PortfolioItem, 0, len(all))
	for _, item := range all {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *stubItemRepo) ListSynced(ctx context.Context) ([]*entity.PortfolioItem, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.PortfolioItem, 0, len(all))
	for _, item := range all {
		if item.Synced() {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *stubItemRepo) Create(_ context.Context, item *entity.PortfolioItem) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	item.ID = r.nextID
	r.nextID++
	r.items[item.ID] = item
	return nil
}

func (r *stubItemRepo) Update(_ context.Context, item *entity.PortfolioItem) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.items[item.ID] = item
	return nil
}

func (r *stubItemRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return errors.New("no rows affected")
	}
	delete(r.items, id)
	return nil
}

func (r *stubItemRepo) DeleteByExternalID(_ context.Context, externalID string) error {
	for id, item := range r.items {
		if item.ExternalID != nil && *item.ExternalID == externalID {
			delete(r.items, id)
		}
	}
	return nil
}

func (r *stubItemRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.items)), nil
}

func validCreateInput() CreateInput {
	return CreateInput{
		Title:       "Brand Identity",
		Description: "Complete rebrand for a local roastery",
		ImageURL:    "https://cdn.example.com/brand.jpg",
		Category:    "Branding",
		Tags:        []string{"identity", "print"},
		Featured:    true,
	}
}

func TestService_Create(t *testing.T) {
	repo := newStubItemRepo()
	svc := &Service{Repo: repo}

	item, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)
	assert.NotZero(t, item.ID)
	assert.Nil(t, item.ExternalID)
	assert.False(t, item.Synced())
}

func TestService_Create_Invalid(t *testing.T) {
	repo := newStubItemRepo()
	svc := &Service{Repo: repo}

	input := validCreateInput()
	input.Title = ""

	_, err := svc.Create(context.Background(), input)
	require.Error(t, err)
	var validationErr *entity.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Empty(t, repo.items)
}

func TestService_Create_MissingImageURL(t *testing.T) {
	repo := newStubItemRepo()
	svc := &Service{Repo: repo}

	input := validCreateInput()
	input.ImageURL = ""

	_, err := svc.Create(context.Background(), input)
	require.Error(t, err)
	var validationErr *entity.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "image_url", validationErr.Field)
	assert.Empty(t, repo.items)
}

func TestService_Get(t *testing.T) {
	repo := newStubItemRepo()
	svc := &Service{Repo: repo}

	created, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)
}

func TestService_Get_NotFound(t *testing.T) {
	svc := &Service{Repo: newStubItemRepo()}

	_, err := svc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestService_Get_InvalidID(t *testing.T) {
	svc := &Service{Repo: newStubItemRepo()}

	_, err := svc.Get(context.Background(), 0)
	var validationErr *entity.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestService_Update_PartialFields(t *testing.T) {
	repo := newStubItemRepo()
	svc := &Service{Repo: repo}

	created, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	newTitle := "Rebrand 2.0"
	updated, err := svc.Update(context.Background(), UpdateInput{ID: created.ID, Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Rebrand 2.0", updated.Title)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.Tags, updated.Tags)
}

func TestService_Update_SyncedItem(t *testing.T) {
	repo := newStubItemRepo()
	svc := &Service{Repo: repo}

	extID := "99887766"
	synced := &entity.PortfolioItem{
		Title:      "Showcase Project",
		ImageURL:   "https://cdn.example.com/cover.jpg",
		Category:   "Design",
		ExternalID: &extID,
	}
	require.NoError(t, repo.Create(context.Background(), synced))

	newTitle := "My Better Title"
	updated, err := svc.Update(context.Background(), UpdateInput{ID: synced.ID, Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "My Better Title", updated.Title)
	assert.True(t, updated.Synced())
}

func TestService_Update_NotFound(t *testing.T) {
	svc := &Service{Repo: newStubItemRepo()}

	title := "x"
	_, err := svc.Update(context.Background(), UpdateInput{ID: 42, Title: &title})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestService_Update_InvalidResult(t *testing.T) {
	repo := newStubItemRepo()
	svc := &Service{Repo: repo}

	created, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	empty := ""
	_, err = svc.Update(context.Background(), UpdateInput{ID: created.ID, Title: &empty})
	var validationErr *entity.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestService_Delete(t *testing.T) {
	repo := newStubItemRepo()
	svc := &Service{Repo: repo}

	created, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Empty(t, repo.items)
}

func TestService_Delete_InvalidID(t *testing.T) {
	svc := &Service{Repo: newStubItemRepo()}

	err := svc.Delete(context.Background(), -1)
	var validationErr *entity.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestService_ListFeatured(t *testing.T) {
	repo := newStubItemRepo()
	svc := &Service{Repo: repo}

	featured, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	plain := validCreateInput()
	plain.Featured = false
	_, err = svc.Create(context.Background(), plain)
	require.NoError(t, err)

	items, err := svc.ListFeatured(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, featured.ID, items[0].ID)
}

func TestService_ListByCategory(t *testing.T) {
	repo := newStubItemRepo()
	svc := &Service{Repo: repo}

	_, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	other := validCreateInput()
	other.Category = "Web"
	_, err = svc.Create(context.Background(), other)
	require.NoError(t, err)

	items, err := svc.ListByCategory(context.Background(), "Web")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Web", items[0].Category)
}

func TestService_List_RepoError(t *testing.T) {
	repo := newStubItemRepo()
	repo.listErr = errors.New("db down")
	svc := &Service{Repo: repo}

	_, err := svc.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list items")
}

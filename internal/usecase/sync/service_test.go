package sync_test

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domain/entity"
	"portfolio-backend/internal/repository"
	syncUC "portfolio-backend/internal/usecase/sync"
)

/* ───────── stubs ───────── */

// stubSource is a ProjectSource backed by a fixed listing.
type stubSource struct {
	configured bool
	projects   []syncUC.Project
	err        error

	fetchCalls int
	// release, when set, blocks Projects until closed. Used to hold the
	// sync lock open for the mutual-exclusion test.
	started chan struct{}
	release chan struct{}
}

func (s *stubSource) Configured() bool { return s.configured }

func (s *stubSource) Projects(_ context.Context) ([]syncUC.Project, error) {
	s.fetchCalls++
	if s.started != nil {
		close(s.started)
	}
	if s.release != nil {
		<-s.release
	}
	return s.projects, s.err
}

// stubPortfolioRepo is an in-memory PortfolioRepository tracking mutations.
type stubPortfolioRepo struct {
	items  map[string]*entity.PortfolioItem // synced items keyed by external id
	manual []*entity.PortfolioItem          // hand-curated items, no external id

	createErr error
	listErr   error
	created   []string
	deleted   []string
	mutations int
	nextID    int64
}

func newStubRepo(items ...*entity.PortfolioItem) *stubPortfolioRepo {
	repo := &stubPortfolioRepo{items: map[string]*entity.PortfolioItem{}, nextID: 100}
	for _, item := range items {
		if item.ExternalID == nil {
			repo.manual = append(repo.manual, item)
			continue
		}
		repo.items[*item.ExternalID] = item
	}
	return repo
}

// ListSynced returns only items with an external id; manual items are
// excluded, per the repository contract.
func (r *stubPortfolioRepo) ListSynced(_ context.Context) ([]*entity.PortfolioItem, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*entity.PortfolioItem, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	return out, nil
}

func (r *stubPortfolioRepo) Create(_ context.Context, item *entity.PortfolioItem) error {
	r.mutations++
	if r.createErr != nil {
		return r.createErr
	}
	if _, exists := r.items[*item.ExternalID]; exists {
		return repository.ErrDuplicateExternalID
	}
	r.nextID++
	item.ID = r.nextID
	r.items[*item.ExternalID] = item
	r.created = append(r.created, *item.ExternalID)
	return nil
}

func (r *stubPortfolioRepo) DeleteByExternalID(_ context.Context, externalID string) error {
	r.mutations++
	delete(r.items, externalID)
	r.deleted = append(r.deleted, externalID)
	return nil
}

func (r *stubPortfolioRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.items)), nil
}

// Unused interface methods.
func (r *stubPortfolioRepo) Get(_ context.Context, _ int64) (*entity.PortfolioItem, error) {
	return nil, nil
}
func (r *stubPortfolioRepo) List(_ context.Context) ([]*entity.PortfolioItem, error) {
	return nil, nil
}
func (r *stubPortfolioRepo) ListFeatured(_ context.Context) ([]*entity.PortfolioItem, error) {
	return nil, nil
}
func (r *stubPortfolioRepo) ListByCategory(_ context.Context, _ string) ([]*entity.PortfolioItem, error) {
	return nil, nil
}
func (r *stubPortfolioRepo) Update(_ context.Context, _ *entity.PortfolioItem) error { return nil }
func (r *stubPortfolioRepo) Delete(_ context.Context, _ int64) error                 { return nil }

func syncedItem(ext, title string) *entity.PortfolioItem {
	id := ext
	return &entity.PortfolioItem{Title: title, ExternalID: &id}
}

func project(id, name string) syncUC.Project {
	return syncUC.Project{
		ID:         id,
		Name:       name,
		CoverImage: "https://cdn.example.com/" + id + ".png",
		Fields:     []string{"Branding"},
	}
}

/* ───────── tests ───────── */

func TestReconcile_NotConfigured_NoOp(t *testing.T) {
	repo := newStubRepo()
	source := &stubSource{configured: false}
	svc := syncUC.NewService(repo, source)

	result, err := svc.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created+result.Deleted+result.Skipped)
	assert.Equal(t, 0, source.fetchCalls, "upstream must not be called")
	assert.Equal(t, 0, repo.mutations, "store must not be touched")
}

func TestReconcile_CreatesMissingAndDeletesVanished(t *testing.T) {
	// Local has 1001 (still upstream) and 1002 (vanished).
	repo := newStubRepo(
		syncedItem("1001", "Kept"),
		syncedItem("1002", "Vanished"),
	)
	source := &stubSource{
		configured: true,
		projects: []syncUC.Project{
			project("1001", "Kept"),
			project("1003", "Brand New"),
		},
	}
	svc := syncUC.NewService(repo, source)

	result, err := svc.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Deleted)
	assert.Equal(t, []string{"1003"}, repo.created)
	assert.Equal(t, []string{"1002"}, repo.deleted)
}

func TestReconcile_MatchedItemsUntouched(t *testing.T) {
	// Local title was edited by hand; upstream still lists the project.
	edited := syncedItem("1001", "Locally Edited Title")
	repo := newStubRepo(edited)
	source := &stubSource{
		configured: true,
		projects:   []syncUC.Project{project("1001", "Upstream Title")},
	}
	svc := syncUC.NewService(repo, source)

	result, err := svc.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 0, result.Deleted)
	assert.Equal(t, "Locally Edited Title", repo.items["1001"].Title)
	assert.Equal(t, 0, repo.mutations)
}

func TestReconcile_ManualItemsNeverDeleted(t *testing.T) {
	// A hand-curated item carries no external id, so the upstream listing
	// can never mention it. Even a pass that deletes every synced item
	// must leave it alone.
	manual := &entity.PortfolioItem{ID: 7, Title: "Gallery Commission"}
	repo := newStubRepo(manual, syncedItem("1001", "Vanished"))
	source := &stubSource{configured: true, projects: nil}
	svc := syncUC.NewService(repo, source)

	result, err := svc.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Deleted)
	assert.Equal(t, []string{"1001"}, repo.deleted)
	require.Len(t, repo.manual, 1)
	assert.Nil(t, repo.manual[0].ExternalID)
	assert.Equal(t, "Gallery Commission", repo.manual[0].Title)
}

func TestReconcile_Idempotent(t *testing.T) {
	repo := newStubRepo()
	source := &stubSource{
		configured: true,
		projects:   []syncUC.Project{project("1001", "One"), project("1002", "Two")},
	}
	svc := syncUC.NewService(repo, source)

	first, err := svc.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, first.Created)

	second, err := svc.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 0, second.Deleted)
}

func TestReconcile_UpstreamFailureAbortsWithoutMutation(t *testing.T) {
	repo := newStubRepo(syncedItem("1001", "Kept"))
	source := &stubSource{configured: true, err: errors.New("upstream 500")}
	svc := syncUC.NewService(repo, source)

	_, err := svc.Reconcile(context.Background())
	require.Error(t, err)
	assert.Equal(t, 0, repo.mutations)
	assert.Len(t, repo.items, 1, "local items must survive upstream failure")
}

func TestReconcile_MalformedRecordsSkippedNotDeleted(t *testing.T) {
	// 1002 exists locally and comes back malformed: it must be neither
	// re-created nor deleted.
	repo := newStubRepo(syncedItem("1002", "Existing"))
	source := &stubSource{
		configured: true,
		projects: []syncUC.Project{
			{ID: "1001", Name: "No Cover"},                                          // missing cover image
			{ID: "1002", Name: ""},                                                  // malformed but locally present
			{ID: "", Name: "No ID", CoverImage: "https://cdn.example.com/x.png"},    // untrackable
			{ID: "1003", Name: "Good", CoverImage: "https://cdn.example.com/3.png"}, // fine
		},
	}
	svc := syncUC.NewService(repo, source)

	result, err := svc.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 0, result.Deleted)
	assert.Equal(t, 1, result.Skipped)
	assert.Contains(t, repo.items, "1002")
}

func TestReconcile_DuplicateUpstreamIDsLastWins(t *testing.T) {
	repo := newStubRepo()
	first := project("1001", "First")
	last := project("1001", "Last")
	source := &stubSource{configured: true, projects: []syncUC.Project{first, last}}
	svc := syncUC.NewService(repo, source)

	result, err := svc.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, "Last", repo.items["1001"].Title)
}

func TestReconcile_DuplicateInsertSkipped(t *testing.T) {
	repo := newStubRepo()
	repo.createErr = repository.ErrDuplicateExternalID
	source := &stubSource{configured: true, projects: []syncUC.Project{project("1001", "Dup")}}
	svc := syncUC.NewService(repo, source)

	result, err := svc.Reconcile(context.Background())
	require.NoError(t, err, "duplicate insert must not fail the run")
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 1, result.Skipped)
}

func TestReconcile_ConcurrentRunRejected(t *testing.T) {
	repo := newStubRepo()
	source := &stubSource{
		configured: true,
		started:    make(chan struct{}),
		release:    make(chan struct{}),
	}
	svc := syncUC.NewService(repo, source)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Reconcile(context.Background())
		done <- err
	}()

	<-source.started // first run holds the lock inside the upstream fetch

	_, err := svc.Reconcile(context.Background())
	assert.ErrorIs(t, err, syncUC.ErrSyncInProgress)

	close(source.release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, source.fetchCalls)
}

func TestReconcile_CategoryMapping(t *testing.T) {
	repo := newStubRepo()
	source := &stubSource{
		configured: true,
		projects: []syncUC.Project{
			{ID: "1", Name: "With Field", CoverImage: "https://cdn.example.com/1.png", Fields: []string{"Illustration", "Print"}},
			{ID: "2", Name: "No Field", CoverImage: "https://cdn.example.com/2.png"},
		},
	}
	svc := syncUC.NewService(repo, source)

	_, err := svc.Reconcile(context.Background())
	require.NoError(t, err)

	categories := []string{repo.items["1"].Category, repo.items["2"].Category}
	sort.Strings(categories)
	assert.Equal(t, []string{"Design", "Illustration"}, categories)
	assert.False(t, repo.items["1"].Featured, "synced items are never featured automatically")
}

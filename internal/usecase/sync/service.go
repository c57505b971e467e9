// Package sync reconciles the local portfolio against an external showcase
// listing. Items created by sync carry the upstream project ID; items added
// by hand carry none and are never touched here.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	stdsync "sync"
	"time"

	"portfolio-backend/internal/domain/entity"
	"portfolio-backend/internal/observability/metrics"
	"portfolio-backend/internal/repository"
)

// defaultCategory is assigned when an upstream project lists no fields.
const defaultCategory = "Design"

// Project is a single entry from the external showcase listing.
type Project struct {
	ID          string
	Name        string
	Description string
	CoverImage  string
	Tags        []string
	Fields      []string
	URL         string
}

// ProjectSource lists projects from the external showcase.
type ProjectSource interface {
	// Configured reports whether credentials for the upstream API are present.
	// When false, Projects must not be called.
	Configured() bool
	Projects(ctx context.Context) ([]Project, error)
}

// Result summarizes a single reconciliation pass.
type Result struct {
	Created  int
	Deleted  int
	Skipped  int
	Duration time.Duration
}

// Service reconciles portfolio items against the external showcase.
// A single Service instance guards all sync entry points (scheduler and
// on-demand) with one mutex, so passes never overlap.
type Service struct {
	Repo   repository.PortfolioRepository
	Source ProjectSource

	mu stdsync.Mutex
}

// NewService creates a new sync Service with the provided dependencies.
func NewService(repo repository.PortfolioRepository, source ProjectSource) *Service {
	return &Service{Repo: repo, Source: source}
}

// Reconcile performs one reconciliation pass:
//  1. fetch the upstream listing (any failure aborts before touching the store)
//  2. create portfolio items for upstream projects not yet present
//  3. delete synced items whose upstream project vanished
//
// Matched items are left untouched so local edits survive. Manually curated
// items are invisible to the diff entirely. The pass is idempotent: running
// it twice against an unchanged upstream is a no-op.
//
// Without upstream credentials the pass is a silent no-op. A pass requested
// while another is running returns ErrSyncInProgress.
func (s *Service) Reconcile(ctx context.Context) (*Result, error) {
	logger := slog.Default()

	if !s.Source.Configured() {
		logger.Info("portfolio sync skipped: upstream credentials not configured")
		metrics.RecordSyncRun("not_configured", 0)
		return &Result{}, nil
	}

	if !s.mu.TryLock() {
		logger.Warn("portfolio sync skipped: previous run still in progress")
		metrics.RecordSyncRun("skipped", 0)
		return nil, ErrSyncInProgress
	}
	defer s.mu.Unlock()

	start := time.Now()
	result, err := s.reconcile(ctx, logger)
	if err != nil {
		metrics.RecordSyncRun("failure", time.Since(start))
		return nil, err
	}

	result.Duration = time.Since(start)
	metrics.RecordSyncRun("success", result.Duration)
	metrics.RecordSyncItems(result.Created, result.Deleted, result.Skipped)

	if count, err := s.Repo.Count(ctx); err == nil {
		metrics.UpdatePortfolioItemsTotal(count)
	}

	logger.Info("portfolio sync completed",
		slog.Int("created", result.Created),
		slog.Int("deleted", result.Deleted),
		slog.Int("skipped", result.Skipped),
		slog.Duration("duration", result.Duration),
	)
	return result, nil
}

func (s *Service) reconcile(ctx context.Context, logger *slog.Logger) (*Result, error) {
	// Fetch upstream first: if the showcase is unreachable the local
	// portfolio must stay exactly as it is.
	projects, err := s.Source.Projects(ctx)
	if err != nil {
		logger.Error("portfolio sync failed: upstream fetch", slog.Any("error", err))
		return nil, fmt.Errorf("fetch projects: %w", err)
	}

	result := &Result{}
	upstream := dedupeByID(projects, logger)

	local, err := s.Repo.ListSynced(ctx)
	if err != nil {
		return nil, fmt.Errorf("list synced items: %w", err)
	}
	localByExt := make(map[string]*entity.PortfolioItem, len(local))
	for _, item := range local {
		localByExt[*item.ExternalID] = item
	}

	// Creates: upstream projects with no local counterpart.
	for id, p := range upstream {
		if _, exists := localByExt[id]; exists {
			continue
		}
		if p.Name == "" || p.CoverImage == "" {
			logger.Warn("skipping malformed upstream project",
				slog.String("external_id", id),
				slog.String("name", p.Name))
			result.Skipped++
			continue
		}
		item := mapProject(p)
		if err := item.Validate(); err != nil {
			logger.Warn("skipping invalid upstream project",
				slog.String("external_id", id),
				slog.Any("error", err))
			result.Skipped++
			continue
		}
		if err := s.Repo.Create(ctx, item); err != nil {
			if errors.Is(err, repository.ErrDuplicateExternalID) {
				logger.Warn("skipping duplicate external id",
					slog.String("external_id", id))
				result.Skipped++
				continue
			}
			return nil, fmt.Errorf("create item %q: %w", id, err)
		}
		result.Created++
	}

	// Deletes: synced items whose upstream project vanished. Malformed
	// upstream records still count as present, so their local items survive.
	for id := range localByExt {
		if _, exists := upstream[id]; exists {
			continue
		}
		if err := s.Repo.DeleteByExternalID(ctx, id); err != nil {
			return nil, fmt.Errorf("delete item %q: %w", id, err)
		}
		result.Deleted++
	}

	return result, nil
}

// dedupeByID collapses duplicate upstream identifiers; the last record wins.
// Records without an ID cannot be tracked and are dropped with a warning.
func dedupeByID(projects []Project, logger *slog.Logger) map[string]Project {
	upstream := make(map[string]Project, len(projects))
	for _, p := range projects {
		if p.ID == "" {
			logger.Warn("dropping upstream project without id", slog.String("name", p.Name))
			continue
		}
		if _, dup := upstream[p.ID]; dup {
			logger.Warn("duplicate upstream project id, keeping last",
				slog.String("external_id", p.ID))
		}
		upstream[p.ID] = p
	}
	return upstream
}

// mapProject converts an upstream project into a new portfolio item.
func mapProject(p Project) *entity.PortfolioItem {
	category := defaultCategory
	if len(p.Fields) > 0 && p.Fields[0] != "" {
		category = p.Fields[0]
	}
	id := p.ID
	return &entity.PortfolioItem{
		Title:       p.Name,
		Description: p.Description,
		ImageURL:    p.CoverImage,
		Category:    category,
		Tags:        p.Tags,
		ProjectURL:  p.URL,
		Featured:    false,
		ExternalID:  &id,
	}
}

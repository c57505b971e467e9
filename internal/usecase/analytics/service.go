// Package analytics provides use cases for recording page views and
// producing the traffic summary shown in the admin dashboard.
package analytics

import (
	"context"
	"fmt"
	"time"

	"portfolio-backend/internal/domain/entity"
	"portfolio-backend/internal/observability/metrics"
	"portfolio-backend/internal/repository"
)

const (
	// summaryWindow is the reporting window for the analytics summary.
	summaryWindow = 30 * 24 * time.Hour

	// summaryTopN bounds the top pages and referrers lists.
	summaryTopN = 10
)

// TrackInput carries a single page view event.
type TrackInput struct {
	Path      string
	Referrer  string
	UserAgent string
	VisitorID string
}

// Service records page views and aggregates them into summaries.
type Service struct {
	Repo repository.PageViewRepository

	// now is swappable for tests.
	now func() time.Time
}

// NewService creates an analytics service.
func NewService(repo repository.PageViewRepository) *Service {
	return &Service{Repo: repo, now: time.Now}
}

// Track validates and stores a page view event.
func (s *Service) Track(ctx context.Context, input TrackInput) error {
	view := &entity.PageView{
		Path:      input.Path,
		Referrer:  input.Referrer,
		UserAgent: input.UserAgent,
		VisitorID: input.VisitorID,
	}

	if err := view.Validate(); err != nil {
		return fmt.Errorf("Track: %w", err)
	}

	if err := s.Repo.Create(ctx, view); err != nil {
		return fmt.Errorf("Track: %w", err)
	}
	metrics.RecordPageView()
	return nil
}

// Summary aggregates page views over the last 30 days.
func (s *Service) Summary(ctx context.Context) (*entity.AnalyticsSummary, error) {
	since := s.now().Add(-summaryWindow)

	summary, err := s.Repo.Summary(ctx, since, summaryTopN)
	if err != nil {
		return nil, fmt.Errorf("Summary: %w", err)
	}
	return summary, nil
}

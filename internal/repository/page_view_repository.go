package repository

import (
	"context"
	"time"

	"portfolio-backend/internal/domain/entity"
)

type PageViewRepository interface {
	Create(ctx context.Context, view *entity.PageView) error
	// Summary aggregates views recorded at or after the since timestamp.
	// topN bounds the length of the TopPages and TopReferrers lists.
	Summary(ctx context.Context, since time.Time, topN int) (*entity.AnalyticsSummary, error)
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"portfolio-backend/internal/domain/entity"
	"portfolio-backend/internal/repository"
)

type PageViewRepo struct{ db *sql.DB }

func NewPageViewRepo(db *sql.DB) repository.PageViewRepository {
	return &PageViewRepo{db: db}
}

func (repo *PageViewRepo) Create(ctx context.Context, view *entity.PageView) error {
	const query = `
INSERT INTO page_views (path, referrer, user_agent, visitor_id)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at`
	err := repo.db.QueryRowContext(ctx, query,
		view.Path, view.Referrer, view.UserAgent, view.VisitorID,
	).Scan(&view.ID, &view.CreatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *PageViewRepo) Summary(ctx context.Context, since time.Time, topN int) (*entity.AnalyticsSummary, error) {
	summary := &entity.AnalyticsSummary{}

	const totalsQuery = `
SELECT COUNT(*), COUNT(DISTINCT visitor_id)
FROM page_views
WHERE created_at >= $1`
	err := repo.db.QueryRowContext(ctx, totalsQuery, since).Scan(
		&summary.TotalViews, &summary.UniqueVisitors,
	)
	if err != nil {
		return nil, fmt.Errorf("Summary: totals: %w", err)
	}

	const topPagesQuery = `
SELECT path, COUNT(*) AS views
FROM page_views
WHERE created_at >= $1
GROUP BY path
ORDER BY views DESC, path ASC
LIMIT $2`
	summary.TopPages, err = repo.topCounts(ctx, topPagesQuery, since, topN)
	if err != nil {
		return nil, fmt.Errorf("Summary: top pages: %w", err)
	}

	const topReferrersQuery = `
SELECT referrer, COUNT(*) AS views
FROM page_views
WHERE created_at >= $1 AND referrer <> ''
GROUP BY referrer
ORDER BY views DESC, referrer ASC
LIMIT $2`
	summary.TopReferrers, err = repo.topCounts(ctx, topReferrersQuery, since, topN)
	if err != nil {
		return nil, fmt.Errorf("Summary: top referrers: %w", err)
	}

	return summary, nil
}

func (repo *PageViewRepo) topCounts(ctx context.Context, query string, since time.Time, topN int) ([]entity.PageCount, error) {
	rows, err := repo.db.QueryContext(ctx, query, since, topN)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	counts := make([]entity.PageCount, 0, topN)
	for rows.Next() {
		var pc entity.PageCount
		if err := rows.Scan(&pc.Value, &pc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, pc)
	}
	return counts, rows.Err()
}

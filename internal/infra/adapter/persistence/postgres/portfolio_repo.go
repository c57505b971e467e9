package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"portfolio-backend/internal/domain/entity"
	"portfolio-backend/internal/repository"
)

// uniqueViolation is the SQLSTATE code for unique constraint violations.
const uniqueViolation = "23505"

type PortfolioRepo struct{ db *sql.DB }

func NewPortfolioRepo(db *sql.DB) repository.PortfolioRepository {
	return &PortfolioRepo{db: db}
}

const portfolioColumns = `id, title, description, image_url, category, tags, project_url, featured, external_id, created_at, updated_at`

// scanPortfolioItem is a helper function to scan a portfolio item row.
func scanPortfolioItem(rows *sql.Rows) (*entity.PortfolioItem, error) {
	var item entity.PortfolioItem
	if err := rows.Scan(
		&item.ID, &item.Title, &item.Description, &item.ImageURL, &item.Category,
		pq.Array(&item.Tags), &item.ProjectURL, &item.Featured, &item.ExternalID,
		&item.CreatedAt, &item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

func (repo *PortfolioRepo) Get(ctx context.Context, id int64) (*entity.PortfolioItem, error) {
	const query = `
SELECT ` + portfolioColumns + `
FROM portfolio_items
WHERE id = $1
LIMIT 1`
	var item entity.PortfolioItem
	err := repo.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.Title, &item.Description, &item.ImageURL, &item.Category,
		pq.Array(&item.Tags), &item.ProjectURL, &item.Featured, &item.ExternalID,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &item, nil
}

func (repo *PortfolioRepo) List(ctx context.Context) ([]*entity.PortfolioItem, error) {
	const query = `
SELECT ` + portfolioColumns + `
FROM portfolio_items
ORDER BY created_at DESC, id DESC`
	return repo.list(ctx, "List", query)
}

func (repo *PortfolioRepo) ListFeatured(ctx context.Context) ([]*entity.PortfolioItem, error) {
	const query = `
SELECT ` + portfolioColumns + `
FROM portfolio_items
WHERE featured = TRUE
ORDER BY created_at DESC, id DESC`
	return repo.list(ctx, "ListFeatured", query)
}

func (repo *PortfolioRepo) ListByCategory(ctx context.Context, category string) ([]*entity.PortfolioItem, error) {
	const query = `
SELECT ` + portfolioColumns + `
FROM portfolio_items
WHERE category = $1
ORDER BY created_at DESC, id DESC`
	return repo.list(ctx, "ListByCategory", query, category)
}

func (repo *PortfolioRepo) ListSynced(ctx context.Context) ([]*entity.PortfolioItem, error) {
	const query = `
SELECT ` + portfolioColumns + `
FROM portfolio_items
WHERE external_id IS NOT NULL
ORDER BY id ASC`
	return repo.list(ctx, "ListSynced", query)
}

func (repo *PortfolioRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.PortfolioItem, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]*entity.PortfolioItem, 0, 50)
	for rows.Next() {
		item, err := scanPortfolioItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (repo *PortfolioRepo) Create(ctx context.Context, item *entity.PortfolioItem) error {
	const query = `
INSERT INTO portfolio_items (title, description, image_url, category, tags, project_url, featured, external_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, created_at, updated_at`
	err := repo.db.QueryRowContext(ctx, query,
		item.Title, item.Description, item.ImageURL, item.Category,
		pq.Array(item.Tags), item.ProjectURL, item.Featured, item.ExternalID,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return repository.ErrDuplicateExternalID
		}
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *PortfolioRepo) Update(ctx context.Context, item *entity.PortfolioItem) error {
	const query = `
UPDATE portfolio_items SET
       title       = $1,
       description = $2,
       image_url   = $3,
       category    = $4,
       tags        = $5,
       project_url = $6,
       featured    = $7,
       updated_at  = NOW()
WHERE id = $8`
	res, err := repo.db.ExecContext(ctx, query,
		item.Title, item.Description, item.ImageURL, item.Category,
		pq.Array(item.Tags), item.ProjectURL, item.Featured, item.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: no rows affected")
	}
	return nil
}

func (repo *PortfolioRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM portfolio_items WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: no rows affected")
	}
	return nil
}

func (repo *PortfolioRepo) DeleteByExternalID(ctx context.Context, externalID string) error {
	const query = `DELETE FROM portfolio_items WHERE external_id = $1`
	if _, err := repo.db.ExecContext(ctx, query, externalID); err != nil {
		return fmt.Errorf("DeleteByExternalID: %w", err)
	}
	return nil
}

func (repo *PortfolioRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM portfolio_items`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

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

type CaseStudyRepo struct{ db *sql.DB }

func NewCaseStudyRepo(db *sql.DB) repository.CaseStudyRepository {
	return &CaseStudyRepo{db: db}
}

const caseStudyColumns = `id, title, subtitle, slug, summary, content, cover_image, category, duration, tags, featured, published, published_at, created_at, updated_at`

// scanCaseStudy is a helper function to scan a case study row.
func scanCaseStudy(rows *sql.Rows) (*entity.CaseStudy, error) {
	var cs entity.CaseStudy
	if err := rows.Scan(
		&cs.ID, &cs.Title, &cs.Subtitle, &cs.Slug, &cs.Summary, &cs.Content,
		&cs.CoverImage, &cs.Category, &cs.Duration, pq.Array(&cs.Tags),
		&cs.Featured, &cs.Published, &cs.PublishedAt, &cs.CreatedAt, &cs.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &cs, nil
}

func (repo *CaseStudyRepo) Get(ctx context.Context, id int64) (*entity.CaseStudy, error) {
	const query = `
SELECT ` + caseStudyColumns + `
FROM case_studies
WHERE id = $1
LIMIT 1`
	return repo.get(ctx, "Get", query, id)
}

func (repo *CaseStudyRepo) GetBySlug(ctx context.Context, slug string) (*entity.CaseStudy, error) {
	const query = `
SELECT ` + caseStudyColumns + `
FROM case_studies
WHERE slug = $1
LIMIT 1`
	return repo.get(ctx, "GetBySlug", query, slug)
}

func (repo *CaseStudyRepo) get(ctx context.Context, op, query string, arg any) (*entity.CaseStudy, error) {
	var cs entity.CaseStudy
	err := repo.db.QueryRowContext(ctx, query, arg).Scan(
		&cs.ID, &cs.Title, &cs.Subtitle, &cs.Slug, &cs.Summary, &cs.Content,
		&cs.CoverImage, &cs.Category, &cs.Duration, pq.Array(&cs.Tags),
		&cs.Featured, &cs.Published, &cs.PublishedAt, &cs.CreatedAt, &cs.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cs, nil
}

func (repo *CaseStudyRepo) List(ctx context.Context) ([]*entity.CaseStudy, error) {
	const query = `
SELECT ` + caseStudyColumns + `
FROM case_studies
ORDER BY created_at DESC, id DESC`
	return repo.list(ctx, "List", query)
}

func (repo *CaseStudyRepo) ListPublished(ctx context.Context) ([]*entity.CaseStudy, error) {
	const query = `
SELECT ` + caseStudyColumns + `
FROM case_studies
WHERE published = TRUE
ORDER BY published_at DESC, id DESC`
	return repo.list(ctx, "ListPublished", query)
}

func (repo *CaseStudyRepo) list(ctx context.Context, op, query string) ([]*entity.CaseStudy, error) {
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	studies := make([]*entity.CaseStudy, 0, 20)
	for rows.Next() {
		cs, err := scanCaseStudy(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		studies = append(studies, cs)
	}
	return studies, rows.Err()
}

func (repo *CaseStudyRepo) Create(ctx context.Context, cs *entity.CaseStudy) error {
	const query = `
INSERT INTO case_studies (title, subtitle, slug, summary, content, cover_image, category, duration, tags, featured, published, published_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id, created_at, updated_at`
	err := repo.db.QueryRowContext(ctx, query,
		cs.Title, cs.Subtitle, cs.Slug, cs.Summary, cs.Content, cs.CoverImage,
		cs.Category, cs.Duration, pq.Array(cs.Tags), cs.Featured,
		cs.Published, cs.PublishedAt,
	).Scan(&cs.ID, &cs.CreatedAt, &cs.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return entity.ErrAlreadyExists
		}
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *CaseStudyRepo) Update(ctx context.Context, cs *entity.CaseStudy) error {
	const query = `
UPDATE case_studies SET
       title        = $1,
       subtitle     = $2,
       slug         = $3,
       summary      = $4,
       content      = $5,
       cover_image  = $6,
       category     = $7,
       duration     = $8,
       tags         = $9,
       featured     = $10,
       published    = $11,
       published_at = $12,
       updated_at   = NOW()
WHERE id = $13`
	res, err := repo.db.ExecContext(ctx, query,
		cs.Title, cs.Subtitle, cs.Slug, cs.Summary, cs.Content, cs.CoverImage,
		cs.Category, cs.Duration, pq.Array(cs.Tags), cs.Featured,
		cs.Published, cs.PublishedAt, cs.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return entity.ErrAlreadyExists
		}
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: no rows affected")
	}
	return nil
}

func (repo *CaseStudyRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM case_studies WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: no rows affected")
	}
	return nil
}

package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"portfolio-backend/internal/domain/entity"
	"portfolio-backend/internal/repository"
)

type SiteContentRepo struct{ db *sql.DB }

func NewSiteContentRepo(db *sql.DB) repository.SiteContentRepository {
	return &SiteContentRepo{db: db}
}

func (repo *SiteContentRepo) GetBySection(ctx context.Context, section string) (*entity.SiteContent, error) {
	const query = `
SELECT id, section, content, updated_at
FROM site_content
WHERE section = $1
LIMIT 1`
	var sc entity.SiteContent
	var raw []byte
	err := repo.db.QueryRowContext(ctx, query, section).Scan(
		&sc.ID, &sc.Section, &raw, &sc.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetBySection: %w", err)
	}
	sc.Content = json.RawMessage(raw)
	return &sc, nil
}

func (repo *SiteContentRepo) List(ctx context.Context) ([]*entity.SiteContent, error) {
	const query = `
SELECT id, section, content, updated_at
FROM site_content
ORDER BY section ASC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	sections := make([]*entity.SiteContent, 0, 8)
	for rows.Next() {
		var sc entity.SiteContent
		var raw []byte
		if err := rows.Scan(&sc.ID, &sc.Section, &raw, &sc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("List: %w", err)
		}
		sc.Content = json.RawMessage(raw)
		sections = append(sections, &sc)
	}
	return sections, rows.Err()
}

func (repo *SiteContentRepo) Upsert(ctx context.Context, section string, content json.RawMessage) (*entity.SiteContent, error) {
	const query = `
INSERT INTO site_content (section, content, updated_at)
VALUES ($1, $2, NOW())
ON CONFLICT (section) DO UPDATE SET
       content    = EXCLUDED.content,
       updated_at = NOW()
RETURNING id, section, content, updated_at`
	var sc entity.SiteContent
	var raw []byte
	err := repo.db.QueryRowContext(ctx, query, section, []byte(content)).Scan(
		&sc.ID, &sc.Section, &raw, &sc.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("Upsert: %w", err)
	}
	sc.Content = json.RawMessage(raw)
	return &sc, nil
}

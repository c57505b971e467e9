package repository

import (
	"context"
	"encoding/json"

	"portfolio-backend/internal/domain/entity"
)

type SiteContentRepository interface {
	// GetBySection retrieves the content block for a section name.
	GetBySection(ctx context.Context, section string) (*entity.SiteContent, error)
	List(ctx context.Context) ([]*entity.SiteContent, error)
	// Upsert creates the section if missing or replaces its content if present.
	Upsert(ctx context.Context, section string, content json.RawMessage) (*entity.SiteContent, error)
}

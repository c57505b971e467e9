package repository

import (
	"context"

	"portfolio-backend/internal/domain/entity"
)

type CaseStudyRepository interface {
	Get(ctx context.Context, id int64) (*entity.CaseStudy, error)
	// GetBySlug retrieves a case study by its URL slug regardless of
	// publication state. Callers enforce visibility.
	GetBySlug(ctx context.Context, slug string) (*entity.CaseStudy, error)
	List(ctx context.Context) ([]*entity.CaseStudy, error)
	// ListPublished retrieves published case studies ordered by published_at DESC.
	ListPublished(ctx context.Context) ([]*entity.CaseStudy, error)
	Create(ctx context.Context, cs *entity.CaseStudy) error
	Update(ctx context.Context, cs *entity.CaseStudy) error
	Delete(ctx context.Context, id int64) error
}

package repository

import (
	"context"
	"errors"

	"portfolio-backend/internal/domain/entity"
)

// ErrDuplicateExternalID indicates that an insert violated the unique
// constraint on the external showcase identifier.
var ErrDuplicateExternalID = errors.New("duplicate external id")

type PortfolioRepository interface {
	Get(ctx context.Context, id int64) (*entity.PortfolioItem, error)
	List(ctx context.Context) ([]*entity.PortfolioItem, error)
	ListFeatured(ctx context.Context) ([]*entity.PortfolioItem, error)
	ListByCategory(ctx context.Context, category string) ([]*entity.PortfolioItem, error)
	// ListSynced retrieves every item that carries an external showcase ID.
	// Manually curated items (nil external ID) are excluded.
	ListSynced(ctx context.Context) ([]*entity.PortfolioItem, error)
	Create(ctx context.Context, item *entity.PortfolioItem) error
	Update(ctx context.Context, item *entity.PortfolioItem) error
	Delete(ctx context.Context, id int64) error
	// DeleteByExternalID removes a synced item by its showcase identifier.
	// Deleting an ID that no longer exists is not an error.
	DeleteByExternalID(ctx context.Context, externalID string) error
	Count(ctx context.Context) (int64, error)
}

package portfolio

import (
	"context"
	"fmt"

	"portfolio-backend/internal/domain/entity"
	"portfolio-backend/internal/observability/metrics"
	"portfolio-backend/internal/repository"
)

// CreateInput represents the input parameters for creating a portfolio item.
// Items created through this path are manual: they never carry an external ID
// and the sync engine will not touch them.
type CreateInput struct {
	Title       string
	Description string
	ImageURL    string
	Category    string
	Tags        []string
	ProjectURL  string
	Featured    bool
}

// UpdateInput represents the input parameters for updating a portfolio item.
// Nil pointer fields are left unchanged.
type UpdateInput struct {
	ID          int64
	Title       *string
	Description *string
	ImageURL    *string
	Category    *string
	Tags        []string
	ProjectURL  *string
	Featured    *bool
}

// Service provides portfolio item management use cases.
type Service struct {
	Repo repository.PortfolioRepository
}

// List retrieves all portfolio items, newest first.
func (s *Service) List(ctx context.Context) ([]*entity.PortfolioItem, error) {
	items, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// ListFeatured retrieves only the featured items for the landing page.
func (s *Service) ListFeatured(ctx context.Context) ([]*entity.PortfolioItem, error) {
	items, err := s.Repo.ListFeatured(ctx)
	if err != nil {
		return nil, fmt.Errorf("list featured items: %w", err)
	}
	return items, nil
}

// ListByCategory retrieves items in the given category.
func (s *Service) ListByCategory(ctx context.Context, category string) ([]*entity.PortfolioItem, error) {
	items, err := s.Repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list items by category: %w", err)
	}
	return items, nil
}

// Get retrieves a single item by ID.
// Returns ErrItemNotFound if no item exists with the given ID.
func (s *Service) Get(ctx context.Context, id int64) (*entity.PortfolioItem, error) {
	if id <= 0 {
		return nil, &entity.ValidationError{Field: "id", Message: "must be positive"}
	}
	item, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// Create adds a manually curated item to the portfolio.
// Returns a ValidationError if any input field is invalid.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.PortfolioItem, error) {
	item := &entity.PortfolioItem{
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		Tags:        in.Tags,
		ProjectURL:  in.ProjectURL,
		Featured:    in.Featured,
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	s.refreshItemCount(ctx)
	return item, nil
}

// Update modifies an existing item. Works on both manual and synced items:
// an edit to a synced item sticks, because the sync engine never rewrites
// matched items.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.PortfolioItem, error) {
	if in.ID <= 0 {
		return nil, &entity.ValidationError{Field: "id", Message: "must be positive"}
	}

	item, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	if in.Title != nil {
		item.Title = *in.Title
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.ImageURL != nil {
		item.ImageURL = *in.ImageURL
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Tags != nil {
		item.Tags = in.Tags
	}
	if in.ProjectURL != nil {
		item.ProjectURL = *in.ProjectURL
	}
	if in.Featured != nil {
		item.Featured = *in.Featured
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	return item, nil
}

// Delete removes an item by its ID, synced or manual.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return &entity.ValidationError{Field: "id", Message: "must be positive"}
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	s.refreshItemCount(ctx)
	return nil
}

func (s *Service) refreshItemCount(ctx context.Context) {
	if count, err := s.Repo.Count(ctx); err == nil {
		metrics.UpdatePortfolioItemsTotal(count)
	}
}

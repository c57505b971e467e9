// Package casestudy provides use cases for long-form project writeups.
package casestudy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"portfolio-backend/internal/domain/entity"
	"portfolio-backend/internal/repository"
)

// Sentinel errors for case study use case operations.
var (
	// ErrCaseStudyNotFound indicates that the requested case study was not found.
	ErrCaseStudyNotFound = errors.New("case study not found")

	// ErrSlugTaken indicates that another case study already uses the slug.
	ErrSlugTaken = errors.New("slug already in use")
)

// CreateInput represents the input parameters for creating a case study.
type CreateInput struct {
	Title      string
	Subtitle   string
	Slug       string
	Summary    string
	Content    string
	CoverImage string
	Category   string
	Duration   string
	Tags       []string
	Featured   bool
	Published  bool
}

// UpdateInput represents the input parameters for updating a case study.
// Nil pointer fields are left unchanged.
type UpdateInput struct {
	ID         int64
	Title      *string
	Subtitle   *string
	Slug       *string
	Summary    *string
	Content    *string
	CoverImage *string
	Category   *string
	Duration   *string
	Tags       []string
	Featured   *bool
	Published  *bool
}

// Service provides case study management use cases.
type Service struct {
	Repo repository.CaseStudyRepository
}

// ListPublished retrieves published case studies for the public site.
func (s *Service) ListPublished(ctx context.Context) ([]*entity.CaseStudy, error) {
	studies, err := s.Repo.ListPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("list published case studies: %w", err)
	}
	return studies, nil
}

// List retrieves every case study including drafts, for the admin surface.
func (s *Service) List(ctx context.Context) ([]*entity.CaseStudy, error) {
	studies, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list case studies: %w", err)
	}
	return studies, nil
}

// GetPublishedBySlug retrieves a published case study by slug.
// Drafts are treated as not found so the public surface never leaks them.
func (s *Service) GetPublishedBySlug(ctx context.Context, slug string) (*entity.CaseStudy, error) {
	if err := entity.ValidateSlug(slug); err != nil {
		return nil, err
	}
	cs, err := s.Repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get case study: %w", err)
	}
	if cs == nil || !cs.Published {
		return nil, ErrCaseStudyNotFound
	}
	return cs, nil
}

// Get retrieves a case study by ID regardless of publication state.
func (s *Service) Get(ctx context.Context, id int64) (*entity.CaseStudy, error) {
	if id <= 0 {
		return nil, &entity.ValidationError{Field: "id", Message: "must be positive"}
	}
	cs, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get case study: %w", err)
	}
	if cs == nil {
		return nil, ErrCaseStudyNotFound
	}
	return cs, nil
}

// Create adds a new case study. Publishing at creation time stamps
// PublishedAt immediately.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.CaseStudy, error) {
	cs := &entity.CaseStudy{
		Title:      in.Title,
		Subtitle:   in.Subtitle,
		Slug:       in.Slug,
		Summary:    in.Summary,
		Content:    in.Content,
		CoverImage: in.CoverImage,
		Category:   in.Category,
		Duration:   in.Duration,
		Tags:       in.Tags,
		Featured:   in.Featured,
		Published:  in.Published,
	}
	if cs.Published {
		now := time.Now()
		cs.PublishedAt = &now
	}
	if err := cs.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, cs); err != nil {
		if errors.Is(err, entity.ErrAlreadyExists) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("create case study: %w", err)
	}
	return cs, nil
}

// Update modifies an existing case study. Flipping Published from false to
// true stamps PublishedAt; unpublishing clears it.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.CaseStudy, error) {
	if in.ID <= 0 {
		return nil, &entity.ValidationError{Field: "id", Message: "must be positive"}
	}

	cs, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get case study: %w", err)
	}
	if cs == nil {
		return nil, ErrCaseStudyNotFound
	}

	if in.Title != nil {
		cs.Title = *in.Title
	}
	if in.Subtitle != nil {
		cs.Subtitle = *in.Subtitle
	}
	if in.Slug != nil {
		cs.Slug = *in.Slug
	}
	if in.Summary != nil {
		cs.Summary = *in.Summary
	}
	if in.Content != nil {
		cs.Content = *in.Content
	}
	if in.CoverImage != nil {
		cs.CoverImage = *in.CoverImage
	}
	if in.Category != nil {
		cs.Category = *in.Category
	}
	if in.Duration != nil {
		cs.Duration = *in.Duration
	}
	if in.Tags != nil {
		cs.Tags = in.Tags
	}
	if in.Featured != nil {
		cs.Featured = *in.Featured
	}
	if in.Published != nil && *in.Published != cs.Published {
		cs.Published = *in.Published
		if cs.Published {
			now := time.Now()
			cs.PublishedAt = &now
		} else {
			cs.PublishedAt = nil
		}
	}

	if err := cs.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, cs); err != nil {
		if errors.Is(err, entity.ErrAlreadyExists) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("update case study: %w", err)
	}
	return cs, nil
}

// Delete removes a case study by its ID.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return &entity.ValidationError{Field: "id", Message: "must be positive"}
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete case study: %w", err)
	}
	return nil
}

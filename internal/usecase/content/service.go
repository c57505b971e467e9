// Package content provides use cases for editable site copy sections.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"portfolio-backend/internal/domain/entity"
	"portfolio-backend/internal/repository"
)

// ErrSectionNotFound indicates that the requested content section was not found.
var ErrSectionNotFound = errors.New("content section not found")

// maxContentSize bounds a section payload (64KB). Site copy is small; anything
// larger is a client bug.
const maxContentSize = 64 << 10

// Service provides site content management use cases.
type Service struct {
	Repo repository.SiteContentRepository
}

// Get retrieves a single content section.
func (s *Service) Get(ctx context.Context, section string) (*entity.SiteContent, error) {
	if section == "" {
		return nil, &entity.ValidationError{Field: "section", Message: "section is required"}
	}
	sc, err := s.Repo.GetBySection(ctx, section)
	if err != nil {
		return nil, fmt.Errorf("get section: %w", err)
	}
	if sc == nil {
		return nil, ErrSectionNotFound
	}
	return sc, nil
}

// List retrieves every content section.
func (s *Service) List(ctx context.Context) ([]*entity.SiteContent, error) {
	sections, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	return sections, nil
}

// Update replaces a section's content, creating the section if needed.
// Returns a ValidationError for missing, oversized, or malformed payloads.
func (s *Service) Update(ctx context.Context, section string, content json.RawMessage) (*entity.SiteContent, error) {
	if len(content) > maxContentSize {
		return nil, &entity.ValidationError{
			Field:   "content",
			Message: fmt.Sprintf("content must not exceed %d bytes", maxContentSize),
		}
	}
	sc := &entity.SiteContent{Section: section, Content: content}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	updated, err := s.Repo.Upsert(ctx, section, content)
	if err != nil {
		return nil, fmt.Errorf("upsert section: %w", err)
	}
	return updated, nil
}

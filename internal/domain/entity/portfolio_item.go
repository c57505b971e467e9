// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as PortfolioItem and CaseStudy, along
// with their validation rules and domain-specific errors.
package entity

import (
	"fmt"
	"time"
)

// maxTitleLength defines the maximum allowed length for item titles.
const maxTitleLength = 200

// PortfolioItem represents a single work in the portfolio gallery.
// Items synchronized from an external showcase carry a non-nil ExternalID;
// manually curated items leave it nil and are never touched by synchronization.
type PortfolioItem struct {
	ID          int64
	Title       string
	Description string
	ImageURL    string
	Category    string
	Tags        []string
	ProjectURL  string
	Featured    bool
	ExternalID  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Synced reports whether the item originates from the external showcase.
func (p *PortfolioItem) Synced() bool {
	return p.ExternalID != nil && *p.ExternalID != ""
}

// Validate validates the PortfolioItem entity fields.
// It checks that the title and image URL are present and that URLs are
// well-formed.
func (p *PortfolioItem) Validate() error {
	if p.Title == "" {
		return &ValidationError{Field: "title", Message: "title is required"}
	}
	if len(p.Title) > maxTitleLength {
		return &ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("title must not exceed %d characters", maxTitleLength),
		}
	}
	if p.ImageURL == "" {
		return &ValidationError{Field: "image_url", Message: "image_url is required"}
	}
	if err := ValidateURL(p.ImageURL); err != nil {
		return fmt.Errorf("image_url: %w", err)
	}
	if p.ProjectURL != "" {
		if err := ValidateURL(p.ProjectURL); err != nil {
			return fmt.Errorf("project_url: %w", err)
		}
	}
	return nil
}

package entity

import (
	"fmt"
	"regexp"
	"time"
)

// slugPattern restricts slugs to lowercase alphanumerics separated by hyphens.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// maxSlugLength defines the maximum allowed length for case study slugs.
const maxSlugLength = 120

// CaseStudy represents a long-form writeup of a project.
// Only published case studies are visible through the public API;
// drafts remain reachable through the admin surface.
type CaseStudy struct {
	ID          int64
	Title       string
	Subtitle    string
	Slug        string
	Summary     string
	Content     string
	CoverImage  string
	Category    string
	Duration    string
	Tags        []string
	Featured    bool
	Published   bool
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate validates the CaseStudy entity fields.
func (c *CaseStudy) Validate() error {
	if c.Title == "" {
		return &ValidationError{Field: "title", Message: "title is required"}
	}
	if len(c.Title) > maxTitleLength {
		return &ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("title must not exceed %d characters", maxTitleLength),
		}
	}
	if err := ValidateSlug(c.Slug); err != nil {
		return err
	}
	if c.CoverImage != "" {
		if err := ValidateURL(c.CoverImage); err != nil {
			return fmt.Errorf("cover_image: %w", err)
		}
	}
	return nil
}

// ValidateSlug validates a URL slug for use as a case study identifier.
func ValidateSlug(slug string) error {
	if slug == "" {
		return &ValidationError{Field: "slug", Message: "slug is required"}
	}
	if len(slug) > maxSlugLength {
		return &ValidationError{
			Field:   "slug",
			Message: fmt.Sprintf("slug must not exceed %d characters", maxSlugLength),
		}
	}
	if !slugPattern.MatchString(slug) {
		return &ValidationError{
			Field:   "slug",
			Message: "slug must contain only lowercase letters, digits, and hyphens",
		}
	}
	return nil
}

package entity

import (
	"encoding/json"
	"time"
)

// Known site content sections. Every deployment seeds these four so the
// frontend can rely on their presence.
const (
	SectionHero          = "hero"
	SectionContact       = "contact"
	SectionSocial        = "social"
	SectionMiscellaneous = "miscellaneous"
)

// DefaultSections lists the sections seeded at startup.
var DefaultSections = []string{
	SectionHero,
	SectionContact,
	SectionSocial,
	SectionMiscellaneous,
}

// SiteContent holds an editable block of site copy keyed by section name.
// The content payload is free-form JSON owned by the frontend.
type SiteContent struct {
	ID        int64
	Section   string
	Content   json.RawMessage
	UpdatedAt time.Time
}

// Validate validates the SiteContent entity fields.
func (s *SiteContent) Validate() error {
	if s.Section == "" {
		return &ValidationError{Field: "section", Message: "section is required"}
	}
	if len(s.Content) == 0 {
		return &ValidationError{Field: "content", Message: "content is required"}
	}
	if !json.Valid(s.Content) {
		return &ValidationError{Field: "content", Message: "content must be valid JSON"}
	}
	return nil
}

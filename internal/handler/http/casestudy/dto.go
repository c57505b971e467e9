// Package casestudy provides HTTP handlers for case study endpoints: the
// public published surface and the authenticated admin CRUD surface.
package casestudy

import (
	"time"

	"portfolio-backend/internal/domain/entity"
)

// DTO represents the JSON structure for case study data transfer.
type DTO struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Subtitle    string     `json:"subtitle,omitempty"`
	Slug        string     `json:"slug"`
	Summary     string     `json:"summary"`
	Content     string     `json:"content,omitempty"`
	CoverImage  string     `json:"cover_image,omitempty"`
	Category    string     `json:"category,omitempty"`
	Duration    string     `json:"duration,omitempty"`
	Tags        []string   `json:"tags"`
	Featured    bool       `json:"featured"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func toDTO(cs *entity.CaseStudy) DTO {
	return DTO{
		ID:          cs.ID,
		Title:       cs.Title,
		Subtitle:    cs.Subtitle,
		Slug:        cs.Slug,
		Summary:     cs.Summary,
		Content:     cs.Content,
		CoverImage:  cs.CoverImage,
		Category:    cs.Category,
		Duration:    cs.Duration,
		Tags:        cs.Tags,
		Featured:    cs.Featured,
		Published:   cs.Published,
		PublishedAt: cs.PublishedAt,
		CreatedAt:   cs.CreatedAt,
		UpdatedAt:   cs.UpdatedAt,
	}
}

// toListDTO omits the long-form content for list responses.
func toListDTO(cs *entity.CaseStudy) DTO {
	dto := toDTO(cs)
	dto.Content = ""
	return dto
}

func toListDTOs(studies []*entity.CaseStudy) []DTO {
	out := make([]DTO, 0, len(studies))
	for _, cs := range studies {
		out = append(out, toListDTO(cs))
	}
	return out
}

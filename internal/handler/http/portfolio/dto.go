// Package portfolio provides HTTP handlers for portfolio item endpoints:
// the public gallery surface and the authenticated admin CRUD and sync surface.
package portfolio

import (
	"time"

	"portfolio-backend/internal/domain/entity"
)

// DTO represents the JSON structure for portfolio item data transfer.
type DTO struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	ProjectURL  string    `json:"project_url,omitempty"`
	Featured    bool      `json:"featured"`
	Synced      bool      `json:"synced"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toDTO(item *entity.PortfolioItem) DTO {
	return DTO{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		ImageURL:    item.ImageURL,
		Category:    item.Category,
		Tags:        item.Tags,
		ProjectURL:  item.ProjectURL,
		Featured:    item.Featured,
		Synced:      item.Synced(),
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func toDTOs(items []*entity.PortfolioItem) []DTO {
	out := make([]DTO, 0, len(items))
	for _, item := range items {
		out = append(out, toDTO(item))
	}
	return out
}

package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPortfolioItem_Validate(t *testing.T) {
	ext := "proj-1001"

	tests := []struct {
		name    string
		item    PortfolioItem
		wantErr bool
	}{
		{
			name: "valid manual item",
			item: PortfolioItem{
				Title:    "Brand Refresh",
				ImageURL: "https://cdn.example.com/covers/brand.png",
				Category: "Branding",
			},
			wantErr: false,
		},
		{
			name: "valid synced item",
			item: PortfolioItem{
				Title:      "Type Specimen",
				ImageURL:   "https://cdn.example.com/covers/1001.png",
				ProjectURL: "https://showcase.example.com/gallery/1001",
				ExternalID: &ext,
			},
			wantErr: false,
		},
		{
			name:    "missing title",
			item:    PortfolioItem{Category: "Design"},
			wantErr: true,
		},
		{
			name:    "title too long",
			item:    PortfolioItem{Title: strings.Repeat("a", maxTitleLength+1)},
			wantErr: true,
		},
		{
			name:    "missing image URL",
			item:    PortfolioItem{Title: "No Image"},
			wantErr: true,
		},
		{
			name: "image URL with bad scheme",
			item: PortfolioItem{
				Title:    "Bad Cover",
				ImageURL: "javascript:alert(1)",
			},
			wantErr: true,
		},
		{
			name: "project URL with bad scheme",
			item: PortfolioItem{
				Title:      "Bad Link",
				ImageURL:   "https://cdn.example.com/covers/x.png",
				ProjectURL: "ftp://example.com/project",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPortfolioItem_Synced(t *testing.T) {
	ext := "proj-42"
	empty := ""

	assert.True(t, (&PortfolioItem{ExternalID: &ext}).Synced())
	assert.False(t, (&PortfolioItem{ExternalID: &empty}).Synced())
	assert.False(t, (&PortfolioItem{}).Synced())
}

package db

import (
	"database/sql"
	_ "embed"
)

//go:embed seeds/site_content.sql
var seedSiteContentSQL string

func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS portfolio_items (
    id          SERIAL PRIMARY KEY,
    title       TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    image_url   TEXT NOT NULL DEFAULT '',
    category    TEXT NOT NULL DEFAULT '',
    tags        TEXT[] NOT NULL DEFAULT '{}',
    project_url TEXT NOT NULL DEFAULT '',
    featured    BOOLEAN NOT NULL DEFAULT FALSE,
    external_id TEXT,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS case_studies (
    id           SERIAL PRIMARY KEY,
    title        TEXT NOT NULL,
    subtitle     TEXT NOT NULL DEFAULT '',
    slug         TEXT NOT NULL UNIQUE,
    summary      TEXT NOT NULL DEFAULT '',
    content      TEXT NOT NULL DEFAULT '',
    cover_image  TEXT NOT NULL DEFAULT '',
    category     TEXT NOT NULL DEFAULT '',
    duration     TEXT NOT NULL DEFAULT '',
    tags         TEXT[] NOT NULL DEFAULT '{}',
    featured     BOOLEAN NOT NULL DEFAULT FALSE,
    published    BOOLEAN NOT NULL DEFAULT FALSE,
    published_at TIMESTAMPTZ,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS site_content (
    id         SERIAL PRIMARY KEY,
    section    TEXT NOT NULL UNIQUE,
    content    JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS contact_messages (
    id         SERIAL PRIMARY KEY,
    name       TEXT NOT NULL,
    email      TEXT NOT NULL,
    subject    TEXT NOT NULL DEFAULT '',
    message    TEXT NOT NULL,
    read       BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS page_views (
    id         SERIAL PRIMARY KEY,
    path       TEXT NOT NULL,
    referrer   TEXT NOT NULL DEFAULT '',
    user_agent TEXT NOT NULL DEFAULT '',
    visitor_id TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`); err != nil {
		return err
	}

	indexes := []string{
		// Partial unique index: manually curated items carry NULL external_id
		// and must never collide with each other.
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_portfolio_items_external_id
    ON portfolio_items(external_id) WHERE external_id IS NOT NULL`,
		`CREATE INDEX IF NOT EXISTS idx_portfolio_items_featured
    ON portfolio_items(featured) WHERE featured = TRUE`,
		`CREATE INDEX IF NOT EXISTS idx_portfolio_items_category ON portfolio_items(category)`,
		`CREATE INDEX IF NOT EXISTS idx_case_studies_published
    ON case_studies(published, published_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_case_studies_featured
    ON case_studies(featured) WHERE featured = TRUE`,
		`CREATE INDEX IF NOT EXISTS idx_contact_messages_created_at
    ON contact_messages(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_page_views_created_at ON page_views(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_page_views_path ON page_views(path)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	// Seed the default site content sections (existing sections are kept).
	if _, err := db.Exec(seedSiteContentSQL); err != nil {
		return err
	}

	return nil
}

// MigrateDown rolls back the database schema.
// Use with caution: this will delete all data in the affected tables.
func MigrateDown(db *sql.DB) error {
	dropStatements := []string{
		`DROP TABLE IF EXISTS page_views`,
		`DROP TABLE IF EXISTS contact_messages`,
		`DROP TABLE IF EXISTS site_content`,
		`DROP TABLE IF EXISTS case_studies`,
		`DROP TABLE IF EXISTS portfolio_items`,
	}

	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

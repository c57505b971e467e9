// Package behance implements the external portfolio source against a
// Behance-style projects API.
package behance

import (
	"time"

	"portfolio-backend/pkg/config"
)

// Config holds the settings for the showcase API client.
type Config struct {
	// APIKey authorizes requests against the projects endpoint.
	// An empty key leaves the client unconfigured and sync becomes a no-op.
	APIKey string

	// Username selects whose projects are listed.
	Username string

	// BaseURL is the API root, overridable for tests.
	BaseURL string

	// Timeout bounds a single listing request.
	Timeout time.Duration
}

// DefaultBaseURL is the production API root.
const DefaultBaseURL = "https://api.behance.net"

// ConfigFromEnv reads client configuration from environment variables.
func ConfigFromEnv() Config {
	return Config{
		APIKey:   config.GetEnvString("BEHANCE_API_KEY", ""),
		Username: config.GetEnvString("BEHANCE_USERNAME", ""),
		BaseURL:  config.GetEnvString("BEHANCE_BASE_URL", DefaultBaseURL),
		Timeout:  config.GetEnvDuration("BEHANCE_TIMEOUT", 15*time.Second),
	}
}

package behance

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"portfolio-backend/internal/resilience/circuitbreaker"
	syncUC "portfolio-backend/internal/usecase/sync"
)

// maxResponseSize bounds the listing response body (4MB).
const maxResponseSize = 4 << 20

// Client lists a user's projects from a Behance-style API.
// It implements sync.ProjectSource.
type Client struct {
	config     Config
	httpClient *http.Client
	breaker    *circuitbreaker.CircuitBreaker
}

// NewClient creates a showcase API client from the given configuration.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					MinVersion: tls.VersionTLS12,
				},
			},
		},
		breaker: circuitbreaker.New(circuitbreaker.ShowcaseAPIConfig()),
	}
}

// Configured reports whether both the API key and username are present.
func (c *Client) Configured() bool {
	return c.config.APIKey != "" && c.config.Username != ""
}

// projectsResponse mirrors the wire format of the projects listing.
type projectsResponse struct {
	Projects []wireProject `json:"projects"`
}

type wireProject struct {
	ID          json.Number       `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Covers      map[string]string `json:"covers"`
	Tags        []string          `json:"tags"`
	Fields      []string          `json:"fields"`
	URL         string            `json:"url"`
}

// Projects fetches the full project listing for the configured user.
// Each call makes exactly one upstream request: a failed fetch surfaces
// to the caller unchanged, and recovery waits for the next sync pass.
// The circuit breaker keeps a flapping upstream from burning a request
// on every pass.
func (c *Client) Projects(ctx context.Context) ([]syncUC.Project, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetch(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.([]syncUC.Project), nil
}

func (c *Client) fetch(ctx context.Context) ([]syncUC.Project, error) {
	endpoint := fmt.Sprintf("%s/v2/users/%s/projects?api_key=%s",
		c.config.BaseURL, url.PathEscape(c.config.Username), url.QueryEscape(c.config.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch projects: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch projects: HTTP %d", resp.StatusCode)
	}

	var payload projectsResponse
	decoder := json.NewDecoder(http.MaxBytesReader(nil, resp.Body, maxResponseSize))
	if err := decoder.Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}

	projects := make([]syncUC.Project, 0, len(payload.Projects))
	for _, wp := range payload.Projects {
		projects = append(projects, syncUC.Project{
			ID:          wp.ID.String(),
			Name:        wp.Name,
			Description: wp.Description,
			CoverImage:  pickCover(wp.Covers),
			Tags:        wp.Tags,
			Fields:      wp.Fields,
			URL:         wp.URL,
		})
	}
	return projects, nil
}

// pickCover prefers the original-resolution cover, falling back to the
// largest numbered resolution.
func pickCover(covers map[string]string) string {
	if covers == nil {
		return ""
	}
	if original, ok := covers["original"]; ok && original != "" {
		return original
	}
	best, bestSize := "", -1
	for key, cover := range covers {
		if cover == "" {
			continue
		}
		size, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		if size > bestSize {
			best, bestSize = cover, size
		}
	}
	return best
}

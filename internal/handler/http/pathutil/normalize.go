package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
var pathPatterns = []*PathPattern{
	// Portfolio routes
	{Pattern: regexp.MustCompile(`^/portfolio/\d+$`), Template: "/portfolio/:id"},
	{Pattern: regexp.MustCompile(`^/admin/portfolio/\d+$`), Template: "/admin/portfolio/:id"},

	// Case study routes
	{Pattern: regexp.MustCompile(`^/case-studies/[a-z0-9-]+$`), Template: "/case-studies/:slug"},
	{Pattern: regexp.MustCompile(`^/admin/case-studies/\d+$`), Template: "/admin/case-studies/:id"},

	// Site content routes
	{Pattern: regexp.MustCompile(`^/content/[a-z]+$`), Template: "/content/:section"},
	{Pattern: regexp.MustCompile(`^/admin/content/[a-z]+$`), Template: "/admin/content/:section"},

	// Contact inbox routes
	{Pattern: regexp.MustCompile(`^/admin/messages/\d+$`), Template: "/admin/messages/:id"},
	{Pattern: regexp.MustCompile(`^/admin/messages/\d+/read$`), Template: "/admin/messages/:id/read"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label
// cardinality explosion. Paths with IDs or slugs are converted to template
// form (e.g. /portfolio/123 -> /portfolio/:id); static paths pass through.
func NormalizePath(path string) string {
	// Strip query parameters if present
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// Strip trailing slash if present (except for root path)
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	return path
}

package entity

import "time"

// PageView records a single visit to a page for the analytics summary.
// VisitorID is an opaque client-generated token used to estimate unique
// visitors; it never identifies a person.
type PageView struct {
	ID        int64
	Path      string
	Referrer  string
	UserAgent string
	VisitorID string
	CreatedAt time.Time
}

// Validate validates the PageView entity fields.
func (v *PageView) Validate() error {
	if v.Path == "" {
		return &ValidationError{Field: "path", Message: "path is required"}
	}
	if v.Path[0] != '/' {
		return &ValidationError{Field: "path", Message: "path must start with /"}
	}
	return nil
}

// AnalyticsSummary aggregates page views over a reporting window.
type AnalyticsSummary struct {
	TotalViews     int64
	UniqueVisitors int64
	TopPages       []PageCount
	TopReferrers   []PageCount
}

// PageCount pairs a path or referrer with its view count.
type PageCount struct {
	Value string
	Count int64
}

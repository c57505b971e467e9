// Package portfolio provides use cases for managing portfolio items.
// It implements business logic for curating the gallery by hand alongside
// items owned by the external sync engine.
package portfolio

import "errors"

// Sentinel errors for portfolio use case operations.
var (
	// ErrItemNotFound indicates that the requested portfolio item was not found.
	ErrItemNotFound = errors.New("portfolio item not found")
)

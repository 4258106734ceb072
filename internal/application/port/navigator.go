// Package port defines the interfaces the use cases depend on and the
// infrastructure layer implements.
package port

import "context"

// NavigationResult reports whether a destination could be opened.
// Failures are values, never panics or Go errors.
type NavigationResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Navigator opens a destination URL in a new browsing context.
type Navigator interface {
	Open(ctx context.Context, url string) NavigationResult
}

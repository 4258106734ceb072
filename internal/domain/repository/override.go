// Package repository defines persistence interfaces for the domain.
package repository

import "context"

// OverrideRepository stores the user's shortcut overrides as a single
// token to template mapping.
type OverrideRepository interface {
	// GetOverrides returns the stored mapping. An empty store yields an
	// empty, non-nil map.
	GetOverrides(ctx context.Context) (map[string]string, error)

	// SetOverrides replaces the whole mapping.
	SetOverrides(ctx context.Context, overrides map[string]string) error
}

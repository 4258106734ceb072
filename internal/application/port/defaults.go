package port

import "context"

// DefaultsSource provides the packaged token to template mapping.
type DefaultsSource interface {
	// Defaults returns the packaged shortcuts. Implementations cache the
	// result for the process lifetime; the returned map is a copy.
	Defaults(ctx context.Context) (map[string]string, error)
}

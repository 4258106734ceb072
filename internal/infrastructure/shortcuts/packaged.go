// Package shortcuts provides the packaged shortcut definitions shipped
// with the binary.
package shortcuts

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/bnema/bangsearch/internal/application/port"
	"github.com/bnema/bangsearch/internal/domain/bang"
	"github.com/bnema/bangsearch/internal/logging"
)

//go:embed shortcuts.json
var packaged []byte

// Packaged returns the embedded definition file.
func Packaged() []byte {
	out := make([]byte, len(packaged))
	copy(out, packaged)
	return out
}

// Source reads the packaged definitions, or an alternative file when a
// path is configured. A successful parse is cached for the lifetime of
// the Source; failures are retried on the next call.
type Source struct {
	path string

	mu     sync.Mutex
	cached map[string]string
}

var _ port.DefaultsSource = (*Source)(nil)

// NewSource creates a source. An empty path selects the embedded file.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Defaults implements port.DefaultsSource.
func (s *Source) Defaults(ctx context.Context) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil {
		return copyMap(s.cached), nil
	}

	data := packaged
	origin := "embedded"
	if s.path != "" {
		b, err := os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("read packaged shortcuts %s: %w", s.path, err)
		}
		data = b
		origin = s.path
	}

	parsed, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse packaged shortcuts (%s): %w", origin, err)
	}

	logging.FromContext(ctx).Debug().
		Str("origin", origin).
		Int("count", len(parsed)).
		Msg("packaged shortcuts loaded")

	s.cached = parsed
	return copyMap(parsed), nil
}

// Parse decodes a JSON object of token to template. Tokens are
// normalized; entries with an empty token or template are dropped.
func Parse(data []byte) (map[string]string, error) {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	out := make(map[string]string, len(raw))
	for token, template := range raw {
		token = bang.NormalizeToken(token)
		if token == "" || template == "" {
			continue
		}
		out[token] = template
	}
	return out, nil
}

func copyMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

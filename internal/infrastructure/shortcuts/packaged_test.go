package shortcuts

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bangsearch/internal/domain/validation"
)

func TestSource_Embedded(t *testing.T) {
	src := NewSource("")

	got, err := src.Defaults(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "https://en.wikipedia.org/wiki/Special:Search?search=%s", got["!w"])

	for token, template := range got {
		assert.Empty(t, validation.ValidateShortcut(token, template), token)
	}
}

func TestSource_ReturnsCopies(t *testing.T) {
	src := NewSource("")

	first, err := src.Defaults(context.Background())
	require.NoError(t, err)
	first["!w"] = "mutated"
	delete(first, "!g")

	second, err := src.Defaults(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second["!w"])
	assert.Contains(t, second, "!g")
}

func TestSource_FileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shortcuts.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"x": "https://x.example/?q=", "!y": "", "": "https://z.example/"}`), 0o600))

	got, err := NewSource(path).Defaults(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"!x": "https://x.example/?q="}, got)
}

func TestSource_FailureIsNotCached(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shortcuts.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))

	src := NewSource(path)
	_, err := src.Defaults(context.Background())
	require.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{"!ok": "https://ok.example/?q="}`), 0o600))
	got, err := src.Defaults(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"!ok": "https://ok.example/?q="}, got)

	// Cached now: later edits are not picked up.
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o600))
	got, err = src.Defaults(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSource_MissingFile(t *testing.T) {
	_, err := NewSource(filepath.Join(t.TempDir(), "nope.json")).Defaults(context.Background())
	require.Error(t, err)
}

func TestPackaged_ReturnsCopy(t *testing.T) {
	b := Packaged()
	b[0] = 'x'
	assert.Equal(t, byte('{'), Packaged()[0])
}

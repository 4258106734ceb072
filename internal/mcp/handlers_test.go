package mcp

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bangsearch/internal/application/usecase"
	"github.com/bnema/bangsearch/internal/domain/bang"
)

type staticTables struct{ table *bang.Table }

func (s staticTables) Current() *bang.Table { return s.table }

type memoryOverrides struct {
	mu sync.Mutex
	m  map[string]string
}

func (r *memoryOverrides) GetOverrides(context.Context) (map[string]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]string, len(r.m))
	for k, v := range r.m {
		out[k] = v
	}
	return out, nil
}

func (r *memoryOverrides) SetOverrides(_ context.Context, m map[string]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m = m
	return nil
}

func createTestHandlers(fallback string) (*Handlers, *memoryOverrides) {
	tables := staticTables{table: bang.NewTable(map[string]string{
		"!w":  "https://en.wikipedia.org/wiki/Special:Search?search=%s",
		"!gh": "https://github.com/search?q=%s",
		"!g":  "https://www.google.com/search?q=%s",
	})}
	repo := &memoryOverrides{m: map[string]string{}}
	search := usecase.NewSearchShortcutsUseCase(tables, usecase.WithFallbackEngine(fallback))
	return NewHandlers(search, usecase.NewManageOverridesUseCase(repo, nil)), repo
}

func getTextFromResult(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	if tc, ok := result.Content[0].(*mcp.TextContent); ok {
		return tc.Text
	}
	return ""
}

func TestBangResolve(t *testing.T) {
	h, _ := createTestHandlers("")

	res, _, err := h.BangResolve(context.Background(), nil, ResolveArgs{Query: "!gh cobra cli"})
	require.NoError(t, err)
	text := getTextFromResult(res)
	assert.Contains(t, text, "token: !gh")
	assert.Contains(t, text, "url: https://github.com/search?q=cobra%20cli")
}

func TestBangResolve_Selection(t *testing.T) {
	h, _ := createTestHandlers("")

	res, _, err := h.BangResolve(context.Background(), nil, ResolveArgs{Query: "!w\n  golang\tgenerics", Selection: true})
	require.NoError(t, err)
	assert.Contains(t, getTextFromResult(res), "url: https://en.wikipedia.org/wiki/Special:Search?search=golang%20generics")
}

func TestBangResolve_NoMatch(t *testing.T) {
	h, _ := createTestHandlers("")
	res, _, err := h.BangResolve(context.Background(), nil, ResolveArgs{Query: "!zz term"})
	require.NoError(t, err)
	assert.Contains(t, getTextFromResult(res), "No shortcut matched")

	h, _ = createTestHandlers("https://duckduckgo.com/?q=%s")
	res, _, err = h.BangResolve(context.Background(), nil, ResolveArgs{Query: "plain words"})
	require.NoError(t, err)
	assert.Contains(t, getTextFromResult(res), "url: https://duckduckgo.com/?q=plain%20words")
}

func TestBangResolve_EmptyQuery(t *testing.T) {
	h, _ := createTestHandlers("")
	_, _, err := h.BangResolve(context.Background(), nil, ResolveArgs{Query: "  "})
	assert.Error(t, err)
}

func TestBangList(t *testing.T) {
	h, _ := createTestHandlers("")

	res, _, err := h.BangList(context.Background(), nil, ListArgs{})
	require.NoError(t, err)
	text := getTextFromResult(res)
	assert.True(t, strings.HasPrefix(text, "3 shortcuts:"), text)

	res, _, err = h.BangList(context.Background(), nil, ListArgs{Prefix: "!gh"})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(getTextFromResult(res)), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.True(t, strings.HasPrefix(lines[2], "!gh\t"), lines[2])

	res, _, err = h.BangList(context.Background(), nil, ListArgs{Prefix: "!nothing"})
	require.NoError(t, err)
	assert.Contains(t, getTextFromResult(res), "No shortcuts match")
}

func TestBangAdd(t *testing.T) {
	h, repo := createTestHandlers("")

	res, _, err := h.BangAdd(context.Background(), nil, AddArgs{Token: "pkg", Template: "https://pkg.go.dev/search?q=%s"})
	require.NoError(t, err)
	assert.Equal(t, "Saved !pkg -> https://pkg.go.dev/search?q=%s", getTextFromResult(res))
	assert.Equal(t, "https://pkg.go.dev/search?q=%s", repo.m["!pkg"])

	_, _, err = h.BangAdd(context.Background(), nil, AddArgs{Token: "bad", Template: "not a url"})
	assert.ErrorIs(t, err, usecase.ErrInvalidShortcut)
}

func TestNewServer(t *testing.T) {
	h, _ := createTestHandlers("")
	assert.NotNil(t, NewServer(h, "test"))
}

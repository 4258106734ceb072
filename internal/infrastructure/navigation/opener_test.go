package navigation

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func requireCommand(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available", name)
	}
}

func TestOpener_Success(t *testing.T) {
	requireCommand(t, "true")

	res := NewOpener("true", nil).Open(context.Background(), "https://example.com/?q=go")
	assert.True(t, res.Success)
	assert.Empty(t, res.Error)
}

func TestOpener_CommandFails(t *testing.T) {
	requireCommand(t, "false")

	res := NewOpener("false", nil).Open(context.Background(), "https://example.com/")
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "open false")
}

func TestOpener_CommandMissing(t *testing.T) {
	res := NewOpener("bangsearch-definitely-missing-opener", nil).Open(context.Background(), "https://example.com/")
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "not found")
}

func TestOpener_RejectsSchemes(t *testing.T) {
	o := NewOpener("true", []string{"https"})

	cases := map[string]string{
		"javascript:alert(1)":   "scheme \"javascript\" is not allowed",
		"http://example.com/":   "scheme \"http\" is not allowed",
		"file:///etc/passwd":    "scheme \"file\" is not allowed",
		"no-scheme/example.com": "invalid url",
	}
	for raw, want := range cases {
		res := o.Open(context.Background(), raw)
		assert.False(t, res.Success, raw)
		assert.Contains(t, res.Error, want, raw)
	}
}

func TestNewOpener_Defaults(t *testing.T) {
	o := NewOpener("", nil)
	assert.NotEmpty(t, o.command)
	assert.Contains(t, o.allowed, "http")
	assert.Contains(t, o.allowed, "https")

	o = NewOpener("firefox --new-tab", []string{" HTTPS ", ""})
	assert.Equal(t, []string{"firefox", "--new-tab"}, o.command)
	assert.Len(t, o.allowed, 1)
	assert.Contains(t, o.allowed, "https")
}

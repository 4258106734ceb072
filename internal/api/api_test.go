package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bangsearch/internal/api"
	"github.com/bnema/bangsearch/internal/application/port"
	"github.com/bnema/bangsearch/internal/application/usecase"
	"github.com/bnema/bangsearch/internal/domain/bang"
	"github.com/bnema/bangsearch/internal/infrastructure/notify"
	"github.com/bnema/bangsearch/internal/infrastructure/shortcuts"
	"github.com/bnema/bangsearch/internal/logging"
)

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
	r.m = make(map[string]string, len(m))
	for k, v := range m {
		r.m[k] = v
	}
	return nil
}

type recordingNavigator struct {
	mu     sync.Mutex
	opened []string
}

func (n *recordingNavigator) Open(_ context.Context, url string) port.NavigationResult {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.opened = append(n.opened, url)
	return port.NavigationResult{Success: true}
}

type testEnv struct {
	srv    *httptest.Server
	hub    *notify.Hub
	loader *usecase.ShortcutTableLoader
	nav    *recordingNavigator
}

func newTestEnv(t *testing.T, fallback string) *testEnv {
	t.Helper()

	logger := logging.NewFromConfigValues("debug", "console")
	ctx, cancel := context.WithCancel(logging.WithContext(context.Background(), logger))

	hub := notify.NewHub(0)
	repo := &memoryOverrides{m: map[string]string{"!x": "https://x.example/?q="}}
	loader := usecase.NewShortcutTableLoader(shortcuts.NewSource(""), repo)
	loader.Load(ctx)

	updates, unsubscribe := hub.Subscribe()
	listening := make(chan struct{})
	go func() {
		defer close(listening)
		loader.Listen(ctx, updates)
	}()

	nav := &recordingNavigator{}
	search := usecase.NewSearchShortcutsUseCase(loader,
		usecase.WithNavigator(nav),
		usecase.WithFallbackEngine(fallback),
	)

	srv := httptest.NewServer(api.RegisterRoutes(api.Deps{
		Search:    search,
		Overrides: usecase.NewManageOverridesUseCase(repo, hub),
		Tables:    loader,
		Events:    hub,
		BaseURL:   "http://bang.test",
		Logger:    logger,
	}))

	t.Cleanup(func() {
		srv.Close()
		unsubscribe()
		cancel()
		hub.Close()
		<-listening
	})

	return &testEnv{srv: srv, hub: hub, loader: loader, nav: nav}
}

var noRedirect = &http.Client{
	CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
}

func doJSON(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestSearch_RedirectsOnMatch(t *testing.T) {
	env := newTestEnv(t, "")

	resp, err := noRedirect.Get(env.srv.URL + "/search?q=" + "%21w+hello+world")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "https://en.wikipedia.org/wiki/Special:Search?search=hello%20world", resp.Header.Get("Location"))
}

func TestSearch_FallbackEngine(t *testing.T) {
	env := newTestEnv(t, "https://duckduckgo.com/?q=%s")

	resp, err := noRedirect.Get(env.srv.URL + "/search?q=golang+generics")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "https://duckduckgo.com/?q=golang%20generics", resp.Header.Get("Location"))
}

func TestSearch_NoMatchWithoutFallback(t *testing.T) {
	env := newTestEnv(t, "")

	resp, err := noRedirect.Get(env.srv.URL + "/search?q=%21w")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp2, err := noRedirect.Get(env.srv.URL + "/search")
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp2.StatusCode)
}

func TestResolve(t *testing.T) {
	env := newTestEnv(t, "")

	resp, err := http.Get(env.srv.URL + "/api/resolve?q=%21gh%20bangsearch")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got bang.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.True(t, got.Matched)
	assert.Equal(t, "!gh", got.Token)
	assert.Equal(t, "bangsearch", got.Term)
	assert.Equal(t, "https://github.com/search?q=bangsearch", got.URL)
}

func TestSuggest(t *testing.T) {
	env := newTestEnv(t, "")

	resp, err := http.Get(env.srv.URL + "/api/suggest?q=%21gh")
	require.NoError(t, err)
	defer resp.Body.Close()

	var got []usecase.BangSuggestion
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.NotEmpty(t, got)
	assert.Equal(t, "!gh", got[0].Token)
}

func TestOverrides_AddReloadsTable(t *testing.T) {
	env := newTestEnv(t, "")

	resp := doJSON(t, http.MethodPost, env.srv.URL+"/api/overrides", `{"token":"pkg","template":"https://pkg.go.dev/search?q=%s"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var sc bang.Shortcut
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sc))
	assert.Equal(t, "!pkg", sc.Token)

	require.Eventually(t, func() bool {
		_, ok := env.loader.Current().Lookup("!pkg")
		return ok
	}, 2*time.Second, 10*time.Millisecond)

	listResp, err := http.Get(env.srv.URL + "/api/shortcuts")
	require.NoError(t, err)
	defer listResp.Body.Close()
	var entries []bang.Shortcut
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&entries))
	assert.Contains(t, entries, bang.Shortcut{Token: "!pkg", Template: "https://pkg.go.dev/search?q=%s"})
}

func TestOverrides_Errors(t *testing.T) {
	env := newTestEnv(t, "")

	resp := doJSON(t, http.MethodPost, env.srv.URL+"/api/overrides", `{"token":"!","template":"https://a.example/"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, env.srv.URL+"/api/overrides", `{not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, http.MethodDelete, env.srv.URL+"/api/overrides/!missing", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, http.MethodPut, env.srv.URL+"/api/overrides", `{"!ok":"https://ok.example/?q=","!bad":""}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestOverrides_ReplaceAndDelete(t *testing.T) {
	env := newTestEnv(t, "")

	resp := doJSON(t, http.MethodPut, env.srv.URL+"/api/overrides", `{"a":"https://a.example/?q=","!b":"https://b.example/{q}"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodDelete, env.srv.URL+"/api/overrides/%21a", "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	getResp, err := http.Get(env.srv.URL + "/api/overrides")
	require.NoError(t, err)
	defer getResp.Body.Close()
	var got map[string]string
	require.NoError(t, json.NewDecoder(getResp.Body).Decode(&got))
	assert.Equal(t, map[string]string{"!b": "https://b.example/{q}"}, got)
}

func TestOpen(t *testing.T) {
	env := newTestEnv(t, "")

	resp := doJSON(t, http.MethodPost, env.srv.URL+"/api/open", `{"query":"!w go"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, true, got["success"])

	resp = doJSON(t, http.MethodPost, env.srv.URL+"/api/open", `{"url":"https://example.com/"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, env.srv.URL+"/api/open", `{"query":"nothing here"}`)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, false, got["success"])

	resp = doJSON(t, http.MethodPost, env.srv.URL+"/api/open", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	env.nav.mu.Lock()
	defer env.nav.mu.Unlock()
	assert.Equal(t, []string{"https://en.wikipedia.org/wiki/Special:Search?search=go", "https://example.com/"}, env.nav.opened)
}

func TestEvents_ReceivesUpdate(t *testing.T) {
	env := newTestEnv(t, "")

	wsURL := "ws" + strings.TrimPrefix(env.srv.URL, "http") + "/api/events"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// The loader listener plus this client.
	require.Eventually(t, func() bool { return env.hub.Len() == 2 }, 2*time.Second, 10*time.Millisecond)

	resp := doJSON(t, http.MethodPost, env.srv.URL+"/api/overrides", `{"token":"!ev","template":"https://ev.example/?q="}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg struct {
		Action string `json:"action"`
	}
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, port.ActionShortcutsUpdated, msg.Action)
}

func TestOpenSearchAndHealth(t *testing.T) {
	env := newTestEnv(t, "")

	resp, err := http.Get(env.srv.URL + "/opensearch.xml")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, resp.Header.Get("Content-Type"), "opensearchdescription+xml")
	assert.Contains(t, string(body), `template="http://bang.test/search?q={searchTerms}"`)

	health, err := http.Get(env.srv.URL + "/healthz")
	require.NoError(t, err)
	defer health.Body.Close()
	b, _ := io.ReadAll(health.Body)
	assert.Equal(t, "ok", string(b))

	stats, err := http.Get(env.srv.URL + "/api/stats")
	require.NoError(t, err)
	defer stats.Body.Close()
	assert.Equal(t, http.StatusNotFound, stats.StatusCode)
}

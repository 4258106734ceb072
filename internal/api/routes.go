// Package api serves the bang redirect endpoint and the JSON/websocket
// API used by browser integrations.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/bnema/bangsearch/internal/application/port"
	"github.com/bnema/bangsearch/internal/application/usecase"
)

// Deps are the collaborators the handlers need. Events may be nil, which
// disables /api/events.
type Deps struct {
	Search    *usecase.SearchShortcutsUseCase
	Overrides *usecase.ManageOverridesUseCase
	Tables    usecase.TableProvider
	Events    port.UpdateSubscriber
	BaseURL   string
	Logger    zerolog.Logger
}

type handler struct {
	search    *usecase.SearchShortcutsUseCase
	overrides *usecase.ManageOverridesUseCase
	tables    usecase.TableProvider
	events    port.UpdateSubscriber
	baseURL   string
}

// RegisterRoutes builds the HTTP handler.
func RegisterRoutes(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(deps.Logger))
	r.Use(middleware.Recoverer)

	h := &handler{
		search:    deps.Search,
		overrides: deps.Overrides,
		tables:    deps.Tables,
		events:    deps.Events,
		baseURL:   deps.BaseURL,
	}

	r.Get("/search", h.redirect)
	r.Get("/opensearch.xml", h.openSearch)
	r.Get("/healthz", h.healthz)

	r.Route("/api", func(r chi.Router) {
		r.Get("/resolve", h.resolve)
		r.Get("/suggest", h.suggest)
		r.Get("/shortcuts", h.listShortcuts)
		r.Get("/stats", h.stats)

		r.Get("/overrides", h.getOverrides)
		r.Put("/overrides", h.putOverrides)
		r.Post("/overrides", h.addOverride)
		r.Delete("/overrides/{token}", h.deleteOverride)

		r.Post("/open", h.open)
		r.Get("/events", h.handleEvents)
	})

	return r
}

func (h *handler) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

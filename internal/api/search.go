package api

import (
	"encoding/xml"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/bnema/bangsearch/internal/application/usecase"
	"github.com/bnema/bangsearch/internal/domain/bang"
	"github.com/bnema/bangsearch/internal/logging"
)

type resolveResponse struct {
	bang.Result
	FallbackURL string `json:"fallback_url,omitempty"`
}

// redirect is the search-engine endpoint: /search?q=!w+term.
func (h *handler) redirect(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if strings.TrimSpace(query) == "" {
		http.Error(w, "missing q parameter", http.StatusBadRequest)
		return
	}

	out := h.search.Resolve(r.Context(), usecase.ResolveInput{Query: query})
	switch {
	case out.Result.Matched:
		http.Redirect(w, r, out.Result.URL, http.StatusFound)
	case out.FallbackURL != "":
		http.Redirect(w, r, out.FallbackURL, http.StatusFound)
	default:
		http.Error(w, "no shortcut matches this query", http.StatusNotFound)
	}
}

func (h *handler) resolve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	selection, _ := strconv.ParseBool(q.Get("selection"))

	out := h.search.Resolve(r.Context(), usecase.ResolveInput{Query: q.Get("q"), Selection: selection})
	writeJSON(w, http.StatusOK, resolveResponse{Result: out.Result, FallbackURL: out.FallbackURL})
}

func (h *handler) suggest(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		query = bang.Prefix
	}
	out := h.search.FilterBangs(r.Context(), usecase.FilterBangsInput{Query: query})
	writeJSON(w, http.StatusOK, out.Suggestions)
}

func (h *handler) listShortcuts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.tables.Current().Entries())
}

func (h *handler) stats(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	stats, err := h.search.Stats(r.Context(), limit)
	if errors.Is(err, usecase.ErrStatsDisabled) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		logging.FromContext(r.Context()).Error().Err(err).Msg("failed to list stats")
		writeError(w, http.StatusInternalServerError, "failed to list stats")
		return
	}
	if stats == nil {
		writeJSON(w, http.StatusOK, []any{})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

type openRequest struct {
	URL   string `json:"url"`
	Query string `json:"query"`
}

type openResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// open mirrors the extension's openSearch message: it always answers
// with {success, error}.
func (h *handler) open(w http.ResponseWriter, r *http.Request) {
	var req openRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch {
	case req.URL != "":
		res := h.search.OpenURL(r.Context(), req.URL)
		writeJSON(w, http.StatusOK, openResponse{Success: res.Success, Error: res.Error})
	case req.Query != "":
		out := h.search.Open(r.Context(), usecase.OpenInput{Query: req.Query})
		if !out.Attempted {
			writeJSON(w, http.StatusOK, openResponse{Error: "no shortcut matches this query"})
			return
		}
		writeJSON(w, http.StatusOK, openResponse{Success: out.Navigation.Success, Error: out.Navigation.Error})
	default:
		writeError(w, http.StatusBadRequest, "url or query is required")
	}
}

type openSearchURL struct {
	Type     string `xml:"type,attr"`
	Method   string `xml:"method,attr"`
	Template string `xml:"template,attr"`
}

type openSearchDescription struct {
	XMLName       xml.Name        `xml:"OpenSearchDescription"`
	Xmlns         string          `xml:"xmlns,attr"`
	ShortName     string          `xml:"ShortName"`
	Description   string          `xml:"Description"`
	InputEncoding string          `xml:"InputEncoding"`
	URLs          []openSearchURL `xml:"Url"`
}

// openSearch lets browsers register the service as a search engine.
func (h *handler) openSearch(w http.ResponseWriter, _ *http.Request) {
	desc := openSearchDescription{
		Xmlns:         "http://a9.com/-/spec/opensearch/1.1/",
		ShortName:     "bangsearch",
		Description:   "Bang shortcuts: !w term, !gh term, ...",
		InputEncoding: "UTF-8",
		URLs: []openSearchURL{
			{Type: "text/html", Method: "get", Template: h.baseURL + "/search?q={searchTerms}"},
			{Type: "application/x-suggestions+json", Method: "get", Template: h.baseURL + "/api/suggest?q={searchTerms}"},
		},
	}

	w.Header().Set("Content-Type", "application/opensearchdescription+xml")
	_, _ = w.Write([]byte(xml.Header))
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	_ = enc.Encode(desc)
}

package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/bnema/bangsearch/internal/application/port"
	"github.com/bnema/bangsearch/internal/domain/bang"
	"github.com/bnema/bangsearch/internal/domain/entity"
	"github.com/bnema/bangsearch/internal/domain/repository"
	"github.com/bnema/bangsearch/internal/logging"
)

// TableProvider exposes the current shortcut table.
type TableProvider interface {
	Current() *bang.Table
}

// BangSuggestion represents a configured bang shortcut for display.
type BangSuggestion struct {
	Token    string `json:"token"`
	Template string `json:"template"`
}

// SearchShortcutsUseCase resolves raw input against the current table and
// hands matches to the navigation collaborator.
type SearchShortcutsUseCase struct {
	tables    TableProvider
	lookups   repository.LookupRepository
	navigator port.Navigator
	fallback  atomic.Pointer[string]
	now       func() time.Time
}

// SearchShortcutsOption configures optional collaborators.
type SearchShortcutsOption func(*SearchShortcutsUseCase)

// WithLookupRepository records lookup outcomes.
func WithLookupRepository(repo repository.LookupRepository) SearchShortcutsOption {
	return func(uc *SearchShortcutsUseCase) { uc.lookups = repo }
}

// WithNavigator sets the collaborator used by Open.
func WithNavigator(nav port.Navigator) SearchShortcutsOption {
	return func(uc *SearchShortcutsUseCase) { uc.navigator = nav }
}

// WithFallbackEngine sets the template used when nothing matches.
func WithFallbackEngine(template string) SearchShortcutsOption {
	return func(uc *SearchShortcutsUseCase) { uc.SetFallbackEngine(template) }
}

// NewSearchShortcutsUseCase creates a new search shortcuts use case.
func NewSearchShortcutsUseCase(tables TableProvider, opts ...SearchShortcutsOption) *SearchShortcutsUseCase {
	uc := &SearchShortcutsUseCase{
		tables: tables,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// SetFallbackEngine swaps the fallback template. Safe to call while
// queries are being resolved; an empty template disables the fallback.
func (uc *SearchShortcutsUseCase) SetFallbackEngine(template string) {
	template = strings.TrimSpace(template)
	uc.fallback.Store(&template)
}

// FallbackEngine returns the current fallback template.
func (uc *SearchShortcutsUseCase) FallbackEngine() string {
	if p := uc.fallback.Load(); p != nil {
		return *p
	}
	return ""
}

// ResolveInput contains the raw text to resolve.
type ResolveInput struct {
	Query string
	// Selection resolves the text like a selected passage: split on any
	// whitespace, first field must be an exact token.
	Selection bool
}

// ResolveOutput contains the match and, when nothing matched and a
// fallback engine is configured, the fallback destination.
type ResolveOutput struct {
	Result      bang.Result
	FallbackURL string
}

// Resolve matches the query against the current table.
func (uc *SearchShortcutsUseCase) Resolve(ctx context.Context, input ResolveInput) *ResolveOutput {
	log := logging.FromContext(ctx)
	table := uc.tables.Current()

	var result bang.Result
	if input.Selection {
		result = bang.MatchSelection(input.Query, table)
	} else {
		result = bang.Match(input.Query, table)
	}

	output := &ResolveOutput{Result: result}
	if fallback := uc.FallbackEngine(); !result.Matched && fallback != "" {
		if query := strings.TrimSpace(input.Query); query != "" {
			output.FallbackURL = bang.BuildURL(fallback, query)
		}
	}

	uc.record(ctx, input.Query, output)

	log.Debug().
		Str("query", input.Query).
		Bool("matched", result.Matched).
		Str("token", result.Token).
		Msg("resolved query")

	return output
}

// OpenInput contains the raw text to resolve and open.
type OpenInput struct {
	Query     string
	Selection bool
}

// OpenOutput reports the match and the navigation outcome. Navigation is
// only attempted for matches; Attempted is false otherwise.
type OpenOutput struct {
	Result     bang.Result
	Attempted  bool
	Navigation port.NavigationResult
}

// Open resolves the query and opens the destination in a new context.
func (uc *SearchShortcutsUseCase) Open(ctx context.Context, input OpenInput) *OpenOutput {
	log := logging.FromContext(ctx)

	resolved := uc.Resolve(ctx, ResolveInput{Query: input.Query, Selection: input.Selection})
	output := &OpenOutput{Result: resolved.Result}
	if !resolved.Result.Matched {
		return output
	}

	output.Attempted = true
	if uc.navigator == nil {
		output.Navigation = port.NavigationResult{Error: "no navigator configured"}
		return output
	}

	output.Navigation = uc.navigator.Open(ctx, resolved.Result.URL)
	if !output.Navigation.Success {
		log.Warn().
			Str("url", resolved.Result.URL).
			Str("error", output.Navigation.Error).
			Msg("failed to open destination")
	}
	return output
}

// OpenURL hands an already resolved destination to the navigator.
func (uc *SearchShortcutsUseCase) OpenURL(ctx context.Context, rawURL string) port.NavigationResult {
	if strings.TrimSpace(rawURL) == "" {
		return port.NavigationResult{Error: "empty url"}
	}
	if uc.navigator == nil {
		return port.NavigationResult{Error: "no navigator configured"}
	}
	return uc.navigator.Open(ctx, rawURL)
}

// FilterBangsInput contains parameters for filtering bang suggestions.
type FilterBangsInput struct {
	Query string // e.g., "!" or "!g" or "!g query"
}

// FilterBangsOutput contains filtered bang suggestions.
type FilterBangsOutput struct {
	Suggestions []BangSuggestion
}

// FilterBangs returns shortcuts whose token matches the typed prefix.
// Exact prefix matches come first in token order, then fuzzy matches by
// rank distance.
func (uc *SearchShortcutsUseCase) FilterBangs(ctx context.Context, input FilterBangsInput) *FilterBangsOutput {
	log := logging.FromContext(ctx)

	suggestions := buildBangSuggestions(uc.tables.Current(), input.Query)

	log.Debug().
		Str("query", input.Query).
		Int("matches", len(suggestions)).
		Msg("filtered bang suggestions")

	return &FilterBangsOutput{Suggestions: suggestions}
}

// DetectBangInput contains the text typed so far.
type DetectBangInput struct {
	Query string
}

// DetectBangOutput contains the detected token, empty if none.
type DetectBangOutput struct {
	Token    string
	Template string
}

// DetectBang reports whether the input already starts with a complete
// token followed by a space.
func (uc *SearchShortcutsUseCase) DetectBang(_ context.Context, input DetectBangInput) *DetectBangOutput {
	table := uc.tables.Current()
	token, ok := bang.HasBang(input.Query, table)
	if !ok {
		return &DetectBangOutput{}
	}
	template, _ := table.Lookup(token)
	return &DetectBangOutput{Token: token, Template: template}
}

// Stats returns recorded lookup counts, most used first. limit <= 0
// returns everything.
func (uc *SearchShortcutsUseCase) Stats(ctx context.Context, limit int) ([]*entity.LookupStat, error) {
	if uc.lookups == nil {
		return nil, ErrStatsDisabled
	}
	stats, err := uc.lookups.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list lookup stats: %w", err)
	}
	return stats, nil
}

func (uc *SearchShortcutsUseCase) record(ctx context.Context, query string, output *ResolveOutput) {
	if uc.lookups == nil {
		return
	}

	var token string
	var outcome entity.LookupOutcome
	switch {
	case output.Result.Matched:
		token, outcome = output.Result.Token, entity.OutcomeResolved
	default:
		fields := strings.Fields(query)
		if len(fields) == 0 || !strings.HasPrefix(fields[0], bang.Prefix) {
			return
		}
		token, outcome = fields[0], entity.OutcomeNotFound
		if output.FallbackURL != "" {
			outcome = entity.OutcomeFallback
		}
	}

	if err := uc.lookups.Record(ctx, token, outcome, uc.now()); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("token", token).Msg("failed to record lookup")
	}
}

type rankedSuggestion struct {
	BangSuggestion
	prefix   bool
	distance int
}

func buildBangSuggestions(table *bang.Table, query string) []BangSuggestion {
	prefix := strings.TrimSpace(query)
	if idx := strings.Index(prefix, " "); idx >= 0 {
		prefix = prefix[:idx]
	}
	prefix = strings.ToLower(prefix)

	ranked := make([]rankedSuggestion, 0, table.Len())
	for _, sc := range table.Entries() {
		token := strings.ToLower(sc.Token)
		distance := fuzzy.RankMatchNormalizedFold(prefix, token)
		if distance < 0 {
			continue
		}
		ranked = append(ranked, rankedSuggestion{
			BangSuggestion: BangSuggestion{Token: sc.Token, Template: sc.Template},
			prefix:         strings.HasPrefix(token, prefix),
			distance:       distance,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].prefix != ranked[j].prefix {
			return ranked[i].prefix
		}
		if !ranked[i].prefix && ranked[i].distance != ranked[j].distance {
			return ranked[i].distance < ranked[j].distance
		}
		return strings.ToLower(ranked[i].Token) < strings.ToLower(ranked[j].Token)
	})

	out := make([]BangSuggestion, len(ranked))
	for i, r := range ranked {
		out[i] = r.BangSuggestion
	}
	return out
}

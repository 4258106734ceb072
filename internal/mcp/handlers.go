// Package mcp exposes bang resolution as MCP tools so assistants can turn
// "!w term" style queries into URLs.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/bnema/bangsearch/internal/application/usecase"
	"github.com/bnema/bangsearch/internal/domain/bang"
	"github.com/bnema/bangsearch/internal/logging"
)

// ResolveArgs defines the arguments for the bang_resolve tool.
type ResolveArgs struct {
	Query     string `json:"query" jsonschema_description:"Query starting with a bang token (e.g. '!w golang')"`
	Selection bool   `json:"selection,omitempty" jsonschema_description:"Treat the query as selected text: any whitespace may separate the token and the term"`
}

// ListArgs defines the arguments for the bang_list tool.
type ListArgs struct {
	Prefix string `json:"prefix,omitempty" jsonschema_description:"Optional token prefix used to filter and rank shortcuts (e.g. '!g')"`
}

// AddArgs defines the arguments for the bang_add tool.
type AddArgs struct {
	Token    string `json:"token" jsonschema_description:"Bang token, with or without the leading '!'"`
	Template string `json:"template" jsonschema_description:"URL template: '%s' or '{q}' placeholder, or a URL ending in '='"`
}

// Handlers wraps the search and override use cases.
type Handlers struct {
	search    *usecase.SearchShortcutsUseCase
	overrides *usecase.ManageOverridesUseCase
}

// NewHandlers creates handlers. overrides may be nil, which makes bang_add
// fail.
func NewHandlers(search *usecase.SearchShortcutsUseCase, overrides *usecase.ManageOverridesUseCase) *Handlers {
	return &Handlers{search: search, overrides: overrides}
}

func textResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
	}
}

// BangResolve handles the bang_resolve tool call.
func (h *Handlers) BangResolve(ctx context.Context, req *mcp.CallToolRequest, args ResolveArgs) (*mcp.CallToolResult, any, error) {
	log := logging.FromContext(ctx)

	query := strings.TrimSpace(args.Query)
	if query == "" {
		log.Error().Msg("bang_resolve: query is required")
		return nil, nil, fmt.Errorf("query is required")
	}

	out := h.search.Resolve(ctx, usecase.ResolveInput{Query: query, Selection: args.Selection})
	log.Debug().
		Str("query", query).
		Bool("matched", out.Result.Matched).
		Msg("bang_resolve")

	switch {
	case out.Result.Matched:
		return textResult(fmt.Sprintf("token: %s\nterm: %s\nurl: %s\n", out.Result.Token, out.Result.Term, out.Result.URL)), nil, nil
	case out.FallbackURL != "":
		return textResult(fmt.Sprintf("No shortcut matched. Fallback search:\n\nurl: %s\n", out.FallbackURL)), nil, nil
	default:
		return textResult("No shortcut matched. Use bang_list to see available tokens."), nil, nil
	}
}

// BangList handles the bang_list tool call.
func (h *Handlers) BangList(ctx context.Context, req *mcp.CallToolRequest, args ListArgs) (*mcp.CallToolResult, any, error) {
	prefix := strings.TrimSpace(args.Prefix)
	if prefix == "" {
		prefix = bang.Prefix
	}

	out := h.search.FilterBangs(ctx, usecase.FilterBangsInput{Query: prefix})
	if len(out.Suggestions) == 0 {
		return textResult(fmt.Sprintf("No shortcuts match %q", prefix)), nil, nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d shortcuts:\n\n", len(out.Suggestions))
	for _, s := range out.Suggestions {
		fmt.Fprintf(&sb, "%s\t%s\n", s.Token, s.Template)
	}
	return textResult(sb.String()), nil, nil
}

// BangAdd handles the bang_add tool call.
func (h *Handlers) BangAdd(ctx context.Context, req *mcp.CallToolRequest, args AddArgs) (*mcp.CallToolResult, any, error) {
	if h.overrides == nil {
		return nil, nil, fmt.Errorf("custom shortcuts are not available")
	}

	sc, err := h.overrides.Add(ctx, usecase.AddShortcutInput{Token: args.Token, Template: args.Template})
	if err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("bang_add: failed")
		return nil, nil, err
	}
	return textResult(fmt.Sprintf("Saved %s -> %s", sc.Token, sc.Template)), nil, nil
}

// NewServer builds an MCP server with every bang tool registered.
func NewServer(h *Handlers, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "bangsearch",
		Version: version,
	}, &mcp.ServerOptions{
		Instructions: "Resolve bang shortcuts such as '!w term' into search URLs. " +
			"Call bang_list to discover tokens, bang_resolve to build a URL.",
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "bang_resolve",
		Description: "Resolve a bang query (e.g. '!gh cobra') into the destination URL",
	}, h.BangResolve)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "bang_list",
		Description: "List available bang shortcuts, optionally filtered by a token prefix",
	}, h.BangList)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "bang_add",
		Description: "Save a custom bang shortcut. Custom shortcuts override packaged ones",
	}, h.BangAdd)

	return server
}

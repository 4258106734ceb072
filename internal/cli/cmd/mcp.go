package cmd

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	bangmcp "github.com/bnema/bangsearch/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve bang tools over MCP (stdio)",
	Long: `Run an MCP server on stdin/stdout exposing bang_resolve, bang_list and
bang_add. Logs go to stderr.

Example client configuration:

  {"command": "bangsearch", "args": ["mcp"]}`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	ctx := app.Ctx()
	table := app.LoadShortcuts()

	// Picks up shortcuts added through bang_add.
	updates, unsubscribe := app.Hub.Subscribe()
	defer unsubscribe()
	go app.Loader.Listen(ctx, updates)

	server := bangmcp.NewServer(bangmcp.NewHandlers(app.SearchUC, app.OverridesUC), app.BuildInfo.Version)

	app.Logger.Info().Int("shortcuts", table.Len()).Msg("mcp server ready")
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}

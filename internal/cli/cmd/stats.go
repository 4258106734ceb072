package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/bangsearch/internal/application/usecase"
	"github.com/bnema/bangsearch/internal/cli/styles"
)

var (
	statsJSON  bool
	statsLimit int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show how often each bang was used",
	Long: `Show lookup statistics: for every bang typed, how often it resolved, fell
back to the default search engine, or matched nothing.

Recording is controlled by search.record_stats.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "print as JSON")
	statsCmd.Flags().IntVarP(&statsLimit, "limit", "n", 20, "maximum rows (0 = all)")
}

func runStats(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	stats, err := app.SearchUC.Stats(app.Ctx(), statsLimit)
	if errors.Is(err, usecase.ErrStatsDisabled) {
		return fmt.Errorf("%w: enable search.record_stats in %s", err, app.ConfigManager.GetConfigFile())
	}
	if err != nil {
		return err
	}

	if statsJSON {
		if stats == nil {
			return printJSON(cmd.OutOrStdout(), []any{})
		}
		return printJSON(cmd.OutOrStdout(), stats)
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewStatsRenderer(app.Theme).Render(stats))
	return nil
}

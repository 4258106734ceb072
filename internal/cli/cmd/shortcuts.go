package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/bangsearch/internal/application/usecase"
	"github.com/bnema/bangsearch/internal/cli/styles"
	"github.com/bnema/bangsearch/internal/domain/bang"
	"github.com/bnema/bangsearch/internal/infrastructure/shortcuts"
)

var (
	shortcutsJSON    bool
	shortcutsCustom  bool
	shortcutsReplace bool
)

var shortcutsCmd = &cobra.Command{
	Use:     "shortcuts",
	Aliases: []string{"sc"},
	Short:   "List and edit bang shortcuts",
	Long: `Manage bang shortcuts.

Custom shortcuts are stored in the database and take precedence over the
packaged ones with the same token. Every change is picked up by a running
'bangsearch serve'.`,
}

var shortcutsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List shortcuts sorted by token",
	Args:    cobra.NoArgs,
	RunE:    runShortcutsList,
}

var shortcutsAddCmd = &cobra.Command{
	Use:   "add <token> <template>",
	Short: "Add or replace a custom shortcut",
	Long: `Add or replace a custom shortcut. The "!" prefix is optional.

The template receives the encoded search term in place of "%s" or "{q}";
a template ending in "=" gets the term appended.

Examples:
  bangsearch shortcuts add gh 'https://github.com/search?q=%s'
  bangsearch shortcuts add '!pkg' 'https://pkg.go.dev/search?q='`,
	Args: cobra.ExactArgs(2),
	RunE: runShortcutsAdd,
}

var shortcutsRmCmd = &cobra.Command{
	Use:     "rm <token>",
	Aliases: []string{"remove", "delete"},
	Short:   "Delete a custom shortcut",
	Args:    cobra.ExactArgs(1),
	RunE:    runShortcutsRm,
}

var shortcutsImportCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import custom shortcuts from a JSON object",
	Long: `Import custom shortcuts from a JSON file mapping tokens to templates,
the same format as the packaged shortcuts.json:

  {"!w": "https://en.wikipedia.org/wiki/Special:Search?search=%s"}

Entries are merged into the existing custom shortcuts unless --replace is
given. Nothing is written if any entry is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: runShortcutsImport,
}

var shortcutsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print custom shortcuts as JSON",
	Args:  cobra.NoArgs,
	RunE:  runShortcutsExport,
}

func init() {
	rootCmd.AddCommand(shortcutsCmd)
	shortcutsCmd.AddCommand(shortcutsListCmd, shortcutsAddCmd, shortcutsRmCmd, shortcutsImportCmd, shortcutsExportCmd)

	shortcutsListCmd.Flags().BoolVar(&shortcutsJSON, "json", false, "print as JSON")
	shortcutsListCmd.Flags().BoolVar(&shortcutsCustom, "custom", false, "only list custom shortcuts")
	shortcutsImportCmd.Flags().BoolVar(&shortcutsReplace, "replace", false, "replace all custom shortcuts instead of merging")
}

func runShortcutsList(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()

	custom, err := app.OverridesUC.Get(ctx)
	if err != nil {
		return err
	}

	entries := app.LoadShortcuts().Entries()
	if shortcutsCustom {
		entries, err = app.OverridesUC.List(ctx)
		if err != nil {
			return err
		}
	}

	if shortcutsJSON {
		return printJSON(cmd.OutOrStdout(), entries)
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewShortcutsRenderer(app.Theme).RenderList(entries, custom))
	return nil
}

func runShortcutsAdd(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	sc, err := app.OverridesUC.Add(app.Ctx(), usecase.AddShortcutInput{Token: args[0], Template: args[1]})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewShortcutsRenderer(app.Theme).RenderSaved(*sc))
	return nil
}

func runShortcutsRm(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	if err := app.OverridesUC.Delete(app.Ctx(), args[0]); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewShortcutsRenderer(app.Theme).RenderRemoved(bang.NormalizeToken(args[0])))
	return nil
}

func runShortcutsImport(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}
	entries, err := shortcuts.Parse(data)
	if err != nil {
		return fmt.Errorf("parse %s: %w", args[0], err)
	}

	merge := !shortcutsReplace
	if _, err := app.OverridesUC.Replace(app.Ctx(), usecase.ReplaceInput{Shortcuts: entries, Merge: merge}); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewShortcutsRenderer(app.Theme).RenderImported(len(entries), merge))
	return nil
}

func runShortcutsExport(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	custom, err := app.OverridesUC.Get(app.Ctx())
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), custom)
}

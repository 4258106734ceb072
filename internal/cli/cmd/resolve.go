package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/bangsearch/internal/application/usecase"
	"github.com/bnema/bangsearch/internal/cli/styles"
	"github.com/bnema/bangsearch/internal/domain/bang"
)

// maxSelectionBytes caps what open reads from stdin.
const maxSelectionBytes = 64 << 10

var errNoMatch = errors.New("no shortcut matches")

var (
	resolveJSON      bool
	resolveSelection bool
	openSelection    bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <text...>",
	Short: "Print the destination URL for a bang query",
	Long: `Resolve a bang query and print the destination URL.

When nothing matches and search.fallback_engine is set, the fallback
search URL is printed instead.

Examples:
  bangsearch resolve '!w moon landing'
  bangsearch resolve --json '!gh cobra'
  bangsearch resolve --selection "$(wl-paste -p)"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

var openCmd = &cobra.Command{
	Use:   "open [text...]",
	Short: "Resolve a bang query and open it in the browser",
	Long: `Resolve a bang query and open the destination with the configured
navigation command (xdg-open by default).

Without arguments the text is read from stdin and treated as a selection:
any whitespace may separate the token and the term, e.g.

  wl-paste -p | bangsearch open`,
	RunE: runOpen,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(openCmd)
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "print the full result as JSON")
	resolveCmd.Flags().BoolVar(&resolveSelection, "selection", false, "treat the text as a selection")
	openCmd.Flags().BoolVar(&openSelection, "selection", false, "treat arguments as a selection (implied for stdin)")
}

type resolveJSONOutput struct {
	bang.Result
	FallbackURL string `json:"fallback_url,omitempty"`
}

func runResolve(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	app.LoadShortcuts()

	query := strings.Join(args, " ")
	out := app.SearchUC.Resolve(app.Ctx(), usecase.ResolveInput{Query: query, Selection: resolveSelection})

	w := cmd.OutOrStdout()
	if resolveJSON {
		if err := printJSON(w, resolveJSONOutput{Result: out.Result, FallbackURL: out.FallbackURL}); err != nil {
			return err
		}
		if !out.Result.Matched && out.FallbackURL == "" {
			return errNoMatch
		}
		return nil
	}

	switch {
	case out.Result.Matched:
		fmt.Fprintln(w, out.Result.URL)
	case out.FallbackURL != "":
		fmt.Fprintln(w, out.FallbackURL)
	default:
		fmt.Fprintln(cmd.ErrOrStderr(), styles.NewShortcutsRenderer(app.Theme).RenderNoMatch(query))
		return errNoMatch
	}
	return nil
}

func runOpen(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	query, selection, err := readQuery(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("nothing to open")
	}

	app.LoadShortcuts()
	out := app.SearchUC.Open(app.Ctx(), usecase.OpenInput{Query: query, Selection: selection || openSelection})
	renderer := styles.NewShortcutsRenderer(app.Theme)

	if !out.Attempted {
		fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderNoMatch(strings.TrimSpace(query)))
		return errNoMatch
	}
	if !out.Navigation.Success {
		return fmt.Errorf("open %s: %s", out.Result.URL, out.Navigation.Error)
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderResolved(out.Result))
	return nil
}

// readQuery joins args, or reads stdin when there are none. Stdin input
// is a selection.
func readQuery(args []string, stdin io.Reader) (string, bool, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), false, nil
	}
	if stdin == nil {
		return "", false, nil
	}

	data, err := io.ReadAll(io.LimitReader(stdin, maxSelectionBytes))
	if err != nil {
		return "", false, fmt.Errorf("read stdin: %w", err)
	}
	return string(data), true, nil
}

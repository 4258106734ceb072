package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/bangsearch/internal/cli/model"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Edit custom shortcuts in an interactive UI",
	Long: `Open the interactive shortcut editor.

Custom shortcuts are listed sorted by token. Press a to add one (the "!"
prefix is added for you), x to delete the selected one.`,
	Args: cobra.NoArgs,
	RunE: runSettings,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}

func runSettings(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	m := model.NewSettingsModel(app.Ctx(), app.Theme, app.OverridesUC)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("settings UI: %w", err)
	}
	return nil
}

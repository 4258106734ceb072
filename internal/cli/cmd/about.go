package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/bangsearch/internal/cli/styles"
	"github.com/bnema/bangsearch/internal/infrastructure/persistence/sqlite"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Long:  `Display version, build info, file locations and the database schema version.`,
	Args:  cobra.NoArgs,
	RunE:  runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()

	info := styles.AboutInfo{
		Build:          app.BuildInfo,
		ConfigFile:     app.ConfigManager.GetConfigFile(),
		DatabaseFile:   app.Config.Database.Path,
		ShortcutsCount: app.LoadShortcuts().Len(),
	}

	db, err := app.DB.DB(ctx)
	if err != nil {
		app.Logger.Debug().Err(err).Msg("database unavailable")
	} else if version, err := sqlite.GetMigrationStatus(ctx, db); err == nil {
		info.SchemaVersion = version
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewAboutRenderer(app.Theme).Render(info))
	return nil
}

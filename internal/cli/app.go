// Package cli wires the bangsearch dependencies for the Cobra commands.
package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/bangsearch/internal/application/usecase"
	"github.com/bnema/bangsearch/internal/cli/styles"
	"github.com/bnema/bangsearch/internal/domain/bang"
	"github.com/bnema/bangsearch/internal/domain/build"
	"github.com/bnema/bangsearch/internal/domain/repository"
	"github.com/bnema/bangsearch/internal/infrastructure/config"
	"github.com/bnema/bangsearch/internal/infrastructure/navigation"
	"github.com/bnema/bangsearch/internal/infrastructure/notify"
	"github.com/bnema/bangsearch/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/bangsearch/internal/infrastructure/shortcuts"
	"github.com/bnema/bangsearch/internal/logging"
)

// Options are the global flags that influence wiring.
type Options struct {
	ConfigFile string
	LogLevel   string
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info
	Logger        zerolog.Logger

	DB        *sqlite.LazyDB
	Overrides repository.OverrideRepository
	Lookups   repository.LookupRepository
	Defaults  *shortcuts.Source
	Hub       *notify.Hub
	Navigator *navigation.Opener

	// Use cases
	Loader      *usecase.ShortcutTableLoader
	SearchUC    *usecase.SearchShortcutsUseCase
	OverridesUC *usecase.ManageOverridesUseCase

	// Context with logger
	ctx context.Context
}

// NewApp loads the configuration and builds every dependency. The
// database is opened lazily on first use.
func NewApp(opts Options) (*App, error) {
	var mgrOpts []config.ManagerOption
	if opts.ConfigFile != "" {
		mgrOpts = append(mgrOpts, config.WithConfigFile(opts.ConfigFile))
	}

	mgr, err := config.NewManager(mgrOpts...)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logLevel := cfg.Logging.Level
	if opts.LogLevel != "" {
		logLevel = opts.LogLevel
	}
	logger := logging.NewFromConfigValues(logLevel, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)

	db := sqlite.NewLazyDB(cfg.Database.Path)
	overrides := sqlite.NewLazyOverrideRepository(db)
	lookups := sqlite.NewLazyLookupRepository(db)
	defaults := shortcuts.NewSource(cfg.Shortcuts.PackagedFile)
	hub := notify.NewHub(0)
	opener := navigation.NewOpener(cfg.Navigation.Command, cfg.Navigation.AllowedSchemes)

	loader := usecase.NewShortcutTableLoader(defaults, overrides)

	searchOpts := []usecase.SearchShortcutsOption{
		usecase.WithNavigator(opener),
		usecase.WithFallbackEngine(cfg.Search.FallbackEngine),
	}
	if cfg.Search.RecordStats {
		searchOpts = append(searchOpts, usecase.WithLookupRepository(lookups))
	}

	logger.Debug().
		Str("config", mgr.GetConfigFile()).
		Str("db_path", cfg.Database.Path).
		Msg("app initialized")

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(cfg),
		Logger:        logger,
		DB:            db,
		Overrides:     overrides,
		Lookups:       lookups,
		Defaults:      defaults,
		Hub:           hub,
		Navigator:     opener,
		Loader:        loader,
		SearchUC:      usecase.NewSearchShortcutsUseCase(loader, searchOpts...),
		OverridesUC:   usecase.NewManageOverridesUseCase(overrides, hub),
		ctx:           ctx,
	}, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// WithContext returns a copy of parent carrying the app logger.
func (a *App) WithContext(parent context.Context) context.Context {
	return logging.WithContext(parent, a.Logger)
}

// LoadShortcuts builds the merged table. Commands that resolve input call
// it once before use.
func (a *App) LoadShortcuts() *bang.Table {
	return a.Loader.Load(a.ctx)
}

// Close releases all resources.
func (a *App) Close() error {
	if a.Hub != nil {
		a.Hub.Close()
	}
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/bangsearch/internal/api"
	"github.com/bnema/bangsearch/internal/infrastructure/config"
	"github.com/bnema/bangsearch/internal/logging"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the redirect service and API",
	Long: `Serve the bang redirect endpoint (/search?q=...), the JSON and websocket
API used by browser integrations, and /opensearch.xml so browsers can add
bangsearch as a search engine.

The shortcut table is reloaded whenever custom shortcuts change, and the
config file is watched for changes to search.fallback_engine.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server.listen_addr)")
}

func runServe(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithComponent(ctx, "serve")
	log := logging.FromContext(ctx)

	cfg := app.Config
	addr := cfg.Server.ListenAddr
	if serveAddr != "" {
		addr = serveAddr
	}
	baseURL := cfg.Server.ResolvedBaseURL()
	if cfg.Server.BaseURL == "" {
		baseURL = "http://" + addr
	}

	table := app.Loader.Load(ctx)
	log.Info().Int("shortcuts", table.Len()).Msg("shortcut table ready")

	updates, unsubscribe := app.Hub.Subscribe()
	defer unsubscribe()

	if err := app.ConfigManager.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watcher unavailable, changes need a restart")
	}
	app.ConfigManager.OnConfigChange(func(next *config.Config) {
		if next.Search.FallbackEngine != app.SearchUC.FallbackEngine() {
			app.SearchUC.SetFallbackEngine(next.Search.FallbackEngine)
			log.Info().Str("fallback_engine", next.Search.FallbackEngine).Msg("fallback engine updated")
		}
	})

	srv := &http.Server{
		Addr: addr,
		Handler: api.RegisterRoutes(api.Deps{
			Search:    app.SearchUC,
			Overrides: app.OverridesUC,
			Tables:    app.Loader,
			Events:    app.Hub,
			BaseURL:   baseURL,
			Logger:    app.Logger,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.Loader.Listen(gctx, updates)
		return nil
	})

	g.Go(func() error {
		log.Info().Str("addr", addr).Str("base_url", baseURL).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		timeout := time.Duration(cfg.Server.ShutdownTimeoutSec) * time.Second
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
		defer cancel()

		log.Info().Dur("timeout", timeout).Msg("shutting down")
		// Closing the hub ends websocket streams so Shutdown does not wait on them.
		app.Hub.Close()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

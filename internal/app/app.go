// Package app wires configuration, logging, the lexicon store, the
// scansion engine, and the HTTP server together.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tariquesani/aruuz-nigar/internal/adapter/postgres"
	"github.com/tariquesani/aruuz-nigar/internal/adapter/sqlite"
	"github.com/tariquesani/aruuz-nigar/internal/config"
	"github.com/tariquesani/aruuz-nigar/internal/domain"
	"github.com/tariquesani/aruuz-nigar/internal/lexicon"
	"github.com/tariquesani/aruuz-nigar/internal/meter"
	"github.com/tariquesani/aruuz-nigar/internal/scan"
	"github.com/tariquesani/aruuz-nigar/internal/transport/middleware"
	"github.com/tariquesani/aruuz-nigar/internal/transport/rest"
)

// Run is the application entry point: it loads configuration, validates
// the meter catalogue, opens the lexicon store, and serves HTTP until the
// process receives SIGINT/SIGTERM.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	// A corrupt catalogue is fatal: nothing downstream can work.
	if err := meter.Validate(); err != nil {
		return fmt.Errorf("meter catalogue self-check: %w", err)
	}

	logger.Info("starting aruuz-nigar",
		slog.String("version", BuildVersion()),
		slog.String("lexicon_driver", cfg.Lexicon.Driver),
		slog.String("log_level", cfg.Log.Level),
	)

	lookup, err := OpenLexicon(ctx, cfg)
	if err != nil {
		// The engine stays useful on heuristics alone.
		logger.Warn("lexicon store unavailable, continuing with heuristics only",
			slog.String("error", err.Error()))
		lookup = nil
	}
	if lookup != nil {
		defer lookup.Close()
	}

	engine := scan.New(lookup, cfg.Engine.NodeBudget, logger)

	mux := http.NewServeMux()
	scanHandler := rest.NewScanHandler(engine, logger)
	healthHandler := rest.NewHealthHandler(lookup, BuildVersion())
	mux.HandleFunc("POST /scan", scanHandler.Scan)
	mux.HandleFunc("GET /heartbeat", healthHandler.Heartbeat)
	mux.HandleFunc("GET /health", healthHandler.Health)

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RatePerMinute),
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      chain(mux),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-stop.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()
	return srv.Shutdown(shutdownCtx)
}

// OpenLexicon opens the configured lexicon store. Driver "none" returns
// a nil store without error.
func OpenLexicon(ctx context.Context, cfg *config.Config) (lexicon.Lookup, error) {
	switch cfg.Lexicon.Driver {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrLexiconUnavailable, err)
		}
		return postgres.NewLexiconRepo(pool), nil
	case "sqlite":
		repo, err := sqlite.Open(cfg.Lexicon.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrLexiconUnavailable, err)
		}
		return repo, nil
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown lexicon driver %q", cfg.Lexicon.Driver)
	}
}

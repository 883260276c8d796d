// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/petitions-service/internal/adapters/http"
	"github.com/jsamuelsen11/petitions-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/petitions-service/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/petitions-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/petitions-service/internal/adapters/notifier"
	"github.com/jsamuelsen11/petitions-service/internal/adapters/scheduler"
	"github.com/jsamuelsen11/petitions-service/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/petitions-service/internal/adapters/storage/postgres"
	"github.com/jsamuelsen11/petitions-service/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/petitions-service/internal/app"
	"github.com/jsamuelsen11/petitions-service/internal/platform/config"
	"github.com/jsamuelsen11/petitions-service/internal/platform/health"
	"github.com/jsamuelsen11/petitions-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/petitions-service/internal/platform/logging"
	"github.com/jsamuelsen11/petitions-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/petitions-service/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	storeOpenTimeout      = 30 * time.Second
	constituencyService   = "constituency-api"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr,
		slog.String("service", cfg.Telemetry.ServiceName),
	)

	ctx := context.Background()
	otel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	store, err := openStore(ctx, cfg.Storage)
	if err != nil {
		_ = otel.Shutdown(ctx)
		return fmt.Errorf("opening %s store: %w", cfg.Storage.Driver, err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("store close error", slog.Any("error", err))
		}
	}()
	logger.Info("store ready",
		slog.String("driver", cfg.Storage.Driver),
		slog.String("dsn", cfg.Storage.RedactedDSN()),
	)

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)
	do.ProvideValue[ports.Store](injector, store)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(store)
	if cfg.Constituency.Enabled {
		registry.Register(do.MustInvoke[*acl.ConstituencyClient](injector))
	}

	// Closing job.
	var jobs *scheduler.Scheduler
	if cfg.Jobs.Enabled {
		jobs = do.MustInvoke[*scheduler.Scheduler](injector)
		if err := jobs.Start(ctx); err != nil {
			return fmt.Errorf("starting scheduler: %w", err)
		}
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	if jobs != nil {
		if err := jobs.Stop(shutdownCtx); err != nil {
			logger.Error("scheduler shutdown error", slog.Any("error", err))
		}
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// openStore connects the configured petition store. SQLite migrates on
// open; PostgreSQL is migrated here.
func openStore(ctx context.Context, cfg config.StorageConfig) (ports.Store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		store, err := sqlite.New(sqlite.DefaultConfig(), sqlite.WithDSN(cfg.DSN))
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.DriverPostgres:
		ctx, cancel := context.WithTimeout(ctx, storeOpenTimeout)
		defer cancel()

		poolCfg := postgres.DefaultPoolConfig(cfg.DSN)
		poolCfg.MaxConns = int32(min(cfg.MaxConns, 1<<15)) //nolint:gosec // bounded above
		pool, err := postgres.NewPool(ctx, poolCfg)
		if err != nil {
			return nil, err
		}
		store := postgres.New(pool, cfg.Schema)
		if err := store.Migrate(ctx); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		return store, nil
	default:
		return memory.New(), nil
	}
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*acl.ConstituencyClient, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		client := httpclient.New(&cfg.Constituency, constituencyService,
			httpclient.WithMetrics(metrics),
			httpclient.WithLogger(logger),
		)
		return acl.NewConstituencyClient(client, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.Notifier, error) {
		return notifier.NewLogNotifier(logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.PetitionService, error) {
		store := do.MustInvoke[ports.Store](i)
		opts := []app.Option{
			app.WithSettings(app.Settings{
				MaxSponsors:      cfg.Petitions.MaxSponsors,
				SponsorThreshold: cfg.Petitions.SponsorThreshold,
				Duration:         cfg.Petitions.Duration,
				CloseWorkers:     cfg.Jobs.Workers,
			}),
			app.WithMetrics(do.MustInvoke[*telemetry.Metrics](i)),
		}
		if cfg.Constituency.Enabled {
			opts = append(opts, app.WithConstituencyClient(do.MustInvoke[*acl.ConstituencyClient](i)))
		}
		return app.NewPetitionService(store, store, do.MustInvoke[ports.Notifier](i), logger, opts...), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.PetitionService, error) {
		return do.MustInvoke[*app.PetitionService](i), nil
	})

	do.Provide(injector, func(i do.Injector) (*scheduler.Scheduler, error) {
		svc := do.MustInvoke[*app.PetitionService](i)
		return scheduler.New(svc, cfg.Jobs.CloseSchedule, logger)
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.PetitionHandler, error) {
		svc := do.MustInvoke[ports.PetitionService](i)
		return handlers.NewPetitionHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		petitionH := do.MustInvoke[*handlers.PetitionHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(petitionH, healthH, middleware.Stack(middleware.StackConfig{
			Logger:         logger,
			Metrics:        metrics,
			RequestTimeout: cfg.Server.RequestTimeout,
		})...), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

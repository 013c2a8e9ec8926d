// Package main is the entry point for the numerology HTTP service.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen/numerology-service/internal/adapters/auth"
	"github.com/jsamuelsen/numerology-service/internal/adapters/flags"
	"github.com/jsamuelsen/numerology-service/internal/adapters/http"
	"github.com/jsamuelsen/numerology-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/numerology-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/numerology-service/internal/adapters/reports/filestore"
	"github.com/jsamuelsen/numerology-service/internal/adapters/reports/janitor"
	"github.com/jsamuelsen/numerology-service/internal/adapters/reports/pdf"
	"github.com/jsamuelsen/numerology-service/internal/adapters/storage/sqlstore"
	"github.com/jsamuelsen/numerology-service/internal/app"
	"github.com/jsamuelsen/numerology-service/internal/platform/config"
	"github.com/jsamuelsen/numerology-service/internal/platform/logging"
	"github.com/jsamuelsen/numerology-service/internal/platform/metrics"
	"github.com/jsamuelsen/numerology-service/internal/platform/telemetry"
	"github.com/jsamuelsen/numerology-service/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Local secrets live in .env; real environments set variables directly.
	if err := config.LoadEnvFile(".env"); err != nil {
		return err
	}

	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 4. Telemetry (no-op when disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if err := telProvider.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	// 5. Metrics on a private registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	// 6. Storage
	db, err := sqlstore.Open(ctx, sqlstore.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if cfg.Database.Migrate {
		if err := sqlstore.Migrate(db, logger); err != nil {
			return fmt.Errorf("migrating database: %w", err)
		}
	}

	readings := sqlstore.NewReadingRepository(db)
	users := sqlstore.NewUserRepository(db)

	store, err := filestore.New(cfg.Reports.Dir)
	if err != nil {
		return fmt.Errorf("opening report store: %w", err)
	}

	// 7. Health checks
	healthRegistry := ports.NewHealthRegistry(ports.WithCheckTimeout(cfg.Server.RequestTimeout))
	for _, checker := range []ports.HealthChecker{db, store} {
		if err := healthRegistry.Register(checker); err != nil {
			return fmt.Errorf("registering health check: %w", err)
		}
	}

	// 8. Auth adapters
	tokens, err := auth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	if err != nil {
		return fmt.Errorf("creating token issuer: %w", err)
	}

	// 9. Application services
	reportService := app.NewReportService(app.ReportServiceConfig{
		Renderer: pdf.New(pdf.WithAuthor(cfg.App.Name)),
		Store:    store,
		Readings: readings,
		Metrics:  m,
		Logger:   logger,
	})

	readingService := app.NewReadingService(app.ReadingServiceConfig{
		Readings: readings,
		Reports:  reportService,
		Flags:    flags.FromBools(cfg.Features),
		Metrics:  m,
		Logger:   logger,
	})

	authService := app.NewAuthService(app.AuthServiceConfig{
		Users:   users,
		Hasher:  auth.NewHasher(cfg.Auth.BcryptCost),
		Tokens:  tokens,
		Metrics: m,
		Logger:  logger,
	})

	// Built before anything runs so a bad prune schedule fails startup.
	reportJanitor, err := newJanitor(cfg.Reports, reportService, logger)
	if err != nil {
		return err
	}

	// 10. HTTP
	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(ctx, middleware.RateLimitConfig{
			Requests:        cfg.RateLimit.Requests,
			Window:          cfg.RateLimit.Window,
			Burst:           cfg.RateLimit.Burst,
			CleanupInterval: cfg.RateLimit.CleanupInterval,
			OnLimit:         m.RecordRateLimitHit,
		})
		defer limiter.Stop()
	}

	server := http.New(&cfg.Server, logger)
	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:      logger,
		ServiceName: cfg.Telemetry.ServiceName,
		Auth:        authService,
		Metrics:     m,
		RateLimiter: limiter,
		Health: handlers.NewHealthHandler(healthRegistry,
			handlers.NewBuildInfo(Version, Commit, BuildTime),
			handlers.WithGatherer(registry),
		),
		Numerology: handlers.NewNumerologyHandler(readingService),
		Users:      handlers.NewAuthHandler(authService),
		Reports:    handlers.NewReportHandler(reportService),
		Timeout:    cfg.Server.RequestTimeout,
	})

	// 11. Run the server and the report janitor until a signal arrives
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Run(gctx)
	})

	if reportJanitor != nil {
		g.Go(func() error {
			reportJanitor.Start()
			<-gctx.Done()

			return reportJanitor.Stop(context.WithoutCancel(gctx))
		})
	}

	err = g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logger.Info("shutdown complete")

	return nil
}

// newJanitor builds the report janitor. It returns nil when reports are kept
// forever.
func newJanitor(cfg config.ReportsConfig, pruner janitor.Pruner, logger *slog.Logger) (*janitor.Janitor, error) {
	if cfg.Retention <= 0 {
		return nil, nil
	}

	j, err := janitor.New(pruner, janitor.Config{
		Schedule:  cfg.PruneSchedule,
		Retention: cfg.Retention,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("creating report janitor: %w", err)
	}

	return j, nil
}

//go:build integration

package integration

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/numerology-service/internal/adapters/auth"
	"github.com/jsamuelsen/numerology-service/internal/adapters/flags"
	httpadapter "github.com/jsamuelsen/numerology-service/internal/adapters/http"
	"github.com/jsamuelsen/numerology-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/numerology-service/internal/adapters/reports/filestore"
	"github.com/jsamuelsen/numerology-service/internal/adapters/reports/pdf"
	"github.com/jsamuelsen/numerology-service/internal/adapters/storage/sqlstore"
	"github.com/jsamuelsen/numerology-service/internal/app"
	"github.com/jsamuelsen/numerology-service/internal/platform/config"
	"github.com/jsamuelsen/numerology-service/internal/ports"
)

// service is the whole numerology stack running in-process on SQLite.
type service struct {
	URL      string
	Config   *config.Config
	Readings *app.ReadingService
	Reports  *app.ReportService
	Auth     *app.AuthService
}

// startService wires the production components against a temporary SQLite
// database and report directory. Everything is torn down with the test.
func startService(tb testing.TB, features map[string]bool) *service {
	tb.Helper()

	gin.SetMode(gin.TestMode)

	cfg, err := config.LoadFrom("../../configs", "test")
	require.NoError(tb, err)

	dir := tb.TempDir()
	cfg.Database.DSN = "file:" + filepath.Join(dir, "numerology.db")
	cfg.Reports.Dir = filepath.Join(dir, "reports")
	if features != nil {
		cfg.Features = features
	}

	require.NoError(tb, cfg.Validate())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	db, err := sqlstore.Open(ctx, sqlstore.Config{
		Driver:       cfg.Database.Driver,
		DSN:          cfg.Database.DSN,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	})
	require.NoError(tb, err)
	tb.Cleanup(func() { _ = db.Close() })

	require.NoError(tb, sqlstore.Migrate(db, logger))

	readings := sqlstore.NewReadingRepository(db)
	store, err := filestore.New(cfg.Reports.Dir)
	require.NoError(tb, err)

	tokens, err := auth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	require.NoError(tb, err)

	reportService := app.NewReportService(app.ReportServiceConfig{
		Renderer: pdf.New(pdf.WithAuthor(cfg.App.Name)),
		Store:    store,
		Readings: readings,
		Logger:   logger,
	})
	readingService := app.NewReadingService(app.ReadingServiceConfig{
		Readings: readings,
		Reports:  reportService,
		Flags:    flags.FromBools(cfg.Features),
		Logger:   logger,
	})
	authService := app.NewAuthService(app.AuthServiceConfig{
		Users:  sqlstore.NewUserRepository(db),
		Hasher: auth.NewHasher(cfg.Auth.BcryptCost),
		Tokens: tokens,
		Logger: logger,
	})

	health := ports.NewHealthRegistry()
	require.NoError(tb, health.Register(db))
	require.NoError(tb, health.Register(store))

	server := httpadapter.New(&cfg.Server, logger)
	httpadapter.SetupRouter(server.Engine(), httpadapter.RouterConfig{
		Logger:     logger,
		Auth:       authService,
		Health:     handlers.NewHealthHandler(health, handlers.NewBuildInfo("test", "test", "test")),
		Numerology: handlers.NewNumerologyHandler(readingService),
		Users:      handlers.NewAuthHandler(authService),
		Reports:    handlers.NewReportHandler(reportService),
		Timeout:    cfg.Server.RequestTimeout,
	})

	ts := httptest.NewServer(server.Engine())
	tb.Cleanup(ts.Close)

	return &service{
		URL:      ts.URL,
		Config:   cfg,
		Readings: readingService,
		Reports:  reportService,
		Auth:     authService,
	}
}

// registerUser creates an account and returns its id.
func (s *service) registerUser(tb testing.TB, email string) string {
	tb.Helper()

	user, err := s.Auth.Register(context.Background(), email, "correct horse battery")
	require.NoError(tb, err)

	return user.ID
}

package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/numerology-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/numerology-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/numerology-service/internal/platform/telemetry"
)

// DefaultRequestTimeout applies when RouterConfig.Timeout is unset.
const DefaultRequestTimeout = 15 * time.Second

// APIPrefix is the base path of the public API.
const APIPrefix = "/api/v1"

// RouterConfig holds everything SetupRouter mounts. Nil handlers are skipped.
type RouterConfig struct {
	Logger      *slog.Logger
	ServiceName string

	// Auth resolves bearer tokens. Required when any API handler is set.
	Auth middleware.Authenticator

	// Metrics records Prometheus request metrics. Nil disables them.
	Metrics middleware.HTTPRecorder

	// RateLimiter guards the API group. Nil disables limiting.
	RateLimiter *middleware.RateLimiter

	Health     *handlers.HealthHandler
	Numerology *handlers.NumerologyHandler
	Users      *handlers.AuthHandler
	Reports    *handlers.ReportHandler

	// Timeout bounds API requests. Negative disables it.
	Timeout time.Duration
}

// SetupRouter installs global middleware and every route.
//
// Global middleware, outermost first:
//  1. Recovery
//  2. Request ID
//  3. Correlation ID
//  4. OpenTelemetry tracing and metrics
//  5. Prometheus HTTP metrics
//  6. Logging (skips /-/)
//
// The /api/v1 group adds the rate limiter and the request timeout. Health
// endpoints under /-/ get neither.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(cfg.ServiceName),
		telemetry.Middleware(),
	)

	if cfg.Metrics != nil {
		engine.Use(middleware.Metrics(cfg.Metrics))
	}

	engine.Use(middleware.Logging(cfg.Logger))

	if cfg.Health != nil {
		cfg.Health.RegisterHealthRoutes(engine.Group("/-"))
	}

	api := engine.Group(APIPrefix)

	if cfg.RateLimiter != nil {
		api.Use(cfg.RateLimiter.Middleware())
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultRequestTimeout
	}

	if timeout > 0 {
		api.Use(middleware.Timeout(timeout))
	}

	setupAPIRoutes(api, cfg)
}

func setupAPIRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.Auth == nil {
		return
	}

	required := middleware.RequireAuth(cfg.Auth)
	optional := middleware.OptionalAuth(cfg.Auth)

	if cfg.Users != nil {
		cfg.Users.RegisterRoutes(rg)
	}

	if cfg.Numerology != nil {
		cfg.Numerology.RegisterRoutes(rg, required, optional)
	}

	if cfg.Reports != nil {
		cfg.Reports.RegisterRoutes(rg, required)
	}
}

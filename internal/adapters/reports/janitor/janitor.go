// Package janitor schedules report retention with cron.
package janitor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// ErrNoRetention is returned by New when retention is not positive.
var ErrNoRetention = errors.New("janitor: retention must be positive")

// Pruner removes reports older than maxAge.
type Pruner interface {
	Prune(ctx context.Context, maxAge time.Duration) (int, error)
}

// Janitor runs a Pruner on a cron schedule.
type Janitor struct {
	cron      *cron.Cron
	pruner    Pruner
	retention time.Duration
	timeout   time.Duration
	logger    *slog.Logger
}

// Config holds the janitor settings.
type Config struct {
	// Schedule is a standard five-field cron spec or a descriptor such as @hourly.
	Schedule  string
	Retention time.Duration

	// Timeout bounds one prune run. Zero means one minute.
	Timeout time.Duration
}

// New creates a stopped Janitor.
func New(pruner Pruner, cfg Config, logger *slog.Logger) (*Janitor, error) {
	if cfg.Retention <= 0 {
		return nil, ErrNoRetention
	}

	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(slog.String("component", "reports.janitor"))

	if cfg.Timeout <= 0 {
		cfg.Timeout = time.Minute
	}

	cl := cronLogger{logger: logger}

	j := &Janitor{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		pruner:    pruner,
		retention: cfg.Retention,
		timeout:   cfg.Timeout,
		logger:    logger,
	}

	if _, err := j.cron.AddFunc(cfg.Schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return nil, fmt.Errorf("janitor: invalid schedule %q: %w", cfg.Schedule, err)
	}

	return j, nil
}

// Start begins the schedule in its own goroutine.
func (j *Janitor) Start() {
	j.logger.Info("report janitor started", slog.Duration("retention", j.retention))
	j.cron.Start()
}

// Stop halts the schedule and waits for a running prune, or for ctx.
func (j *Janitor) Stop(ctx context.Context) error {
	done := j.cron.Stop()

	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunOnce prunes immediately and returns how many reports were removed.
func (j *Janitor) RunOnce(ctx context.Context) int {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	n, err := j.pruner.Prune(ctx, j.retention)
	if err != nil {
		j.logger.ErrorContext(ctx, "report prune failed",
			slog.Int("removed", n),
			slog.String("error", err.Error()),
		)
	}

	return n
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, slog.String("error", err.Error()))...)
}

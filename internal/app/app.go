// Package app contains the application services. They validate input, run
// the numerology engine and coordinate storage, rendering and auth through
// the ports package. Nothing here knows about HTTP or SQL.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen/numerology-service/internal/domain/numerology"
	"github.com/jsamuelsen/numerology-service/internal/platform/logging"
)

// Metric outcome labels.
const (
	statusSuccess = "success"
	statusFailure = "failure"
)

// Recorder receives domain metrics. *metrics.Metrics satisfies it.
type Recorder interface {
	RecordReading(n numerology.Numbers)
	RecordReadingDeleted()
	RecordReport(status string)
	RecordPruned(n int)
	RecordAuth(operation, status string)
}

type nopRecorder struct{}

func (nopRecorder) RecordReading(numerology.Numbers) {}
func (nopRecorder) RecordReadingDeleted()            {}
func (nopRecorder) RecordReport(string)              {}
func (nopRecorder) RecordPruned(int)                 {}
func (nopRecorder) RecordAuth(string, string)        {}

func orNopRecorder(r Recorder) Recorder {
	if r == nil {
		return nopRecorder{}
	}

	return r
}

func orDefaultLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}

	return logger.With(slog.String("component", component))
}

func orNow(now func() time.Time) func() time.Time {
	if now == nil {
		return time.Now
	}

	return now
}

func orNewID(newID func() string) func() string {
	if newID == nil {
		return uuid.NewString
	}

	return newID
}

// loggerFor prefers the request-scoped logger carried by ctx.
func loggerFor(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := logging.Lookup(ctx); ok {
		return logger
	}

	return fallback
}

package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/codes"

	"github.com/jsamuelsen/numerology-service/internal/platform/telemetry"
)

// Operations run as Validate → Perform → Verify → Archive → Respond. Nothing
// is persisted until Perform's output has been verified, so a bad
// computation never reaches storage.

// ExecutionStep names a step of an operation.
type ExecutionStep string

const (
	StepValidate ExecutionStep = "validate"
	StepPerform  ExecutionStep = "perform"
	StepVerify   ExecutionStep = "verify"
	StepArchive  ExecutionStep = "archive"
	StepRespond  ExecutionStep = "respond"
)

// ExecutionError records the step an operation failed in.
type ExecutionError struct {
	Step    ExecutionStep
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Step, e.Message, e.Cause)
	}

	return fmt.Sprintf("%s failed: %s", e.Step, e.Message)
}

// Unwrap exposes the cause so domain errors survive errors.Is.
func (e *ExecutionError) Unwrap() error {
	return e.Cause
}

// Executor runs operations with step logging and a tracing span.
type Executor struct {
	logger *slog.Logger
}

// NewExecutor creates an executor. A nil logger means slog.Default.
func NewExecutor(logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}

	return &Executor{logger: logger}
}

// Operation holds the step functions of one use case. Nil steps are skipped.
//
// I is the input, P what Perform produced, V the verified value and O the
// caller's result.
type Operation[I, P, V, O any] struct {
	Name string

	Validate func(ctx context.Context, input I) error
	Perform  func(ctx context.Context, input I) (P, error)
	Verify   func(ctx context.Context, input I, performed P) (V, error)
	Archive  func(ctx context.Context, input I, verified V) error
	Respond  func(ctx context.Context, input I, verified V) (O, error)
}

// Execute runs op for input. A failing step stops the run and is returned
// as an *ExecutionError wrapping the step's error.
func Execute[I, P, V, O any](ctx context.Context, exec *Executor, op Operation[I, P, V, O], input I) (result O, err error) {
	ctx, span := telemetry.StartSpan(ctx, op.Name)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}

		span.End()
	}()

	logger := loggerFor(ctx, exec.logger).With(slog.String("operation", op.Name))
	start := time.Now()

	fail := func(step ExecutionStep, msg string, cause error) error {
		level := slog.LevelError
		if step == StepValidate {
			level = slog.LevelWarn
		}

		logger.Log(ctx, level, "operation step failed",
			slog.String("step", string(step)),
			slog.Any("error", cause),
		)

		return &ExecutionError{Step: step, Message: msg, Cause: cause}
	}

	if op.Validate != nil {
		if err := op.Validate(ctx, input); err != nil {
			return result, fail(StepValidate, "input validation failed", err)
		}
	}

	var performed P

	if op.Perform != nil {
		if performed, err = op.Perform(ctx, input); err != nil {
			return result, fail(StepPerform, "operation failed", err)
		}
	}

	var verified V

	if op.Verify != nil {
		if verified, err = op.Verify(ctx, input, performed); err != nil {
			return result, fail(StepVerify, "verification failed", err)
		}
	}

	if op.Archive != nil {
		if err := op.Archive(ctx, input, verified); err != nil {
			return result, fail(StepArchive, "state persistence failed", err)
		}
	}

	if op.Respond != nil {
		if result, err = op.Respond(ctx, input, verified); err != nil {
			var zero O

			return zero, fail(StepRespond, "building response failed", err)
		}
	}

	logger.DebugContext(ctx, "operation completed", slog.Duration("duration", time.Since(start)))

	return result, nil
}

// GetExecutionStep returns the step an execution error came from.
func GetExecutionStep(err error) (ExecutionStep, bool) {
	var execErr *ExecutionError
	if errors.As(err, &execErr) {
		return execErr.Step, true
	}

	return "", false
}

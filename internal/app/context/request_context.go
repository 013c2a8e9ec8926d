package context

import (
	"context"
	"log/slog"
	"sync"
)

// RequestContext collects staged actions for one request.
type RequestContext struct {
	ctx       context.Context
	logger    *slog.Logger
	actions   []Action
	mu        sync.Mutex
	committed bool
}

// New creates a RequestContext bound to ctx. Rollback failures are logged on
// slog.Default unless WithLogger is used.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{ctx: ctx, logger: slog.Default()}
}

// WithLogger sets the logger used to report rollback failures.
func (rc *RequestContext) WithLogger(logger *slog.Logger) *RequestContext {
	if logger != nil {
		rc.logger = logger
	}

	return rc
}

// Context returns the context the RequestContext was created with.
func (rc *RequestContext) Context() context.Context {
	return rc.ctx
}

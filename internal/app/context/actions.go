package context

import (
	"context"
	"fmt"
	"log/slog"
)

// Action is one staged write.
type Action interface {
	Execute(ctx context.Context) error

	// Rollback undoes a successful Execute.
	Rollback(ctx context.Context) error

	// Description names the action in logs and errors.
	Description() string
}

// AddAction stages an action.
func (rc *RequestContext) AddAction(action Action) error {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.committed {
		return ErrAlreadyCommitted
	}

	rc.actions = append(rc.actions, action)

	return nil
}

// Commit executes the staged actions in order. When one fails, the actions
// already executed are rolled back in reverse order and the failure is
// returned. A failed Commit may be retried.
func (rc *RequestContext) Commit(ctx context.Context) error {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.committed {
		return ErrAlreadyCommitted
	}

	executed := make([]Action, 0, len(rc.actions))

	for _, action := range rc.actions {
		if err := action.Execute(ctx); err != nil {
			rc.rollback(ctx, executed)

			return fmt.Errorf("action %q failed: %w", action.Description(), err)
		}

		executed = append(executed, action)
	}

	rc.committed = true

	return nil
}

func (rc *RequestContext) rollback(ctx context.Context, executed []Action) {
	// Rollback runs even when the request has been canceled.
	ctx = context.WithoutCancel(ctx)

	for i := len(executed) - 1; i >= 0; i-- {
		if err := executed[i].Rollback(ctx); err != nil {
			rc.logger.WarnContext(ctx, "rollback failed",
				slog.String("action", executed[i].Description()),
				slog.Any("error", err),
			)
		}
	}
}

// Actions returns a copy of the staged actions.
func (rc *RequestContext) Actions() []Action {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	result := make([]Action, len(rc.actions))
	copy(result, rc.actions)

	return result
}

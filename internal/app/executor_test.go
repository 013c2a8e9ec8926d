package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/numerology-service/internal/domain"
)

func TestExecute_RunsStepsInOrder(t *testing.T) {
	var steps []string

	op := Operation[string, int, int, string]{
		Name: "test.op",
		Validate: func(context.Context, string) error {
			steps = append(steps, "validate")
			return nil
		},
		Perform: func(_ context.Context, in string) (int, error) {
			steps = append(steps, "perform")
			return len(in), nil
		},
		Verify: func(_ context.Context, _ string, p int) (int, error) {
			steps = append(steps, "verify")
			return p * 2, nil
		},
		Archive: func(context.Context, string, int) error {
			steps = append(steps, "archive")
			return nil
		},
		Respond: func(_ context.Context, in string, v int) (string, error) {
			steps = append(steps, "respond")
			return in + ":" + string(rune('0'+v)), nil
		},
	}

	got, err := Execute(context.Background(), NewExecutor(discardLogger()), op, "abc")

	require.NoError(t, err)
	assert.Equal(t, "abc:6", got)
	assert.Equal(t, []string{"validate", "perform", "verify", "archive", "respond"}, steps)
}

func TestExecute_StopsAtFailingStep(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name string
		op   Operation[string, string, string, string]
		step ExecutionStep
	}{
		{
			name: "validate",
			op: Operation[string, string, string, string]{
				Validate: func(context.Context, string) error { return domain.NewValidationError("name", "is required") },
				Perform:  func(context.Context, string) (string, error) { panic("perform must not run") },
			},
			step: StepValidate,
		},
		{
			name: "perform",
			op: Operation[string, string, string, string]{
				Perform: func(context.Context, string) (string, error) { return "", boom },
				Verify:  func(context.Context, string, string) (string, error) { panic("verify must not run") },
			},
			step: StepPerform,
		},
		{
			name: "verify",
			op: Operation[string, string, string, string]{
				Verify:  func(context.Context, string, string) (string, error) { return "", boom },
				Archive: func(context.Context, string, string) error { panic("archive must not run") },
			},
			step: StepVerify,
		},
		{
			name: "archive",
			op: Operation[string, string, string, string]{
				Archive: func(context.Context, string, string) error { return boom },
				Respond: func(context.Context, string, string) (string, error) { panic("respond must not run") },
			},
			step: StepArchive,
		},
		{
			name: "respond",
			op: Operation[string, string, string, string]{
				Respond: func(context.Context, string, string) (string, error) { return "partial", boom },
			},
			step: StepRespond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.op.Name = "test." + tt.name

			got, err := Execute(context.Background(), NewExecutor(discardLogger()), tt.op, "in")

			require.Error(t, err)
			assert.Empty(t, got)

			step, ok := GetExecutionStep(err)
			require.True(t, ok)
			assert.Equal(t, tt.step, step)
		})
	}
}

func TestExecute_PreservesDomainErrors(t *testing.T) {
	op := Operation[string, string, string, string]{
		Validate: func(context.Context, string) error { return domain.NewValidationError("dob", "is required") },
	}

	_, err := Execute(context.Background(), NewExecutor(nil), op, "")

	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "dob", verr.Field)
}

func TestGetExecutionStep_PlainError(t *testing.T) {
	_, ok := GetExecutionStep(errors.New("plain"))
	assert.False(t, ok)
}

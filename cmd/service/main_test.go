package main

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/numerology-service/internal/platform/config"
)

type countingPruner struct{ calls int }

func (p *countingPruner) Prune(context.Context, time.Duration) (int, error) {
	p.calls++
	return 0, nil
}

func TestNewJanitor(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		cfg     config.ReportsConfig
		wantNil bool
		wantErr string
	}{
		{
			name:    "retention disabled",
			cfg:     config.ReportsConfig{Dir: "reports", PruneSchedule: "@daily"},
			wantNil: true,
		},
		{
			name: "valid schedule",
			cfg:  config.ReportsConfig{Dir: "reports", Retention: 720 * time.Hour, PruneSchedule: "@daily"},
		},
		{
			name:    "bad schedule fails before startup",
			cfg:     config.ReportsConfig{Dir: "reports", Retention: time.Hour, PruneSchedule: "every tuesday"},
			wantNil: true,
			wantErr: "creating report janitor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pruner := &countingPruner{}

			j, err := newJanitor(tt.cfg, pruner, logger)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			if tt.wantNil {
				assert.Nil(t, j)
			} else {
				assert.NotNil(t, j)
			}

			assert.Zero(t, pruner.calls, "building a janitor must not prune")
		})
	}
}

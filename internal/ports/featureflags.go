package ports

import "context"

// Feature flag names.
const (
	// FlagReportOnCreate renders and attaches a PDF to every new reading.
	FlagReportOnCreate = "report-on-create"
)

// FeatureFlags evaluates feature toggles. Unknown flags return the default.
//
//	if flags.IsEnabled(ctx, ports.FlagReportOnCreate, true) {
//	    s.attachReport(ctx, reading)
//	}
type FeatureFlags interface {
	IsEnabled(ctx context.Context, flag string, defaultValue bool) bool
	GetString(ctx context.Context, flag string, defaultValue string) string
	GetInt(ctx context.Context, flag string, defaultValue int) int
}

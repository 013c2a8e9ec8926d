// Package cli implements the numerology command line tool. It shares the
// engine, renderer and report store with the HTTP service.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/numerology-service/internal/adapters/reports/filestore"
	"github.com/jsamuelsen/numerology-service/internal/adapters/reports/pdf"
	"github.com/jsamuelsen/numerology-service/internal/app"
	"github.com/jsamuelsen/numerology-service/internal/platform/config"
	"github.com/jsamuelsen/numerology-service/internal/platform/logging"
)

type rootOptions struct {
	configDir string
	profile   string
	envFile   string
	debug     bool
}

// Execute runs the root command and returns the process exit code.
func Execute(version string) int {
	if err := NewRootCmd(version).Execute(); err != nil {
		return 1
	}

	return 0
}

// NewRootCmd builds the command tree.
func NewRootCmd(version string) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "numerology",
		Short:        "Pythagorean numerology readings and PDF reports",
		Version:      version,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configDir, "config-dir", "configs", "directory holding base.yaml and profile files")
	cmd.PersistentFlags().StringVar(&opts.profile, "profile", "local", "configuration profile")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before configuration")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log debug output to stderr")

	cmd.AddCommand(
		calcCmd(),
		reportCmd(opts),
		reportsCmd(opts),
	)

	return cmd
}

// loadConfig reads the service configuration. Only the report settings are
// used, so the full validation the server runs is skipped.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	if err := config.LoadEnvFile(o.envFile); err != nil {
		return nil, err
	}

	cfg, err := config.LoadFrom(o.configDir, o.profile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return cfg, nil
}

func (o *rootOptions) logger(w io.Writer) *slog.Logger {
	level := "warn"
	if o.debug {
		level = "debug"
	}

	return logging.NewWithWriter(&logging.Config{Level: level, Format: "pretty", Service: "numerology-cli"}, w)
}

// reportService wires the report store from configuration.
func (o *rootOptions) reportService(cmd *cobra.Command) (*app.ReportService, *filestore.Store, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, nil, err
	}

	store, err := filestore.New(cfg.Reports.Dir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening report store: %w", err)
	}

	svc := app.NewReportService(app.ReportServiceConfig{
		Renderer: pdf.New(pdf.WithAuthor(cfg.App.Name)),
		Store:    store,
		Logger:   o.logger(cmd.ErrOrStderr()),
	})

	return svc, store, nil
}

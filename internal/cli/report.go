package cli

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/numerology-service/internal/adapters/reports/pdf"
	"github.com/jsamuelsen/numerology-service/internal/app"
	"github.com/jsamuelsen/numerology-service/internal/domain"
	"github.com/jsamuelsen/numerology-service/internal/domain/numerology"
)

func reportCmd(opts *rootOptions) *cobra.Command {
	var (
		subject subjectFlags
		out     string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render a PDF report",
		Long: `Render a PDF report for a name and date of birth.

With --out the PDF is written to that path. Otherwise it is stored in the
configured report directory, where the service can serve it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if out != "" {
				return renderToFile(cmd, subject, out)
			}

			svc, store, err := opts.reportService(cmd)
			if err != nil {
				return err
			}

			report, _, err := svc.Generate(cmd.Context(), subject.name, subject.dob)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "report %s stored in %s\n", report.Filename, store.Dir())

			return nil
		},
	}

	subject.register(cmd)
	cmd.Flags().StringVar(&out, "out", "", "write the PDF to this file instead of the report store")

	return cmd
}

func renderToFile(cmd *cobra.Command, subject subjectFlags, path string) error {
	now := time.Now()
	if err := app.ValidateSubject(subject.name, subject.dob, now); err != nil {
		return err
	}

	reading := domain.NewReading("", subject.name, subject.dob, "", numerology.Calculate(subject.name, subject.dob), now.UTC())

	content, err := pdf.New().Render(cmd.Context(), reading)
	if err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}

	if err := os.WriteFile(path, content, 0o600); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "report written to %s (%d bytes)\n", path, len(content))

	return nil
}

func reportsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Manage stored PDF reports",
	}

	cmd.AddCommand(reportsListCmd(opts), reportsPruneCmd(opts))

	return cmd
}

func reportsListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored reports, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, _, err := opts.reportService(cmd)
			if err != nil {
				return err
			}

			reports, err := svc.List(cmd.Context())
			if err != nil {
				return err
			}

			if len(reports) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "(no reports found)")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSIZE\tCREATED")

			for _, r := range reports {
				fmt.Fprintf(tw, "%s\t%d\t%s\n", r.ID, r.Size, r.CreatedAt.Format(time.RFC3339))
			}

			return tw.Flush()
		},
	}
}

func reportsPruneCmd(opts *rootOptions) *cobra.Command {
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete reports older than the retention period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			maxAge := olderThan
			if maxAge == 0 {
				maxAge = cfg.Reports.Retention
			}

			if maxAge <= 0 {
				return errors.New("no retention configured; pass --older-than")
			}

			svc, _, err := opts.reportService(cmd)
			if err != nil {
				return err
			}

			n, err := svc.Prune(cmd.Context(), maxAge)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "pruned %d report(s) older than %s\n", n, maxAge)

			return nil
		},
	}

	cmd.Flags().DurationVar(&olderThan, "older-than", 0, "age cutoff; defaults to reports.retention")

	return cmd
}

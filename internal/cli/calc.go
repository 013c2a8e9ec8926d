package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen/numerology-service/internal/app"
	"github.com/jsamuelsen/numerology-service/internal/domain/numerology"
)

// Output formats accepted by --output.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

type subjectFlags struct {
	name string
	dob  string
}

func (f *subjectFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.name, "name", "n", "", "full name")
	cmd.Flags().StringVarP(&f.dob, "dob", "d", "", "date of birth, YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("dob")
}

type calcResult struct {
	Name string `json:"name" yaml:"name"`
	DOB  string `json:"dob"  yaml:"dob"`

	numerology.Numbers `yaml:",inline"`
}

func calcCmd() *cobra.Command {
	var (
		subject subjectFlags
		output  string
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute life path, expression and soul urge numbers",
		Example: `  numerology calc --name "Ada Lovelace" --dob 1815-12-10
  numerology calc -n "Ada Lovelace" -d 1815-12-10 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.ValidateSubject(subject.name, subject.dob, time.Now()); err != nil {
				return err
			}

			res := calcResult{
				Name:    subject.name,
				DOB:     subject.dob,
				Numbers: numerology.Calculate(subject.name, subject.dob),
			}

			return writeResult(cmd.OutOrStdout(), output, res)
		},
	}

	subject.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", formatText, "output format: text, json or yaml")

	return cmd
}

func writeResult(w io.Writer, format string, res calcResult) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(res)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(res); err != nil {
			return err
		}

		return enc.Close()
	case formatText:
		_, err := fmt.Fprintf(w, "Name:               %s\nDate of Birth:      %s\nLife Path Number:   %s\nExpression Number:  %s\nSoul Urge Number:   %s\n",
			res.Name, res.DOB,
			describe(res.LifePath), describe(res.Expression), describe(res.SoulUrge))

		return err
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

func describe(n int) string {
	if numerology.IsMaster(n) {
		return strconv.Itoa(n) + " (master number)"
	}

	return strconv.Itoa(n)
}

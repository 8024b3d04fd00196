// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/datavet/datavet/cmd/datavet/internal/clierr"
	"github.com/datavet/datavet/internal/engine"
	"github.com/datavet/datavet/internal/memsource"
	"github.com/datavet/datavet/internal/rules"
	"github.com/datavet/datavet/internal/rulespec"
)

// recordsFile is the YAML shape of the --records input. Unlike rule specs,
// records files are ordinary YAML and go through the YAML library.
type recordsFile struct {
	Records []map[string]any `yaml:"records"`
	Schema  map[string]any   `yaml:"schema"`
}

// NewCheckCommand constructs `datavet check <spec-file> --records <file>`:
// it builds the spec's rules and runs them against an in-memory batch.
func NewCheckCommand() *cobra.Command {
	var (
		recordsPath string
		outDir      string
	)

	cmd := &cobra.Command{
		Use:   "check <spec-file>",
		Short: "Run a rule spec's validations against a records file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := rulespec.Load(args[0])
			if err != nil {
				return clierr.FromSpecError(err)
			}

			ruleSet, err := rules.FromSpec(spec)
			if err != nil {
				return fmt.Errorf("building rules: %w", err)
			}

			source, err := loadRecords(recordsPath, spec.DataSource)
			if err != nil {
				return err
			}

			batches, err := source.Batches(0)
			if err != nil {
				return fmt.Errorf("fetching batches: %w", err)
			}

			eng := engine.NewSimpleEngine(ruleSet...)
			var results []engine.Result
			for _, batch := range batches {
				results = append(results, eng.Validate(batch)...)
			}

			out := cmd.OutOrStdout()
			for _, r := range results {
				if r.Passed {
					_, _ = fmt.Fprintf(out, "✓ %s\n", r.RuleID)
				} else {
					_, _ = fmt.Fprintf(out, "✗ %s: %s\n", r.RuleID, r.Message)
				}
			}

			summary := engine.Summarize(results)
			if outDir != "" {
				store := engine.NewResultStore(outDir)
				if err := store.WriteRun(results); err != nil {
					return fmt.Errorf("writing results: %w", err)
				}
			}

			if summary.Status != "pass" {
				return clierr.New(clierr.CodeGeneric,
					fmt.Sprintf("%d validation rule(s) failed", len(summary.Failed)))
			}
			_, _ = fmt.Fprintf(out, "✓ %d rule(s) passed against %s\n", len(ruleSet), spec.DataSource)
			return nil
		},
	}

	cmd.Flags().StringVar(&recordsPath, "records", "", "Path to a YAML records file")
	cmd.Flags().StringVar(&outDir, "out", "", "Directory to persist run results to")
	_ = cmd.MarkFlagRequired("records")

	return cmd
}

func loadRecords(path, sourceName string) (*memsource.Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading records file: %w", err)
	}

	var file recordsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decoding records file: %w", err)
	}

	records := make([]engine.Record, 0, len(file.Records))
	for _, r := range file.Records {
		records = append(records, engine.Record(r))
	}

	return memsource.New(memsource.Config{
		Name:    sourceName,
		Records: records,
		Schema:  file.Schema,
	}), nil
}

// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datavet/datavet/cmd/datavet/internal/clierr"
	"github.com/datavet/datavet/internal/rulespec"
)

// NewInspectCommand constructs `datavet inspect <spec-file>`, which prints
// the normalized spec in its canonical textual form: required fields first,
// metadata after, quoting only where needed.
func NewInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <spec-file>",
		Short: "Print the normalized form of a rule specification file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := rulespec.Load(args[0])
			if err != nil {
				return clierr.FromSpecError(err)
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), rulespec.Encode(canonicalTree(spec)))
			return nil
		},
	}
	return cmd
}

// canonicalTree rebuilds a value tree from a normalized spec, with the
// required fields leading and metadata keys in their original order.
func canonicalTree(spec *rulespec.Spec) *rulespec.Mapping {
	doc := rulespec.NewMapping()
	doc.Set("version", rulespec.Scalar(spec.Version))
	doc.Set("data_source", rulespec.Scalar(spec.DataSource))

	items := make(rulespec.Sequence, 0, len(spec.Validations))
	for _, directive := range spec.Validations {
		items = append(items, directive)
	}
	doc.Set("validations", items)

	for _, key := range spec.Metadata.Keys() {
		value, _ := spec.Metadata.Get(key)
		doc.Set(key, value)
	}
	return doc
}

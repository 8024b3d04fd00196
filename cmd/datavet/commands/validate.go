// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datavet/datavet/cmd/datavet/internal/clierr"
	"github.com/datavet/datavet/internal/rulespec"
)

// NewValidateCommand constructs `datavet validate <spec-file>`.
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <spec-file>",
		Short: "Validate a rule specification file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := rulespec.Load(args[0])
			if err != nil {
				return clierr.FromSpecError(err)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "✓ rule spec valid: version=%s data_source=%s validations=%d\n",
				spec.Version, spec.DataSource, len(spec.Validations))

			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				for i, directive := range spec.Validations {
					for _, name := range directive.Keys() {
						value, _ := directive.Get(name)
						if s, ok := value.(rulespec.Scalar); ok {
							_, _ = fmt.Fprintf(out, "  [%d] %s: %s\n", i, name, s)
						} else {
							_, _ = fmt.Fprintf(out, "  [%d] %s\n", i, name)
						}
					}
				}
				for _, key := range spec.Metadata.Keys() {
					_, _ = fmt.Fprintf(out, "  metadata: %s\n", key)
				}
			}
			return nil
		},
	}
	return cmd
}

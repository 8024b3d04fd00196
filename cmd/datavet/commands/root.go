// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Datavet - Datavet is a data validation tool built around rule specification files.
It loads a restricted-YAML rule spec describing a data source and its validation
directives, validates the spec, and can run the resulting rules against record
batches.

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd constructs the datavet root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("DATAVET_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "datavet",
		Short:         "Datavet - rule-spec driven data validation",
		Long:          "Datavet loads rule specification files, validates them, and runs their validation rules against data batches.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of datavet",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "datavet version %s\n", version)
		},
	})

	cmd.AddCommand(NewValidateCommand())
	cmd.AddCommand(NewInspectCommand())
	cmd.AddCommand(NewCheckCommand())

	return cmd
}

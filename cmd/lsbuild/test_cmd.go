// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"
)

// newTestCommand creates the `lsbuild test` command.
func newTestCommand(app *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "test CONFIG_FILE [FEATURES...]",
		Short: "Test loadstone",
		Long: `Build and run loadstone's tests using the configuration from the
provided file. If the given path is '-' use standard input for config.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDriverSubcommand(app, cmd, args, "test", "test", nil)
		},
	}
}

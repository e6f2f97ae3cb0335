// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"loadstone-cli/internal/payload"
	"loadstone-cli/internal/toolchain"

	"github.com/spf13/cobra"
)

// newCheckCommand creates the `lsbuild check` command.
func newCheckCommand(app *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "check CONFIG_FILE [FEATURES...]",
		Short: "Check loadstone for errors",
		Long: `Run the toolchain lints using the configuration from the provided
file. If the given path is '-' use standard input for config.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDriverSubcommand(app, cmd, args, "check", "clippy", nil)
		},
	}
}

// runDriverSubcommand is the shared body of check and test: resolve the
// payload, run one driver subcommand, propagate its outcome. Arity is
// already validated by cobra before this runs, so a failure here never
// spawned a process it shouldn't have.
func runDriverSubcommand(app *appState, cmd *cobra.Command, args []string, name, subcommand string, extraArgs []string) error {
	cfgPayload, err := payload.ParseSource(args[0]).Read(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	drv := app.newDriver(app.cfg.Toolchain, app.logger)
	res := drv.Run(cmd.Context(), toolchain.Invocation{
		Subcommand: subcommand,
		ExtraArgs:  extraArgs,
		Config:     cfgPayload,
		Features:   args[1:],
	})
	if !res.Success() {
		return resultErr(name, res)
	}

	return nil
}

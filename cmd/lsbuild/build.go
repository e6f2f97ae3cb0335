// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"loadstone-cli/internal/image"
	"loadstone-cli/internal/payload"
	"loadstone-cli/internal/toolchain"

	"github.com/spf13/cobra"
)

// newBuildCommand creates the `lsbuild build` command.
func newBuildCommand(app *appState) *cobra.Command {
	var hexOut bool

	cmd := &cobra.Command{
		Use:   "build CONFIG_FILE [FEATURES...]",
		Short: "Build loadstone",
		Long: `Build loadstone using the configuration from the provided file. If the
given path is '-' use standard input for config.

The release image is built for the configured embedded target, then the
linked ELF is converted to a raw binary ready for flashing. With --hex
an Intel HEX rendition is written as well.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(app, cmd, args, hexOut)
		},
	}

	cmd.Flags().BoolVar(&hexOut, "hex", false, "also write an Intel HEX image next to the raw binary")

	return cmd
}

func runBuild(app *appState, cmd *cobra.Command, args []string, hexOut bool) error {
	cfgPayload, err := payload.ParseSource(args[0]).Read(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}

	drv := app.newDriver(app.cfg.Toolchain, app.logger)
	res := drv.Run(cmd.Context(), toolchain.Invocation{
		Subcommand: "build",
		ExtraArgs:  []string{"--release", "--target=" + app.cfg.Toolchain.Target},
		Config:     cfgPayload,
		Features:   args[1:],
	})
	if !res.Success() {
		return resultErr("build", res)
	}

	if res := drv.Objcopy(cmd.Context(), app.cfg.Paths.ELF, app.cfg.Paths.Bin); !res.Success() {
		return resultErr("build", res)
	}

	if hexOut {
		if err := image.ConvertBinToHex(app.cfg.Paths.Bin, app.cfg.Paths.Hex, app.cfg.Image.HexBase); err != nil {
			return fmt.Errorf("build: %w", err)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(),
		SuccessStyle.Render("Loadstone binary copied to ")+PathStyle.Render("`"+app.cfg.Paths.Bin+"`")+SuccessStyle.Render("."))
	if hexOut {
		fmt.Fprintln(cmd.OutOrStdout(),
			SuccessStyle.Render("Intel HEX image written to ")+PathStyle.Render("`"+app.cfg.Paths.Hex+"`")+SuccessStyle.Render("."))
	}

	return nil
}

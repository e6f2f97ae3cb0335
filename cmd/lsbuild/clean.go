// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
)

// newCleanCommand creates the `lsbuild clean` command.
func newCleanCommand(app *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Clean up generated files",
		Long:  "Removes all files generated by the toolchain and by lsbuild itself.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runClean(app, cmd)
		},
	}
}

func runClean(app *appState, cmd *cobra.Command) error {
	// The output images live next to the front-end, outside the
	// toolchain's own target directory. Absence is not an error.
	for _, path := range []string{app.cfg.Paths.Bin, app.cfg.Paths.Hex} {
		if err := removeIfExists(path); err != nil {
			return fmt.Errorf("clean: %w", err)
		}
	}

	drv := app.newDriver(app.cfg.Toolchain, app.logger)
	if res := drv.Clean(cmd.Context()); !res.Success() {
		return resultErr("clean", res)
	}

	return nil
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"loadstone-cli/internal/config"
	"loadstone-cli/internal/toolchain"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// driver is the slice of the toolchain runner the commands use.
// Narrowed to an interface so tests can substitute a recording fake.
type driver interface {
	Run(ctx context.Context, inv toolchain.Invocation) *toolchain.Result
	Clean(ctx context.Context) *toolchain.Result
	Objcopy(ctx context.Context, elf, bin string) *toolchain.Result
}

// appState carries the loaded settings and collaborators shared by all
// subcommands of one invocation.
type appState struct {
	cfg    *config.Config
	logger *log.Logger

	// newDriver builds the toolchain runner; tests replace it.
	newDriver func(tc config.ToolchainConfig, logger *log.Logger) driver
}

// init loads the front-end settings and prepares the logger. Settings
// errors are surfaced as warnings and the built-in defaults are used;
// a broken settings file should not lock the developer out of `help`.
func (a *appState) init(cmd *cobra.Command, cfgFile string, verbose bool) {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), WarningStyle.Render("Warning: ")+err.Error())
		cfg = config.DefaultConfig()
	}
	a.cfg = cfg

	if !verbose {
		verbose = cfg.UI.Verbose
	}

	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: "lsbuild",
	})
	if verbose {
		a.logger.SetLevel(log.DebugLevel)
	}
}

func init() {
	// Keep the help listing in registration order.
	cobra.EnableCommandSorting = false
}

// newRootCommand builds a fresh command tree. Per-invocation state
// lives in the returned appState so repeated executions (and tests) do
// not share flag or settings values.
func newRootCommand() (*cobra.Command, *appState) {
	var (
		verbose bool
		cfgFile string
	)

	app := &appState{
		newDriver: func(tc config.ToolchainConfig, logger *log.Logger) driver {
			return toolchain.NewRunner(tc, logger)
		},
	}

	rootCmd := &cobra.Command{
		Use:   "lsbuild",
		Short: "Build front-end for Loadstone",
		Long: TitleStyle.Render("lsbuild") + SubtitleStyle.Render(" - Build front-end for Loadstone") + `

lsbuild wraps the toolchain that produces Loadstone, the embedded
bootloader: it exports the configuration payload to the compiler
driver, builds the release image for the embedded target, and
post-processes the linked ELF into a raw binary ready for flashing.

Examples:
  lsbuild build demo_config.toml ecdsa-verify serial-recovery
  cat config.toml | lsbuild build -
  lsbuild check - < config.toml
  lsbuild clean`,
		// Unknown subcommands fall through to this handler: print the
		// general help and signal failure.
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			app.init(cmd, cfgFile, verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Help(); err != nil {
				return err
			}
			if len(args) > 0 {
				return &ExitError{Code: 1, Err: fmt.Errorf("unknown command %q", args[0])}
			}
			return &ExitError{Code: 1}
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (default is ./lsbuild.toml)")

	rootCmd.AddCommand(newBuildCommand(app))
	rootCmd.AddCommand(newCheckCommand(app))
	rootCmd.AddCommand(newTestCommand(app))
	rootCmd.AddCommand(newCleanCommand(app))
	rootCmd.SetHelpCommand(newHelpCommand(rootCmd))

	return rootCmd, app
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute builds the command tree and runs it. This is called by
// main.main().
func Execute() {
	rootCmd, _ := newRootCommand()

	// Use fang.Execute for enhanced Cobra styling.
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// resultErr maps a failed toolchain Result onto the error channel:
// processes that could not run surface their cause, processes that ran
// and failed already reported themselves on stderr.
func resultErr(name string, res *toolchain.Result) error {
	if res.Error != nil {
		return fmt.Errorf("%s: %w", name, res.Error)
	}
	return &ExitError{Code: 1, Err: fmt.Errorf("%s: toolchain exited with status %d", name, res.ExitCode)}
}

// SPDX-License-Identifier: MPL-2.0

package toolchain

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"loadstone-cli/internal/config"

	"github.com/charmbracelet/log"
)

type (
	// Runner executes compiler driver subcommands for the configured
	// toolchain.
	Runner struct {
		// Toolchain describes the driver invocation.
		Toolchain config.ToolchainConfig
		// Logger receives debug lines for each spawned process.
		Logger *log.Logger
		// Stdout, Stderr and Stdin are attached to spawned processes.
		Stdout io.Writer
		Stderr io.Writer
		Stdin  io.Reader
	}

	// Invocation describes one driver subcommand run.
	Invocation struct {
		// Subcommand is the driver subcommand (build, clippy, test).
		Subcommand string
		// ExtraArgs are subcommand-specific trailing flags.
		ExtraArgs []string
		// Config is the raw configuration payload. It is trimmed and
		// exported through the configured environment variable.
		Config string
		// Features are joined with commas into the feature-selection
		// flag. The flag is emitted even when the list is empty; the
		// driver's handling of an empty value is its own business.
		Features []string
	}
)

// NewRunner creates a Runner attached to the process's stdio.
func NewRunner(tc config.ToolchainConfig, logger *log.Logger) *Runner {
	return &Runner{
		Toolchain: tc,
		Logger:    logger,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Stdin:     os.Stdin,
	}
}

// Run executes a driver subcommand inside the toolchain subdirectory
// and blocks until it exits.
func (r *Runner) Run(ctx context.Context, inv Invocation) *Result {
	args := r.driverArgs(inv)
	cmd := exec.CommandContext(ctx, r.Toolchain.Driver, args...)
	cmd.Dir = r.Toolchain.Dir
	cmd.Env = r.driverEnv(inv)
	return r.run(cmd)
}

// Clean executes the driver's clean subcommand inside the toolchain
// subdirectory. No payload or feature flags are involved.
func (r *Runner) Clean(ctx context.Context) *Result {
	cmd := exec.CommandContext(ctx, r.Toolchain.Driver, "clean")
	cmd.Dir = r.Toolchain.Dir
	return r.run(cmd)
}

// Objcopy converts the linked ELF image into a raw binary using the
// configured object-copy utility. It runs in the project root, where
// both paths are anchored.
func (r *Runner) Objcopy(ctx context.Context, elf, bin string) *Result {
	cmd := exec.CommandContext(ctx, r.Toolchain.Objcopy, elf, "-Obinary", bin)
	return r.run(cmd)
}

// driverArgs assembles the driver argument list: channel selector,
// subcommand, binary selection, feature selection, then any
// subcommand-specific extras.
func (r *Runner) driverArgs(inv Invocation) []string {
	var args []string
	if r.Toolchain.Channel != "" {
		args = append(args, r.Toolchain.Channel)
	}
	args = append(args,
		inv.Subcommand,
		"--bin="+r.Toolchain.Binary,
		"--features="+strings.Join(inv.Features, ","),
	)
	return append(args, inv.ExtraArgs...)
}

// driverEnv copies the current environment and overrides the payload
// variable with the trimmed configuration. The payload is exported
// verbatim otherwise; the front-end never interprets it.
func (r *Runner) driverEnv(inv Invocation) []string {
	return append(os.Environ(),
		r.Toolchain.ConfigEnvVar+"="+strings.TrimSpace(inv.Config))
}

// run attaches stdio, logs the command line, and maps the outcome to a
// Result the way a shell would: exit code for processes that ran,
// wrapped error for processes that could not run.
func (r *Runner) run(cmd *exec.Cmd) *Result {
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	cmd.Stdin = r.Stdin

	if r.Logger != nil {
		r.Logger.Debug("spawning", "cmd", cmd.Path, "args", cmd.Args[1:], "dir", cmd.Dir)
	}

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return &Result{ExitCode: exitErr.ExitCode(), Error: nil}
		}
		return &Result{ExitCode: 1, Error: fmt.Errorf("failed to execute %s: %w", cmd.Args[0], err)}
	}

	return &Result{ExitCode: 0}
}

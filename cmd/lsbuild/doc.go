// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for lsbuild.
//
// This package implements the Cobra command hierarchy for the lsbuild
// CLI: the root command and the build, check, test, clean and help
// subcommands that front the Loadstone toolchain.
package cmd

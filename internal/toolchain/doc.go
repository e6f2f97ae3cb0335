// SPDX-License-Identifier: MPL-2.0

// Package toolchain invokes the external build tools: the compiler
// driver (build/clippy/test/clean subcommands, run inside the project's
// toolchain subdirectory with the configuration payload exported in the
// environment) and the object-copy utility that turns the linked ELF
// into a raw binary. Execution is fully synchronous; one process runs
// to completion, stdio is inherited, and only the exit code is
// inspected.
package toolchain

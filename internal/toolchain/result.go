// SPDX-License-Identifier: MPL-2.0

package toolchain

// Result contains the outcome of one external process invocation.
type Result struct {
	// ExitCode is the exit code of the process.
	ExitCode int
	// Error contains any error that prevented the process from running
	// or finishing. A nonzero exit from a process that ran is not an
	// Error; it is reported through ExitCode alone.
	Error error
}

// Success returns true if the process ran and exited zero.
func (r *Result) Success() bool {
	return r.ExitCode == 0 && r.Error == nil
}

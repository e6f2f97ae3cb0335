// SPDX-License-Identifier: MPL-2.0

// Package payload resolves the Loadstone configuration payload from its
// command-line argument. The payload is opaque to the front-end: it is
// read, trimmed, and handed to the toolchain driver through the
// environment without being parsed or validated.
package payload

import (
	"fmt"
	"io"
	"os"
)

// StdinSentinel is the CONFIG_FILE argument value that selects standard
// input instead of a file path.
const StdinSentinel = "-"

// Source identifies where the configuration payload comes from: a file
// path or standard input. The decision is made once at the CLI
// boundary; the rest of the program never sees the sentinel string.
type Source struct {
	path  string
	stdin bool
}

// ParseSource interprets the CONFIG_FILE argument.
func ParseSource(arg string) Source {
	if arg == StdinSentinel {
		return Source{stdin: true}
	}
	return Source{path: arg}
}

// IsStdin reports whether the source is standard input.
func (s Source) IsStdin() bool { return s.stdin }

// String returns the argument the source was parsed from, for
// diagnostics.
func (s Source) String() string {
	if s.stdin {
		return StdinSentinel
	}
	return s.path
}

// Read returns the payload content. For a file source, stdin is
// ignored; for the stdin source it is drained to EOF. An empty payload
// is not an error.
func (s Source) Read(stdin io.Reader) (string, error) {
	if s.stdin {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read standard input: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("failed to read `%s`: %w", s.path, err)
	}
	return string(data), nil
}

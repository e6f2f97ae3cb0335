// SPDX-License-Identifier: MPL-2.0

package payload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseSource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		arg       string
		wantStdin bool
	}{
		{"dash selects stdin", "-", true},
		{"path stays a path", "config.toml", false},
		{"dash-prefixed path stays a path", "-config.toml", false},
		{"empty string stays a path", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			src := ParseSource(tt.arg)
			if src.IsStdin() != tt.wantStdin {
				t.Errorf("ParseSource(%q).IsStdin() = %v, want %v", tt.arg, src.IsStdin(), tt.wantStdin)
			}
			if src.String() != tt.arg {
				t.Errorf("ParseSource(%q).String() = %q, want %q", tt.arg, src.String(), tt.arg)
			}
		})
	}
}

func TestSourceRead_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[port]\nfamily = \"stm32\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ParseSource(path).Read(strings.NewReader("ignored"))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != "[port]\nfamily = \"stm32\"\n" {
		t.Errorf("Read() = %q, want file contents", got)
	}
}

func TestSourceRead_Stdin(t *testing.T) {
	t.Parallel()

	got, err := ParseSource("-").Read(strings.NewReader("payload from stdin"))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != "payload from stdin" {
		t.Errorf("Read() = %q, want %q", got, "payload from stdin")
	}
}

func TestSourceRead_EmptyStdin(t *testing.T) {
	t.Parallel()

	got, err := ParseSource("-").Read(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != "" {
		t.Errorf("Read() = %q, want empty payload", got)
	}
}

func TestSourceRead_MissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.toml")
	if _, err := ParseSource(path).Read(strings.NewReader("")); err == nil {
		t.Fatal("Read() = nil error, want error for missing file")
	}
}

// SPDX-License-Identifier: MPL-2.0

// Package image converts raw binary firmware images into Intel HEX,
// the format most flashing tools accept directly.
package image

import (
	"fmt"
	"io"
	"os"

	"github.com/marcinbor85/gohex"
)

// hexLineLength is the data bytes per Intel HEX record.
const hexLineLength = 16

// WriteHex writes data as Intel HEX records starting at base.
func WriteHex(w io.Writer, base uint32, data []byte) error {
	mem := gohex.NewMemory()
	if err := mem.AddBinary(base, data); err != nil {
		return fmt.Errorf("failed to place image at %#x: %w", base, err)
	}
	if err := mem.DumpIntelHex(w, hexLineLength); err != nil {
		return fmt.Errorf("failed to write Intel HEX: %w", err)
	}
	return nil
}

// ConvertBinToHex reads the raw binary at binPath and writes its Intel
// HEX rendition to hexPath, placed at base.
func ConvertBinToHex(binPath, hexPath string, base uint32) error {
	data, err := os.ReadFile(binPath)
	if err != nil {
		return fmt.Errorf("failed to read `%s`: %w", binPath, err)
	}

	f, err := os.Create(hexPath)
	if err != nil {
		return fmt.Errorf("failed to create `%s`: %w", hexPath, err)
	}

	if err := WriteHex(f, base, data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

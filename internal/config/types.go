// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrInvalidToolchainConfig is the sentinel error wrapped by InvalidToolchainConfigError.
	ErrInvalidToolchainConfig = errors.New("invalid toolchain config")
	// ErrInvalidPathsConfig is the sentinel error wrapped by InvalidPathsConfigError.
	ErrInvalidPathsConfig = errors.New("invalid paths config")
)

type (
	// Config holds all front-end settings. The zero value is not usable;
	// use DefaultConfig or Load.
	Config struct {
		Toolchain ToolchainConfig `mapstructure:"toolchain" toml:"toolchain"`
		Paths     PathsConfig     `mapstructure:"paths" toml:"paths"`
		Image     ImageConfig     `mapstructure:"image" toml:"image"`
		UI        UIConfig        `mapstructure:"ui" toml:"ui"`
	}

	// ToolchainConfig describes the external compiler driver invocation.
	ToolchainConfig struct {
		// Driver is the compiler driver executable (looked up on PATH).
		Driver string `mapstructure:"driver" toml:"driver"`
		// Channel is the toolchain channel selector passed as the first
		// argument, e.g. "+nightly". Empty means no selector.
		Channel string `mapstructure:"channel" toml:"channel"`
		// Binary is the crate binary built, checked and tested.
		Binary string `mapstructure:"binary" toml:"binary"`
		// Target is the target triple for release builds.
		Target string `mapstructure:"target" toml:"target"`
		// Dir is the project subdirectory the driver runs in.
		Dir string `mapstructure:"dir" toml:"dir"`
		// ConfigEnvVar is the environment variable that carries the
		// configuration payload into the driver process.
		ConfigEnvVar string `mapstructure:"config_env_var" toml:"config_env_var"`
		// Objcopy is the object-copy utility converting ELF to raw binary.
		Objcopy string `mapstructure:"objcopy" toml:"objcopy"`
	}

	// PathsConfig describes the fixed artifact locations.
	PathsConfig struct {
		// ELF is the linked executable the driver produces.
		ELF string `mapstructure:"elf" toml:"elf"`
		// Bin is the raw binary written next to the front-end.
		Bin string `mapstructure:"bin" toml:"bin"`
		// Hex is the Intel HEX image written when requested.
		Hex string `mapstructure:"hex" toml:"hex"`
	}

	// ImageConfig controls optional image post-processing.
	ImageConfig struct {
		// HexBase is the flash base address Intel HEX records start at.
		HexBase uint32 `mapstructure:"hex_base" toml:"hex_base"`
	}

	// UIConfig holds terminal output preferences.
	UIConfig struct {
		Verbose bool `mapstructure:"verbose" toml:"verbose"`
	}

	// InvalidToolchainConfigError reports a toolchain field that is empty
	// or whitespace-only. It wraps ErrInvalidToolchainConfig for errors.Is().
	InvalidToolchainConfigError struct {
		Field string
	}

	// InvalidPathsConfigError reports a paths field that is empty or
	// whitespace-only. It wraps ErrInvalidPathsConfig for errors.Is().
	InvalidPathsConfigError struct {
		Field string
	}
)

// Error returns the error message for InvalidToolchainConfigError.
func (e *InvalidToolchainConfigError) Error() string {
	return fmt.Sprintf("invalid toolchain config: %s must not be empty", e.Field)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidToolchainConfigError) Unwrap() error { return ErrInvalidToolchainConfig }

// Error returns the error message for InvalidPathsConfigError.
func (e *InvalidPathsConfigError) Error() string {
	return fmt.Sprintf("invalid paths config: %s must not be empty", e.Field)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidPathsConfigError) Unwrap() error { return ErrInvalidPathsConfig }

// DefaultConfig returns the built-in settings. They reproduce the
// layout of the Loadstone repository exactly, so the front-end works
// with no settings file present.
func DefaultConfig() *Config {
	toolchain := ToolchainConfig{
		Driver:       "cargo",
		Channel:      "+nightly",
		Binary:       "loadstone",
		Target:       "thumbv7em-none-eabi",
		Dir:          "loadstone",
		ConfigEnvVar: "LOADSTONE_CONFIG",
		Objcopy:      "arm-none-eabi-objcopy",
	}
	return &Config{
		Toolchain: toolchain,
		Paths: PathsConfig{
			ELF: filepath.Join(toolchain.Dir, "target", toolchain.Target, "release", toolchain.Binary),
			Bin: "loadstone.bin",
			Hex: "loadstone.hex",
		},
		Image: ImageConfig{
			// STM32 internal flash base, where Loadstone images are linked.
			HexBase: 0x0800_0000,
		},
	}
}

// Validate checks constraints the TOML decoder cannot express.
func (c *Config) Validate() error {
	toolchainFields := map[string]string{
		"driver":         c.Toolchain.Driver,
		"binary":         c.Toolchain.Binary,
		"target":         c.Toolchain.Target,
		"dir":            c.Toolchain.Dir,
		"config_env_var": c.Toolchain.ConfigEnvVar,
		"objcopy":        c.Toolchain.Objcopy,
	}
	for _, field := range []string{"driver", "binary", "target", "dir", "config_env_var", "objcopy"} {
		if strings.TrimSpace(toolchainFields[field]) == "" {
			return &InvalidToolchainConfigError{Field: field}
		}
	}

	pathFields := map[string]string{
		"elf": c.Paths.ELF,
		"bin": c.Paths.Bin,
		"hex": c.Paths.Hex,
	}
	for _, field := range []string{"elf", "bin", "hex"} {
		if strings.TrimSpace(pathFields[field]) == "" {
			return &InvalidPathsConfigError{Field: field}
		}
	}

	return nil
}

// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "lsbuild"
	// LocalFileName is the settings file looked up in the project directory.
	LocalFileName = "lsbuild.toml"
	// ConfigFileName is the settings file looked up in the config directory.
	ConfigFileName = "config.toml"
)

// ConfigDir returns the lsbuild configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load resolves and loads the front-end settings: built-in defaults,
// overlaid with the settings file if one is found. Resolution order is
// the --config override (must exist), then ./lsbuild.toml, then
// <config dir>/config.toml. A missing settings file is not an error.
func Load() (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("toolchain.driver", defaults.Toolchain.Driver)
	v.SetDefault("toolchain.channel", defaults.Toolchain.Channel)
	v.SetDefault("toolchain.binary", defaults.Toolchain.Binary)
	v.SetDefault("toolchain.target", defaults.Toolchain.Target)
	v.SetDefault("toolchain.dir", defaults.Toolchain.Dir)
	v.SetDefault("toolchain.config_env_var", defaults.Toolchain.ConfigEnvVar)
	v.SetDefault("toolchain.objcopy", defaults.Toolchain.Objcopy)
	v.SetDefault("paths.elf", defaults.Paths.ELF)
	v.SetDefault("paths.bin", defaults.Paths.Bin)
	v.SetDefault("paths.hex", defaults.Paths.Hex)
	v.SetDefault("image.hex_base", defaults.Image.HexBase)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	if configFilePathOverride != "" {
		if !fileExists(configFilePathOverride) {
			return nil, fmt.Errorf("settings file not found: %s", configFilePathOverride)
		}
		if err := loadTOMLIntoViper(v, configFilePathOverride); err != nil {
			return nil, err
		}
	} else if fileExists(LocalFileName) {
		if err := loadTOMLIntoViper(v, LocalFileName); err != nil {
			return nil, err
		}
	} else {
		cfgDir, err := ConfigDir()
		if err != nil {
			return nil, err
		}
		tomlPath := filepath.Join(cfgDir, ConfigFileName)
		if fileExists(tomlPath) {
			if err := loadTOMLIntoViper(v, tomlPath); err != nil {
				return nil, err
			}
		}
		// No settings file found: defaults only.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadTOMLIntoViper parses a TOML settings file and merges its contents
// into Viper, preserving defaults for keys the file does not set.
func loadTOMLIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings map[string]any
	if err := toml.Unmarshal(data, &settings); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := v.MergeConfigMap(settings); err != nil {
		return fmt.Errorf("failed to merge settings: %w", err)
	}

	return nil
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// SPDX-License-Identifier: MPL-2.0

package config

var (
	// configDirOverride allows tests to override the config directory.
	// Necessary because os.UserHomeDir() doesn't reliably respect the
	// HOME environment variable on all platforms (e.g., macOS in CI).
	configDirOverride string

	// configFilePathOverride is set from the --config flag and makes
	// Load use that file exclusively.
	configFilePathOverride string
)

// Reset clears overrides. Call from test cleanup to restore defaults.
func Reset() {
	configDirOverride = ""
	configFilePathOverride = ""
}

// SetConfigDirOverride sets a custom config directory path. Primarily
// intended for testing.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// SetConfigFilePathOverride sets a custom settings file path, taking
// precedence over both the config directory and the local file.
func SetConfigFilePathOverride(path string) {
	configFilePathOverride = path
}

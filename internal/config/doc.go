// SPDX-License-Identifier: MPL-2.0

// Package config loads the front-end's own settings: where the
// toolchain lives, which target triple to build for, and where the
// output images go. The Loadstone configuration payload itself is NOT
// handled here; it is opaque to the front-end and lives in
// internal/payload.
package config

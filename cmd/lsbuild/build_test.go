// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"loadstone-cli/internal/toolchain"
)

func writePayloadFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBuild_Success(t *testing.T) {
	fake, execute := setupCLI(t)
	cfgPath := writePayloadFile(t, "[port]\nfamily = \"stm32\"\n")

	out, err := execute("", "build", cfgPath, "ecdsa-verify", "serial-recovery")
	if err != nil {
		t.Fatalf("build error = %v", err)
	}

	if len(fake.runs) != 1 {
		t.Fatalf("driver ran %d times, want 1", len(fake.runs))
	}
	inv := fake.runs[0]
	if inv.Subcommand != "build" {
		t.Errorf("Subcommand = %q, want %q", inv.Subcommand, "build")
	}
	wantExtra := []string{"--release", "--target=thumbv7em-none-eabi"}
	if !slices.Equal(inv.ExtraArgs, wantExtra) {
		t.Errorf("ExtraArgs = %q, want %q", inv.ExtraArgs, wantExtra)
	}
	if !slices.Equal(inv.Features, []string{"ecdsa-verify", "serial-recovery"}) {
		t.Errorf("Features = %q, want the trailing arguments", inv.Features)
	}
	if inv.Config != "[port]\nfamily = \"stm32\"\n" {
		t.Errorf("Config = %q, want the file contents", inv.Config)
	}

	if len(fake.objcopies) != 1 {
		t.Fatalf("objcopy ran %d times, want 1", len(fake.objcopies))
	}
	wantELF := filepath.Join("loadstone", "target", "thumbv7em-none-eabi", "release", "loadstone")
	if fake.objcopies[0] != [2]string{wantELF, "loadstone.bin"} {
		t.Errorf("objcopy args = %q, want [%q %q]", fake.objcopies[0], wantELF, "loadstone.bin")
	}

	if !strings.Contains(out, "loadstone.bin") {
		t.Errorf("confirmation does not name the output path:\n%s", out)
	}
}

func TestBuild_StdinPayload(t *testing.T) {
	fake, execute := setupCLI(t)

	if _, err := execute("payload via stdin", "build", "-"); err != nil {
		t.Fatalf("build error = %v", err)
	}
	if fake.runs[0].Config != "payload via stdin" {
		t.Errorf("Config = %q, want stdin contents", fake.runs[0].Config)
	}
}

func TestBuild_MissingConfigFile(t *testing.T) {
	fake, execute := setupCLI(t)

	out, err := execute("", "build", "no-such-config.toml")
	if err == nil {
		t.Fatal("build succeeded, want read failure")
	}
	if len(fake.runs) != 0 {
		t.Error("unreadable payload must not spawn any subprocess")
	}
	if !strings.Contains(out+err.Error(), "build:") {
		t.Errorf("diagnostic not prefixed with subcommand: %v", err)
	}
}

func TestBuild_ArityError(t *testing.T) {
	fake, execute := setupCLI(t)

	if _, err := execute("", "build"); err == nil {
		t.Fatal("build without arguments succeeded, want arity error")
	}
	if len(fake.runs) != 0 {
		t.Error("arity error must not spawn any subprocess")
	}
}

func TestBuild_DriverFailure(t *testing.T) {
	fake, execute := setupCLI(t)
	fake.runResult = &toolchain.Result{ExitCode: 101}
	cfgPath := writePayloadFile(t, "cfg")

	out, err := execute("", "build", cfgPath)
	wantExitError(t, err, 1)
	if len(fake.objcopies) != 0 {
		t.Error("objcopy ran after a failed build")
	}
	if strings.Contains(out, "copied to") {
		t.Errorf("confirmation printed despite failure:\n%s", out)
	}
}

func TestBuild_ObjcopyFailure(t *testing.T) {
	fake, execute := setupCLI(t)
	fake.objcopyResult = &toolchain.Result{ExitCode: 1}
	cfgPath := writePayloadFile(t, "cfg")

	out, err := execute("", "build", cfgPath)
	wantExitError(t, err, 1)
	if strings.Contains(out, "copied to") {
		t.Errorf("confirmation printed despite objcopy failure:\n%s", out)
	}
}

func TestBuild_HexImage(t *testing.T) {
	fake, execute := setupCLI(t)
	fake.objcopyWrites = true
	cfgPath := writePayloadFile(t, "cfg")

	out, err := execute("", "build", "--hex", cfgPath)
	if err != nil {
		t.Fatalf("build --hex error = %v", err)
	}

	data, err := os.ReadFile("loadstone.hex")
	if err != nil {
		t.Fatalf("hex image not written: %v", err)
	}
	if !strings.Contains(string(data), ":00000001FF") {
		t.Errorf("hex image missing EOF record:\n%s", data)
	}
	if !strings.Contains(out, "loadstone.hex") {
		t.Errorf("confirmation does not name the hex path:\n%s", out)
	}
}

func TestCheck_EmptyStdinAndNoFeatures(t *testing.T) {
	fake, execute := setupCLI(t)

	if _, err := execute("", "check", "-"); err != nil {
		t.Fatalf("check error = %v", err)
	}

	inv := fake.runs[0]
	if inv.Subcommand != "clippy" {
		t.Errorf("Subcommand = %q, want %q", inv.Subcommand, "clippy")
	}
	if len(inv.ExtraArgs) != 0 {
		t.Errorf("ExtraArgs = %q, want none for check", inv.ExtraArgs)
	}
	if len(inv.Features) != 0 {
		t.Errorf("Features = %q, want empty list", inv.Features)
	}
	if inv.Config != "" {
		t.Errorf("Config = %q, want empty payload", inv.Config)
	}
}

func TestTest_Subcommand(t *testing.T) {
	fake, execute := setupCLI(t)
	cfgPath := writePayloadFile(t, "cfg")

	if _, err := execute("", "test", cfgPath, "boot_metrics"); err != nil {
		t.Fatalf("test error = %v", err)
	}

	inv := fake.runs[0]
	if inv.Subcommand != "test" {
		t.Errorf("Subcommand = %q, want %q", inv.Subcommand, "test")
	}
	if !slices.Equal(inv.Features, []string{"boot_metrics"}) {
		t.Errorf("Features = %q, want [boot_metrics]", inv.Features)
	}
}

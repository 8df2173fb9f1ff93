package builder

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func fakeTool(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindToolchainExplicit(t *testing.T) {
	dir := t.TempDir()
	cc := fakeTool(t, dir, "my-gcc")
	ar := fakeTool(t, dir, "my-ar")

	toolchain, err := FindToolchain(Env{"CC": cc, "AR": ar})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toolchain.CC != cc || toolchain.AR != ar {
		t.Errorf("expected %s/%s, got %s/%s", cc, ar, toolchain.CC, toolchain.AR)
	}
}

func TestFindToolchainDerivedArchiver(t *testing.T) {
	dir := t.TempDir()
	cc := fakeTool(t, dir, "riscv64-unknown-elf-gcc")
	ar := fakeTool(t, dir, "riscv64-unknown-elf-ar")

	// AR is not set; it should be derived from the compiler's prefix.
	toolchain, err := FindToolchain(Env{"CC": cc})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toolchain.AR != ar {
		t.Errorf("expected derived archiver %s, got %s", ar, toolchain.AR)
	}
}

func TestFindToolchainProbesPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("PATH probing test relies on unix executables")
	}

	dir := t.TempDir()
	cc := fakeTool(t, dir, "riscv32-unknown-elf-gcc")
	ar := fakeTool(t, dir, "riscv32-unknown-elf-ar")
	// An unpaired compiler earlier in the probe order must be skipped.
	fakeTool(t, dir, "riscv64-unknown-elf-gcc")

	t.Setenv("PATH", dir)

	toolchain, err := FindToolchain(Env{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toolchain.CC != cc {
		t.Errorf("expected %s, got %s", cc, toolchain.CC)
	}
	if toolchain.AR != ar {
		t.Errorf("expected %s, got %s", ar, toolchain.AR)
	}
}

func TestFindToolchainNotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	if _, err := FindToolchain(Env{}); !errors.Is(err, ErrNoToolchain) {
		t.Fatalf("expected ErrNoToolchain, got %v", err)
	}
}

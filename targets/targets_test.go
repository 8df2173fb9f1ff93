package targets

import (
	"errors"
	"strings"
	"testing"
)

func TestFindByName(t *testing.T) {
	tests := []struct {
		name   string
		lookup string
		triple string
		err    bool
	}{
		{"fullTriple", "riscv32imac-unknown-none-elf", "riscv32imac-unknown-none-elf", false},
		{"alias", "rv32imac", "riscv32imac-unknown-none-elf", false},
		{"aliasUpperCase", "RV32IMAC", "riscv32imac-unknown-none-elf", false},
		{"float", "rv32imafc", "riscv32imafc-unknown-none-elf", false},
		{"sixtyFourBit", "rv64gc", "riscv64gc-unknown-none-elf", false},
		{"unknown", "rv128g", "", true},
		{"empty", "", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			target, err := All().FindByName(tc.lookup)
			if tc.err {
				if !errors.Is(err, ErrUnknownTarget) {
					t.Fatalf("expected ErrUnknownTarget, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if target.Triple != tc.triple {
				t.Errorf("expected %s, got %s", tc.triple, target.Triple)
			}
		})
	}
}

func TestRegistryConsistency(t *testing.T) {
	if len(All()) == 0 {
		t.Fatal("empty target registry")
	}

	seen := map[string]bool{}
	for _, target := range All() {
		if seen[target.Triple] {
			t.Errorf("duplicate triple %s", target.Triple)
		}
		seen[target.Triple] = true

		if len(target.March) == 0 || len(target.Mabi) == 0 {
			t.Errorf("%s: missing march/mabi", target.Triple)
		}

		// Register width of the ABI must match the ISA.
		switch {
		case strings.HasPrefix(target.March, "rv32") && !strings.HasPrefix(target.Mabi, "ilp32"):
			t.Errorf("%s: rv32 ISA with ABI %s", target.Triple, target.Mabi)
		case strings.HasPrefix(target.March, "rv64") && !strings.HasPrefix(target.Mabi, "lp64"):
			t.Errorf("%s: rv64 ISA with ABI %s", target.Triple, target.Mabi)
		}

		if target.ArchiveName() != target.Triple+".a" {
			t.Errorf("%s: unexpected archive name %s", target.Triple, target.ArchiveName())
		}
	}
}

func TestDefault(t *testing.T) {
	target := Default()
	if target.Triple != "riscv32imac-unknown-none-elf" {
		t.Errorf("unexpected default target %s", target.Triple)
	}
	if target.March != "rv32imac" || target.Mabi != "ilp32" {
		t.Errorf("unexpected default profile -march=%s -mabi=%s", target.March, target.Mabi)
	}
}

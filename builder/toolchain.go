package builder

import (
	"os/exec"
	"path/filepath"
	"strings"
)

type Toolchain struct {
	CC string
	AR string
}

// Common file name prefixes of bare-metal RISC-V GCC installs. The 64-bit
// compilers emit rv32 code just fine when told -march/-mabi, so the order
// here only reflects how widespread each packaging is.
var toolchainPrefixes = []string{
	"riscv64-unknown-elf-",
	"riscv32-unknown-elf-",
	"riscv-none-elf-",
	"riscv64-elf-",
}

// FindToolchain locates the cross compiler and archiver. An explicit CC/AR
// from the environment wins; whatever is still missing is probed on PATH as
// a matched gcc/ar pair sharing one prefix.
func FindToolchain(env Env) (Toolchain, error) {
	cc := env.Value("CC")
	ar := env.Value("AR")

	if len(cc) != 0 && len(ar) == 0 {
		// Derive the archiver from the compiler's prefix before falling
		// back to probing.
		if candidate, err := findExecutable(strings.TrimSuffix(cc, "gcc") + "ar"); err == nil {
			ar = candidate
		}
	}

	if len(cc) == 0 || len(ar) == 0 {
		for _, prefix := range toolchainPrefixes {
			foundCC, err := findExecutable(prefix + "gcc")
			if err != nil {
				continue
			}
			foundAR, err := findExecutable(prefix + "ar")
			if err != nil {
				// A compiler without its archiver is no use here.
				continue
			}
			if len(cc) == 0 {
				cc = foundCC
			}
			if len(ar) == 0 {
				ar = foundAR
			}
			break
		}
	}

	if len(cc) == 0 || len(ar) == 0 {
		return Toolchain{}, ErrNoToolchain
	}

	cc, err := findExecutable(cc)
	if err != nil {
		return Toolchain{}, err
	}
	ar, err = findExecutable(ar)
	if err != nil {
		return Toolchain{}, err
	}

	return Toolchain{CC: cc, AR: ar}, nil
}

func findExecutable(cmd string) (string, error) {
	fname, err := exec.LookPath(cmd)
	if err == nil {
		fname, err = filepath.Abs(fname)
	}
	return fname, err
}

package builder

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// assemble compiles every source into a relocatable object in the output
// directory and returns the object paths in source order. The first failing
// source aborts the run.
func assemble(ctx context.Context, toolchain Toolchain, opts Options) (objects []string, err error) {
	for _, fname := range opts.Sources {
		if _, err := os.Stat(fname); err != nil {
			return nil, errors.Join(ErrMissingSource, err)
		}

		out := filepath.Join(opts.OutputDir, objectName(fname))

		args := []string{
			"-c",
			fmt.Sprintf("-march=%s", opts.Target.March),
			fmt.Sprintf("-mabi=%s", opts.Target.Mabi),
		}
		args = append(args, opts.ExtraFlags...)
		args = append(args, fname, "-o", out)

		log.Debug("assembling", "source", fname, "object", out, "march", opts.Target.March, "mabi", opts.Target.Mabi)

		cmd := exec.CommandContext(ctx, toolchain.CC, args...)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return nil, errors.Join(ErrAssembleFailed, err)
		}

		objects = append(objects, out)
	}
	return objects, nil
}

// objectName maps a source path to its object file name. Only the base name
// matters; objects are transient and never collide because each source in a
// build has a distinct stem.
func objectName(source string) string {
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".o"
}

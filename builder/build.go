package builder

import (
	"context"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"rvpack/targets"
)

// Build runs the full archive sequence for the target in opts: remove
// stale archives, assemble every source, insert the objects into a fresh
// archive with a symbol index, and delete the intermediate objects. The
// first failing step aborts the run; the filesystem is left as-is for the
// caller (typically a larger build system) to retry.
func Build(ctx context.Context, opts Options) error {
	return BuildTargets(ctx, opts, targets.Targets{opts.Target})
}

// BuildAll builds one archive per registered target.
func BuildAll(ctx context.Context, opts Options) error {
	return BuildTargets(ctx, opts, targets.All())
}

// BuildTargets cleans the output directory once, then runs the
// assemble/archive sequence for each listed target in order. Everything
// but the ISA profile and archive name is shared. An explicit archive name
// is honored only for a single target; several targets in one directory
// have to keep their triple-derived names apart.
func BuildTargets(ctx context.Context, opts Options, list targets.Targets) error {
	if err := clean(opts.OutputDir); err != nil {
		return err
	}
	if len(list) > 1 {
		opts.Archive = ""
	}
	for _, target := range list {
		opts.Target = target
		if err := build(ctx, opts); err != nil {
			return err
		}
	}
	return nil
}

// clean ensures the output directory exists and holds no archive from an
// earlier run. The archiver appends to whatever exists, so a stale archive
// would accumulate members across runs.
func clean(outputDir string) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}
	return removeGlob(outputDir, "*.a")
}

func build(ctx context.Context, opts Options) error {
	toolchain, err := FindToolchain(opts.Environment)
	if err != nil {
		return err
	}

	objects, err := assemble(ctx, toolchain, opts)
	if err != nil {
		return err
	}

	name := opts.Archive
	if len(name) == 0 {
		name = opts.Target.ArchiveName()
	}
	path := filepath.Join(opts.OutputDir, name)

	if err := archive(ctx, toolchain, path, objects); err != nil {
		return err
	}
	if err := verifyArchive(path, objects); err != nil {
		return err
	}

	if !opts.KeepObjects {
		if err := removeObjects(objects); err != nil {
			return err
		}
	}

	log.Info("built archive", "archive", path, "target", opts.Target.Triple)
	return nil
}

package builder

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"
)

// archive inserts the objects into the named archive with "crs" semantics:
// create the archive if needed, replace members of the same name, and write
// a symbol index for the linker.
func archive(ctx context.Context, toolchain Toolchain, path string, objects []string) error {
	args := append([]string{"crs", path}, objects...)

	log.Debug("archiving", "archive", path, "objects", len(objects))

	cmd := exec.CommandContext(ctx, toolchain.AR, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return errors.Join(ErrArchiveFailed, err)
	}
	return nil
}

// verifyArchive checks that the archive's members are exactly the objects
// just assembled. Anything else means a stale archive survived the clean
// step or the archiver misbehaved.
func verifyArchive(path string, objects []string) error {
	members, err := ArchiveMembers(path)
	if err != nil {
		return err
	}

	var got []string
	for _, member := range members {
		got = append(got, member.Name)
	}
	want := make([]string, len(objects))
	for i, object := range objects {
		want[i] = filepath.Base(object)
	}

	sort.Strings(got)
	sort.Strings(want)
	if len(got) != len(want) {
		return errors.Join(ErrWrongMembers, fmt.Errorf("want %v, got %v", want, got))
	}
	for i := range want {
		if got[i] != want[i] {
			return errors.Join(ErrWrongMembers, fmt.Errorf("want %v, got %v", want, got))
		}
	}
	return nil
}

// removeObjects deletes the intermediate object files. The objects were
// created moments ago, so a missing one is an error, not a no-op.
func removeObjects(objects []string) error {
	for _, object := range objects {
		if err := os.Remove(object); err != nil {
			return err
		}
	}
	return nil
}

// Clean removes every archive and object file from the output directory.
func Clean(outputDir string) error {
	if err := removeGlob(outputDir, "*.a"); err != nil {
		return err
	}
	return removeGlob(outputDir, "*.o")
}

// removeGlob deletes all files in dir matching pattern. No matches is not
// an error.
func removeGlob(dir, pattern string) error {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return err
	}
	for _, match := range matches {
		log.Debug("removing", "file", match)
		if err := os.Remove(match); err != nil {
			return err
		}
	}
	return nil
}

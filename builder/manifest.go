package builder

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultManifest is the manifest file looked up in the working directory
// when none is named explicitly.
const DefaultManifest = "rvpack.yaml"

// Manifest is the optional per-project build description. Every field is
// optional; command-line flags override whatever it sets.
type Manifest struct {
	// Sources lists the assembly files, in archive order.
	Sources []string `yaml:"sources"`
	// OutputDir is where the archive lands.
	OutputDir string `yaml:"outdir"`
	// Archive overrides the archive file name for single-target builds.
	Archive string `yaml:"archive"`
	// Targets names the triples (or aliases) to build for.
	Targets []string `yaml:"targets"`
	// Flags are extra assembler flags.
	Flags []string `yaml:"flags"`
}

// LoadManifest reads a manifest file. A missing file is not an error; the
// second return reports whether one was found.
func LoadManifest(path string) (Manifest, bool, error) {
	var m Manifest

	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return m, false, nil
	}
	if err != nil {
		return m, false, err
	}

	if err := yaml.Unmarshal(b, &m); err != nil {
		return m, false, err
	}
	return m, true, nil
}

package builder

import "rvpack/targets"

type Options struct {
	// Sources are the assembly files compiled into the archive, in order.
	Sources []string
	// OutputDir receives the archive; intermediate objects live there too.
	OutputDir string
	// Archive overrides the archive file name. Empty means the target
	// triple with a ".a" suffix.
	Archive string
	// Target selects the -march/-mabi profile.
	Target targets.TargetInfo
	// ExtraFlags are appended to the assembler invocation verbatim.
	ExtraFlags []string
	// KeepObjects skips deleting the intermediate object files. Debugging
	// aid only; a normal run leaves none behind.
	KeepObjects bool
	Environment Env
}

// DefaultSources is what gets assembled when neither the manifest nor the
// command line names any sources.
var DefaultSources = []string{"asm.S"}

// DefaultOutputDir is where archives land unless overridden.
const DefaultOutputDir = "bin"

package targets

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

//go:embed targets.yaml
var rawTargets []byte

var targets Targets

var ErrUnknownTarget = errors.New("unknown target")

func All() Targets {
	return targets
}

type Targets []TargetInfo

// TargetInfo describes one supported bare-metal profile: the target triple
// the archive is named after and the ISA/ABI strings handed to the
// assembler.
type TargetInfo struct {
	Triple  string   `yaml:"triple"`
	March   string   `yaml:"march"`
	Mabi    string   `yaml:"mabi"`
	Aliases []string `yaml:"aliases"`
}

// ArchiveName returns the file name of the static archive built for this
// target.
func (t TargetInfo) ArchiveName() string {
	return t.Triple + ".a"
}

func (t TargetInfo) String() string {
	return fmt.Sprintf("%s (-march=%s -mabi=%s)", t.Triple, t.March, t.Mabi)
}

// FindByName resolves a target by its full triple or one of its aliases.
func (t Targets) FindByName(name string) (TargetInfo, error) {
	name = strings.ToLower(name)
	for _, target := range t {
		if target.Triple == name {
			return target, nil
		}
		if slices.Contains(target.Aliases, name) {
			return target, nil
		}
	}
	return TargetInfo{}, errors.Join(ErrUnknownTarget, fmt.Errorf("%q is not one of %s", name, strings.Join(t.Triples(), ", ")))
}

// Triples lists every known target triple in registry order.
func (t Targets) Triples() []string {
	result := make([]string, len(t))
	for i, target := range t {
		result[i] = target.Triple
	}
	return result
}

// Default returns the profile archives are built for when no target is
// requested.
func Default() TargetInfo {
	target, err := targets.FindByName("riscv32imac-unknown-none-elf")
	if err != nil {
		panic(err)
	}
	return target
}

func init() {
	var t struct {
		Elements []TargetInfo `yaml:"targets"`
	}
	if err := yaml.Unmarshal(rawTargets, &t); err != nil {
		panic(err)
	}

	targets = t.Elements
}

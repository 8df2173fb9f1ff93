package builder

import (
	"fmt"
	"os"
	"sort"
)

type Env map[string]string

// Environment captures the process environment variables the builder
// consults. RVPACK_* variables win over their generic counterparts so a
// host build's CC does not leak into the cross build.
func Environment() Env {
	return map[string]string{
		"CC": getenv("RVPACK_CC", getenv("CC", "")),
		"AR": getenv("RVPACK_AR", getenv("AR", "")),
	}
}

func (e Env) Value(key string) string {
	if v, ok := e[key]; ok {
		return v
	}
	return ""
}

func (e Env) List() []string {
	var result []string
	for key, value := range e {
		result = append(result, fmt.Sprintf("%s=%s", key, value))
	}
	sort.Strings(result)
	return result
}

func getenv(key, _default string) (value string) {
	value = os.Getenv(key)
	if len(value) == 0 {
		value = _default
	}
	return value
}

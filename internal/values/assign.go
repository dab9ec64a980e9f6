package values

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AbdelazizMoustafa10m/Stencil/internal/template"
)

// Assignments parses command-line bindings. Each entry of sets has the form
// name=value and binds a placeholder value; the value may be empty or
// contain further '=' characters. Each entry of flags is name or
// name=bool and binds a predicate; a bare name means true.
func Assignments(sets, flags []string) (template.Context, error) {
	vals := make(map[string]string, len(sets))
	for _, s := range sets {
		name, value, ok := strings.Cut(s, "=")
		if !ok {
			return template.Context{}, fmt.Errorf("invalid value assignment %q: want name=value", s)
		}
		if name = strings.TrimSpace(name); name == "" {
			return template.Context{}, fmt.Errorf("invalid value assignment %q: empty name", s)
		}
		vals[name] = value
	}

	fl := make(map[string]bool, len(flags))
	for _, s := range flags {
		name, raw, hasValue := strings.Cut(s, "=")
		if name = strings.TrimSpace(name); name == "" {
			return template.Context{}, fmt.Errorf("invalid flag assignment %q: empty name", s)
		}
		b := true
		if hasValue {
			var err error
			if b, err = strconv.ParseBool(strings.TrimSpace(raw)); err != nil {
				return template.Context{}, fmt.Errorf("invalid flag assignment %q: %q is not a boolean", s, raw)
			}
		}
		fl[name] = b
	}

	return template.NewContext(vals, fl)
}

// SPDX-License-Identifier: AGPL-3.0-or-later

package rules

import (
	"fmt"

	"github.com/datavet/datavet/internal/engine"
	"github.com/datavet/datavet/internal/rulespec"
)

// builders maps a directive name to its rule constructor. The directive's
// value is the scalar argument from the spec, e.g. `not_null: id`.
var builders = map[string]func(arg string) engine.Rule{
	"not_null": func(arg string) engine.Rule { return NewNotNull(arg) },
}

// FromSpec interprets a validated spec's directives into executable rules,
// preserving directive order. A directive mapping may carry several keys;
// each becomes one rule.
func FromSpec(spec *rulespec.Spec) ([]engine.Rule, error) {
	var out []engine.Rule
	for i, directive := range spec.Validations {
		for _, name := range directive.Keys() {
			build, ok := builders[name]
			if !ok {
				return nil, fmt.Errorf("validation entry at index %d: unknown directive %q", i, name)
			}

			value, _ := directive.Get(name)
			arg, ok := value.(rulespec.Scalar)
			if !ok || arg == "" {
				return nil, fmt.Errorf("validation entry at index %d: directive %q requires a field name", i, name)
			}
			out = append(out, build(string(arg)))
		}
	}
	return out, nil
}

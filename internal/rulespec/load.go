// SPDX-License-Identifier: AGPL-3.0-or-later

package rulespec

import (
	"os"
)

// Load reads, parses and validates the rule spec file at path.
//
// File-access failures propagate as the underlying os error, distinct from
// ErrInvalidSpec, so callers can tell a missing file from bad content.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(string(data))
	if err != nil {
		return nil, err
	}
	return Validate(doc)
}

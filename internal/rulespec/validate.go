// SPDX-License-Identifier: AGPL-3.0-or-later

package rulespec

import (
	"sort"
	"strings"
)

// requiredFields are the root keys every rule spec must carry. Everything
// else at the root passes through as metadata.
var requiredFields = []string{"version", "data_source", "validations"}

// Validate checks a parsed root mapping against the rule-spec semantics and
// builds the normalized Spec. Checks run in a fixed order so a document with
// several problems always reports the same one first.
func Validate(doc *Mapping) (*Spec, error) {
	var missing []string
	for _, field := range requiredFields {
		if !doc.Has(field) {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		joined := strings.Join(missing, ", ")
		return nil, fieldErr(joined, "missing required field(s): %s", joined)
	}

	version, err := requireString(doc, "version")
	if err != nil {
		return nil, err
	}
	dataSource, err := requireString(doc, "data_source")
	if err != nil {
		return nil, err
	}

	raw, _ := doc.Get("validations")
	seq, ok := raw.(Sequence)
	if !ok {
		return nil, fieldErr("validations", "field 'validations' must be a list")
	}
	if len(seq) == 0 {
		return nil, fieldErr("validations", "validations list must not be empty")
	}

	validations := make([]*Mapping, 0, len(seq))
	for i, entry := range seq {
		m, ok := entry.(*Mapping)
		if !ok {
			return nil, entryErr(i)
		}
		validations = append(validations, m)
	}

	metadata := NewMapping()
	for _, key := range doc.Keys() {
		if key == "version" || key == "data_source" || key == "validations" {
			continue
		}
		value, _ := doc.Get(key)
		metadata.Set(key, value)
	}

	return &Spec{
		Version:     version,
		DataSource:  dataSource,
		Validations: validations,
		Metadata:    metadata,
	}, nil
}

func requireString(doc *Mapping, field string) (string, error) {
	value, _ := doc.Get(field)
	s, ok := value.(Scalar)
	if !ok || s == "" {
		return "", fieldErr(field, "field '%s' must be a non-empty string", field)
	}
	return string(s), nil
}

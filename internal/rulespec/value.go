// SPDX-License-Identifier: AGPL-3.0-or-later

// Package rulespec loads and validates rule specification files.
//
// A rule specification is written in a restricted YAML subset: a top-level
// mapping of scalar fields, a validations list of mappings, and optional
// nested mappings carried through as metadata. Processing is split into two
// pure stages: Parse turns text into a value tree, Validate checks the tree
// and builds the normalized Spec. Neither stage holds state between calls,
// so concurrent parses on different inputs are safe.
package rulespec

// Value is one node of the parsed value tree. The set of implementations is
// closed: Scalar, Sequence and *Mapping.
type Value interface {
	isValue()
}

// Scalar is a leaf text value. Quoting has already been stripped by the
// parser; the string is the literal content.
type Scalar string

func (Scalar) isValue() {}

// Sequence is an ordered list of values.
type Sequence []Value

func (Sequence) isValue() {}

// Mapping is a string-keyed mapping that preserves insertion order. Order is
// irrelevant for lookup but kept so that metadata passes through a parse and
// re-encode deterministically.
type Mapping struct {
	keys   []string
	values map[string]Value
}

func (*Mapping) isValue() {}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{values: make(map[string]Value)}
}

// Set stores v under key. Setting an existing key replaces the value and
// keeps the key's original position.
func (m *Mapping) Set(key string, v Value) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (Value, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Mapping) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Keys returns the keys in insertion order. The caller must not mutate the
// returned slice.
func (m *Mapping) Keys() []string {
	return m.keys
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	return len(m.keys)
}

// Spec is a normalized, validated rule specification. It is immutable after
// construction; ownership passes entirely to the caller.
type Spec struct {
	Version     string
	DataSource  string
	Validations []*Mapping
	Metadata    *Mapping
}

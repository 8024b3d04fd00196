// SPDX-License-Identifier: AGPL-3.0-or-later

package rulespec

import (
	"strings"
)

// Encode renders a value tree back into the restricted-YAML subset Parse
// accepts. Parsing the output of Encode yields an equal tree, which makes it
// the canonical form for displaying a normalized document.
func Encode(doc *Mapping) string {
	var b strings.Builder
	encodeMapping(&b, doc, 0)
	return b.String()
}

func encodeMapping(b *strings.Builder, m *Mapping, indent int) {
	pad := strings.Repeat(" ", indent)
	for _, key := range m.Keys() {
		value, _ := m.Get(key)
		switch v := value.(type) {
		case Scalar:
			b.WriteString(pad + key + ": " + encodeScalar(string(v)) + "\n")
		case *Mapping:
			b.WriteString(pad + key + ":\n")
			encodeMapping(b, v, indent+2)
		case Sequence:
			b.WriteString(pad + key + ":\n")
			encodeSequence(b, v, indent+2)
		}
	}
}

func encodeSequence(b *strings.Builder, seq Sequence, indent int) {
	pad := strings.Repeat(" ", indent)
	for _, item := range seq {
		switch v := item.(type) {
		case Scalar:
			b.WriteString(pad + "- " + encodeScalar(string(v)) + "\n")
		case *Mapping:
			b.WriteString(pad + "-\n")
			encodeMapping(b, v, indent+2)
		case Sequence:
			// Nested bare sequences are not representable in the subset and
			// never come out of Parse; skip rather than emit garbage.
		}
	}
}

// encodeScalar quotes a scalar only when the bare text would not survive a
// re-parse: empty strings, structural whitespace at either end, an outer
// quote pair that decoding would strip, or a colon, which a list item would
// otherwise re-parse as a mapping line. Decoding removes exactly one outer
// pair, so wrapping in double quotes is always reversible.
func encodeScalar(s string) string {
	if s == "" || s != strings.TrimSpace(s) || hasQuotePair(s) || strings.Contains(s, ":") {
		return `"` + s + `"`
	}
	return s
}

func hasQuotePair(s string) bool {
	if len(s) < 2 {
		return false
	}
	return (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'')
}

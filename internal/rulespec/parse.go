// SPDX-License-Identifier: AGPL-3.0-or-later

package rulespec

import (
	"strings"
)

// maxDepth bounds block nesting so adversarial input cannot exhaust the
// stack. Real rule specs stay in single digits.
const maxDepth = 64

// Parse parses a restricted-YAML document into its root mapping.
//
// The accepted grammar is a top-level mapping of `key: value` lines at
// indentation 0. A key with no inline value opens a nested mapping block two
// spaces deeper, except for the validations key, which opens a list of
// `- item` entries. Indentation is counted in raw spaces; every nesting step
// is exactly two. Blank lines and full-line # comments are ignored.
func Parse(text string) (*Mapping, error) {
	lines := normalizeLines(text)
	if len(lines) == 0 {
		return nil, parseErr("yaml content is empty", "")
	}

	root := NewMapping()
	idx := 0

	for idx < len(lines) {
		line := lines[idx]
		if strings.HasPrefix(line, "-") {
			return nil, parseErr("top-level yaml must be a mapping", line)
		}

		key, value, hasValue, indent, err := splitMappingLine(line)
		if err != nil {
			return nil, err
		}
		if indent != 0 {
			return nil, parseErr("top-level keys must not be indented", line)
		}

		switch {
		case hasValue:
			root.Set(key, Scalar(value))
			idx++
		case key == "validations":
			items, next, err := parseList(lines, idx+1, indent+2, 1)
			if err != nil {
				return nil, err
			}
			root.Set(key, items)
			idx = next
		default:
			nested, next, err := parseNestedMapping(lines, idx+1, indent+2, 1)
			if err != nil {
				return nil, err
			}
			root.Set(key, nested)
			idx = next
		}
	}

	return root, nil
}

// normalizeLines right-trims every line and drops blank lines and full-line
// comments. The surviving order is the only structural signal the parsers
// have.
func normalizeLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimRight(line, " \t\r")
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(strings.TrimLeft(trimmed, " \t"), "#") {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

// indentWidth counts leading spaces. Tabs in the indentation are rejected
// outright rather than being assigned a guessed width.
func indentWidth(line string) (int, error) {
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ':
		case '\t':
			return 0, parseErr("tab character in indentation", line)
		default:
			return i, nil
		}
	}
	return len(line), nil
}

// decodeScalar strips one matching pair of surrounding double or single
// quotes. No escape processing is performed; the interior is kept verbatim.
func decodeScalar(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// splitMappingLine decomposes one non-list line into its indentation width,
// key, and optional inline value. The first colon separates key from value;
// an empty remainder means the line opens a nested block.
func splitMappingLine(line string) (key, value string, hasValue bool, indent int, err error) {
	indent, err = indentWidth(line)
	if err != nil {
		return "", "", false, 0, err
	}

	rest := line[indent:]
	colon := strings.Index(rest, ":")
	if colon < 0 {
		return "", "", false, 0, parseErr("invalid mapping line", line)
	}

	key = strings.TrimSpace(rest[:colon])
	if key == "" {
		return "", "", false, 0, parseErr("empty key in line", line)
	}

	remainder := strings.TrimSpace(rest[colon+1:])
	if remainder == "" {
		return key, "", false, indent, nil
	}
	return key, decodeScalar(remainder), true, indent, nil
}

// parseNestedMapping consumes the contiguous run of lines at exactly the
// given indentation, starting at start. A shallower line ends the block and
// is left for the caller; a deeper line that is not exactly at the expected
// width is an error. Returns the mapping and the index of the first
// unconsumed line.
func parseNestedMapping(lines []string, start, indent, depth int) (*Mapping, int, error) {
	if depth > maxDepth {
		return nil, 0, parseErr("nesting too deep", lines[start-1])
	}

	mapping := NewMapping()
	idx := start

	for idx < len(lines) {
		line := lines[idx]
		width, err := indentWidth(line)
		if err != nil {
			return nil, 0, err
		}
		if width < indent {
			break
		}
		if width != indent {
			return nil, 0, parseErr("unexpected indentation at line", line)
		}

		key, value, hasValue, _, err := splitMappingLine(line)
		if err != nil {
			return nil, 0, err
		}
		if hasValue {
			mapping.Set(key, Scalar(value))
			idx++
			continue
		}

		nested, next, err := parseNestedMapping(lines, idx+1, indent+2, depth+1)
		if err != nil {
			return nil, 0, err
		}
		mapping.Set(key, nested)
		idx = next
	}

	if mapping.Len() == 0 {
		return nil, 0, parseErr("expected a mapping block but found none", "")
	}
	return mapping, idx, nil
}

// parseList consumes the contiguous run of `-` lines indented at least to
// the given width, starting at start. A bare marker opens a nested mapping
// two spaces deeper, which is where parseList and parseNestedMapping recurse
// into each other. Inline item text is a one-entry mapping when it is itself
// a `key: value` line, otherwise a scalar. Returns the sequence and the
// index of the first unconsumed line.
func parseList(lines []string, start, indent, depth int) (Sequence, int, error) {
	if depth > maxDepth {
		return nil, 0, parseErr("nesting too deep", lines[start-1])
	}

	var items Sequence
	idx := start

	for idx < len(lines) {
		line := lines[idx]
		width, err := indentWidth(line)
		if err != nil {
			return nil, 0, err
		}
		if width < indent {
			break
		}
		rest := line[width:]
		if !strings.HasPrefix(rest, "-") {
			break
		}

		content := strings.TrimSpace(rest[1:])
		if content == "" {
			nested, next, err := parseNestedMapping(lines, idx+1, indent+2, depth+1)
			if err != nil {
				return nil, 0, err
			}
			items = append(items, nested)
			idx = next
			continue
		}

		item, next, err := parseListItem(lines, idx, content, indent, depth)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
		idx = next
	}

	if len(items) == 0 {
		return nil, 0, parseErr("expected at least one list item", "")
	}
	return items, idx, nil
}

// parseListItem interprets the inline text of one list item. A fully quoted
// item is always a scalar, even when it contains a colon. Unquoted text with
// a colon is a mapping line: `- key: value` yields a one-entry mapping, and
// `- key:` opens a nested mapping block four spaces past the list indent as
// that entry's value. Anything else is a bare scalar.
func parseListItem(lines []string, idx int, content string, indent, depth int) (Value, int, error) {
	if hasQuotePair(content) || !strings.Contains(content, ":") {
		return Scalar(decodeScalar(content)), idx + 1, nil
	}

	key, value, hasValue, _, err := splitMappingLine(content)
	if err != nil {
		return nil, 0, err
	}

	item := NewMapping()
	if hasValue {
		item.Set(key, Scalar(value))
		return item, idx + 1, nil
	}

	nested, next, err := parseNestedMapping(lines, idx+1, indent+4, depth+1)
	if err != nil {
		return nil, 0, err
	}
	item.Set(key, nested)
	return item, next, nil
}

package rulespec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{
			name: "minimal spec",
			text: "version: 1.0\ndata_source: orders\nvalidations:\n  - not_null: id\n",
		},
		{
			name: "nested metadata and block items",
			text: strings.Join([]string{
				"version: 1.0",
				"data_source: orders",
				"owner:",
				"  team: data-platform",
				"  escalation:",
				"    primary: alice",
				"validations:",
				"  -",
				"    rule: range",
				"    field: amount",
				"  - plain_item",
				"  - not_null: id",
				"",
			}, "\n"),
		},
		{
			name: "quoted scalars",
			text: "version: \"1.0\"\ndata_source: 'orders'\nnote: \"\"\nvalidations:\n  - not_null: id\n",
		},
		{
			name: "colon-bearing scalar list item",
			text: "version: 1.0\ndata_source: orders\nvalidations:\n  - \"not_null: id\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, err := Parse(tt.text)
			require.NoError(t, err)

			encoded := Encode(first)
			second, err := Parse(encoded)
			require.NoError(t, err)

			assert.Equal(t, toAny(first), toAny(second))
			assert.Equal(t, first.Keys(), second.Keys())

			// A second cycle must be a fixed point.
			assert.Equal(t, encoded, Encode(second))
		})
	}
}

func TestEncodeKeepsColonScalarItemsScalar(t *testing.T) {
	doc, err := Parse("version: 1.0\ndata_source: orders\nvalidations:\n  - \"not_null: id\"\n")
	require.NoError(t, err)

	reparsed, err := Parse(Encode(doc))
	require.NoError(t, err)

	value, ok := reparsed.Get("validations")
	require.True(t, ok)
	seq, ok := value.(Sequence)
	require.True(t, ok)
	require.Len(t, seq, 1)

	// The quoted colon scalar must not come back as a one-entry mapping.
	require.IsType(t, Scalar(""), seq[0])
	assert.Equal(t, Scalar("not_null: id"), seq[0])
}

func TestEncodeScalarQuoting(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text stays bare", in: "orders", want: "orders"},
		{name: "empty string is quoted", in: "", want: `""`},
		{name: "leading space is quoted", in: " x", want: `" x"`},
		{name: "wrapping quotes re-quoted", in: `"1.0"`, want: `""1.0""`},
		{name: "single quote pair re-quoted", in: "'a'", want: `"'a'"`},
		{name: "interior quote stays bare", in: `it"s`, want: `it"s`},
		{name: "colon is quoted", in: "not_null: id", want: `"not_null: id"`},
		{name: "trailing colon is quoted", in: "label:", want: `"label:"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := encodeScalar(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, decodeScalar(got))
		})
	}
}

package literal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kvshell/internal/value"
)

func TestDecode_Scalars(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected value.Value
	}{
		{"integer", "42", value.Integer(42)},
		{"negative integer", "-17", value.Integer(-17)},
		{"integer with spaces", "  7  ", value.Integer(7)},
		{"max int32", "2147483647", value.Integer(2147483647)},
		{"min int32", "-2147483648", value.Integer(-2147483648)},
		{"true", "true", value.Boolean(true)},
		{"false upper", "FALSE", value.Boolean(false)},
		{"mixed case bool", "True", value.Boolean(true)},
		{"quoted text", `"hello"`, value.Text("hello")},
		{"quoted keeps inner whitespace", `"  spaced  "`, value.Text("  spaced  ")},
		{"quoted number is text", `"42"`, value.Text("42")},
		{"quoted bool is text", `"true"`, value.Text("true")},
		{"quoted no escapes", `"a\nb"`, value.Text(`a\nb`)},
		{"quoted commas", `"a, b"`, value.Text("a, b")},
		{"empty quoted", `""`, value.Text("")},
		{"bare word", "hello", value.Text("hello")},
		{"bare phrase", "hello world", value.Text("hello world")},
		{"bare with one quote", `"abc`, value.Text("abc")},
		{"lone quote", `"`, value.Text("")},
		{"integer-like word", "12abc", value.Text("12abc")},
		{"digit underscores are text", "1_000", value.Text("1_000")},
		{"underscore float is text", "1_0.5", value.Text("1_0.5")},
		{"hex float is text", "0x1p3", value.Text("0x1p3")},
		{"upper hex float is text", "0X1P-2", value.Text("0X1P-2")},
		{"signed hex float is text", "-0x1p3", value.Text("-0x1p3")},
		{"long s is not false", "fal\u017fe", value.Text("fal\u017fe")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.input)
			require.NoError(t, err)
			assert.True(t, value.Equal(tt.expected, got), "got %s, want %s", got, tt.expected)
			assert.Equal(t, tt.expected.Kind(), got.Kind())
		})
	}
}

func TestDecode_Aggregates(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty mapping", "{}", "{}"},
		{"mapping", `{"subkey1": "value1", "subkey2": 100}`, `{"subkey1": Text("value1"), "subkey2": Integer(100)}`},
		{"mapping bare keys", `{b: 2, a: 1}`, `{"a": Integer(1), "b": Integer(2)}`},
		{"mapping value with colon", `{"url": "http://example.com"}`, `{"url": Text("http://example.com")}`},
		{"mapping duplicate keys", `{"a":1,"a":2}`, `{"a": Integer(2)}`},
		{"empty sequence", "[]", "[]"},
		{"sequence", "[1, two, true]", `[Integer(1), Text("two"), Boolean(true)]`},
		{"sequence keeps duplicates", "[1,1,1]", "[Integer(1), Integer(1), Integer(1)]"},
		{"empty set", "<>", "{}"},
		{"set", "<3, 1, 2, 1>", "{Integer(1), Integer(2), Integer(3)}"},
		{"set mixed kinds", "<true, 1, a>", `{Text("a"), Integer(1), Boolean(true)}`},
		{"close before open stays one element", "[1], [2]", `[Text("1], [2")]`},
		{"reversed angle brackets", "[>a<]", `[Text(">a<")]`},
		{
			"nested",
			`{"x":[1,2,<true,false>]}`,
			`{"x": [Integer(1), Integer(2), {Boolean(false), Boolean(true)}]}`,
		},
		{
			"deep nesting",
			`[[[{"a": <[1], [1]>}]]]`,
			`[[[{"a": {[Integer(1)]}}]]]`,
		},
		{
			"mixed bracket kinds",
			`[<1, 2>, {"a": [3]}]`,
			`[{Integer(1), Integer(2)}, {"a": [Integer(3)]}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got.String())
		})
	}
}

func TestDecode_Failures(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{"blank", "   ", ErrEmpty},
		{"float", "3.14", ErrFloat},
		{"negative float", "-0.5", ErrFloat},
		{"exponent", "1e10", ErrFloat},
		{"int32 overflow reads as float", "2147483648", ErrFloat},
		{"float overflow", "1e400", ErrFloat},
		{"nan", "NaN", ErrFloat},
		{"infinity", "inf", ErrFloat},
		{"pair without colon", `{"a" 1}`, ErrMissingColon},
		{"unbalanced mapping", `{"a": [1}`, ErrUnbalanced},
		{"unbalanced sequence", "[1, [2]", ErrUnbalanced},
		{"closing below zero at end", "[1], 2]", ErrUnbalanced},
		{"float inside sequence", "[1, 2.5]", ErrFloat},
		{"float inside set", "<1.0>", ErrFloat},
		{"float inside mapping", `{"pi": 3.14}`, ErrFloat},
		{"mapping missing value", `{"a": }`, ErrEmpty},
		{"empty element", "[1,,2]", ErrEmptyElement},
		{"trailing comma", "<1,>", ErrEmptyElement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expected)
			assert.ErrorIs(t, err, ErrUnsupported)

			_, ok := Parse(tt.input)
			assert.False(t, ok)
		})
	}
}

func TestParse_MappingKeyUniqueness(t *testing.T) {
	v, ok := Parse(`{"a":1,"a":2}`)
	require.True(t, ok)
	assert.Equal(t, 1, v.Len())

	got, found := v.Lookup("a")
	require.True(t, found)
	assert.True(t, value.Equal(value.Integer(2), got))
}

func TestParse_SetDeduplication(t *testing.T) {
	v, ok := Parse("<1,1,2>")
	require.True(t, ok)
	assert.Equal(t, value.KindSet, v.Kind())
	assert.Equal(t, 2, v.Len())
}

func TestParse_Deterministic(t *testing.T) {
	inputs := []string{
		`{"b": <3, 1>, "a": [x, "y", {z: false}]}`,
		"<[2], [1], {}, a, 1, true>",
	}

	for _, input := range inputs {
		first, ok := Parse(input)
		require.True(t, ok)
		second, ok := Parse(input)
		require.True(t, ok)

		assert.True(t, value.Equal(first, second))
		assert.Equal(t, first.String(), second.String())
		assert.Equal(t, first.Literal(), second.Literal())
	}
}

func TestParse_RoundTrip(t *testing.T) {
	inputs := []string{
		"42",
		"-1",
		"TRUE",
		"hello",
		`"hello world"`,
		`""`,
		`"007"`,
		"{}",
		"[]",
		"<>",
		`{"subkey1": "value1", "subkey2": 100}`,
		`{"x":[1,2,<true,false>]}`,
		`<[1, 2], [1, 2], {"k": <a, b, a>}, 0, no>`,
		`[[[], <>, {}], {"nested": {"deeper": [true, "false"]}}]`,
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			v, ok := Parse(input)
			require.True(t, ok)

			canonical := v.Literal()
			reparsed, ok := Parse(canonical)
			require.True(t, ok, "canonical form %q must parse", canonical)
			assert.True(t, value.Equal(v, reparsed), "%s != %s", v, reparsed)

			// The canonical form is a fixed point.
			assert.Equal(t, canonical, reparsed.Literal())
		})
	}
}

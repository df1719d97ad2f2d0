// Package literal decodes the right-hand side of set/update commands into
// values.
//
// Grammar, tried in order on the trimmed text (first match wins):
//
//	integer   -?digits that fit in 32 bits         42, -7
//	boolean   true | false, any case                True
//	quoted    "..." taken verbatim, no escapes      "hello, world"
//	mapping   { key: literal, ... }                 {"a": 1, b: [2]}
//	sequence  [ literal, ... ]                      [1, 1, "x"]
//	set       < literal, ... >                      <3, 1, 3>
//	bare text anything that is not a float          hello
//
// Text that parses as a floating point number is rejected rather than
// stored as text.
package literal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"kvshell/internal/value"
)

// ErrUnsupported is wrapped by every error Decode returns. Malformed and
// unsupported literals are one outcome for callers.
var ErrUnsupported = errors.New("unsupported literal")

// Failure reasons. They are kept apart only for logging and tests.
var (
	ErrEmpty        = fmt.Errorf("%w: empty literal", ErrUnsupported)
	ErrFloat        = fmt.Errorf("%w: floating point numbers are not supported", ErrUnsupported)
	ErrUnbalanced   = fmt.Errorf("%w: unbalanced brackets", ErrUnsupported)
	ErrEmptyElement = fmt.Errorf("%w: empty element", ErrUnsupported)
	ErrMissingColon = fmt.Errorf("%w: mapping entry without ':'", ErrUnsupported)
)

// Parse decodes text into a value. It reports false for any literal Decode
// rejects.
func Parse(text string) (value.Value, bool) {
	v, err := Decode(text)
	if err != nil {
		return value.Value{}, false
	}
	return v, true
}

// Decode decodes text into a value, or returns an error wrapping
// ErrUnsupported that names the reason.
func Decode(text string) (value.Value, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return value.Value{}, ErrEmpty
	}

	if n, err := strconv.ParseInt(s, 10, 32); err == nil {
		return value.Integer(int32(n)), nil
	}

	if asciiEqualFold(s, "true") {
		return value.Boolean(true), nil
	}
	if asciiEqualFold(s, "false") {
		return value.Boolean(false), nil
	}

	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return value.Text(s[1 : len(s)-1]), nil
	}

	if enclosed(s, '{', '}') {
		return decodeMapping(s[1 : len(s)-1])
	}
	if enclosed(s, '[', ']') {
		elems, err := decodeElements(s[1 : len(s)-1])
		if err != nil {
			return value.Value{}, err
		}
		return value.Sequence(elems...), nil
	}
	if enclosed(s, '<', '>') {
		elems, err := decodeElements(s[1 : len(s)-1])
		if err != nil {
			return value.Value{}, err
		}
		return value.Set(elems...), nil
	}

	if looksLikeFloat(s) {
		return value.Value{}, fmt.Errorf("%w: %q", ErrFloat, s)
	}
	return value.Text(trimQuotes(s)), nil
}

func decodeMapping(interior string) (value.Value, error) {
	pairs, err := Split(interior)
	if err != nil {
		return value.Value{}, fmt.Errorf("mapping: %w", err)
	}

	entries := make([]value.Entry, 0, len(pairs))
	for _, pair := range pairs {
		rawKey, rawValue, found := strings.Cut(pair, ":")
		if !found {
			return value.Value{}, fmt.Errorf("%w: %q", ErrMissingColon, pair)
		}
		v, err := Decode(rawValue)
		if err != nil {
			return value.Value{}, fmt.Errorf("mapping key %q: %w", trimQuotes(strings.TrimSpace(rawKey)), err)
		}
		entries = append(entries, value.Entry{
			Key:   trimQuotes(strings.TrimSpace(rawKey)),
			Value: v,
		})
	}
	return value.Mapping(entries...), nil
}

func decodeElements(interior string) ([]value.Value, error) {
	segments, err := Split(interior)
	if err != nil {
		return nil, err
	}

	elems := make([]value.Value, 0, len(segments))
	for i, segment := range segments {
		v, err := Decode(segment)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		elems = append(elems, v)
	}
	return elems, nil
}

func enclosed(s string, opening, closing byte) bool {
	return len(s) >= 2 && s[0] == opening && s[len(s)-1] == closing
}

// asciiEqualFold compares s and word ignoring ASCII case only. Unicode
// folds such as U+017F to 's' do not match.
func asciiEqualFold(s, word string) bool {
	if len(s) != len(word) {
		return false
	}
	for i := 0; i < len(s); i++ {
		a, b := s[i], word[i]
		if 'A' <= a && a <= 'Z' {
			a += 'a' - 'A'
		}
		if 'A' <= b && b <= 'Z' {
			b += 'a' - 'A'
		}
		if a != b {
			return false
		}
	}
	return true
}

// looksLikeFloat reports whether s reads as a plain decimal 64-bit float,
// including values that overflow to infinity. Go-only syntax (digit
// underscores, hex mantissas) is not a float here.
func looksLikeFloat(s string) bool {
	if strings.Contains(s, "_") {
		return false
	}
	unsigned := strings.TrimLeft(s, "+-")
	if len(s)-len(unsigned) <= 1 && len(unsigned) >= 2 &&
		unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X') {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil || errors.Is(err, strconv.ErrRange)
}

func trimQuotes(s string) string {
	return strings.Trim(s, `"`)
}

// Package value defines the tagged union of values held by the kvshell store.
// Values are immutable once built: aggregates own their children and are
// normalised at construction time (mappings by key, sets by the total order).
package value

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Kind identifies the variant of a Value. The declaration order is the
// precedence used by Compare.
type Kind uint8

const (
	KindText Kind = iota
	KindInteger
	KindBoolean
	KindMapping
	KindSequence
	KindSet
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindInteger:
		return "Integer"
	case KindBoolean:
		return "Boolean"
	case KindMapping:
		return "Mapping"
	case KindSequence:
		return "Sequence"
	case KindSet:
		return "UniqueSet"
	default:
		return "unknown"
	}
}

// ErrWrongKind is returned by the typed accessors when the value holds a different variant.
var ErrWrongKind = errors.New("wrong value kind")

// Value is a scalar or an aggregate of Values. The zero Value is Text("").
type Value struct {
	kind Kind

	text    string
	integer int32
	boolean bool

	// entries is sorted by key with unique keys (KindMapping).
	entries []Entry
	// elems holds Sequence elements in insertion order, or Set elements
	// sorted and unique.
	elems []Value
}

// Entry is one key/value pair of a Mapping.
type Entry struct {
	Key   string
	Value Value
}

// ============================================================
// Constructors
// ============================================================

// Text creates a text value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Integer creates an integer value.
func Integer(n int32) Value {
	return Value{kind: KindInteger, integer: n}
}

// Boolean creates a boolean value.
func Boolean(b bool) Value {
	return Value{kind: KindBoolean, boolean: b}
}

// Mapping creates a mapping from entries. When a key appears more than once
// the last entry wins. Entries are stored in ascending key order.
func Mapping(entries ...Entry) Value {
	byKey := make(map[string]Value, len(entries))
	for _, e := range entries {
		byKey[e.Key] = e.Value
	}
	sorted := make([]Entry, 0, len(byKey))
	for k, v := range byKey {
		sorted = append(sorted, Entry{Key: k, Value: v})
	}
	slices.SortFunc(sorted, func(a, b Entry) int {
		return strings.Compare(a.Key, b.Key)
	})
	return Value{kind: KindMapping, entries: sorted}
}

// Sequence creates an ordered list of values.
func Sequence(elems ...Value) Value {
	return Value{kind: KindSequence, elems: slices.Clone(elems)}
}

// Set creates a unique set. Structurally equal elements collapse into one
// and the remaining elements are kept in the order defined by Compare.
func Set(elems ...Value) Value {
	sorted := slices.Clone(elems)
	slices.SortStableFunc(sorted, Compare)
	sorted = slices.CompactFunc(sorted, Equal)
	return Value{kind: KindSet, elems: sorted}
}

// ============================================================
// Accessors
// ============================================================

// Kind returns the variant of v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsAggregate reports whether v is a Mapping, Sequence or Set.
func (v Value) IsAggregate() bool {
	return v.kind >= KindMapping
}

// AsText returns the text of a Text value.
func (v Value) AsText() (string, error) {
	if v.kind != KindText {
		return "", wrongKind(KindText, v.kind)
	}
	return v.text, nil
}

// AsInteger returns the number held by an Integer value.
func (v Value) AsInteger() (int32, error) {
	if v.kind != KindInteger {
		return 0, wrongKind(KindInteger, v.kind)
	}
	return v.integer, nil
}

// AsBoolean returns the flag held by a Boolean value.
func (v Value) AsBoolean() (bool, error) {
	if v.kind != KindBoolean {
		return false, wrongKind(KindBoolean, v.kind)
	}
	return v.boolean, nil
}

// Entries returns a copy of a Mapping's entries in key order.
func (v Value) Entries() ([]Entry, error) {
	if v.kind != KindMapping {
		return nil, wrongKind(KindMapping, v.kind)
	}
	return slices.Clone(v.entries), nil
}

// Elements returns a copy of the elements of a Sequence (insertion order)
// or a Set (canonical order).
func (v Value) Elements() ([]Value, error) {
	if v.kind != KindSequence && v.kind != KindSet {
		return nil, fmt.Errorf("%w: expected Sequence or UniqueSet, got %s", ErrWrongKind, v.kind)
	}
	return slices.Clone(v.elems), nil
}

// Len returns the number of children of an aggregate, 0 for scalars.
func (v Value) Len() int {
	switch v.kind {
	case KindMapping:
		return len(v.entries)
	case KindSequence, KindSet:
		return len(v.elems)
	default:
		return 0
	}
}

// Lookup returns the value stored under key in a Mapping.
func (v Value) Lookup(key string) (Value, bool) {
	if v.kind != KindMapping {
		return Value{}, false
	}
	i, found := slices.BinarySearchFunc(v.entries, key, func(e Entry, k string) int {
		return strings.Compare(e.Key, k)
	})
	if !found {
		return Value{}, false
	}
	return v.entries[i].Value, true
}

// Contains reports whether a Set holds an element equal to elem, or a
// Sequence holds it at any position.
func (v Value) Contains(elem Value) bool {
	switch v.kind {
	case KindSet:
		_, found := slices.BinarySearchFunc(v.elems, elem, Compare)
		return found
	case KindSequence:
		return slices.ContainsFunc(v.elems, func(e Value) bool { return Equal(e, elem) })
	default:
		return false
	}
}

func wrongKind(want, got Kind) error {
	return fmt.Errorf("%w: expected %s, got %s", ErrWrongKind, want, got)
}

package value

import (
	"cmp"
	"strings"
)

// Compare defines the total order over values. Variants are ordered by Kind
// (Text < Integer < Boolean < Mapping < Sequence < UniqueSet); values of the
// same variant compare by their natural order, aggregates element by element
// with the shorter prefix first. It returns -1, 0 or +1.
func Compare(a, b Value) int {
	if a.kind != b.kind {
		return cmp.Compare(a.kind, b.kind)
	}

	switch a.kind {
	case KindText:
		return strings.Compare(a.text, b.text)
	case KindInteger:
		return cmp.Compare(a.integer, b.integer)
	case KindBoolean:
		return compareBool(a.boolean, b.boolean)
	case KindMapping:
		return compareEntries(a.entries, b.entries)
	case KindSequence, KindSet:
		return compareElems(a.elems, b.elems)
	default:
		return 0
	}
}

// Equal reports structural equality.
func Equal(a, b Value) bool {
	return Compare(a, b) == 0
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

// Entries are already in key order, so comparing them pairwise compares the
// mappings key-wise.
func compareEntries(a, b []Entry) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := strings.Compare(a[i].Key, b[i].Key); c != 0 {
			return c
		}
		if c := Compare(a[i].Value, b[i].Value); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareElems(a, b []Value) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

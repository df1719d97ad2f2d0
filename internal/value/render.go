package value

import (
	"strconv"
	"strings"
)

// ============================================================
// Canonical rendering
// ============================================================
//
// Two deterministic forms:
//   - debug form (String): Text("a"), Integer(1), Boolean(true),
//     {"k": v} for mappings, [v, ...] for sequences, {v, ...} for sets.
//   - literal form (Literal): the text accepted by the literal parser,
//     "a", 1, true, {"k": v}, [v, ...], <v, ...>.
// Mappings render in key order and sets in the total order, so equal
// values always render identically.

// String returns the debug form of v.
func (v Value) String() string {
	var sb strings.Builder
	writeDebug(&sb, v)
	return sb.String()
}

// Literal returns the canonical literal form of v.
func (v Value) Literal() string {
	var sb strings.Builder
	writeLiteral(&sb, v)
	return sb.String()
}

func writeDebug(sb *strings.Builder, v Value) {
	switch v.kind {
	case KindText:
		sb.WriteString("Text(")
		sb.WriteString(strconv.Quote(v.text))
		sb.WriteByte(')')
	case KindInteger:
		sb.WriteString("Integer(")
		sb.WriteString(strconv.FormatInt(int64(v.integer), 10))
		sb.WriteByte(')')
	case KindBoolean:
		sb.WriteString("Boolean(")
		sb.WriteString(strconv.FormatBool(v.boolean))
		sb.WriteByte(')')
	case KindMapping:
		sb.WriteByte('{')
		for i, e := range v.entries {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Quote(e.Key))
			sb.WriteString(": ")
			writeDebug(sb, e.Value)
		}
		sb.WriteByte('}')
	case KindSequence:
		writeDebugElems(sb, '[', ']', v.elems)
	case KindSet:
		writeDebugElems(sb, '{', '}', v.elems)
	}
}

func writeDebugElems(sb *strings.Builder, opening, closing byte, elems []Value) {
	sb.WriteByte(opening)
	for i, e := range elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeDebug(sb, e)
	}
	sb.WriteByte(closing)
}

func writeLiteral(sb *strings.Builder, v Value) {
	switch v.kind {
	case KindText:
		// No escaping: the parser takes quoted text verbatim.
		sb.WriteByte('"')
		sb.WriteString(v.text)
		sb.WriteByte('"')
	case KindInteger:
		sb.WriteString(strconv.FormatInt(int64(v.integer), 10))
	case KindBoolean:
		sb.WriteString(strconv.FormatBool(v.boolean))
	case KindMapping:
		sb.WriteByte('{')
		for i, e := range v.entries {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteByte('"')
			sb.WriteString(e.Key)
			sb.WriteString(`": `)
			writeLiteral(sb, e.Value)
		}
		sb.WriteByte('}')
	case KindSequence:
		writeLiteralElems(sb, '[', ']', v.elems)
	case KindSet:
		writeLiteralElems(sb, '<', '>', v.elems)
	}
}

func writeLiteralElems(sb *strings.Builder, opening, closing byte, elems []Value) {
	sb.WriteByte(opening)
	for i, e := range elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeLiteral(sb, e)
	}
	sb.WriteByte(closing)
}

package jsonvalue

import (
	"strconv"
	"strings"

	"github.com/ogoodman/gotable/repr"
)

// Encode renders v in the canonical text format: Object keys in stored
// (sorted) order, minimal string escaping (backslash and double-quote
// only), Binary via the byte-repr helper, and the distinct "infinity"
// literal for the Infinity variant.
func Encode(v Value) string {
	var b strings.Builder
	encodeInto(&b, v)
	return b.String()
}

func encodeInto(b *strings.Builder, v Value) {
	switch v.kind {
	case KindNull:
		b.WriteString("null")
	case KindBool:
		if v.b {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindInt:
		b.WriteString(strconv.FormatInt(v.i, 10))
	case KindFloat:
		b.WriteString(formatFloat(v.f))
	case KindBinary:
		b.WriteString(repr.Repr(v.bin))
	case KindString:
		b.WriteString(quoteString(v.s))
	case KindArray:
		b.WriteByte('[')
		for i, elem := range v.arr {
			if i > 0 {
				b.WriteString(", ")
			}
			encodeInto(b, elem)
		}
		b.WriteByte(']')
	case KindObject:
		b.WriteByte('{')
		for i, m := range v.obj {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(quoteString(m.Key))
			b.WriteString(": ")
			encodeInto(b, m.Value)
		}
		b.WriteByte('}')
	case KindInfinity:
		b.WriteString("infinity")
	}
}

// quoteString escapes only backslash and double-quote, matching the
// format's minimal escaping (no \n, \uXXXX, or other standard escapes).
func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, ch := range s {
		if ch == '\\' || ch == '"' {
			b.WriteByte('\\')
		}
		b.WriteRune(ch)
	}
	b.WriteByte('"')
	return b.String()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

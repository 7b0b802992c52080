// Package repr renders a byte slice as a quoted, mostly-readable string for
// diagnostics: printable ASCII passes through unescaped, everything else
// becomes a backslash followed by two uppercase hex digits.
package repr

import "strings"

const hexDigits = "0123456789ABCDEF"

// Repr returns v wrapped in double quotes, with each byte outside the
// printable ASCII range 32-126 rendered as \HH.
func Repr(v []byte) string {
	var b strings.Builder
	b.WriteByte('"')

	for _, c := range v {
		if c < 32 || c > 126 {
			b.WriteByte('\\')
			b.WriteByte(hexDigits[c>>4])
			b.WriteByte(hexDigits[c&0xF])
		} else {
			b.WriteByte(c)
		}
	}

	b.WriteByte('"')

	return b.String()
}

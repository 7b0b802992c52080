package codec

import (
	"io"
	"math"

	"github.com/ogoodman/gotable/endian"
)

// canonicalNaNBits is the IEEE-754 binary64 bit pattern this package always
// emits for NaN: sign 0, biased exponent 0x7FF, mantissa 1<<51 (a quiet
// NaN). Go's own NaN-producing arithmetic doesn't always agree on payload
// bits, so EncodeFloat64 normalizes every NaN to this one form.
const canonicalNaNBits uint64 = 0x7FF8000000000000

// EncodeFloat64Size is always 8: Binary64 has no variable-length encoding.
func EncodeFloat64Size(float64) int { return 8 }

// EncodeFloat64 writes the portable IEEE-754 binary64 byte form of n to w:
// 1 sign bit, 11-bit biased exponent, 52-bit mantissa, big-endian across the
// 8 bytes. This is a fixed serialization of the value's bit pattern, not a
// raw memory copy, so it is identical across host architectures regardless
// of native endianness. Every NaN — whatever its payload — is normalized to
// the canonical quiet-NaN bit pattern before serialization.
func EncodeFloat64(w io.Writer, n float64) (int, error) {
	bits := math.Float64bits(n)
	if math.IsNaN(n) {
		bits = canonicalNaNBits
	}

	var buf [8]byte
	endian.GetBigEndianEngine().PutUint64(buf[:], bits)

	return w.Write(buf[:])
}

// DecodeFloat64 parses 8 big-endian IEEE-754 binary64 bytes into a float64.
// v must be at least 8 bytes long.
func DecodeFloat64(v []byte) float64 {
	bits := endian.GetBigEndianEngine().Uint64(v)

	return math.Float64frombits(bits)
}

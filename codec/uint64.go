package codec

import (
	"errors"
	"io"

	"github.com/ogoodman/gotable/endian"
	"github.com/ogoodman/gotable/errs"
)

// Tag bytes for the U64 encoding. tagNull (0xFF) is reserved for OptU64's
// None and never occurs as the leading byte of a plain-value U64.
const (
	tagU64Short uint8 = 0xFD
	tagU64Long  uint8 = 0xFE
	tagNull     uint8 = 0xFF
)

// EncodeU64Size returns the exact byte count EncodeU64 would write for n,
// without allocating.
func EncodeU64Size(n uint64) int {
	switch {
	case n < uint64(tagU64Short):
		return 1
	case n < 0x10000:
		return 3
	default:
		return 9
	}
}

// EncodeU64 writes the self-delimiting big-endian encoding of n to w:
//
//   - n < 0xFD:               one byte, the value itself.
//   - 0xFD <= n < 0x10000:    [0xFD, high, low].
//   - n >= 0x10000:           [0xFE, 8 big-endian bytes].
func EncodeU64(w io.Writer, n uint64) (int, error) {
	engine := endian.GetBigEndianEngine()

	var buf [9]byte
	switch {
	case n < uint64(tagU64Short):
		buf[0] = byte(n)
		return w.Write(buf[:1])
	case n < 0x10000:
		buf[0] = tagU64Short
		engine.PutUint16(buf[1:3], uint16(n))
		return w.Write(buf[:3])
	default:
		buf[0] = tagU64Long
		engine.PutUint64(buf[1:9], n)
		return w.Write(buf[:9])
	}
}

// DecodeU64 reads one U64 from r and adds the bytes consumed to stats.
//
// It returns errs.ErrEOF if r yields nothing before the tag byte, the
// underlying error if the tag read fails for any other reason,
// errs.ErrPartialRead if a multi-byte body is truncated, and errs.ErrNull if
// the tag byte is the reserved 0xFF — callers decoding an OptU64 or a table
// value treat that as "no value present".
func DecodeU64(r io.Reader, stats *DecodeStats) (uint64, error) {
	engine := endian.GetBigEndianEngine()

	var tag [1]byte
	n, err := io.ReadFull(r, tag[:])
	if err != nil {
		if n == 0 && errors.Is(err, io.EOF) {
			return 0, errs.ErrEOF
		}
		return 0, err
	}
	stats.Read++

	switch {
	case tag[0] < tagU64Short:
		return uint64(tag[0]), nil
	case tag[0] == tagU64Short:
		var body [2]byte
		nr, err := io.ReadFull(r, body[:])
		stats.Read += nr
		if err != nil {
			stats.Discarded += nr
			return 0, errs.ErrPartialRead
		}

		return uint64(engine.Uint16(body[:])), nil
	case tag[0] == tagU64Long:
		var body [8]byte
		nr, err := io.ReadFull(r, body[:])
		stats.Read += nr
		if err != nil {
			stats.Discarded += nr
			return 0, errs.ErrPartialRead
		}

		return engine.Uint64(body[:]), nil
	default: // tagNull
		return 0, errs.ErrNull
	}
}

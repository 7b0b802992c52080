package codec

import (
	"errors"
	"io"

	"github.com/ogoodman/gotable/endian"
	"github.com/ogoodman/gotable/errs"
)

// Tag bytes for the I64 encoding. Neither ever occurs as a one-byte value:
// the one-byte range is -0x7E..0x7F, which excludes both -0x7F (0x81 as an
// int8) and -0x80 (0x80 as an int8).
const (
	tagI64Short uint8 = 0x81
	tagI64Long  uint8 = 0x80
)

// EncodeI64Size returns the exact byte count EncodeI64 would write for n.
func EncodeI64Size(n int64) int {
	switch {
	case -0x7F < n && n < 0x80:
		return 1
	case -0x8000 <= n && n < 0x8000:
		return 3
	default:
		return 9
	}
}

// EncodeI64 writes the self-delimiting two's-complement big-endian encoding
// of n to w:
//
//   - -0x7E <= n <= 0x7F:          one byte.
//   - -0x8000 <= n < 0x8000:       [0x81, high, low].
//   - else:                       [0x80, 8 big-endian bytes].
func EncodeI64(w io.Writer, n int64) (int, error) {
	engine := endian.GetBigEndianEngine()

	var buf [9]byte
	switch {
	case -0x7F < n && n < 0x80:
		buf[0] = byte(int8(n))
		return w.Write(buf[:1])
	case -0x8000 <= n && n < 0x8000:
		buf[0] = tagI64Short
		engine.PutUint16(buf[1:3], uint16(int16(n)))
		return w.Write(buf[:3])
	default:
		buf[0] = tagI64Long
		engine.PutUint64(buf[1:9], uint64(n))
		return w.Write(buf[:9])
	}
}

// DecodeI64 reads one I64 from r and adds the bytes consumed to stats.
//
// It returns errs.ErrEOF if r yields nothing before the tag byte, the
// underlying error if the tag read fails for any other reason, and
// errs.ErrPartialRead if a multi-byte body is truncated. Unlike U64, I64 has
// no reserved null tag.
func DecodeI64(r io.Reader, stats *DecodeStats) (int64, error) {
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
	case int8(tag[0]) > -0x7F:
		return int64(int8(tag[0])), nil
	case tag[0] == tagI64Short:
		var body [2]byte
		nr, err := io.ReadFull(r, body[:])
		stats.Read += nr
		if err != nil {
			stats.Discarded += nr
			return 0, errs.ErrPartialRead
		}

		return int64(int16(engine.Uint16(body[:]))), nil
	default: // tagI64Long
		var body [8]byte
		nr, err := io.ReadFull(r, body[:])
		stats.Read += nr
		if err != nil {
			stats.Discarded += nr
			return 0, errs.ErrPartialRead
		}

		return int64(engine.Uint64(body[:])), nil
	}
}

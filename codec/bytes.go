package codec

import (
	"io"

	"github.com/ogoodman/gotable/errs"
)

// EncodeBytesSize returns the exact byte count EncodeBytes would write for b.
func EncodeBytesSize(b []byte) int {
	return EncodeU64Size(uint64(len(b))) + len(b)
}

// EncodeBytes writes b to w as a U64 length prefix followed by the raw
// bytes. An empty slice encodes as the single zero byte.
func EncodeBytes(w io.Writer, b []byte) (int, error) {
	n, err := EncodeU64(w, uint64(len(b)))
	if err != nil {
		return n, err
	}
	if len(b) == 0 {
		return n, nil
	}

	m, err := w.Write(b)
	return n + m, err
}

// DecodeBytes reads a length-prefixed byte string from r.
//
// Because a table value is encoded as Bytes but a tombstone is encoded as
// the bare reserved tag [0xFF], the length prefix is itself a U64 decode:
// DecodeBytes propagates errs.ErrNull unchanged when the length prefix is
// the reserved tag, so callers that need tombstone semantics (see the table
// package) can distinguish "no value" from a zero-length value.
func DecodeBytes(r io.Reader, stats *DecodeStats) ([]byte, error) {
	pos := stats.Read
	n, err := DecodeU64(r, stats)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, n)
	if n == 0 {
		return buf, nil
	}

	nr, err := io.ReadFull(r, buf)
	stats.Read += nr
	if err != nil {
		stats.Discarded += stats.Read - pos
		return nil, errs.ErrPartialRead
	}

	return buf, nil
}

package codec

import (
	"errors"
	"io"

	"github.com/ogoodman/gotable/errs"
)

// EncodeOptU64Size returns the exact byte count EncodeOptU64 would write.
// n == nil means None.
func EncodeOptU64Size(n *uint64) int {
	if n == nil {
		return 1
	}

	return EncodeU64Size(*n)
}

// EncodeOptU64 writes an optional U64 to w: None encodes as the single
// reserved byte 0xFF, Some(n) encodes as a plain U64.
func EncodeOptU64(w io.Writer, n *uint64) (int, error) {
	if n == nil {
		return w.Write([]byte{tagNull})
	}

	return EncodeU64(w, *n)
}

// DecodeOptU64 reads an optional U64 from r. It returns (nil, nil) on the
// reserved null tag rather than propagating errs.ErrNull, since None is a
// legitimate value of this type rather than a decode failure.
func DecodeOptU64(r io.Reader, stats *DecodeStats) (*uint64, error) {
	n, err := DecodeU64(r, stats)
	if err != nil {
		if errors.Is(err, errs.ErrNull) {
			return nil, nil
		}

		return nil, err
	}

	return &n, nil
}

package codec

import "io"

// KeyCodec encodes and decodes values used as Table keys. The table engine
// (see the table package) is generic over any key type with a total order
// and a KeyCodec; this module ships Int64Key, the only concrete key codec
// exercised by the rest of the repository.
type KeyCodec[K any] interface {
	Encode(w io.Writer, k K) (int, error)
	EncodeSize(k K) int
	Decode(r io.Reader, stats *DecodeStats) (K, error)
}

// Int64Key is the KeyCodec for int64 keys, encoded with the I64 codec.
type Int64Key struct{}

func (Int64Key) Encode(w io.Writer, k int64) (int, error) { return EncodeI64(w, k) }

func (Int64Key) EncodeSize(k int64) int { return EncodeI64Size(k) }

func (Int64Key) Decode(r io.Reader, stats *DecodeStats) (int64, error) {
	return DecodeI64(r, stats)
}

package section

import (
	"github.com/ogoodman/gotable/compress"
	"github.com/ogoodman/gotable/endian"
	"github.com/ogoodman/gotable/errs"
)

// Header is the fixed-size preamble of a table snapshot file. It precedes
// a single payload: the table's sorted (key, value) stream, compressed
// with the algorithm named by Compression.
type Header struct {
	Version     uint8
	Compression compress.Type
	// RecordCount is the number of (key, value) pairs in the payload.
	RecordCount uint64
	// Checksum is the xxHash64 of the uncompressed payload.
	Checksum uint64
}

// NewHeader builds a Header for a snapshot with recordCount entries,
// compressed with the given algorithm.
func NewHeader(compression compress.Type, recordCount uint64, checksum uint64) Header {
	return Header{
		Version:     SnapshotVersion1,
		Compression: compression,
		RecordCount: recordCount,
		Checksum:    checksum,
	}
}

// Bytes serializes h into a HeaderSize-byte big-endian buffer.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	engine := endian.GetBigEndianEngine()

	engine.PutUint16(b[0:2], SnapshotMagic)
	b[2] = h.Version
	b[3] = uint8(h.Compression)
	// b[4:8] reserved, left zero.
	engine.PutUint64(b[8:16], h.RecordCount)
	engine.PutUint64(b[16:24], h.Checksum)

	return b
}

// ParseHeader parses a HeaderSize-byte buffer produced by Header.Bytes.
func ParseHeader(data []byte) (Header, error) {
	if len(data) != HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	engine := endian.GetBigEndianEngine()

	magic := engine.Uint16(data[0:2])
	if magic != SnapshotMagic {
		return Header{}, errs.ErrBadMagic
	}

	version := data[2]
	if version != SnapshotVersion1 {
		return Header{}, errs.ErrUnsupportedVersion
	}

	return Header{
		Version:     version,
		Compression: compress.Type(data[3]),
		RecordCount: engine.Uint64(data[8:16]),
		Checksum:    engine.Uint64(data[16:24]),
	}, nil
}

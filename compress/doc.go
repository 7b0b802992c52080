// Package compress provides compression and decompression codecs for table snapshot exports.
//
// The table engine's on-disk log format (see the table package) is a fixed binary
// layout and is never compressed: its byte-for-byte content is part of the engine's
// contract. Compression in this package instead applies to the optional snapshot
// export/import feature, which archives a table's current key/value state into a
// single file for backup or transfer.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
//   - None: no compression, fastest, largest output
//   - Zstd: best compression ratio, moderate speed
//   - S2: balanced compression and speed
//   - LZ4: very fast decompression, moderate compression
//
// # Selection guide
//
// Use Zstd for cold-storage snapshot archives where size matters most, S2 or LZ4
// when snapshots are exported frequently and CPU time is the scarcer resource, and
// None when the snapshot will be compressed again by the transport that carries it.
package compress

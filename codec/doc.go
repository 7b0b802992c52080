// Package codec implements the self-delimiting binary encoding shared by the
// on-disk table log and the length-prefixed wire protocol: unsigned and
// signed 64-bit integers, length-prefixed byte strings, an optional-u64
// variant, and the portable IEEE-754 binary64 byte form.
//
// Every stream decoder in this package (DecodeU64, DecodeI64, DecodeBytes,
// DecodeOptU64) follows the same contract: it takes an
// io.Reader and a *DecodeStats accumulator, and returns either a decoded
// value or one of the sentinel errors in the errs package — errs.ErrEOF (no
// bytes consumed), errs.ErrPartialRead (some bytes consumed, frame
// incomplete), or errs.ErrNull (the reserved 0xFF tag was read where a value
// was required). DecodeStats.Read counts every byte pulled from the reader;
// DecodeStats.Discarded counts bytes belonging to a partially-consumed,
// abandoned record. DecodeFloat64 is the exception: it reads a fixed
// 8-byte slice and returns no error and no stats.
//
// Multi-byte integer bodies are always big-endian, via endian.GetBigEndianEngine,
// regardless of host architecture — this is a wire/disk format, not an
// in-memory layout.
package codec

// Package endian provides the byte-order engine used to pack and unpack the
// multi-byte integer bodies of the codec's varint encoding and the section
// header: both formats fix those bodies to big-endian regardless of host
// architecture.
package endian

import "encoding/binary"

// EndianEngine is the subset of encoding/binary's ByteOrder this module
// exercises (reading and writing fixed-width unsigned integers).
type EndianEngine interface {
	binary.ByteOrder
}

// GetBigEndianEngine returns the big-endian engine used by the codec and
// section packages for all on-disk and wire-format multi-byte integers.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

package section

// SnapshotMagic identifies a gotable snapshot file; it is the first two
// bytes of every header.
const SnapshotMagic uint16 = 0x6754 // "gT"

// SnapshotVersion1 is the only header layout defined so far.
const SnapshotVersion1 uint8 = 1

// HeaderSize is the fixed byte length of Header.Bytes.
const HeaderSize = 24

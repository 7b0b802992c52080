// Package section defines the fixed-size header written at the start of a
// table snapshot file: a magic number, a format version, the compression
// algorithm applied to the payload that follows, a record count, and a
// checksum of the uncompressed payload.
package section

// Package errs collects the sentinel errors shared across the codec, table,
// and jsonvalue packages, following the same errors.New/fmt.Errorf("%w: ...")
// convention used throughout this module: callers match with errors.Is and
// add context with fmt.Errorf("%w: ...", errs.ErrXxx) at the call site.
package errs

import "errors"

// Codec errors, returned while decoding a U64/I64/Bytes/OptU64/Binary64 value.
var (
	// ErrEOF means the reader produced no bytes at all before the attempted
	// read; it is the clean terminator for a stream of records.
	ErrEOF = errors.New("codec: EOF at record boundary")

	// ErrPartialRead means some bytes were consumed but not enough to
	// complete the value; the stream is left in an ambiguous state.
	ErrPartialRead = errors.New("codec: partial read, value truncated")

	// ErrNull means a U64 decode (including a Bytes length prefix) hit the
	// reserved 0xFF tag where a required value was expected. DecodeOptU64
	// does not return it: it maps the tag to None.
	ErrNull = errors.New("codec: null tag encountered")
)

// Table errors.
var (
	// ErrNotWritable is returned by Insert/Remove/Compact on a table opened
	// read-only via Open.
	ErrNotWritable = errors.New("table: not writable, opened read-only")

	// ErrDecodeError reports a codec error encountered while draining the log
	// on open. It is wrapped as fmt.Errorf("%w: %v", ErrDecodeError, cause):
	// errors.Is matches ErrDecodeError, and the underlying codec error
	// appears only in the message text.
	ErrDecodeError = errors.New("table: failed to decode log record")
)

// Snapshot header errors.
var (
	// ErrInvalidHeaderSize is returned when a snapshot header buffer is not
	// exactly section.HeaderSize bytes long.
	ErrInvalidHeaderSize = errors.New("section: invalid header size")

	// ErrBadMagic is returned when a snapshot header's magic number does not
	// match section.SnapshotMagic.
	ErrBadMagic = errors.New("section: bad magic number")

	// ErrUnsupportedVersion is returned when a snapshot header's version is
	// not one this package knows how to parse.
	ErrUnsupportedVersion = errors.New("section: unsupported version")
)

// JSON parse errors.
var (
	// ErrJSONEOF means the token stream ended before a complete value was parsed.
	ErrJSONEOF = errors.New("jsonvalue: unexpected end of input")

	// ErrJSONUnexpectedToken means the parser saw a token that cannot
	// legally appear at that point in the grammar.
	ErrJSONUnexpectedToken = errors.New("jsonvalue: unexpected token")
)

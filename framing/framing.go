// Package framing implements a transport-agnostic length-prefixed message
// protocol: each message is a U64 length (codec-encoded) followed by
// exactly that many payload bytes.
package framing

import (
	"bytes"
	"errors"
	"io"

	"github.com/ogoodman/gotable/codec"
	"github.com/ogoodman/gotable/errs"
)

type readerState uint8

const (
	stateBegin readerState = iota
	stateReadSize
)

// Reader incrementally reassembles messages from a byte stream that may
// arrive in arbitrary chunks. Feed appended bytes with Write, then drain
// complete messages with Next.
type Reader struct {
	buf   []byte
	state readerState
	size  int
}

// NewReader returns an empty Reader, ready to accept bytes via Write.
func NewReader() *Reader {
	return &Reader{state: stateBegin}
}

// Write appends data to the Reader's internal buffer.
func (r *Reader) Write(data []byte) {
	r.buf = append(r.buf, data...)
}

// Next attempts to deliver one complete message. ok is false when more
// bytes are needed (no error — the caller should Write more and call Next
// again). err is non-nil only when the stream violates the framing
// protocol and the connection should be aborted.
func (r *Reader) Next() (msg []byte, ok bool, err error) {
	for {
		switch r.state {
		case stateBegin:
			var stats codec.DecodeStats
			n, derr := codec.DecodeU64(bytes.NewReader(r.buf), &stats)
			if derr != nil {
				if errors.Is(derr, errs.ErrEOF) || errors.Is(derr, errs.ErrPartialRead) {
					return nil, false, nil
				}
				return nil, false, derr
			}
			r.buf = r.buf[stats.Read:]
			r.size = int(n)
			r.state = stateReadSize

		case stateReadSize:
			if len(r.buf) < r.size {
				return nil, false, nil
			}
			msg = r.buf[:r.size:r.size]
			r.buf = r.buf[r.size:]
			r.state = stateBegin
			return msg, true, nil
		}
	}
}

// WriteMessage writes payload to w as a single framed message: its U64
// length followed by its bytes.
func WriteMessage(w io.Writer, payload []byte) error {
	if _, err := codec.EncodeU64(w, uint64(len(payload))); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}

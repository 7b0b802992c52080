package table

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"io"

	"github.com/ogoodman/gotable/codec"
	"github.com/ogoodman/gotable/compress"
	"github.com/ogoodman/gotable/errs"
	"github.com/ogoodman/gotable/internal/hash"
	"github.com/ogoodman/gotable/internal/pool"
	"github.com/ogoodman/gotable/section"
)

// Snapshot writes a self-contained, compressed export of the table's
// current live state to w: a section.Header followed by the sorted
// (key, value) stream compressed with the given algorithm. Unlike
// Compact, Snapshot does not touch the table's log file.
func (t *Table[K]) Snapshot(w io.Writer, compression compress.Type) error {
	payload := pool.GetEncodeBuffer()
	defer pool.PutEncodeBuffer(payload)

	for _, k := range t.keys {
		if _, err := t.keyCodec.Encode(payload, k); err != nil {
			return err
		}
		if _, err := codec.EncodeBytes(payload, t.values[k]); err != nil {
			return err
		}
	}

	codecImpl, err := compress.CreateCodec(compression, "snapshot export")
	if err != nil {
		return err
	}

	compressed, err := codecImpl.Compress(payload.Bytes())
	if err != nil {
		return err
	}

	header := section.NewHeader(compression, uint64(len(t.keys)), hash.IDBytes(payload.Bytes()))
	if _, err := w.Write(header.Bytes()); err != nil {
		return err
	}
	_, err = w.Write(compressed)
	return err
}

// Import reads a snapshot written by Table.Snapshot and returns its
// (key, value) entries in ascending key order, verifying the payload
// checksum before decoding.
func Import[K cmp.Ordered](r io.Reader, keyCodec codec.KeyCodec[K]) ([]Entry[K], error) {
	headerBuf := make([]byte, section.HeaderSize)
	if _, err := io.ReadFull(r, headerBuf); err != nil {
		return nil, err
	}

	header, err := section.ParseHeader(headerBuf)
	if err != nil {
		return nil, err
	}

	compressed, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	codecImpl, err := compress.GetCodec(header.Compression)
	if err != nil {
		return nil, err
	}

	payload, err := codecImpl.Decompress(compressed)
	if err != nil {
		return nil, err
	}

	if got := hash.IDBytes(payload); got != header.Checksum {
		return nil, fmt.Errorf("table: snapshot checksum mismatch: got %x, want %x", got, header.Checksum)
	}

	entries := make([]Entry[K], 0, header.RecordCount)
	src := bytes.NewReader(payload)
	var dstats codec.DecodeStats

	for {
		key, err := keyCodec.Decode(src, &dstats)
		if err != nil {
			if errors.Is(err, errs.ErrEOF) {
				break
			}
			return nil, fmt.Errorf("%w: %v", errs.ErrDecodeError, err)
		}

		value, err := codec.DecodeBytes(src, &dstats)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrDecodeError, err)
		}

		entries = append(entries, Entry[K]{Key: key, Value: value})
	}

	return entries, nil
}

// Restore inserts every entry into t via Insert, appending each to the log
// in the order given. Callers typically pass the result of Import against
// a freshly created, empty RW table.
func (t *Table[K]) Restore(entries []Entry[K]) error {
	for _, e := range entries {
		if _, err := t.Insert(e.Key, e.Value); err != nil {
			return err
		}
	}
	return nil
}

// Checksum returns the xxHash64 of the table's current live state, encoded
// the same way Snapshot's uncompressed payload is: a diagnostic for
// comparing two tables' contents cheaply.
func (t *Table[K]) Checksum() (uint64, error) {
	payload := pool.GetEncodeBuffer()
	defer pool.PutEncodeBuffer(payload)

	for _, k := range t.keys {
		if _, err := t.keyCodec.Encode(payload, k); err != nil {
			return 0, err
		}
		if _, err := codec.EncodeBytes(payload, t.values[k]); err != nil {
			return 0, err
		}
	}
	return hash.IDBytes(payload.Bytes()), nil
}

package table

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/ogoodman/gotable/codec"
	"github.com/ogoodman/gotable/errs"
	"github.com/ogoodman/gotable/internal/pool"
)

// Table is an append-only log file paired with an in-memory sorted index.
// K must have a total order (cmp.Ordered) and a codec.KeyCodec; values are
// always opaque byte strings.
type Table[K cmp.Ordered] struct {
	keyCodec codec.KeyCodec[K]
	path     string
	file     *os.File

	keys   []K
	values map[K][]byte
}

// Stats reports how many bytes were pulled from the log on open, and how
// many of those bytes represent now-dead records (superseded inserts and
// consumed tombstones).
type Stats struct {
	Read      int
	Discarded int
}

// Open loads path read-only. Mutating methods on the result fail with
// errs.ErrNotWritable.
func Open[K cmp.Ordered](path string, keyCodec codec.KeyCodec[K]) (*Table[K], Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, err
	}

	t := &Table[K]{keyCodec: keyCodec, path: path, values: make(map[K][]byte)}
	stats, err := t.load(f)
	f.Close()
	if err != nil {
		return nil, Stats{}, err
	}

	return t, stats, nil
}

// OpenRW loads path read/write, creating it if it does not exist. The
// returned Table keeps the file open in append mode for subsequent
// mutations.
func OpenRW[K cmp.Ordered](path string, keyCodec codec.KeyCodec[K]) (*Table[K], Stats, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, Stats{}, err
	}

	t := &Table[K]{keyCodec: keyCodec, path: path, values: make(map[K][]byte)}
	stats, err := t.load(f)
	if err != nil {
		f.Close()
		return nil, Stats{}, err
	}
	t.file = f

	return t, stats, nil
}

// load drains f, decoding (key, value-or-null) records into the in-memory
// index and accounting for discarded bytes the same way the original
// append-only design does: a superseded insert discards the prior key and
// value bytes; a tombstone discards its own bytes plus, if it consumed a
// live value, that value's bytes too.
func (t *Table[K]) load(f *os.File) (Stats, error) {
	var stats Stats
	var dstats codec.DecodeStats

	for {
		posBefore := dstats.Read
		key, err := t.keyCodec.Decode(f, &dstats)
		if err != nil {
			if errors.Is(err, errs.ErrEOF) {
				break
			}
			return Stats{}, fmt.Errorf("%w: %v", errs.ErrDecodeError, err)
		}
		keysize := dstats.Read - posBefore

		value, err := codec.DecodeBytes(f, &dstats)
		if err != nil {
			if errors.Is(err, errs.ErrNull) {
				dstats.Discarded += keysize + 1
				if old, ok := t.values[key]; ok {
					dstats.Discarded += keysize + codec.EncodeBytesSize(old)
					delete(t.values, key)
					t.removeKey(key)
				}
				continue
			}
			return Stats{}, fmt.Errorf("%w: %v", errs.ErrDecodeError, err)
		}

		if old, ok := t.values[key]; ok {
			dstats.Discarded += keysize + codec.EncodeBytesSize(old)
		} else {
			t.insertKey(key)
		}
		t.values[key] = value
	}

	stats.Read = dstats.Read
	stats.Discarded = dstats.Discarded

	return stats, nil
}

// Get returns the value stored for key, if any.
func (t *Table[K]) Get(key K) ([]byte, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Insert appends (key, value) to the log and updates the in-memory index,
// returning the previous value if key was already present. It fails with
// errs.ErrNotWritable on a table opened via Open.
func (t *Table[K]) Insert(key K, value []byte) ([]byte, error) {
	if t.file == nil {
		return nil, errs.ErrNotWritable
	}

	if _, err := t.keyCodec.Encode(t.file, key); err != nil {
		return nil, err
	}
	if _, err := codec.EncodeBytes(t.file, value); err != nil {
		return nil, err
	}

	prev, existed := t.values[key]
	if !existed {
		t.insertKey(key)
	}
	t.values[key] = value

	if !existed {
		return nil, nil
	}
	return prev, nil
}

// Remove appends a tombstone for key to the log and removes it from the
// in-memory index, returning the previous value if any. It fails with
// errs.ErrNotWritable on a table opened via Open.
func (t *Table[K]) Remove(key K) ([]byte, error) {
	if t.file == nil {
		return nil, errs.ErrNotWritable
	}

	if _, err := t.keyCodec.Encode(t.file, key); err != nil {
		return nil, err
	}
	if _, err := codec.EncodeOptU64(t.file, nil); err != nil {
		return nil, err
	}

	prev, existed := t.values[key]
	if existed {
		delete(t.values, key)
		t.removeKey(key)
	}

	return prev, nil
}

// Compact rewrites the log at the table's current path to hold only the
// live index, in sorted key order: release the current handle, write a
// truncated temporary file, close it, atomically rename it over path, then
// reopen in append mode. Failure before the rename leaves path untouched;
// failure after the rename is impossible since nothing further can change
// on-disk state.
func (t *Table[K]) Compact() error {
	if t.file == nil {
		return errs.ErrNotWritable
	}

	t.file.Close()
	t.file = nil

	tmpPath := t.path + "~"
	tmp, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	buf := pool.GetEncodeBuffer()
	defer pool.PutEncodeBuffer(buf)

	for _, k := range t.keys {
		if _, err := t.keyCodec.Encode(buf, k); err != nil {
			tmp.Close()
			return err
		}
		if _, err := codec.EncodeBytes(buf, t.values[k]); err != nil {
			tmp.Close()
			return err
		}
	}

	if _, err := buf.WriteTo(tmp); err != nil {
		tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpPath, t.path); err != nil {
		return err
	}

	f, err := os.OpenFile(t.path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	t.file = f

	return nil
}

// Close releases the table's file handle, if open.
func (t *Table[K]) Close() error {
	if t.file == nil {
		return nil
	}
	err := t.file.Close()
	t.file = nil
	return err
}

// Len returns the number of live keys.
func (t *Table[K]) Len() int { return len(t.keys) }

// Entry is one (key, value) pair yielded by All, in key-ascending order.
type Entry[K cmp.Ordered] struct {
	Key   K
	Value []byte
}

// All returns every (key, value) pair in key-ascending order, matching the
// sorted index.
func (t *Table[K]) All() []Entry[K] {
	out := make([]Entry[K], len(t.keys))
	for i, k := range t.keys {
		out[i] = Entry[K]{Key: k, Value: t.values[k]}
	}
	return out
}

func (t *Table[K]) insertKey(key K) {
	i := sort.Search(len(t.keys), func(i int) bool { return t.keys[i] >= key })
	t.keys = append(t.keys, key)
	copy(t.keys[i+1:], t.keys[i:])
	t.keys[i] = key
}

func (t *Table[K]) removeKey(key K) {
	i := sort.Search(len(t.keys), func(i int) bool { return t.keys[i] >= key })
	if i < len(t.keys) && t.keys[i] == key {
		t.keys = append(t.keys[:i], t.keys[i+1:]...)
	}
}

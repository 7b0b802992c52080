package table

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogoodman/gotable/codec"
	"github.com/ogoodman/gotable/compress"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	path := tempPath(t)
	tbl, _, err := OpenRW(path, codec.Int64Key{})
	require.NoError(t, err)
	defer tbl.Close()

	for _, kv := range []struct {
		k int64
		v string
	}{{1, "a"}, {2, "b"}, {3, "c"}} {
		_, err := tbl.Insert(kv.k, []byte(kv.v))
		require.NoError(t, err)
	}

	var buf bytes.Buffer
	require.NoError(t, tbl.Snapshot(&buf, compress.Zstd))

	entries, err := Import(&buf, codec.Int64Key{})
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, int64(1), entries[0].Key)
	assert.Equal(t, []byte("a"), entries[0].Value)
	assert.Equal(t, int64(3), entries[2].Key)
}

func TestSnapshot_RestoreIntoFreshTable(t *testing.T) {
	srcPath := tempPath(t)
	src, _, err := OpenRW(srcPath, codec.Int64Key{})
	require.NoError(t, err)
	defer src.Close()
	_, err = src.Insert(1, []byte("x"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, src.Snapshot(&buf, compress.None))

	entries, err := Import(&buf, codec.Int64Key{})
	require.NoError(t, err)

	dstPath := tempPath(t)
	dst, _, err := OpenRW(dstPath, codec.Int64Key{})
	require.NoError(t, err)
	defer dst.Close()

	require.NoError(t, dst.Restore(entries))

	v, ok := dst.Get(1)
	require.True(t, ok)
	assert.Equal(t, []byte("x"), v)
}

func TestChecksum_StableAcrossCompaction(t *testing.T) {
	path := tempPath(t)
	tbl, _, err := OpenRW(path, codec.Int64Key{})
	require.NoError(t, err)
	defer tbl.Close()

	_, err = tbl.Insert(1, []byte("x"))
	require.NoError(t, err)
	before, err := tbl.Checksum()
	require.NoError(t, err)

	require.NoError(t, tbl.Compact())

	after, err := tbl.Checksum()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestImport_RejectsCorruptChecksum(t *testing.T) {
	path := tempPath(t)
	tbl, _, err := OpenRW(path, codec.Int64Key{})
	require.NoError(t, err)
	defer tbl.Close()

	_, err = tbl.Insert(1, []byte("x"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tbl.Snapshot(&buf, compress.None))
	corrupted := buf.Bytes()
	corrupted[len(corrupted)-1] ^= 0xFF

	_, err = Import(bytes.NewReader(corrupted), codec.Int64Key{})
	assert.Error(t, err)
}

// Package pool provides reusable byte buffers that the table package's
// Compact, Snapshot and Checksum encode their records into, avoiding a
// fresh allocation on every call.
package pool

import (
	"io"
	"sync"
)

// Default and maximum sizes for pooled encode buffers. Most table records
// are small (a varint key plus a short value), so the default is modest;
// the threshold prevents one oversized value from bloating the pool.
const (
	EncodeBufferDefaultSize  = 256
	EncodeBufferMaxThreshold = 1024 * 64 // 64KiB
)

// ByteBuffer is a growable byte slice with an amortized growth strategy,
// tuned for repeated small appends rather than one large write.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Grow ensures the buffer can hold requiredBytes more bytes without reallocating.
//
// Growth strategy:
//   - Small buffers (<= 4*EncodeBufferDefaultSize): grow by EncodeBufferDefaultSize
//   - Larger buffers: grow by 25% of current capacity
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := EncodeBufferDefaultSize
	if cap(bb.B) > 4*EncodeBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends the contents of data to the buffer, growing it as needed.
// It always returns len(data), nil.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteByte appends a single byte to the buffer.
func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.B = append(bb.B, c)
	return nil
}

// MustWrite appends data to the buffer. It never fails, since growth is
// handled internally; it exists so call sites encoding several fields in a
// row don't need to check an error after every append.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool pools ByteBuffers to minimize allocations across repeated
// Encode calls. It discards buffers that have grown past maxThreshold
// rather than retaining them indefinitely.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var encodeBufferPool = NewByteBufferPool(EncodeBufferDefaultSize, EncodeBufferMaxThreshold)

// GetEncodeBuffer retrieves a ByteBuffer from the shared encode-buffer pool.
func GetEncodeBuffer() *ByteBuffer {
	return encodeBufferPool.Get()
}

// PutEncodeBuffer returns a ByteBuffer to the shared encode-buffer pool.
func PutEncodeBuffer(bb *ByteBuffer) {
	encodeBufferPool.Put(bb)
}

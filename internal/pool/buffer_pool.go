// Package pool provides pooled scratch buffers for encoding map contents.
package pool

import "sync"

// Default sizes of the buffers handed out by the fingerprint pool.
const (
	FingerprintBufferDefaultSize  = 1024 * 4  // 4KiB
	FingerprintBufferMaxThreshold = 1024 * 64 // 64KiB
)

// ByteBuffer is a growable byte slice that can be returned to a pool.
type ByteBuffer struct {
	// B is the underlying byte slice.
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

// Reset empties the buffer but keeps the allocated memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// ByteBufferPool is a sync.Pool of ByteBuffers.
//
// Buffers that grew beyond maxThreshold are dropped on Put instead of being
// retained, so one very large map cannot pin memory for the process lifetime.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose new buffers have defaultSize capacity.
// A maxThreshold of zero disables the size limit.
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

// Get retrieves an empty ByteBuffer from the pool.
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

var fingerprintPool = NewByteBufferPool(FingerprintBufferDefaultSize, FingerprintBufferMaxThreshold)

// GetFingerprintBuffer retrieves a ByteBuffer from the fingerprint pool.
func GetFingerprintBuffer() *ByteBuffer {
	return fingerprintPool.Get()
}

// PutFingerprintBuffer returns a ByteBuffer to the fingerprint pool.
func PutFingerprintBuffer(bb *ByteBuffer) {
	fingerprintPool.Put(bb)
}

// File: pool/scratch.go
// License: Apache-2.0

package pool

import "math/bits"

// scratch buffers are bucketed by power-of-two capacity up to maxBucketCap;
// larger requests fall through to plain allocation.
const (
	minBucketBits = 3 // 8 bytes
	maxBucketBits = 16
	maxBucketCap  = 1 << maxBucketBits
)

// ScratchPool hands out byte buffers of arbitrary requested length, reusing
// underlying storage across calls. Returned buffers have len == size and
// capacity of the bucket that served them.
//
// Individual buffers must not be shared across concurrent users; the pool
// itself is safe for concurrent Get/Put.
type ScratchPool struct {
	buckets [maxBucketBits + 1]*SyncPool[*[]byte]
}

// NewScratchPool creates a ScratchPool with one sync.Pool per size bucket.
func NewScratchPool() *ScratchPool {
	sp := &ScratchPool{}
	for b := minBucketBits; b <= maxBucketBits; b++ {
		capacity := 1 << b
		sp.buckets[b] = NewSyncPool(func() *[]byte {
			buf := make([]byte, capacity)
			return &buf
		})
	}
	return sp
}

// Get returns a buffer of exactly size bytes. Contents are unspecified.
func (sp *ScratchPool) Get(size int) []byte {
	if size < 0 {
		size = 0
	}
	b := bucketFor(size)
	if b > maxBucketBits {
		return make([]byte, size)
	}
	buf := *sp.buckets[b].Get()
	return buf[:size]
}

// Put returns a buffer obtained from Get. The buffer must not be used
// afterwards.
func (sp *ScratchPool) Put(buf []byte) {
	c := cap(buf)
	if c < 1<<minBucketBits || c > maxBucketCap {
		return // not one of ours, or oversized; let the GC have it
	}
	b := bucketFor(c)
	if 1<<b != c {
		return
	}
	full := buf[:c]
	sp.buckets[b].Put(&full)
}

func bucketFor(size int) int {
	if size <= 1<<minBucketBits {
		return minBucketBits
	}
	return bits.Len(uint(size - 1))
}

// Default is the process-wide scratch pool used by the engine when no
// explicit pool is configured.
var Default = NewScratchPool()

package byteslice

import (
	"math/bits"
	"sync"

	"github.com/huynhanx03/go-fifo/pkg/utils"
)

const (
	minBitSize = 6  // 64 bytes (CPU cache line)
	steps      = 20 // 64B to 32MB

	minSize = 1 << minBitSize
	maxSize = 1 << (minBitSize + steps - 1)
)

var buckets [steps]sync.Pool

func init() {
	for i := range buckets {
		size := minSize << i
		buckets[i].New = func() any {
			return make([]byte, size)
		}
	}
}

// Get returns a byte slice of length size. Its capacity may be larger.
// Requests above 32MB are allocated directly and never pooled.
func Get(size int) []byte {
	if size > maxSize {
		return make([]byte, size)
	}
	b := buckets[getIndex(size)].Get().([]byte)
	return b[:size]
}

// Put returns b to the pool. The caller must not use b afterwards.
//
// Storing the slice in the pool boxes its header, one small allocation per
// Put. That is accepted to keep Get and Put on plain []byte; the backing
// array, which is the expensive part, is still reused.
func Put(b []byte) {
	c := cap(b)
	if c < minSize || c > maxSize {
		return
	}
	buckets[putIndex(c)].Put(b[:c])
}

// BucketSize returns the slice capacity served by bucket i, or 0 if i is out of range.
func BucketSize(i int) int {
	if i < 0 || i >= steps {
		return 0
	}
	return minSize << i
}

// getIndex returns the smallest bucket whose slices hold size bytes.
func getIndex(size int) int {
	if size <= minSize {
		return 0
	}
	return bits.TrailingZeros(uint(utils.CeilToPowerOfTwo(size))) - minBitSize
}

// putIndex returns the largest bucket whose size does not exceed c.
func putIndex(c int) int {
	return bits.Len(uint(c)) - 1 - minBitSize
}

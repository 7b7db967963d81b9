// Package byteslice pools byte slices in calibrated size buckets for I/O
// paths that would otherwise allocate a scratch buffer per call.
package byteslice

import (
	"github.com/hxann/go-toolbox/pkg/pool/internal/calibrated"
)

var defaultPool = calibrated.New(
	func(size int) []byte {
		return make([]byte, size)
	},
	func(b []byte) int {
		return cap(b)
	},
	func(b []byte) {
		_ = b[:cap(b)]
	},
)

// Get returns a byte slice of at least the given size from the pool.
func Get(size int) []byte {
	b := defaultPool.Get(size)
	return b[:size]
}

// Put returns a byte slice to the pool.
func Put(b []byte) {
	if len(b) == 0 {
		return
	}
	defaultPool.Put(b[:cap(b)])
}

// DefaultSize returns the calibrated default size.
func DefaultSize() uint64 {
	return defaultPool.DefaultSize()
}

// MaxSize returns the calibrated max size (95th percentile).
func MaxSize() uint64 {
	return defaultPool.MaxSize()
}

// Stats returns allocation counts per bucket.
func Stats() [calibrated.Steps]uint64 {
	return defaultPool.Stats()
}

// BucketSize returns the size of bucket at index i.
func BucketSize(i int) int {
	return calibrated.BucketSize(i)
}

// Package buffer pools *bytes.Buffer values in calibrated size buckets.
// Suited to short-lived accumulation such as subprocess output capture,
// where buffer sizes cluster around a few working sets.
package buffer

import (
	"bytes"

	"github.com/hxann/go-toolbox/pkg/pool/internal/calibrated"
)

var defaultPool = calibrated.New(
	func(size int) *bytes.Buffer {
		b := new(bytes.Buffer)
		b.Grow(size)
		return b
	},
	func(b *bytes.Buffer) int {
		return b.Cap()
	},
	func(b *bytes.Buffer) {
		b.Reset()
	},
)

// Get returns an empty buffer with the calibrated default capacity.
func Get() *bytes.Buffer {
	return defaultPool.Get(int(defaultPool.DefaultSize()))
}

// GetSize returns an empty buffer with at least the given capacity.
func GetSize(size int) *bytes.Buffer {
	return defaultPool.Get(size)
}

// Put returns a buffer to the pool. The buffer must not be used afterwards;
// contents the caller still needs have to be copied out first.
func Put(b *bytes.Buffer) {
	if b == nil {
		return
	}
	defaultPool.Put(b)
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

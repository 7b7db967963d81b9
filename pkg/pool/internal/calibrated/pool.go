// Package calibrated implements a self-tuning pool with power-of-two size
// buckets. It tracks which sizes callers actually request and periodically
// recalibrates, refusing to retain outliers above the 95th percentile so a
// few huge allocations cannot pin memory forever.
package calibrated

import (
	"sort"
	"sync"
	"sync/atomic"
)

const (
	MinBitSize = 6  // 64 bytes (CPU cache line)
	Steps      = 20 // 64B to 32MB

	MinSize = 1 << MinBitSize
	MaxSize = 1 << (MinBitSize + Steps - 1)

	calibrateThreshold = 42000
	percentile95       = 0.95
)

// Pool is a generic pool with calibrated size buckets.
type Pool[T any] struct {
	calls       [Steps]atomic.Uint64
	calibrating atomic.Bool
	defaultSize atomic.Uint64
	maxSize     atomic.Uint64
	buckets     [Steps]sync.Pool
	newFunc     func(size int) T
	sizeFunc    func(T) int
	resetFunc   func(T)
}

// New creates a pool. newFunc allocates an item of a given size, sizeFunc
// reports an item's capacity, and resetFunc (optional) scrubs an item before
// it is retained.
func New[T any](newFunc func(size int) T, sizeFunc func(T) int, resetFunc func(T)) *Pool[T] {
	p := &Pool[T]{
		newFunc:   newFunc,
		sizeFunc:  sizeFunc,
		resetFunc: resetFunc,
	}
	for i := range p.buckets {
		size := MinSize << i
		p.buckets[i].New = func() any {
			return newFunc(size)
		}
	}
	return p
}

// Get returns an item of at least the given size.
func (p *Pool[T]) Get(size int) T {
	if size <= 0 {
		size = MinSize
	}

	idx := SizeToIndex(size)
	if idx >= Steps {
		// Beyond the largest bucket; allocate directly and never retain.
		return p.newFunc(size)
	}

	return p.buckets[idx].Get().(T)
}

// Put returns an item to the pool. Items larger than the calibrated maximum
// are dropped.
func (p *Pool[T]) Put(item T) {
	size := p.sizeFunc(item)
	if size == 0 {
		return
	}

	idx := SizeToIndex(size)
	if idx >= Steps {
		return
	}

	if p.calls[idx].Add(1) > calibrateThreshold {
		p.calibrate()
	}

	if max := int(p.maxSize.Load()); max > 0 && size > max {
		return
	}

	if p.resetFunc != nil {
		p.resetFunc(item)
	}
	p.buckets[idx].Put(item)
}

// calibrate snapshots the per-bucket call counts and recomputes the default
// and maximum retained sizes. Only one goroutine calibrates at a time.
func (p *Pool[T]) calibrate() {
	if !p.calibrating.CompareAndSwap(false, true) {
		return
	}
	defer p.calibrating.Store(false)

	stats := p.collectStats()
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].calls > stats[j].calls
	})
	p.updateSizes(stats)
}

func (p *Pool[T]) collectStats() []bucketUsage {
	stats := make([]bucketUsage, 0, Steps)
	for i := 0; i < Steps; i++ {
		stats = append(stats, bucketUsage{
			calls: p.calls[i].Swap(0),
			size:  MinSize << i,
		})
	}
	return stats
}

func (p *Pool[T]) updateSizes(stats []bucketUsage) {
	if len(stats) == 0 {
		return
	}

	defaultSize := stats[0].size
	maxSize := defaultSize

	var total, sum uint64
	for _, s := range stats {
		total += s.calls
	}
	threshold := uint64(float64(total) * percentile95)

	for _, s := range stats {
		if sum > threshold {
			break
		}
		sum += s.calls
		if s.size > maxSize {
			maxSize = s.size
		}
	}

	p.defaultSize.Store(defaultSize)
	p.maxSize.Store(maxSize)
}

// DefaultSize returns the calibrated default size.
func (p *Pool[T]) DefaultSize() uint64 {
	return p.defaultSize.Load()
}

// MaxSize returns the calibrated maximum retained size.
func (p *Pool[T]) MaxSize() uint64 {
	return p.maxSize.Load()
}

// Stats returns the call counts per bucket since the last calibration.
func (p *Pool[T]) Stats() [Steps]uint64 {
	var result [Steps]uint64
	for i := range p.calls {
		result[i] = p.calls[i].Load()
	}
	return result
}

type bucketUsage struct {
	calls uint64
	size  uint64
}

// SizeToIndex returns the bucket index for a given size.
func SizeToIndex(n int) int {
	n--
	n >>= MinBitSize
	idx := 0
	for n > 0 {
		n >>= 1
		idx++
	}
	return idx
}

// BucketSize returns the size of bucket at index i.
func BucketSize(i int) int {
	if i < 0 || i >= Steps {
		return 0
	}
	return MinSize << i
}

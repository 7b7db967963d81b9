package queue

import (
	"math/bits"
	"runtime"
	"sync/atomic"

	pkgRuntime "github.com/hxann/go-toolbox/pkg/runtime"
	"github.com/hxann/go-toolbox/pkg/utils"
)

var _ Queue[int] = (*MPMC[int])(nil)

const (
	cacheLineSize = 64

	// Adaptive spinning: a short burst of PAUSE instructions keeps the CPU
	// warm under brief contention; past that, yield to the scheduler.
	activeSpinCycles = 4  // PAUSE cycles per active spin iteration
	activeSpinTries  = 30 // Active spin iterations before yielding
)

type slot[T any] struct {
	turn atomic.Uint64            // Turn number for producer/consumer handoff
	data T                        // Data stored in the slot
	_    [cacheLineSize - 16]byte // Padding to prevent false sharing
}

// MPMC is a lock-free bounded multiple-producer multiple-consumer queue.
// Each slot carries a turn counter; producers write on even turns and
// consumers read on odd turns, so a slot can never be read before its write
// completes even when positions wrap.
type MPMC[T any] struct {
	capacity     uint64    // Maximum capacity, always a power of two
	mask         uint64    // Mask for fast modulo
	capacityLog2 uint64    // Log2 of capacity for fast division
	slots        []slot[T] // Array of slots

	_ [cacheLineSize]byte // Padding to prevent false sharing

	head atomic.Uint64 // Next position to write

	_ [cacheLineSize]byte // Padding to prevent false sharing

	tail atomic.Uint64 // Next position to read
}

// NewMPMC creates a queue with capacity rounded up to a power of two.
func NewMPMC[T any](capacity int) *MPMC[T] {
	if capacity < 2 {
		capacity = 2
	}
	capacity = utils.CeilToPowerOfTwo(capacity)

	return &MPMC[T]{
		capacity:     uint64(capacity),
		mask:         uint64(capacity - 1),
		capacityLog2: uint64(bits.TrailingZeros64(uint64(capacity))),
		slots:        make([]slot[T], capacity),
	}
}

func (q *MPMC[T]) idx(pos uint64) uint64  { return pos & q.mask }
func (q *MPMC[T]) turn(pos uint64) uint64 { return pos >> q.capacityLog2 }

// spinWait performs one step of the adaptive spin and returns the next spin
// counter value.
func spinWait(spin int) int {
	if spin < activeSpinTries {
		pkgRuntime.Procyield(activeSpinCycles)
		return spin + 1
	}
	runtime.Gosched()
	return 0
}

// Enqueue adds an item. Returns false if the queue is full.
func (q *MPMC[T]) Enqueue(item T) bool {
	for spin := 0; ; {
		head := q.head.Load()
		idx := q.idx(head)
		expectedTurn := q.turn(head) * 2

		if q.slots[idx].turn.Load() == expectedTurn {
			if q.head.CompareAndSwap(head, head+1) {
				q.slots[idx].data = item
				q.slots[idx].turn.Store(expectedTurn + 1)
				return true
			}
		} else {
			// The slot is still owned by a consumer one lap behind. If head
			// has not moved either, the queue is genuinely full.
			if head == q.head.Load() {
				return false
			}
		}

		spin = spinWait(spin)
	}
}

// Dequeue removes and returns an item. Returns false if the queue is empty.
func (q *MPMC[T]) Dequeue() (T, bool) {
	var zero T

	for spin := 0; ; {
		tail := q.tail.Load()
		idx := q.idx(tail)
		expectedTurn := q.turn(tail)*2 + 1

		if q.slots[idx].turn.Load() == expectedTurn {
			if q.tail.CompareAndSwap(tail, tail+1) {
				data := q.slots[idx].data
				q.slots[idx].data = zero
				q.slots[idx].turn.Store(expectedTurn + 1)
				return data, true
			}
		} else {
			if tail == q.tail.Load() {
				return zero, false
			}
		}

		spin = spinWait(spin)
	}
}

// EnqueueBatch adds items until the queue fills. Returns the count enqueued.
func (q *MPMC[T]) EnqueueBatch(items []T) int {
	count := 0
	for _, item := range items {
		if !q.Enqueue(item) {
			break
		}
		count++
	}
	return count
}

// DequeueBatch fills out with dequeued items. Returns the count dequeued.
func (q *MPMC[T]) DequeueBatch(out []T) int {
	count := 0
	for i := range out {
		item, ok := q.Dequeue()
		if !ok {
			break
		}
		out[i] = item
		count++
	}
	return count
}

// Size returns the approximate item count. It can transiently exceed the
// bounds during concurrent access.
func (q *MPMC[T]) Size() int64 {
	return int64(q.head.Load()) - int64(q.tail.Load())
}

// IsEmpty returns true if the queue appears empty.
func (q *MPMC[T]) IsEmpty() bool { return q.Size() <= 0 }

// IsFull returns true if the queue appears full.
func (q *MPMC[T]) IsFull() bool { return q.Size() >= int64(q.capacity) }

// Capacity returns the maximum queue size.
func (q *MPMC[T]) Capacity() uint64 { return q.capacity }

// Clear drains all items from the queue.
func (q *MPMC[T]) Clear() {
	for {
		if _, ok := q.Dequeue(); !ok {
			break
		}
	}
}

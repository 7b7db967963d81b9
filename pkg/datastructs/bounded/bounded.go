// Package bounded provides FIFO queues with a hard capacity that evict their
// oldest element instead of rejecting new ones. Queue is the single-goroutine
// core; SyncQueue wraps it with a mutex for concurrent use.
//
// This is the complement of the queue package: queue.MPMC refuses writes when
// full, while a bounded queue always accepts and sacrifices history, which
// suits recent-N buffers such as event tails and rolling samples.
package bounded

import "iter"

// Queue is a fixed-capacity FIFO ring. Pushing into a full queue evicts the
// oldest element. Not safe for concurrent use.
type Queue[T any] struct {
	buf  []T
	head int // index of the oldest element
	size int
}

// New creates a queue holding at most capacity elements, optionally seeded
// oldest-first. The capacity is exact: a seed longer than capacity is an
// error, never silently truncated.
func New[T any](capacity int, seed ...T) (*Queue[T], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if len(seed) > capacity {
		return nil, ErrSeedExceedsCapacity
	}

	q := &Queue[T]{buf: make([]T, capacity)}
	q.size = copy(q.buf, seed)
	return q, nil
}

// Push appends item. When the queue is full the oldest element is evicted to
// make room, so Push always succeeds.
func (q *Queue[T]) Push(item T) {
	n := len(q.buf)
	q.buf[(q.head+q.size)%n] = item
	if q.size == n {
		// The slot just written was the oldest element; advance past it.
		q.head = (q.head + 1) % n
		return
	}
	q.size++
}

// TryPush appends item only if spare capacity exists. It reports whether the
// item was stored; it never evicts.
func (q *Queue[T]) TryPush(item T) bool {
	if q.size == len(q.buf) {
		return false
	}
	q.buf[(q.head+q.size)%len(q.buf)] = item
	q.size++
	return true
}

// Pop removes and returns the oldest element.
func (q *Queue[T]) Pop() (T, error) {
	var zero T
	if q.size == 0 {
		return zero, ErrEmpty
	}

	item := q.buf[q.head]
	q.buf[q.head] = zero // drop the reference so it can be collected
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return item, nil
}

// TryPop removes and returns the oldest element, reporting false instead of
// an error when the queue is empty.
func (q *Queue[T]) TryPop() (T, bool) {
	item, err := q.Pop()
	return item, err == nil
}

// Peek returns the oldest element without removing it.
func (q *Queue[T]) Peek() (T, error) {
	var zero T
	if q.size == 0 {
		return zero, ErrEmpty
	}
	return q.buf[q.head], nil
}

// TryPeek returns the oldest element, reporting false when the queue is empty.
func (q *Queue[T]) TryPeek() (T, bool) {
	item, err := q.Peek()
	return item, err == nil
}

// Len returns the number of stored elements.
func (q *Queue[T]) Len() int { return q.size }

// Cap returns the capacity.
func (q *Queue[T]) Cap() int { return len(q.buf) }

// Resize changes the capacity. Shrinking below the current size evicts
// oldest elements until the rest fit; growing preserves everything. The
// elements are compacted into fresh storage in either case.
func (q *Queue[T]) Resize(capacity int) error {
	if capacity < 1 {
		return ErrInvalidCapacity
	}
	if capacity == len(q.buf) {
		return nil
	}

	drop := q.size - capacity
	if drop < 0 {
		drop = 0
	}

	buf := make([]T, capacity)
	kept := 0
	for i := drop; i < q.size; i++ {
		buf[kept] = q.buf[(q.head+i)%len(q.buf)]
		kept++
	}

	q.buf = buf
	q.head = 0
	q.size = kept
	return nil
}

// Clear removes all elements, keeping the capacity.
func (q *Queue[T]) Clear() {
	var zero T
	for i := 0; i < q.size; i++ {
		q.buf[(q.head+i)%len(q.buf)] = zero
	}
	q.head = 0
	q.size = 0
}

// All returns an iterator over the elements, oldest first. The queue must
// not be mutated while iterating.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < q.size; i++ {
			if !yield(q.buf[(q.head+i)%len(q.buf)]) {
				return
			}
		}
	}
}

// Snapshot returns a copy of the elements, oldest first.
func (q *Queue[T]) Snapshot() []T {
	out := make([]T, q.size)
	for i := 0; i < q.size; i++ {
		out[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	return out
}

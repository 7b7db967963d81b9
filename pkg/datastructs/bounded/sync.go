package bounded

import (
	"iter"
	"sync"
)

// SyncQueue serializes a Queue under a single mutex. Eviction has to read
// the occupancy and act on it in one atomic step, which a lock-free design
// cannot give us cheaply; a coarse lock keeps Push, Pop, Resize and
// iteration each atomic with respect to the others.
type SyncQueue[T any] struct {
	mu sync.Mutex
	q  Queue[T]
}

// NewSync creates a concurrency-safe queue holding at most capacity
// elements, optionally seeded oldest-first.
func NewSync[T any](capacity int, seed ...T) (*SyncQueue[T], error) {
	q, err := New[T](capacity, seed...)
	if err != nil {
		return nil, err
	}
	return &SyncQueue[T]{q: *q}, nil
}

// Push appends item, evicting the oldest element when full.
func (s *SyncQueue[T]) Push(item T) {
	s.mu.Lock()
	s.q.Push(item)
	s.mu.Unlock()
}

// TryPush appends item only if spare capacity exists.
func (s *SyncQueue[T]) TryPush(item T) bool {
	s.mu.Lock()
	ok := s.q.TryPush(item)
	s.mu.Unlock()
	return ok
}

// Pop removes and returns the oldest element.
func (s *SyncQueue[T]) Pop() (T, error) {
	s.mu.Lock()
	item, err := s.q.Pop()
	s.mu.Unlock()
	return item, err
}

// TryPop removes and returns the oldest element, reporting false when empty.
func (s *SyncQueue[T]) TryPop() (T, bool) {
	s.mu.Lock()
	item, ok := s.q.TryPop()
	s.mu.Unlock()
	return item, ok
}

// Peek returns the oldest element without removing it.
func (s *SyncQueue[T]) Peek() (T, error) {
	s.mu.Lock()
	item, err := s.q.Peek()
	s.mu.Unlock()
	return item, err
}

// TryPeek returns the oldest element, reporting false when empty.
func (s *SyncQueue[T]) TryPeek() (T, bool) {
	s.mu.Lock()
	item, ok := s.q.TryPeek()
	s.mu.Unlock()
	return item, ok
}

// Len returns the number of stored elements.
func (s *SyncQueue[T]) Len() int {
	s.mu.Lock()
	n := s.q.Len()
	s.mu.Unlock()
	return n
}

// Cap returns the capacity.
func (s *SyncQueue[T]) Cap() int {
	s.mu.Lock()
	n := s.q.Cap()
	s.mu.Unlock()
	return n
}

// Resize changes the capacity, evicting oldest elements if shrinking below
// the current size.
func (s *SyncQueue[T]) Resize(capacity int) error {
	s.mu.Lock()
	err := s.q.Resize(capacity)
	s.mu.Unlock()
	return err
}

// Clear removes all elements, keeping the capacity.
func (s *SyncQueue[T]) Clear() {
	s.mu.Lock()
	s.q.Clear()
	s.mu.Unlock()
}

// All returns an iterator over the elements, oldest first. The lock is held
// for the whole loop, so other goroutines block until iteration finishes and
// the loop body must not call back into the queue.
func (s *SyncQueue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.mu.Lock()
		defer s.mu.Unlock()
		for v := range s.q.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Range calls fn for each element, oldest first, under the lock, stopping
// early if fn returns false. fn must not call back into the queue.
func (s *SyncQueue[T]) Range(fn func(T) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for v := range s.q.All() {
		if !fn(v) {
			return
		}
	}
}

// Snapshot returns a copy of the elements, oldest first.
func (s *SyncQueue[T]) Snapshot() []T {
	s.mu.Lock()
	out := s.q.Snapshot()
	s.mu.Unlock()
	return out
}

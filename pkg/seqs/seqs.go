// Package seqs provides slice and iterator helpers that walk data in place:
// chunked and windowed views alias the source slice instead of copying it.
package seqs

import "iter"

// Chunks returns an iterator over successive sub-slices of s with at most
// size elements each; the final chunk may be shorter. The yielded slices
// alias s and have clipped capacity, so appends do not clobber neighbors.
// Panics if size < 1.
func Chunks[T any](s []T, size int) iter.Seq[[]T] {
	if size < 1 {
		panic("seqs: chunk size must be positive")
	}
	return func(yield func([]T) bool) {
		for start := 0; start < len(s); start += size {
			end := min(start+size, len(s))
			if !yield(s[start:end:end]) {
				return
			}
		}
	}
}

// Windows returns an iterator over every contiguous run of exactly size
// elements, advancing one element at a time. A slice shorter than size
// yields nothing. The yielded slices alias s. Panics if size < 1.
func Windows[T any](s []T, size int) iter.Seq[[]T] {
	if size < 1 {
		panic("seqs: window size must be positive")
	}
	return func(yield func([]T) bool) {
		for start := 0; start+size <= len(s); start++ {
			if !yield(s[start : start+size : start+size]) {
				return
			}
		}
	}
}

// Enumerate pairs each element of seq with its zero-based position.
func Enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for v := range seq {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// Collect drains seq into a new slice. sizeHint pre-sizes the allocation;
// zero is fine when the length is unknown.
func Collect[T any](seq iter.Seq[T], sizeHint int) []T {
	out := make([]T, 0, max(sizeHint, 0))
	for v := range seq {
		out = append(out, v)
	}
	return out
}

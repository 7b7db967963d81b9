package bounded

import (
	"testing"
)

// BenchmarkPush measures pushes below capacity.
func BenchmarkPush(b *testing.B) {
	q, _ := New[int](1 << 16)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		q.Push(i)
		if q.Len() == q.Cap() {
			q.Clear()
		}
	}
}

// BenchmarkPushEvict measures steady-state pushes into a full queue, where
// every push evicts.
func BenchmarkPushEvict(b *testing.B) {
	q, _ := New[int](64)
	for i := 0; i < 64; i++ {
		q.Push(i)
	}
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		q.Push(i)
	}
}

// BenchmarkSyncPush measures the locked wrapper under parallel load.
func BenchmarkSyncPush(b *testing.B) {
	q, _ := NewSync[int](1024)
	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			q.Push(i)
			i++
		}
	})
}

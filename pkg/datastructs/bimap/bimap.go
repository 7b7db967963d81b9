// Package bimap provides a concurrency-safe bidirectional map: every pair is
// indexed by key and by value, so lookups run in constant time in both
// directions. The two indices always describe the same pair set.
package bimap

import "sync"

// Map is a bijective map guarded by a single RWMutex. Reads take the shared
// lock; every write updates both indices under the exclusive lock so neither
// side can observe a half-applied pair.
type Map[K comparable, V comparable] struct {
	mu      sync.RWMutex
	forward map[K]V
	reverse map[V]K
}

// New creates an empty bidirectional map.
func New[K comparable, V comparable]() *Map[K, V] {
	return &Map[K, V]{
		forward: make(map[K]V),
		reverse: make(map[V]K),
	}
}

// Put stores the pair (key, value). Any existing pair using key and any
// existing pair using value are removed first, keeping the map bijective.
func (m *Map[K, V]) Put(key K, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if old, ok := m.forward[key]; ok {
		delete(m.reverse, old)
	}
	if old, ok := m.reverse[value]; ok {
		delete(m.forward, old)
	}
	m.forward[key] = value
	m.reverse[value] = key
}

// PutIfAbsent stores the pair only when neither key nor value is already
// present. It reports whether the pair was stored.
func (m *Map[K, V]) PutIfAbsent(key K, value V) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.forward[key]; ok {
		return false
	}
	if _, ok := m.reverse[value]; ok {
		return false
	}
	m.forward[key] = value
	m.reverse[value] = key
	return true
}

// GetValue returns the value paired with key.
func (m *Map[K, V]) GetValue(key K) (V, bool) {
	m.mu.RLock()
	v, ok := m.forward[key]
	m.mu.RUnlock()
	return v, ok
}

// GetKey returns the key paired with value.
func (m *Map[K, V]) GetKey(value V) (K, bool) {
	m.mu.RLock()
	k, ok := m.reverse[value]
	m.mu.RUnlock()
	return k, ok
}

// ContainsKey reports whether key is present.
func (m *Map[K, V]) ContainsKey(key K) bool {
	m.mu.RLock()
	_, ok := m.forward[key]
	m.mu.RUnlock()
	return ok
}

// ContainsValue reports whether value is present.
func (m *Map[K, V]) ContainsValue(value V) bool {
	m.mu.RLock()
	_, ok := m.reverse[value]
	m.mu.RUnlock()
	return ok
}

// DeleteKey removes the pair addressed by key, returning the value it was
// paired with.
func (m *Map[K, V]) DeleteKey(key K) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.forward[key]
	if !ok {
		var zero V
		return zero, false
	}
	delete(m.forward, key)
	delete(m.reverse, v)
	return v, true
}

// DeleteValue removes the pair addressed by value, returning the key it was
// paired with.
func (m *Map[K, V]) DeleteValue(value V) (K, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	k, ok := m.reverse[value]
	if !ok {
		var zero K
		return zero, false
	}
	delete(m.reverse, value)
	delete(m.forward, k)
	return k, true
}

// Len returns the number of pairs.
func (m *Map[K, V]) Len() int {
	m.mu.RLock()
	n := len(m.forward)
	m.mu.RUnlock()
	return n
}

// Clear removes all pairs.
func (m *Map[K, V]) Clear() {
	m.mu.Lock()
	clear(m.forward)
	clear(m.reverse)
	m.mu.Unlock()
}

// Range calls fn for each pair under the read lock until fn returns false.
// fn must not mutate the map; iteration order is unspecified.
func (m *Map[K, V]) Range(fn func(key K, value V) bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for k, v := range m.forward {
		if !fn(k, v) {
			return
		}
	}
}

// Keys returns a snapshot of the keys in unspecified order.
func (m *Map[K, V]) Keys() []K {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]K, 0, len(m.forward))
	for k := range m.forward {
		keys = append(keys, k)
	}
	return keys
}

// Values returns a snapshot of the values in unspecified order.
func (m *Map[K, V]) Values() []V {
	m.mu.RLock()
	defer m.mu.RUnlock()

	values := make([]V, 0, len(m.reverse))
	for v := range m.reverse {
		values = append(values, v)
	}
	return values
}

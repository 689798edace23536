// Package tinymap provides a fixed-capacity map that keeps its entries in
// insertion order and finds them by linear scan instead of hashing.
//
// It is meant as a replacement for the builtin map when the number of
// entries is known to be small, roughly twenty or less. At such sizes a
// scan over a few cache-resident slots is cheaper than computing a hash,
// and the backing storage can be allocated once: New reserves all slots up
// front and no operation afterwards allocates, rehashes or grows.
//
// The capacity is a contract, not a limit to react to. Inserting a new key
// into a full map panics; callers that cannot rule the overflow out use
// TryInsert instead.
package tinymap

import (
	"errors"
	"fmt"
)

// ErrCapacity is reported by TryInsert and CollectProducer when a new key
// does not fit into the map.
var ErrCapacity = errors.New("tinymap: capacity exceeded")

// Pair is a single key/value association.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Map stores up to a fixed number of key/value pairs. The occupied slots
// are always the first Len slots of the backing storage, in the order the
// keys were first inserted. No two slots hold the same key.
//
// A Map is not safe for concurrent mutation; wrap it in a sync.Mutex if it
// is shared between goroutines, as with the builtin map.
type Map[K comparable, V any] struct {
	slots []Pair[K, V]
}

// New creates an empty map that can hold up to capacity pairs. The backing
// storage is fully reserved here. A capacity of zero is valid and gives a
// permanently full map. A negative capacity panics.
func New[K comparable, V any](capacity int) *Map[K, V] {
	if capacity < 0 {
		panic(fmt.Sprintf("tinymap: negative capacity %d", capacity))
	}
	return &Map[K, V]{slots: make([]Pair[K, V], 0, capacity)}
}

// Of creates a map of the given capacity holding the given pairs. The
// pairs are inserted in order, so a later pair with an already used key
// overwrites the earlier value. It panics if the distinct keys do not fit.
func Of[K comparable, V any](capacity int, pairs ...Pair[K, V]) *Map[K, V] {
	m := New[K, V](capacity)
	m.Extend(pairs...)
	return m
}

// Capacity returns the fixed number of slots.
func (m *Map[K, V]) Capacity() int {
	return cap(m.slots)
}

// Len returns the number of pairs currently stored.
func (m *Map[K, V]) Len() int {
	return len(m.slots)
}

// IsEmpty reports whether no pair is stored.
func (m *Map[K, V]) IsEmpty() bool {
	return len(m.slots) == 0
}

func (m *Map[K, V]) index(key K) int {
	for i := range m.slots {
		if m.slots[i].Key == key {
			return i
		}
	}
	return -1
}

// Insert stores value under key. If the key is already present its value
// is replaced in place, its position in the iteration order is kept and
// the previous value is returned with replaced set to true. Otherwise the
// pair is appended behind the existing ones.
//
// Inserting a new key into a full map is a logic error and panics. Use
// TryInsert if the overflow has to be handled at runtime.
func (m *Map[K, V]) Insert(key K, value V) (prev V, replaced bool) {
	prev, replaced, err := m.TryInsert(key, value)
	if err != nil {
		panic(fmt.Sprintf("tinymap: insert into full map of capacity %d", cap(m.slots)))
	}
	return prev, replaced
}

// TryInsert behaves like Insert but reports ErrCapacity instead of
// panicking when a new key does not fit.
func (m *Map[K, V]) TryInsert(key K, value V) (prev V, replaced bool, err error) {
	if i := m.index(key); i >= 0 {
		prev = m.slots[i].Value
		m.slots[i].Value = value
		return prev, true, nil
	}
	if len(m.slots) == cap(m.slots) {
		return prev, false, ErrCapacity
	}
	m.slots = append(m.slots, Pair[K, V]{Key: key, Value: value})
	return prev, false, nil
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if i := m.index(key); i >= 0 {
		return m.slots[i].Value, true
	}
	var zero V
	return zero, false
}

// Ref returns a pointer to the value stored under key, or nil if the key
// is absent. It allows modifying the value in place. The pointer is
// invalidated by Insert, Remove, Clear, Retain and Extend.
func (m *Map[K, V]) Ref(key K) *V {
	if i := m.index(key); i >= 0 {
		return &m.slots[i].Value
	}
	return nil
}

// MustGet returns the value stored under key and panics if the key is
// absent. It replaces indexing a builtin map in contexts where absence is
// a logic error.
func (m *Map[K, V]) MustGet(key K) V {
	if i := m.index(key); i >= 0 {
		return m.slots[i].Value
	}
	panic(fmt.Sprintf("tinymap: key %v not found", key))
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m.index(key) >= 0
}

// Remove deletes the pair stored under key and returns its value. The
// slots behind the removed one are shifted left, so the remaining pairs
// keep their relative order. Removing an absent key is a no-op.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	i := m.index(key)
	if i < 0 {
		var zero V
		return zero, false
	}
	removed := m.slots[i].Value
	copy(m.slots[i:], m.slots[i+1:])
	last := len(m.slots) - 1
	m.slots[last] = Pair[K, V]{} // release the references held by the vacated slot
	m.slots = m.slots[:last]
	return removed, true
}

// Clear removes all pairs. The backing storage is kept for further use.
func (m *Map[K, V]) Clear() {
	clear(m.slots)
	m.slots = m.slots[:0]
}

// Retain keeps only the pairs the given predicate accepts, preserving
// their relative order.
func (m *Map[K, V]) Retain(keep func(key K, value V) bool) {
	kept := m.slots[:0]
	for _, p := range m.slots {
		if keep(p.Key, p.Value) {
			kept = append(kept, p)
		}
	}
	clear(m.slots[len(kept):])
	m.slots = kept
}

// Extend inserts all given pairs in order, following the rules of Insert.
func (m *Map[K, V]) Extend(pairs ...Pair[K, V]) {
	for _, p := range pairs {
		m.Insert(p.Key, p.Value)
	}
}

// Clone returns an independent map with the same capacity and content.
// The pairs are copied shallowly.
func (m *Map[K, V]) Clone() *Map[K, V] {
	c := &Map[K, V]{slots: make([]Pair[K, V], len(m.slots), cap(m.slots))}
	copy(c.slots, m.slots)
	return c
}

package tinymap

import (
	"github.com/hneemann/iterator"
)

// Iter yields all pairs in insertion order. It is usable in a
// range-over-func loop:
//
//	for k, v := range m.Iter {
//		...
//	}
//
// The map must not be mutated while the loop runs.
func (m *Map[K, V]) Iter(yield func(K, V) bool) {
	for _, p := range m.slots {
		if !yield(p.Key, p.Value) {
			return
		}
	}
}

// Keys yields all keys in insertion order.
func (m *Map[K, V]) Keys(yield func(K) bool) {
	for _, p := range m.slots {
		if !yield(p.Key) {
			return
		}
	}
}

// Values yields all values in insertion order.
func (m *Map[K, V]) Values(yield func(V) bool) {
	for _, p := range m.slots {
		if !yield(p.Value) {
			return
		}
	}
}

// IterRef yields every key together with a pointer to its value, so the
// values can be modified in place during the loop. The pointers follow
// the rules of Ref. The map itself must not be mutated while the loop
// runs.
func (m *Map[K, V]) IterRef(yield func(K, *V) bool) {
	for i := range m.slots {
		if !yield(m.slots[i].Key, &m.slots[i].Value) {
			return
		}
	}
}

// Pairs returns a copy of the stored pairs in insertion order.
func (m *Map[K, V]) Pairs() []Pair[K, V] {
	return m.AppendPairs(nil)
}

// AppendPairs appends all pairs in insertion order to dst and returns the
// extended slice.
func (m *Map[K, V]) AppendPairs(dst []Pair[K, V]) []Pair[K, V] {
	return append(dst, m.slots...)
}

// Producer exposes the pairs in insertion order as an iterator.Producer,
// which connects the map to the combinators of the iterator package.
func (m *Map[K, V]) Producer() iterator.Producer[Pair[K, V]] {
	return func(yield iterator.Consumer[Pair[K, V]]) {
		for _, p := range m.slots {
			if !yield(p, nil) {
				return
			}
		}
	}
}

// CollectProducer inserts all pairs the producer delivers, in order,
// following the rules of Insert. A producer is an external, possibly
// fallible source, so unlike Extend both a producer error and running out
// of capacity are reported as an error instead of a panic.
func (m *Map[K, V]) CollectProducer(p iterator.Producer[Pair[K, V]]) error {
	var innerErr error
	p(func(pair Pair[K, V], err error) bool {
		if err != nil {
			innerErr = err
			return false
		}
		if _, _, err := m.TryInsert(pair.Key, pair.Value); err != nil {
			innerErr = err
			return false
		}
		return true
	})
	return innerErr
}

// FromProducer creates a map of the given capacity and fills it from the
// producer. See CollectProducer for the error behavior.
func FromProducer[K comparable, V any](capacity int, p iterator.Producer[Pair[K, V]]) (*Map[K, V], error) {
	m := New[K, V](capacity)
	if err := m.CollectProducer(p); err != nil {
		return nil, err
	}
	return m, nil
}

package tinymap

// Entry is a view of the slot belonging to a single key, either occupied
// or still vacant. It remembers the slot position found by Map.Entry, so
// reading, updating or lazily filling the slot needs no second scan.
//
// Like the pointers returned by Ref, an Entry is invalidated by any
// mutation of the map it was created from.
type Entry[K comparable, V any] struct {
	m   *Map[K, V]
	key K
	idx int // slot position, -1 if vacant
}

// Entry returns a view of the slot belonging to key.
func (m *Map[K, V]) Entry(key K) Entry[K, V] {
	return Entry[K, V]{m: m, key: key, idx: m.index(key)}
}

// Key returns the key this entry belongs to.
func (e Entry[K, V]) Key() K {
	return e.key
}

// Present reports whether the slot is occupied.
func (e Entry[K, V]) Present() bool {
	return e.idx >= 0
}

// Get returns the value of an occupied slot.
func (e Entry[K, V]) Get() (V, bool) {
	if e.idx < 0 {
		var zero V
		return zero, false
	}
	return e.m.slots[e.idx].Value, true
}

// OrInsert fills a vacant slot with def and returns a pointer to the
// value. An occupied slot is left unchanged. Filling a vacant slot of a
// full map panics like Insert.
func (e Entry[K, V]) OrInsert(def V) *V {
	if e.idx >= 0 {
		return &e.m.slots[e.idx].Value
	}
	e.m.Insert(e.key, def)
	return &e.m.slots[len(e.m.slots)-1].Value
}

// OrInsertWith is OrInsert with a lazily computed default. The function is
// called only if the slot is vacant.
func (e Entry[K, V]) OrInsertWith(def func() V) *V {
	if e.idx >= 0 {
		return &e.m.slots[e.idx].Value
	}
	e.m.Insert(e.key, def())
	return &e.m.slots[len(e.m.slots)-1].Value
}

// Set stores value in the slot no matter whether it was occupied and
// returns a pointer to it, subject to the capacity rules of Insert.
func (e Entry[K, V]) Set(value V) *V {
	if e.idx >= 0 {
		e.m.slots[e.idx].Value = value
		return &e.m.slots[e.idx].Value
	}
	e.m.Insert(e.key, value)
	return &e.m.slots[len(e.m.slots)-1].Value
}

// AndModify applies f to the value of an occupied slot and returns the
// entry again for chaining. A vacant slot is left untouched.
func (e Entry[K, V]) AndModify(f func(*V)) Entry[K, V] {
	if e.idx >= 0 {
		f(&e.m.slots[e.idx].Value)
	}
	return e
}

package tinymap

import (
	"bytes"
	"fmt"
)

// Equal reports whether the two maps contain the same set of pairs. The
// insertion order does not matter here, unlike for iteration.
func Equal[K, V comparable](a, b *Map[K, V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc is Equal with a caller supplied value comparison, for value
// types that cannot be compared with ==.
func EqualFunc[K comparable, V any](a, b *Map[K, V], eq func(V, V) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, p := range a.slots {
		o, ok := b.Get(p.Key)
		if !ok || !eq(p.Value, o) {
			return false
		}
	}
	return true
}

// String lists all pairs in insertion order, similar to the builtin map:
// {a:1, b:2}
func (m *Map[K, V]) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for i, p := range m.slots {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v:%v", p.Key, p.Value)
	}
	b.WriteString("}")
	return b.String()
}

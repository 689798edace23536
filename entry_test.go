package tinymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntryVacant(t *testing.T) {
	m := New[string, int](2)
	e := m.Entry("a")
	assert.False(t, e.Present())
	assert.Equal(t, "a", e.Key())
	_, ok := e.Get()
	assert.False(t, ok)

	p := e.OrInsert(5)
	assert.Equal(t, 5, *p)
	assert.Equal(t, 5, m.MustGet("a"))
}

func TestEntryOccupied(t *testing.T) {
	m := New[string, int](2)
	m.Insert("a", 1)
	e := m.Entry("a")
	assert.True(t, e.Present())
	v, ok := e.Get()
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	// the default is ignored, the pointer addresses the stored value
	p := e.OrInsert(99)
	assert.Equal(t, 1, *p)
	*p = 7
	assert.Equal(t, 7, m.MustGet("a"))
}

func TestEntryOrInsertWith(t *testing.T) {
	m := New[string, int](2)
	m.Insert("a", 1)

	called := false
	m.Entry("a").OrInsertWith(func() int {
		called = true
		return 99
	})
	assert.False(t, called)

	p := m.Entry("b").OrInsertWith(func() int {
		called = true
		return 2
	})
	assert.True(t, called)
	assert.Equal(t, 2, *p)
	assert.Equal(t, 2, m.MustGet("b"))
}

func TestEntryAndModify(t *testing.T) {
	m := New[string, int](2)
	m.Insert("hits", 1)

	p := m.Entry("hits").AndModify(func(v *int) { *v++ }).OrInsert(0)
	assert.Equal(t, 2, *p)

	p = m.Entry("misses").AndModify(func(v *int) { *v++ }).OrInsert(0)
	assert.Equal(t, 0, *p)
	assert.Equal(t, 2, m.Len())
}

func TestEntrySet(t *testing.T) {
	m := New[string, int](2)
	p := m.Entry("a").Set(1)
	assert.Equal(t, 1, *p)
	p = m.Entry("a").Set(2)
	assert.Equal(t, 2, *p)
	assert.Equal(t, 1, m.Len())
}

func TestEntryFullMap(t *testing.T) {
	m := New[string, int](1)
	m.Insert("a", 1)

	// occupied entries still work on a full map
	v, ok := m.Entry("a").Get()
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	assert.Panics(t, func() { m.Entry("b").OrInsert(2) })
	assert.Panics(t, func() { m.Entry("b").Set(2) })
}

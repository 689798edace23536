package tinymap

import (
	"testing"
)

const benchSize = 16

func fillTiny() *Map[int, int] {
	m := New[int, int](benchSize)
	for i := range benchSize {
		m.Insert(i, i*10)
	}
	return m
}

func fillBuiltin() map[int]int {
	m := make(map[int]int, benchSize)
	for i := range benchSize {
		m[i] = i * 10
	}
	return m
}

func BenchmarkGet(b *testing.B) {
	m := fillTiny()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		m.Get(n % benchSize)
	}
}

func BenchmarkGetBuiltin(b *testing.B) {
	m := fillBuiltin()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		_ = m[n%benchSize]
	}
}

func BenchmarkInsert(b *testing.B) {
	m := New[int, int](benchSize)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		m.Insert(n%benchSize, n)
	}
}

func BenchmarkInsertBuiltin(b *testing.B) {
	m := make(map[int]int, benchSize)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		m[n%benchSize] = n
	}
}

func BenchmarkIter(b *testing.B) {
	m := fillTiny()
	b.ResetTimer()
	var sum int
	for n := 0; n < b.N; n++ {
		for _, v := range m.Iter {
			sum += v
		}
	}
	_ = sum
}

// Package circular provides an array whose end wraps around to its start,
// so the logical start can be rotated in O(1) while indexing stays O(1).
package circular

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Array is a circular array. Logical index i lives at
// items[(start+i) % len(items)]. The zero value is an empty array ready
// to use. An Array is not safe for concurrent use.
type Array[T any] struct {
	items []T
	start int
}

// NewArray returns an array holding vals in order, starting at index 0.
func NewArray[T any](vals ...T) *Array[T] {
	return &Array[T]{items: slices.Clone(vals)}
}

// Len returns the number of elements.
func (a *Array[T]) Len() int { return len(a.items) }

// Size is the same as Len.
func (a *Array[T]) Size() int { return len(a.items) }

// Empty reports whether the array holds no elements.
func (a *Array[T]) Empty() bool { return len(a.items) == 0 }

// Clear drops every element and resets the rotation.
func (a *Array[T]) Clear() {
	clear(a.items)
	a.items = a.items[:0]
	a.start = 0
}

func (a *Array[T]) pos(i int) int {
	return (a.start + i) % len(a.items)
}

// AddItem appends v at the logical end of the array under its current
// rotation. Values already in the array keep their logical indexes.
func (a *Array[T]) AddItem(v T) {
	if a.start == 0 {
		a.items = append(a.items, v)
		return
	}
	// the logical end sits right before start in wrap order
	a.items = slices.Insert(a.items, a.start, v)
	a.start++
}

// GetByIndex returns the value at logical index i. ok is false when i is
// out of range.
func (a *Array[T]) GetByIndex(i int) (v T, ok bool) {
	if i < 0 || i >= len(a.items) {
		return v, false
	}
	return a.items[a.pos(i)], true
}

// Rotate moves the logical start n places. Positive n moves it towards
// higher indexes, negative n towards lower ones. Rotating an empty array
// does nothing.
func (a *Array[T]) Rotate(n int) {
	size := len(a.items)
	if size == 0 {
		return
	}
	a.start = ((a.start+n%size)%size + size) % size
}

// All yields index/value pairs in logical order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range a.items {
			if !yield(i, a.items[a.pos(i)]) {
				return
			}
		}
	}
}

// Values returns the elements in logical order.
func (a *Array[T]) Values() []T {
	res := make([]T, 0, len(a.items))
	res = append(res, a.items[a.start:]...)
	return append(res, a.items[:a.start]...)
}

// String formats the elements in logical order, like fmt does for a slice.
func (a *Array[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range a.All() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, v)
	}
	b.WriteByte(']')
	return b.String()
}

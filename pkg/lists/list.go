// Package lists implements a generic doubly linked list with positional
// access, plus a few algorithms over it: in-place reversal, stable
// partitioning around a pivot, averaging and merging of sorted lists.
//
// A List is not safe for concurrent use.
package lists

import (
	"fmt"
	"iter"
	"strings"
)

type element[T any] struct {
	value      T
	next, prev *element[T]
}

// List is a doubly linked list. The zero value is an empty list ready to use.
type List[T any] struct {
	head, tail *element[T]
	len        int
}

// New returns a list holding vals in order.
func New[T any](vals ...T) *List[T] {
	l := new(List[T])
	for _, v := range vals {
		l.PushBack(v)
	}
	return l
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.len }

// Size is the same as Len.
func (l *List[T]) Size() int { return l.len }

// Empty reports whether the list holds no elements.
func (l *List[T]) Empty() bool { return l.len == 0 }

// Clear drops every element.
func (l *List[T]) Clear() {
	for e := l.head; e != nil; {
		next := e.next
		e.next, e.prev = nil, nil
		e = next
	}
	l.head, l.tail = nil, nil
	l.len = 0
}

// insertAfter links e in right after at. A nil at puts e at the front.
func (l *List[T]) insertAfter(e, at *element[T]) *element[T] {
	e.prev = at
	if at == nil {
		e.next = l.head
		l.head = e
	} else {
		e.next = at.next
		at.next = e
	}
	if e.next == nil {
		l.tail = e
	} else {
		e.next.prev = e
	}
	l.len++
	return e
}

// unlink detaches e, fixing head and tail when e sits at either end.
func (l *List[T]) unlink(e *element[T]) T {
	if e.prev == nil {
		l.head = e.next
	} else {
		e.prev.next = e.next
	}
	if e.next == nil {
		l.tail = e.prev
	} else {
		e.next.prev = e.prev
	}
	e.next, e.prev = nil, nil
	l.len--
	return e.value
}

// PushBack appends v after the current tail.
func (l *List[T]) PushBack(v T) {
	l.insertAfter(&element[T]{value: v}, l.tail)
}

// PushFront prepends v before the current head.
func (l *List[T]) PushFront(v T) {
	l.insertAfter(&element[T]{value: v}, nil)
}

// PopBack removes and returns the last value.
func (l *List[T]) PopBack() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}
	return l.unlink(l.tail), nil
}

// PopFront removes and returns the first value.
func (l *List[T]) PopFront() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}
	return l.unlink(l.head), nil
}

// Front returns the first value without removing it.
func (l *List[T]) Front() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}
	return l.head.value, nil
}

// Back returns the last value without removing it.
func (l *List[T]) Back() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}
	return l.tail.value, nil
}

// at returns the element at index i, walking from whichever end is
// closer. i must already be in [0, l.len).
func (l *List[T]) at(i int) *element[T] {
	if i < l.len/2 {
		e := l.head
		for ; i > 0; i-- {
			e = e.next
		}
		return e
	}
	e := l.tail
	for j := l.len - 1; j > i; j-- {
		e = e.prev
	}
	return e
}

// GetAt returns the value at index i.
func (l *List[T]) GetAt(i int) (T, error) {
	if i < 0 || i >= l.len {
		var zero T
		return zero, indexError(i, l.len)
	}
	return l.at(i).value, nil
}

// SetAt overwrites the value at index i.
func (l *List[T]) SetAt(i int, v T) error {
	if i < 0 || i >= l.len {
		return indexError(i, l.len)
	}
	l.at(i).value = v
	return nil
}

// InsertAt inserts v so that it ends up at index i, shifting the elements
// from i onwards one place later. i may equal Len, which appends.
func (l *List[T]) InsertAt(i int, v T) error {
	if i < 0 || i > l.len {
		return indexError(i, l.len)
	}
	var at *element[T]
	if i == l.len {
		at = l.tail
	} else {
		at = l.at(i).prev
	}
	l.insertAfter(&element[T]{value: v}, at)
	return nil
}

// RemoveAt removes and returns the value at index i.
func (l *List[T]) RemoveAt(i int) (T, error) {
	if i < 0 || i >= l.len {
		var zero T
		return zero, indexError(i, l.len)
	}
	return l.unlink(l.at(i)), nil
}

// Reverse reverses the list in place. No elements are allocated.
func (l *List[T]) Reverse() {
	for e := l.head; e != nil; e = e.prev {
		e.next, e.prev = e.prev, e.next
	}
	l.head, l.tail = l.tail, l.head
}

// Partition reorders the list in place so that every element for which
// keep returns true comes before every element for which it returns false.
// Relative order inside both groups is preserved. No elements are
// allocated.
func (l *List[T]) Partition(keep func(T) bool) {
	var (
		frontHead, frontTail *element[T]
		backHead, backTail   *element[T]
	)
	for e := l.head; e != nil; {
		next := e.next
		e.next = nil
		if keep(e.value) {
			e.prev = frontTail
			if frontTail == nil {
				frontHead = e
			} else {
				frontTail.next = e
			}
			frontTail = e
		} else {
			e.prev = backTail
			if backTail == nil {
				backHead = e
			} else {
				backTail.next = e
			}
			backTail = e
		}
		e = next
	}

	switch {
	case frontHead == nil:
		l.head, l.tail = backHead, backTail
	case backHead == nil:
		l.head, l.tail = frontHead, frontTail
	default:
		frontTail.next = backHead
		backHead.prev = frontTail
		l.head, l.tail = frontHead, backTail
	}
}

// Clone returns a copy of l with freshly allocated elements.
func (l *List[T]) Clone() *List[T] {
	c := new(List[T])
	for e := l.head; e != nil; e = e.next {
		c.PushBack(e.value)
	}
	return c
}

// All yields index/value pairs from head to tail.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for e := l.head; e != nil; e = e.next {
			if !yield(i, e.value) {
				return
			}
			i++
		}
	}
}

// Backward yields index/value pairs from tail to head.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := l.len - 1
		for e := l.tail; e != nil; e = e.prev {
			if !yield(i, e.value) {
				return
			}
			i--
		}
	}
}

// Values returns the elements from head to tail in a new slice.
func (l *List[T]) Values() []T {
	res := make([]T, 0, l.len)
	for e := l.head; e != nil; e = e.next {
		res = append(res, e.value)
	}
	return res
}

// String formats the elements from head to tail, like fmt does for a slice.
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for e := l.head; e != nil; e = e.next {
		if e != l.head {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, e.value)
	}
	b.WriteByte(']')
	return b.String()
}

package lists

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Number is satisfied by every integer and floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Average returns the arithmetic mean of the values in l.
// An empty list averages to 0; this is not an error.
func Average[T Number](l *List[T]) float64 {
	if l.len == 0 {
		return 0
	}
	var sum float64
	for e := l.head; e != nil; e = e.next {
		sum += float64(e.value)
	}
	return sum / float64(l.len)
}

// Pivot moves every value less than v ahead of the values greater than or
// equal to v, keeping the original order on both sides. Values equal to v
// land on the greater side.
func Pivot[T cmp.Ordered](l *List[T], v T) {
	l.Partition(func(x T) bool { return cmp.Less(x, v) })
}

// MergeSorted merges two ascending lists into a new ascending list.
// On ties, values from a come first. Neither a nor b is modified.
func MergeSorted[T cmp.Ordered](a, b *List[T]) *List[T] {
	return MergeSortedFunc(a, b, cmp.Compare[T])
}

// MergeSortedFunc is like MergeSorted but orders values with compare, which
// follows the slices.SortFunc convention.
func MergeSortedFunc[T any](a, b *List[T], compare func(x, y T) int) *List[T] {
	res := new(List[T])
	x, y := a.head, b.head
	for x != nil && y != nil {
		if compare(y.value, x.value) < 0 {
			res.PushBack(y.value)
			y = y.next
		} else {
			res.PushBack(x.value)
			x = x.next
		}
	}
	for ; x != nil; x = x.next {
		res.PushBack(x.value)
	}
	for ; y != nil; y = y.next {
		res.PushBack(y.value)
	}
	return res
}

package lists

import (
	"math/rand/v2"
	"testing"

	"github.com/emirpasic/gods/v2/lists/doublylinkedlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const numOps = 10

// applyOp runs one operation against both l and the reference list and
// checks they agree. arg picks the index or value the operation uses.
func applyOp(t testing.TB, l *List[int], ref *doublylinkedlist.List[int], op, arg int) {
	t.Helper()
	n := ref.Size()
	switch op % numOps {
	case 0:
		l.PushBack(arg)
		ref.Add(arg)
	case 1:
		l.PushFront(arg)
		ref.Prepend(arg)
	case 2:
		v, err := l.PopBack()
		if n == 0 {
			require.ErrorIs(t, err, ErrEmptyCollection)
			return
		}
		require.NoError(t, err)
		want, _ := ref.Get(n - 1)
		ref.Remove(n - 1)
		require.Equal(t, want, v)
	case 3:
		v, err := l.PopFront()
		if n == 0 {
			require.ErrorIs(t, err, ErrEmptyCollection)
			return
		}
		require.NoError(t, err)
		want, _ := ref.Get(0)
		ref.Remove(0)
		require.Equal(t, want, v)
	case 4:
		i := arg%(n+2) - 1
		v, err := l.GetAt(i)
		want, ok := ref.Get(i)
		if !ok {
			require.ErrorIs(t, err, ErrIndexOutOfRange)
			return
		}
		require.NoError(t, err)
		require.Equal(t, want, v)
	case 5:
		i := arg%(n+2) - 1
		err := l.SetAt(i, arg)
		if i < 0 || i >= n {
			require.ErrorIs(t, err, ErrIndexOutOfRange)
			return
		}
		require.NoError(t, err)
		ref.Set(i, arg)
	case 6:
		i := arg%(n+3) - 1
		err := l.InsertAt(i, arg)
		if i < 0 || i > n {
			require.ErrorIs(t, err, ErrIndexOutOfRange)
			return
		}
		require.NoError(t, err)
		ref.Insert(i, arg)
	case 7:
		i := arg%(n+2) - 1
		v, err := l.RemoveAt(i)
		want, ok := ref.Get(i)
		if !ok {
			require.ErrorIs(t, err, ErrIndexOutOfRange)
			return
		}
		require.NoError(t, err)
		ref.Remove(i)
		require.Equal(t, want, v)
	case 8:
		l.Reverse()
		vals := ref.Values()
		ref.Clear()
		for i := len(vals) - 1; i >= 0; i-- {
			ref.Add(vals[i])
		}
	case 9:
		pivot := arg % 16
		Pivot(l, pivot)
		var less, rest []int
		for _, v := range ref.Values() {
			if v < pivot {
				less = append(less, v)
			} else {
				rest = append(rest, v)
			}
		}
		ref.Clear()
		ref.Add(less...)
		ref.Add(rest...)
	}
}

func TestRandomOperations(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		r := rand.New(rand.NewPCG(seed, seed*7+1))
		l := New[int]()
		ref := doublylinkedlist.New[int]()
		for step := 0; step < 500; step++ {
			applyOp(t, l, ref, r.IntN(numOps), r.IntN(32))
			checkLinks(t, l)
			require.Equal(t, ref.Size(), l.Len(), "seed %d step %d", seed, step)
		}
		assert.Equal(t, ref.Values(), l.Values(), "seed %d", seed)
	}
}

func FuzzOperations(f *testing.F) {
	f.Add([]byte{0, 1, 0, 2, 1, 3, 7, 1, 8, 0, 9, 2})
	f.Add([]byte{2, 0, 3, 0, 6, 1, 6, 0, 6, 9, 4, 2, 5, 1})
	f.Add([]byte{0, 7, 0, 6, 0, 2, 0, 3, 0, 9, 0, 1, 0, 1, 9, 5})
	f.Fuzz(func(t *testing.T, data []byte) {
		l := New[int]()
		ref := doublylinkedlist.New[int]()
		for i := 0; i+1 < len(data); i += 2 {
			applyOp(t, l, ref, int(data[i]), int(data[i+1]))
			checkLinks(t, l)
		}
		require.Equal(t, ref.Values(), l.Values())
	})
}

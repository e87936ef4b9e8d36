package compare

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutComparer_Next(t *testing.T) {
	s := []int{1, 2, 3}
	c := NewMut(s)

	var got []pair[int]
	for a, b, ok := c.Next(); ok; a, b, ok = c.Next() {
		got = append(got, pair[int]{*a, *b})
		*a += 10
		*b += 100
	}

	assert.Equal(t, []pair[int]{{1, 2}, {11, 3}, {102, 103}}, got)
	assert.Equal(t, []int{21, 112, 203}, s)
}

func TestMutComparer_swap(t *testing.T) {
	s := []string{"c", "a", "b"}
	CompareMut(s, func(a, b *string) {
		if *b < *a {
			*a, *b = *b, *a
		}
	})
	assert.Equal(t, []string{"a", "b", "c"}, s)
}

func TestMutComparer_distinctPointers(t *testing.T) {
	s := make([]int, 7)
	c := NewMut(s)
	for a, b := range c.AllIndexed() {
		require.NotSame(t, a.Value, b.Value)
		assert.Same(t, &s[a.Index], a.Value)
		assert.Same(t, &s[b.Index], b.Value)
	}
}

func TestMutComparer_matchesComparer(t *testing.T) {
	for n := 0; n <= 9; n++ {
		values := make([]int, n)
		for k := range values {
			values[k] = k * k
		}

		var want, got []pair[int]
		Compare(values, func(a, b int) { want = append(want, pair[int]{a, b}) })
		Slice[int](slices.Clone(values)).CompareSelfMut(func(a, b *int) { got = append(got, pair[int]{*a, *b}) })

		assert.Equal(t, want, got, "n=%d", n)
	}
}

// Visiting (i, j) inserts j into list i and i into list j; every list must
// end up holding all the other indices.
func TestMutComparer_growableLists(t *testing.T) {
	for _, n := range []int{0, 1, 1000} {
		lists := make([][]int, n)
		CompareEnumeratedMut(lists, func(a, b IndexedMut[[]int]) {
			*a.Value = insertSorted(*a.Value, b.Index)
			*b.Value = insertSorted(*b.Value, a.Index)
		})

		for k, l := range lists {
			var want []int
			for x := range n {
				if x != k {
					want = append(want, x)
				}
			}
			require.Equal(t, want, l, "n=%d k=%d", n, k)
		}
	}
}

func insertSorted(s []int, v int) []int {
	i, _ := slices.BinarySearch(s, v)
	return slices.Insert(s, i, v)
}

func TestMutComparer_callerAppend(t *testing.T) {
	s := make([]int, 3)
	c := NewMut(s)

	s = append(s, 99) // reallocates the caller's copy only
	c.ForEach(func(a, b *int) { *a++; *b++ })

	assert.Equal(t, []int{2, 2, 2}, c.Inner())
	assert.Equal(t, []int{0, 0, 0, 99}, s)
}

func TestMutComparer_Indices(t *testing.T) {
	c := NewMut([]int{1, 2})
	i, j := c.Indices()
	assert.Equal(t, [2]int{0, 1}, [2]int{i, j})
	assert.Equal(t, 1, c.Remaining())

	a, b, ok := c.NextIndexed()
	require.True(t, ok)
	assert.Equal(t, 0, a.Index)
	assert.Equal(t, 1, b.Index)
	assert.Zero(t, c.Remaining())

	_, _, ok = c.NextIndexed()
	assert.False(t, ok)
}

func TestMutComparer_All_break(t *testing.T) {
	s := []int{0, 0, 0, 0}
	c := NewMut(s)
	for a, b := range c.All() {
		*a, *b = 1, 1
		break
	}
	assert.Equal(t, []int{1, 1, 0, 0}, s)
	assert.Equal(t, Count(4)-1, c.Remaining())
}

func Test_split(t *testing.T) {
	s := []int{0, 1, 2, 3, 4}
	for i, j := range Indices(len(s)) {
		a, b := split(s, i, j)
		assert.Equal(t, i, *a)
		assert.Equal(t, j, *b)
		assert.Same(t, &s[i], a)
		assert.Same(t, &s[j], b)
	}

	assert.Panics(t, func() { split(s, 2, 2) })
	assert.Panics(t, func() { split(s, 3, 1) })
	assert.Panics(t, func() { split(s, 0, 5) })
	assert.Panics(t, func() { split([]int{}, 0, 1) })
}

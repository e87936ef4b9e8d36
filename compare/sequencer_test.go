package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(n int) [][2]int {
	var got [][2]int
	s := NewSequencer(n)
	for i, j, ok := s.Next(); ok; i, j, ok = s.Next() {
		got = append(got, [2]int{i, j})
	}
	return got
}

func TestSequencer_Next(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want [][2]int
	}{
		{"negative", -1, nil},
		{"empty", 0, nil},
		{"single", 1, nil},
		{"two", 2, [][2]int{{0, 1}}},
		{"three", 3, [][2]int{{0, 1}, {0, 2}, {1, 2}}},
		{"four", 4, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collect(tt.n))
		})
	}
}

func TestSequencer_properties(t *testing.T) {
	for n := 0; n <= 40; n++ {
		got := collect(n)

		assert.Len(t, got, n*(n-1)/2, "n=%d", n)
		assert.Equal(t, Count(n), len(got), "n=%d", n)

		seen := make(map[[2]int]bool, len(got))
		for k, p := range got {
			assert.Less(t, p[0], p[1], "n=%d", n)
			assert.GreaterOrEqual(t, p[0], 0)
			assert.Less(t, p[1], n)
			assert.False(t, seen[p], "pair %v emitted twice", p)
			seen[p] = true
			if k > 0 {
				prev := got[k-1]
				assert.True(t, prev[0] < p[0] || (prev[0] == p[0] && prev[1] < p[1]), "%v before %v", prev, p)
			}
		}
	}
}

func TestSequencer_sticky(t *testing.T) {
	s := NewSequencer(3)
	for range 3 {
		_, _, ok := s.Next()
		assert.True(t, ok)
	}
	for range 5 {
		i, j, ok := s.Next()
		assert.False(t, ok)
		assert.Zero(t, i)
		assert.Zero(t, j)
	}
	assert.True(t, s.Done())
	assert.Zero(t, s.Remaining())
}

func TestSequencer_Indices(t *testing.T) {
	s := NewSequencer(3)
	i, j := s.Indices()
	assert.Equal(t, [2]int{0, 1}, [2]int{i, j})

	s.Next()
	i, j = s.Indices()
	assert.Equal(t, [2]int{0, 2}, [2]int{i, j})

	s.Next()
	i, j = s.Indices()
	assert.Equal(t, [2]int{1, 2}, [2]int{i, j})

	s.Next()
	i, j = s.Indices()
	assert.Equal(t, [2]int{2, 3}, [2]int{i, j})

	one := NewSequencer(1)
	one.Next()
	i, j = one.Indices()
	assert.Equal(t, [2]int{0, 1}, [2]int{i, j})
}

func TestSequencer_Remaining(t *testing.T) {
	for n := 0; n <= 12; n++ {
		s := NewSequencer(n)
		for want := Count(n); want >= 0; want-- {
			assert.Equal(t, want, s.Remaining(), "n=%d", n)
			s.Next()
		}
		assert.Equal(t, n, s.Len())
	}
}

func TestSequencer_zeroValue(t *testing.T) {
	var s Sequencer
	_, _, ok := s.Next()
	assert.False(t, ok)
	assert.True(t, s.Done())
}

func TestIndices(t *testing.T) {
	var got [][2]int
	for i, j := range Indices(4) {
		got = append(got, [2]int{i, j})
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}}, got)
}

func TestCount(t *testing.T) {
	assert.Equal(t, 0, Count(-3))
	assert.Equal(t, 0, Count(0))
	assert.Equal(t, 0, Count(1))
	assert.Equal(t, 1, Count(2))
	assert.Equal(t, 499500, Count(1000))
}

func Test_assertPair(t *testing.T) {
	assert.NotPanics(t, func() { assertPair(0, 1, 2) })
	assert.Panics(t, func() { assertPair(1, 1, 2) })
	assert.Panics(t, func() { assertPair(1, 0, 2) })
	assert.Panics(t, func() { assertPair(0, 2, 2) })
	assert.Panics(t, func() { assertPair(-1, 0, 2) })
}

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairCombinateFunc(t *testing.T) {
	var got []Pair[int]
	PairCombinateFunc([]int{1, 2, 1, 3, 2}, func(a, b int) {
		got = append(got, Pair[int]{a, b})
	})

	assert.Equal(t, []Pair[int]{{1, 2}, {1, 3}, {2, 3}}, got)
}

func TestPairCombinateFunc_keepsInput(t *testing.T) {
	in := []string{"b", "a", "b"}
	calls := 0
	PairCombinateFunc(in, func(a, b string) { calls++ })

	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"b", "a", "b"}, in, "input must not be reordered")
}

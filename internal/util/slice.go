package util

import (
	"cmp"
	"slices"

	"github.com/haijima/pairwise/compare"
)

type Pair[T any] struct{ L, R T }

// PairCombinateFunc calls f with every pair of the distinct values of a in ascending order.
func PairCombinateFunc[T cmp.Ordered](a []T, f func(T, T)) {
	compare.Compare(sortedUnique(a), f)
}

func sortedUnique[T cmp.Ordered](a []T) []T {
	a = slices.Clone(a)
	slices.Sort(a)
	return slices.Compact(a)
}

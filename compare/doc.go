// Package compare walks every unordered pair of elements in a slice exactly once.
//
// For a slice of n elements the pairs (i, j) with i < j are produced in
// lexicographic order: i ascending in the outer loop, j ascending from i+1 in
// the inner loop. That is n*(n-1)/2 pairs; slices with fewer than two elements
// produce none.
//
// Two comparers are provided:
//
//   - [Comparer] hands out copies of both elements and never writes to the slice.
//   - [MutComparer] hands out pointers to both elements so the caller can modify
//     the two of them at the same time.
//
// Both can be driven by the caller (Next, NextIndexed), by a callback
// (ForEach, ForEachIndexed) or with range-over-func (All, AllIndexed).
// A comparer is single pass: once exhausted it stays exhausted, and a new one
// must be created to walk the slice again.
//
// Basic usage:
//
//	compare.Compare([]int{1, 2, 3}, func(a, b int) {
//	    fmt.Println(a, b) // 1 2, 1 3, 2 3
//	})
//
//	c := compare.NewMut(lists)
//	for a, b := range c.All() {
//	    *a = append(*a, ...)
//	    *b = append(*b, ...)
//	}
//
// # Pair lifetime
//
// The pointers returned by a [MutComparer] are only meant to be used until the
// next advance. They never alias each other because i != j, but holding on to
// them across advances lets the caller end up with two handles on the same
// element. The comparer keeps its own copy of the slice header taken at
// construction, so appending to the caller's slice variable while walking does
// not move the elements being paired.
package compare

package compare

import "iter"

// Compare calls f with every pair of elements of s.
func Compare[T any](s []T, f func(a, b T)) {
	New(s).ForEach(f)
}

// CompareEnumerated calls f with every pair of elements of s and their indices.
func CompareEnumerated[T any](s []T, f func(a, b Indexed[T])) {
	New(s).ForEachIndexed(f)
}

// CompareMut calls f with pointers to every pair of elements of s.
func CompareMut[T any](s []T, f func(a, b *T)) {
	NewMut(s).ForEach(f)
}

// CompareEnumeratedMut calls f with pointers to every pair of elements of s and their indices.
func CompareEnumeratedMut[T any](s []T, f func(a, b IndexedMut[T])) {
	NewMut(s).ForEachIndexed(f)
}

// Pairs returns an iterator over every pair of elements of s.
func Pairs[T any](s []T) iter.Seq2[T, T] {
	return New(s).All()
}

// Slice attaches the comparison helpers to a slice as methods.
//
//	compare.Slice[int](xs).CompareSelf(func(a, b int) { ... })
type Slice[T any] []T

// Comparer returns an immutable Comparer over s.
func (s Slice[T]) Comparer() *Comparer[T] {
	return New([]T(s))
}

// MutComparer returns a MutComparer over s.
func (s Slice[T]) MutComparer() *MutComparer[T] {
	return NewMut([]T(s))
}

// CompareSelf is Compare over s.
func (s Slice[T]) CompareSelf(f func(a, b T)) {
	s.Comparer().ForEach(f)
}

// CompareSelfEnumerated is CompareEnumerated over s.
func (s Slice[T]) CompareSelfEnumerated(f func(a, b Indexed[T])) {
	s.Comparer().ForEachIndexed(f)
}

// CompareSelfMut is CompareMut over s.
func (s Slice[T]) CompareSelfMut(f func(a, b *T)) {
	s.MutComparer().ForEach(f)
}

// CompareSelfEnumeratedMut is CompareEnumeratedMut over s.
func (s Slice[T]) CompareSelfEnumeratedMut(f func(a, b IndexedMut[T])) {
	s.MutComparer().ForEachIndexed(f)
}

package compare

import "iter"

// IndexedMut is a pointer to an element together with its position in the slice.
type IndexedMut[T any] struct {
	Index int
	Value *T
}

// MutComparer walks the pairs of a slice and hands out pointers to both
// elements of each pair, so both can be modified at once.
//
// A pair must not be used after the next advance. Nothing else may read or
// write the slice while the comparer is in use.
type MutComparer[T any] struct {
	s   []T
	seq Sequencer
}

// NewMut returns a MutComparer over s.
//
// The slice header is copied here, so the comparer always walks the same
// backing array of len(s) elements even if the caller appends to s meanwhile.
func NewMut[T any](s []T) *MutComparer[T] {
	return &MutComparer[T]{s: s, seq: NewSequencer(len(s))}
}

// Next returns pointers to the next pair of elements, or ok == false once all
// pairs have been returned.
func (c *MutComparer[T]) Next() (a, b *T, ok bool) {
	i, j, ok := c.seq.Next()
	if !ok {
		return nil, nil, false
	}
	a, b = split(c.s, i, j)
	return a, b, true
}

// NextIndexed is like Next but also returns the indices of both elements.
func (c *MutComparer[T]) NextIndexed() (a, b IndexedMut[T], ok bool) {
	i, j := c.seq.Indices()
	x, y, ok := c.Next()
	if !ok {
		return a, b, false
	}
	return IndexedMut[T]{i, x}, IndexedMut[T]{j, y}, true
}

// Indices returns the indices of the pair the next advance will return.
func (c *MutComparer[T]) Indices() (i, j int) {
	return c.seq.Indices()
}

// Remaining returns the number of pairs not yet returned.
func (c *MutComparer[T]) Remaining() int {
	return c.seq.Remaining()
}

// Inner returns the slice being compared. Writing through it while a pair is
// held bypasses the comparer.
func (c *MutComparer[T]) Inner() []T {
	return c.s
}

// ForEach calls f for every remaining pair.
func (c *MutComparer[T]) ForEach(f func(a, b *T)) {
	for a, b, ok := c.Next(); ok; a, b, ok = c.Next() {
		f(a, b)
	}
}

// ForEachIndexed calls f for every remaining pair with the elements' indices.
func (c *MutComparer[T]) ForEachIndexed(f func(a, b IndexedMut[T])) {
	for a, b, ok := c.NextIndexed(); ok; a, b, ok = c.NextIndexed() {
		f(a, b)
	}
}

// All returns an iterator over pointers to the remaining pairs.
func (c *MutComparer[T]) All() iter.Seq2[*T, *T] {
	return func(yield func(*T, *T) bool) {
		for a, b, ok := c.Next(); ok; a, b, ok = c.Next() {
			if !yield(a, b) {
				return
			}
		}
	}
}

// AllIndexed is like All but yields the pointers with their indices.
func (c *MutComparer[T]) AllIndexed() iter.Seq2[IndexedMut[T], IndexedMut[T]] {
	return func(yield func(IndexedMut[T], IndexedMut[T]) bool) {
		for a, b, ok := c.NextIndexed(); ok; a, b, ok = c.NextIndexed() {
			if !yield(a, b) {
				return
			}
		}
	}
}

// split returns pointers to s[i] and s[j], i < j < len(s).
//
// s is cut at i+1 into s[:i+1] and s[i+1:]. The two halves share no element,
// s[i] is the last element of the first and s[j] is element j-i-1 of the
// second, so the pointers can never refer to the same element.
func split[T any](s []T, i, j int) (*T, *T) {
	assertPair(i, j, len(s))
	head, tail := s[:i+1:i+1], s[i+1:]
	return &head[i], &tail[j-i-1]
}

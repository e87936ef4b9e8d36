package compare

import "iter"

// Indexed is an element together with its position in the slice.
type Indexed[T any] struct {
	Index int
	Value T
}

// Comparer walks the pairs of a slice without modifying it.
type Comparer[T any] struct {
	s   []T
	seq Sequencer
}

// New returns a Comparer over s. The comparer reads s for as long as it is used.
func New[T any](s []T) *Comparer[T] {
	return &Comparer[T]{s: s, seq: NewSequencer(len(s))}
}

// Next returns the next pair of elements, or ok == false once all pairs have been returned.
func (c *Comparer[T]) Next() (a, b T, ok bool) {
	i, j, ok := c.seq.Next()
	if !ok {
		return a, b, false
	}
	assertPair(i, j, len(c.s))
	return c.s[i], c.s[j], true
}

// NextIndexed is like Next but also returns the indices of both elements.
func (c *Comparer[T]) NextIndexed() (a, b Indexed[T], ok bool) {
	i, j := c.seq.Indices()
	x, y, ok := c.Next()
	if !ok {
		return a, b, false
	}
	return Indexed[T]{i, x}, Indexed[T]{j, y}, true
}

// Indices returns the indices of the pair the next advance will return.
func (c *Comparer[T]) Indices() (i, j int) {
	return c.seq.Indices()
}

// Remaining returns the number of pairs not yet returned.
func (c *Comparer[T]) Remaining() int {
	return c.seq.Remaining()
}

// Inner returns the slice being compared. It must not be modified while the comparer is in use.
func (c *Comparer[T]) Inner() []T {
	return c.s
}

// ForEach calls f for every remaining pair.
func (c *Comparer[T]) ForEach(f func(a, b T)) {
	for a, b, ok := c.Next(); ok; a, b, ok = c.Next() {
		f(a, b)
	}
}

// ForEachIndexed calls f for every remaining pair with the elements' indices.
func (c *Comparer[T]) ForEachIndexed(f func(a, b Indexed[T])) {
	for a, b, ok := c.NextIndexed(); ok; a, b, ok = c.NextIndexed() {
		f(a, b)
	}
}

// All returns an iterator over the remaining pairs. Ranging over it advances
// the comparer; breaking out of the loop leaves the rest for a later call.
func (c *Comparer[T]) All() iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		for a, b, ok := c.Next(); ok; a, b, ok = c.Next() {
			if !yield(a, b) {
				return
			}
		}
	}
}

// AllIndexed is like All but yields the elements with their indices.
func (c *Comparer[T]) AllIndexed() iter.Seq2[Indexed[T], Indexed[T]] {
	return func(yield func(Indexed[T], Indexed[T]) bool) {
		for a, b, ok := c.NextIndexed(); ok; a, b, ok = c.NextIndexed() {
			if !yield(a, b) {
				return
			}
		}
	}
}

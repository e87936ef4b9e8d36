package compare

import (
	"iter"

	"github.com/cockroachdb/errors"
)

// Sequencer produces the index pairs (i, j), 0 <= i < j < n, in lexicographic order.
// The zero value is an exhausted sequencer for n = 0.
type Sequencer struct {
	i, j, n int
}

// NewSequencer returns a sequencer for n elements with its cursor at (0, 1).
func NewSequencer(n int) Sequencer {
	return Sequencer{i: 0, j: 1, n: max(n, 0)}
}

// Next returns the pair under the cursor and moves the cursor forward.
// Once it reports false it keeps doing so.
func (s *Sequencer) Next() (i, j int, ok bool) {
	if s.n == 0 || s.i >= s.n-1 {
		return 0, 0, false
	}
	i, j = s.i, s.j
	s.j++
	if s.j == s.n {
		s.i++
		s.j = s.i + 1
	}
	return i, j, true
}

// Indices returns the cursor, i.e. the pair the next call to Next will produce
// if the sequencer is not exhausted.
func (s *Sequencer) Indices() (i, j int) {
	return s.i, s.j
}

// Len returns the number of elements the sequencer was built for.
func (s *Sequencer) Len() int {
	return s.n
}

// Done reports whether every pair has been produced.
func (s *Sequencer) Done() bool {
	return s.n == 0 || s.i >= s.n-1
}

// Remaining returns how many pairs are left to produce.
func (s *Sequencer) Remaining() int {
	if s.Done() {
		return 0
	}
	m := s.n - 1 - s.i // rows from the current one to the last
	return (s.n - s.j) + m*(m-1)/2
}

// Count returns n*(n-1)/2, the number of pairs of n elements.
func Count(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// Indices yields every index pair of n elements.
func Indices(n int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		s := NewSequencer(n)
		for i, j, ok := s.Next(); ok; i, j, ok = s.Next() {
			if !yield(i, j) {
				return
			}
		}
	}
}

// assertPair panics unless 0 <= i < j < n. The sequencer never produces
// anything else, so a failure here is a bug in this package.
func assertPair(i, j, n int) {
	if i < 0 || i >= j || j >= n {
		panic(errors.AssertionFailedf("compare: invalid pair (%d, %d) for %d elements", i, j, n))
	}
}

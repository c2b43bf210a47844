// Package bitset provides a growable bit-set over small integer identifiers.
//
// A Set stores membership of non-negative integers as one bit each, packed
// into 64-bit words. It is the state-set representation used by the NFA:
// transition rows, the accept set and epsilon-closures are all Sets, and the
// matcher combines them with word-wise unions instead of per-state loops.
//
// Unlike a single machine word, a Set grows to any capacity, so the automaton
// state ceiling is a configured limit rather than a silent overflow.
package bitset

import "math/bits"

const wordBits = 64

// Set is a bit-set of non-negative integers.
// The zero value is an empty set ready to use.
type Set struct {
	words []uint64
}

// New creates a set with capacity for values in [0, n).
// The set still grows automatically if larger values are added.
func New(n int) *Set {
	return &Set{words: make([]uint64, (n+wordBits-1)/wordBits)}
}

// Add inserts value v into the set, growing the backing words if needed.
func (s *Set) Add(v int) {
	w := v / wordBits
	for w >= len(s.words) {
		s.words = append(s.words, 0)
	}
	s.words[w] |= 1 << (v % wordBits)
}

// Contains returns true if v is in the set.
func (s *Set) Contains(v int) bool {
	w := v / wordBits
	if w >= len(s.words) {
		return false
	}
	return s.words[w]&(1<<(v%wordBits)) != 0
}

// UnionWith adds every element of other to s.
func (s *Set) UnionWith(other *Set) {
	for len(s.words) < len(other.words) {
		s.words = append(s.words, 0)
	}
	for i, w := range other.words {
		s.words[i] |= w
	}
}

// Intersects returns true if s and other share at least one element.
func (s *Set) Intersects(other *Set) bool {
	n := len(s.words)
	if len(other.words) < n {
		n = len(other.words)
	}
	for i := 0; i < n; i++ {
		if s.words[i]&other.words[i] != 0 {
			return true
		}
	}
	return false
}

// None returns true if the set is empty.
func (s *Set) None() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Equal returns true if s and other contain exactly the same elements.
func (s *Set) Equal(other *Set) bool {
	a, b := s.words, other.words
	if len(a) < len(b) {
		a, b = b, a
	}
	for i, w := range b {
		if a[i] != w {
			return false
		}
	}
	for _, w := range a[len(b):] {
		if w != 0 {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the set.
func (s *Set) Clone() *Set {
	words := make([]uint64, len(s.words))
	copy(words, s.words)
	return &Set{words: words}
}

// Clear removes all elements, keeping the allocated words for reuse.
func (s *Set) Clear() {
	for i := range s.words {
		s.words[i] = 0
	}
}

// Count returns the number of elements in the set.
func (s *Set) Count() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// ForEach calls f for each element in ascending order.
func (s *Set) ForEach(f func(int)) {
	for i, w := range s.words {
		base := i * wordBits
		for w != 0 {
			f(base + bits.TrailingZeros64(w))
			w &= w - 1
		}
	}
}

// Values returns all elements in ascending order.
// Mainly useful for tests and debug output.
func (s *Set) Values() []int {
	vals := make([]int, 0, s.Count())
	s.ForEach(func(v int) { vals = append(vals, v) })
	return vals
}

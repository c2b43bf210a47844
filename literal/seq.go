// Package literal extracts required literal factors from compiled patterns.
//
// A factor is a byte string that must appear, contiguously, in every input
// the pattern matches. Factors come in alternatives: for (foo|bar)baz every
// match contains "foobaz" or "barbaz". A prefilter can scan for these
// alternatives and reject inputs containing none of them without running
// the automaton.
//
// Extraction is conservative: when a pattern gives no such guarantee (for
// example a*, which matches the empty string), the result is empty and the
// caller must fall back to the full automaton.
package literal

import "bytes"

// Literal is one required factor alternative.
// Complete is true when the factor is not merely contained in every match
// but is the entire match (the pattern denotes a finite set of literals).
type Literal struct {
	Bytes    []byte
	Complete bool
}

// NewLiteral creates a Literal from the given bytes and completeness flag.
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{Bytes: b, Complete: complete}
}

// Len returns the factor length in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String renders the literal for debugging.
func (l Literal) String() string {
	complete := "false"
	if l.Complete {
		complete = "true"
	}
	return "literal{" + string(l.Bytes) + ", complete=" + complete + "}"
}

// Seq is a set of alternative required factors: every matching input
// contains at least one of them. An empty Seq carries no guarantee.
type Seq struct {
	literals []Literal
}

// NewSeq creates a sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{literals: lits}
}

// Len returns the number of alternatives.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// IsEmpty returns true if the sequence carries no factors.
func (s *Seq) IsEmpty() bool {
	return s.Len() == 0
}

// Get returns the i-th alternative.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// Push appends an alternative.
func (s *Seq) Push(l Literal) {
	s.literals = append(s.literals, l)
}

// Complete returns true if every alternative is a complete match, meaning
// the pattern language is exactly the set of factors in the sequence.
func (s *Seq) Complete() bool {
	if s.IsEmpty() {
		return false
	}
	for _, l := range s.literals {
		if !l.Complete {
			return false
		}
	}
	return true
}

// MinLen returns the length of the shortest alternative, or 0 when empty.
func (s *Seq) MinLen() int {
	if s.IsEmpty() {
		return 0
	}
	min := s.literals[0].Len()
	for _, l := range s.literals[1:] {
		if l.Len() < min {
			min = l.Len()
		}
	}
	return min
}

// Contains reports whether the sequence already holds the given bytes.
func (s *Seq) Contains(b []byte) bool {
	for _, l := range s.literals {
		if bytes.Equal(l.Bytes, b) {
			return true
		}
	}
	return false
}

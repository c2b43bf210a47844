// Package prefilter provides fast quick-reject filtering ahead of NFA
// simulation.
//
// Whole-string matching still benefits from literal scanning: if every input
// the pattern can match must contain one of a small set of literal factors,
// an input containing none of them cannot match, and the automaton never
// needs to run. The factors come from the literal package; the scan is an
// Aho-Corasick automaton over all alternatives at once.
//
// A prefilter never affects semantics. When no usable factors exist the
// pass-through filter is returned, which rejects nothing.
package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/rematch/literal"
)

// Prefilter answers whether an input can be rejected without running the
// automaton. Implementations are immutable and safe for concurrent use.
type Prefilter interface {
	// CanReject returns true when the input provably cannot match.
	// False means "run the automaton", never "match".
	CanReject(input []byte) bool
}

// FromSeq builds a prefilter from extracted factor alternatives.
// Empty or unusable sequences (or an Aho-Corasick build failure) yield the
// pass-through filter.
func FromSeq(seq *literal.Seq) Prefilter {
	if seq.IsEmpty() || seq.MinLen() == 0 {
		return passthrough{}
	}

	builder := ahocorasick.NewBuilder()
	for i := 0; i < seq.Len(); i++ {
		builder.AddPattern(seq.Get(i).Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		return passthrough{}
	}

	return &acFilter{auto: auto}
}

// passthrough is the no-op prefilter: it never rejects.
type passthrough struct{}

func (passthrough) CanReject([]byte) bool { return false }

// acFilter rejects inputs that contain none of the required factors.
type acFilter struct {
	auto *ahocorasick.Automaton
}

func (f *acFilter) CanReject(input []byte) bool {
	return !f.auto.IsMatch(input)
}

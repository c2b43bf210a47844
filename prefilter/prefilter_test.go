package prefilter

import (
	"testing"

	"github.com/coregx/rematch/literal"
	"github.com/coregx/rematch/syntax"
)

func fromPattern(t *testing.T, pattern string) Prefilter {
	t.Helper()
	postfix, err := syntax.ToPostfix(pattern)
	if err != nil {
		t.Fatalf("ToPostfix(%q): %v", pattern, err)
	}
	return FromSeq(literal.Extract(postfix))
}

func TestFromSeq_RejectsInputsWithoutFactor(t *testing.T) {
	pf := fromPattern(t, "(foo|bar)x*")

	tests := []struct {
		input     string
		canReject bool
	}{
		{"foox", false},   // contains "foo"
		{"barxxx", false}, // contains "bar"
		{"zzfoozz", false},
		{"bazqux", true}, // neither factor present
		{"", true},
		{"fo", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := pf.CanReject([]byte(tt.input)); got != tt.canReject {
				t.Errorf("CanReject(%q) = %v, want %v", tt.input, got, tt.canReject)
			}
		})
	}
}

func TestFromSeq_PassthroughWhenNoFactors(t *testing.T) {
	// a* guarantees nothing, so nothing may be rejected.
	pf := fromPattern(t, "a*")

	for _, input := range []string{"", "a", "zzz"} {
		if pf.CanReject([]byte(input)) {
			t.Errorf("pass-through filter rejected %q", input)
		}
	}
}

func TestFromSeq_NeverRejectsMatchingInput(t *testing.T) {
	// Soundness: for a set of patterns and inputs that do match, the
	// prefilter must never say reject.
	cases := []struct {
		pattern string
		inputs  []string
	}{
		{"abc", []string{"abc"}},
		{"(ab)*c", []string{"c", "abc", "ababc"}},
		{"a|b", []string{"a", "b"}},
		{"(ab)+c", []string{"abc", "ababc"}},
		{`a\*`, []string{"a*"}},
	}

	for _, c := range cases {
		pf := fromPattern(t, c.pattern)
		for _, in := range c.inputs {
			if pf.CanReject([]byte(in)) {
				t.Errorf("pattern %q: prefilter rejected matching input %q", c.pattern, in)
			}
		}
	}
}

func TestFromSeq_NilSeq(t *testing.T) {
	pf := FromSeq(nil)
	if pf.CanReject([]byte("anything")) {
		t.Error("nil Seq must yield a pass-through filter")
	}
}

package literal

import "github.com/coregx/rematch/syntax"

// maxAlternatives bounds the factor alternatives tracked per fragment.
// Beyond it the fragment is treated as carrying no guarantee; the prefilter
// is an optimization and may always give up.
const maxAlternatives = 64

// factors summarizes one fragment during a postfix walk.
//
// alts/ok is the containment guarantee: every match contains one of alts.
// tail/tailOK is the suffix guarantee: every match ends with one of tail.
// exact means alts is the entire fragment language. Tails let adjacent
// literal runs accumulate across concatenation (a?bc yields "bc", not "b").
type factors struct {
	alts   [][]byte
	ok     bool
	tail   [][]byte
	tailOK bool
	exact  bool
}

// none is the no-guarantee summary.
func none() factors {
	return factors{}
}

// Extract walks a postfix token sequence and returns the required factor
// alternatives of the whole pattern. The result is empty when the pattern
// carries no required factor (for example a*, a?, or overly branchy
// alternations); it is never wrong, only sometimes empty.
func Extract(postfix []syntax.Token) *Seq {
	stack := make([]factors, 0, len(postfix))

	pop := func() (factors, bool) {
		if len(stack) == 0 {
			return factors{}, false
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return f, true
	}

	for _, t := range postfix {
		switch t.Kind {
		case syntax.Literal:
			alt := [][]byte{{t.Value}}
			stack = append(stack, factors{
				alts: alt, ok: true,
				tail: alt, tailOK: true,
				exact: true,
			})

		case syntax.Concat:
			b, okB := pop()
			a, okA := pop()
			if !okA || !okB {
				return NewSeq()
			}
			stack = append(stack, concatFactors(a, b))

		case syntax.Alternate:
			b, okB := pop()
			a, okA := pop()
			if !okA || !okB {
				return NewSeq()
			}
			stack = append(stack, alternateFactors(a, b))

		case syntax.Star, syntax.Optional:
			if _, ok := pop(); !ok {
				return NewSeq()
			}
			// Zero repetitions permitted: nothing is guaranteed.
			stack = append(stack, none())

		case syntax.Plus:
			a, ok := pop()
			if !ok {
				return NewSeq()
			}
			// At least one repetition: containment and suffix guarantees
			// survive, exactness does not.
			a.exact = false
			stack = append(stack, a)

		default:
			return NewSeq()
		}
	}

	if len(stack) != 1 {
		return NewSeq()
	}

	whole := stack[0]
	if !whole.ok {
		return NewSeq()
	}

	seq := NewSeq()
	for _, alt := range whole.alts {
		if len(alt) == 0 || seq.Contains(alt) {
			continue
		}
		seq.Push(NewLiteral(alt, whole.exact))
	}
	return seq
}

// concatFactors combines the summaries of two concatenated fragments.
//
// When both sides are exact the cross-concatenation is exact. Otherwise the
// best containment guarantee among the left factors, the right factors and
// the left-tail x right-language cross (when the right side is exact) is
// kept, preferring the most selective set (longest shortest factor).
func concatFactors(a, b factors) factors {
	if a.exact && b.exact && len(a.alts)*len(b.alts) <= maxAlternatives {
		alts := cross(a.alts, b.alts)
		return factors{alts: alts, ok: true, tail: alts, tailOK: true, exact: true}
	}

	out := none()

	// Suffix guarantee of the concatenation.
	switch {
	case b.exact:
		if a.tailOK && len(a.tail)*len(b.alts) <= maxAlternatives {
			out.tail, out.tailOK = cross(a.tail, b.alts), true
		} else {
			// The left side may be empty or unknown; every match still
			// ends with a full right-language string.
			out.tail, out.tailOK = b.alts, true
		}
	case b.tailOK:
		out.tail, out.tailOK = b.tail, true
	}

	// Containment guarantee: pick the most selective candidate.
	if a.ok {
		out.alts, out.ok = a.alts, true
	}
	if b.ok && (!out.ok || minAltLen(b.alts) > minAltLen(out.alts)) {
		out.alts, out.ok = b.alts, true
	}
	if out.tailOK && (!out.ok || minAltLen(out.tail) > minAltLen(out.alts)) {
		out.alts, out.ok = out.tail, true
	}

	return out
}

// alternateFactors combines the summaries of two alternated fragments.
// A factor is required only if both branches require one, so guarantees
// hold only as unions over both branches.
func alternateFactors(a, b factors) factors {
	out := none()

	if a.ok && b.ok && len(a.alts)+len(b.alts) <= maxAlternatives {
		out.alts = append(append([][]byte{}, a.alts...), b.alts...)
		out.ok = true
		out.exact = a.exact && b.exact
	}
	if a.tailOK && b.tailOK && len(a.tail)+len(b.tail) <= maxAlternatives {
		out.tail = append(append([][]byte{}, a.tail...), b.tail...)
		out.tailOK = true
	}

	return out
}

// cross concatenates every pair (x, y) from the two alternative sets.
func cross(xs, ys [][]byte) [][]byte {
	out := make([][]byte, 0, len(xs)*len(ys))
	for _, x := range xs {
		for _, y := range ys {
			joined := make([]byte, 0, len(x)+len(y))
			joined = append(joined, x...)
			joined = append(joined, y...)
			out = append(out, joined)
		}
	}
	return out
}

func minAltLen(alts [][]byte) int {
	if len(alts) == 0 {
		return 0
	}
	min := len(alts[0])
	for _, a := range alts[1:] {
		if len(a) < min {
			min = len(a)
		}
	}
	return min
}

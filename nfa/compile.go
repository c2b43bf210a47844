package nfa

import "github.com/coregx/rematch/syntax"

// fragment is an ephemeral sub-automaton under construction, identified by
// its entry and exit states. Fragments live only on the Thompson stack and
// never escape compilation.
type fragment struct {
	start, end int
}

// Compile runs Thompson construction over a postfix token sequence and
// freezes the result into an immutable NFA.
//
// The sequence must come from syntax.ToPostfix; a sequence that underflows
// or overfills the fragment stack yields ErrMalformedPostfix rather than a
// panic. Exceeding config.MaxStates yields a CapacityError.
func Compile(postfix []syntax.Token, config Config) (*NFA, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if len(postfix) == 0 {
		return nil, ErrMalformedPostfix
	}

	b := NewBuilder()
	stack := make([]fragment, 0, len(postfix))

	pop := func() (fragment, bool) {
		if len(stack) == 0 {
			return fragment{}, false
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return f, true
	}

	for _, t := range postfix {
		switch t.Kind {
		case syntax.Literal:
			stack = append(stack, b.symbol(t.Value))

		case syntax.Concat:
			f2, ok2 := pop()
			f1, ok1 := pop()
			if !ok1 || !ok2 {
				return nil, ErrMalformedPostfix
			}
			stack = append(stack, b.concat(f1, f2))

		case syntax.Alternate:
			f2, ok2 := pop()
			f1, ok1 := pop()
			if !ok1 || !ok2 {
				return nil, ErrMalformedPostfix
			}
			stack = append(stack, b.alternate(f1, f2))

		case syntax.Star:
			f, ok := pop()
			if !ok {
				return nil, ErrMalformedPostfix
			}
			stack = append(stack, b.star(f))

		case syntax.Plus:
			f, ok := pop()
			if !ok {
				return nil, ErrMalformedPostfix
			}
			stack = append(stack, b.plus(f))

		case syntax.Optional:
			f, ok := pop()
			if !ok {
				return nil, ErrMalformedPostfix
			}
			stack = append(stack, b.optional(f))

		default:
			// Parens never reach postfix form.
			return nil, ErrMalformedPostfix
		}
	}

	if len(stack) != 1 {
		return nil, ErrMalformedPostfix
	}

	whole := stack[0]
	return b.Build(whole.start, whole.end, config.MaxStates)
}

// symbol builds the fragment for a single literal:
//
//	start --symbol--> end
func (b *Builder) symbol(sym byte) fragment {
	f := fragment{start: b.AddState(), end: b.AddState()}
	b.AddTransition(f.start, sym, f.end)
	return f
}

// concat chains two fragments with an epsilon edge from a's exit to b's entry.
func (b *Builder) concat(f1, f2 fragment) fragment {
	b.AddEpsilon(f1.end, f2.start)
	return fragment{start: f1.start, end: f2.end}
}

// alternate builds the union of two fragments: a fresh entry forks silently
// into both, and both exits rejoin at a fresh exit.
func (b *Builder) alternate(f1, f2 fragment) fragment {
	f := fragment{start: b.AddState(), end: b.AddState()}
	b.AddEpsilon(f.start, f1.start)
	b.AddEpsilon(f.start, f2.start)
	b.AddEpsilon(f1.end, f.end)
	b.AddEpsilon(f2.end, f.end)
	return f
}

// plus builds positive closure (one or more):
//
//	start --ε--> f.start
//	f.end --ε--> f.start   (loop back)
//	f.end --ε--> end
func (b *Builder) plus(inner fragment) fragment {
	f := fragment{start: b.AddState(), end: b.AddState()}
	b.AddEpsilon(f.start, inner.start)
	b.AddEpsilon(inner.end, inner.start)
	b.AddEpsilon(inner.end, f.end)
	return f
}

// star builds Kleene closure: positive closure plus a direct epsilon from
// entry to exit permitting zero repetitions.
func (b *Builder) star(inner fragment) fragment {
	f := b.plus(inner)
	b.AddEpsilon(f.start, f.end)
	return f
}

// optional builds zero-or-one:
//
//	start --ε--> f.start,  start --ε--> end,  f.end --ε--> end
func (b *Builder) optional(inner fragment) fragment {
	f := fragment{start: b.AddState(), end: b.AddState()}
	b.AddEpsilon(f.start, inner.start)
	b.AddEpsilon(f.start, f.end)
	b.AddEpsilon(inner.end, f.end)
	return f
}

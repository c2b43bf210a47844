package nfa

import "github.com/coregx/rematch/internal/bitset"

// transition is a single recorded edge. col is an Alphabet column;
// EpsilonCol marks a silent move.
type transition struct {
	from int
	col  int
	to   int
}

// Builder accumulates states, transitions and the alphabet while an NFA is
// under construction. It is created fresh per compilation and consumed by
// Build; the zero value is not usable, use NewBuilder.
type Builder struct {
	next        int
	transitions []transition
	alphabet    *Alphabet
	built       bool
}

// NewBuilder creates an empty builder with the epsilon column pre-registered.
func NewBuilder() *Builder {
	return &Builder{
		transitions: make([]transition, 0, 16),
		alphabet:    NewAlphabet(),
	}
}

// AddState allocates a new state and returns its id.
// Ids increase monotonically from 0.
func (b *Builder) AddState() int {
	id := b.next
	b.next++
	return id
}

// AddTransition records a symbol-labeled edge and registers the symbol.
func (b *Builder) AddTransition(from int, symbol byte, to int) {
	col := b.alphabet.Add(symbol)
	b.transitions = append(b.transitions, transition{from: from, col: col, to: to})
}

// AddEpsilon records a silent edge.
func (b *Builder) AddEpsilon(from, to int) {
	b.transitions = append(b.transitions, transition{from: from, col: EpsilonCol, to: to})
}

// States returns the number of states allocated so far.
func (b *Builder) States() int {
	return b.next
}

// Build freezes the builder into an immutable NFA with the given start and
// accept states. The dense transition table is allocated, every recorded
// transition is set, and the epsilon-closure of every state is precomputed.
//
// Build enforces the state budget: if more than maxStates states were
// allocated it returns a CapacityError and no automaton. The builder is
// spent afterwards either way.
func (b *Builder) Build(start, accept, maxStates int) (*NFA, error) {
	if b.built {
		return nil, &ConfigError{Field: "Builder", Message: "already consumed by Build"}
	}
	b.built = true

	states := b.next
	if states > maxStates {
		return nil, &CapacityError{States: states, Max: maxStates}
	}

	cols := b.alphabet.Len()
	table := make([][]*bitset.Set, states)
	for s := range table {
		row := make([]*bitset.Set, cols)
		for c := range row {
			row[c] = bitset.New(states)
		}
		table[s] = row
	}

	for _, t := range b.transitions {
		table[t.from][t.col].Add(t.to)
	}

	acceptSet := bitset.New(states)
	acceptSet.Add(accept)

	n := &NFA{
		start:     start,
		accept:    accept,
		states:    states,
		table:     table,
		closures:  make([]*bitset.Set, states),
		alphabet:  b.alphabet,
		acceptSet: acceptSet,
	}

	for s := 0; s < states; s++ {
		n.closures[s] = n.epsilonClosure(s)
	}

	return n, nil
}

// epsilonClosure computes the set of states reachable from s using only
// epsilon transitions, including s itself. Fixed-point worklist traversal:
// visited states are never revisited, so it terminates on any finite graph.
func (n *NFA) epsilonClosure(s int) *bitset.Set {
	closure := bitset.New(n.states)
	work := []int{s}

	for len(work) > 0 {
		cur := work[len(work)-1]
		work = work[:len(work)-1]

		if closure.Contains(cur) {
			continue
		}
		closure.Add(cur)

		n.table[cur][EpsilonCol].ForEach(func(next int) {
			if !closure.Contains(next) {
				work = append(work, next)
			}
		})
	}

	return closure
}

package nfa

import "github.com/coregx/rematch/internal/bitset"

// Match reports whether the automaton consumes all of input and ends in a
// configuration containing the accept state. This is whole-string matching:
// an unmatched prefix or suffix fails.
//
// Simulation keeps the current configuration as a state-set. Per input byte:
// look up the byte's alphabet column (an unregistered byte can never match),
// union the transition rows of every current state, then expand the result
// by the precomputed epsilon-closures. An empty configuration fails early
// without consuming the rest of the input.
//
// Each call allocates its own working sets, so concurrent calls on the same
// NFA are safe.
func (n *NFA) Match(input []byte) bool {
	current := n.closures[n.start].Clone()
	next := bitset.New(n.states)
	expanded := bitset.New(n.states)

	for _, c := range input {
		col := n.alphabet.Col(c)
		if col < 0 {
			return false
		}

		next.Clear()
		current.ForEach(func(s int) {
			next.UnionWith(n.table[s][col])
		})

		expanded.Clear()
		next.ForEach(func(s int) {
			expanded.UnionWith(n.closures[s])
		})

		if expanded.None() {
			return false
		}
		current, expanded = expanded, current
	}

	return current.Intersects(n.acceptSet)
}

// MatchString is Match for a string input.
func (n *NFA) MatchString(s string) bool {
	return n.Match([]byte(s))
}

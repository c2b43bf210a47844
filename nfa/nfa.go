package nfa

import "github.com/coregx/rematch/internal/bitset"

// NFA is a compiled, immutable automaton.
//
// It owns a dense transition table indexed by [state][alphabet column],
// a precomputed epsilon-closure per state and the frozen alphabet. Nothing
// is mutated after Build returns, so concurrent Match calls need no locking.
type NFA struct {
	start     int
	accept    int
	states    int
	table     [][]*bitset.Set // [state][column] -> destination set
	closures  []*bitset.Set   // [state] -> epsilon-closure
	alphabet  *Alphabet
	acceptSet *bitset.Set
}

// Start returns the start state id.
func (n *NFA) Start() int {
	return n.start
}

// Accept returns the accepting state id.
func (n *NFA) Accept() int {
	return n.accept
}

// States returns the total number of states.
func (n *NFA) States() int {
	return n.states
}

// Alphabet returns the frozen symbol alphabet.
// The returned value is shared and must not be modified.
func (n *NFA) Alphabet() *Alphabet {
	return n.alphabet
}

// MoveSet returns the destination states of (state, column) in ascending
// order. Mainly useful for introspection and code generation.
func (n *NFA) MoveSet(state, col int) []int {
	if state < 0 || state >= n.states || col < 0 || col >= n.alphabet.Len() {
		return nil
	}
	return n.table[state][col].Values()
}

// Closure returns the epsilon-closure of a state in ascending order.
func (n *NFA) Closure(state int) []int {
	if state < 0 || state >= n.states {
		return nil
	}
	return n.closures[state].Values()
}

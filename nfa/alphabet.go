package nfa

// EpsilonCol is the transition-table column reserved for epsilon moves.
// It is always present and never associated with an input byte.
const EpsilonCol = 0

// Alphabet maps the input bytes that actually appear as transition symbols
// to dense transition-table columns. Column 0 is reserved for epsilon;
// real symbols get columns 1.. in first-seen order. Keeping the table
// indexed by column instead of by raw byte keeps it as narrow as the
// pattern's own alphabet.
type Alphabet struct {
	cols    [256]int16 // byte -> column, -1 when absent
	symbols []byte     // column-1 -> byte, in first-seen order
}

// NewAlphabet creates an alphabet containing only the epsilon column.
func NewAlphabet() *Alphabet {
	a := &Alphabet{}
	for i := range a.cols {
		a.cols[i] = -1
	}
	return a
}

// Add registers a symbol and returns its column.
// Adding an already-registered symbol is a no-op returning its column.
func (a *Alphabet) Add(b byte) int {
	if a.cols[b] >= 0 {
		return int(a.cols[b])
	}
	a.symbols = append(a.symbols, b)
	col := len(a.symbols) // epsilon occupies column 0
	a.cols[b] = int16(col)
	return col
}

// Col returns the column for a symbol, or -1 if the symbol was never
// registered. A -1 at match time means the input cannot match.
func (a *Alphabet) Col(b byte) int {
	return int(a.cols[b])
}

// Len returns the number of columns, including the epsilon column.
func (a *Alphabet) Len() int {
	return len(a.symbols) + 1
}

// Symbols returns the registered input bytes in column order.
// The returned slice is shared and must not be modified.
func (a *Alphabet) Symbols() []byte {
	return a.symbols
}

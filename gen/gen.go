// Package gen emits standalone Go source for a compiled pattern.
//
// The generated file contains the automaton's dense tables as package-level
// data and a single <Name>Match function running the bitmask simulation over
// them, with no dependency on this module. This trades flexibility for zero
// runtime compilation: the pattern is fixed at generation time.
//
// The generated simulation packs each state-set into one uint64, so
// generation is limited to automatons of at most 64 states.
package gen

import (
	"errors"
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/coregx/rematch/nfa"
	"github.com/coregx/rematch/syntax"
)

// ErrTooManyStates indicates the pattern's automaton does not fit the
// single-word state-sets used by generated code.
var ErrTooManyStates = errors.New("automaton exceeds 64 states")

// wordStates is the state capacity of a generated matcher.
const wordStates = 64

// File compiles pattern and returns a jennifer file declaring the matcher
// in package pkg. name prefixes every generated identifier and must be a
// valid exported or unexported Go identifier.
func File(pattern, pkg, name string) (*jen.File, error) {
	postfix, err := syntax.ToPostfix(pattern)
	if err != nil {
		return nil, err
	}

	config := nfa.DefaultConfig()
	config.MaxStates = wordStates
	automaton, err := nfa.Compile(postfix, config)
	if err != nil {
		if errors.Is(err, nfa.ErrCapacityExceeded) {
			return nil, fmt.Errorf("%w: %v", ErrTooManyStates, err)
		}
		return nil, err
	}

	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by rematch. DO NOT EDIT.")
	f.HeaderComment(fmt.Sprintf("Pattern: %q", pattern))

	emitColFunc(f, automaton, name)
	emitTables(f, automaton, name)
	emitMatchFunc(f, name, pattern)

	return f, nil
}

// Source renders the generated file to Go source text.
func Source(pattern, pkg, name string) (string, error) {
	f, err := File(pattern, pkg, name)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%#v", f), nil
}

// emitColFunc declares the byte -> alphabet column lookup as a switch.
// Only the registered symbols appear; everything else is -1 (no match).
func emitColFunc(f *jen.File, automaton *nfa.NFA, name string) {
	cases := make([]jen.Code, 0, len(automaton.Alphabet().Symbols())+1)
	for _, sym := range automaton.Alphabet().Symbols() {
		col := automaton.Alphabet().Col(sym)
		cases = append(cases,
			jen.Case(jen.LitByte(sym)).Block(jen.Return(jen.Lit(col))))
	}
	cases = append(cases, jen.Default().Block(jen.Return(jen.Lit(-1))))

	f.Commentf("%sCol maps an input byte to its transition-table column.", name)
	f.Func().Id(name + "Col").Params(jen.Id("c").Byte()).Int().Block(
		jen.Switch(jen.Id("c")).Block(cases...),
	)
}

// emitTables declares the dense transition table, the epsilon-closures and
// the accept mask as package data. State-sets are uint64 bitmasks.
func emitTables(f *jen.File, automaton *nfa.NFA, name string) {
	states := automaton.States()
	cols := automaton.Alphabet().Len()

	rows := make([]jen.Code, states)
	for s := 0; s < states; s++ {
		cells := make([]jen.Code, cols)
		for c := 0; c < cols; c++ {
			cells[c] = maskLit(automaton.MoveSet(s, c))
		}
		rows[s] = jen.Values(cells...)
	}

	closures := make([]jen.Code, states)
	for s := 0; s < states; s++ {
		closures[s] = maskLit(automaton.Closure(s))
	}

	f.Commentf("%sTrans is the transition table: [state][column] -> state-set.", name)
	f.Var().Id(name + "Trans").Op("=").
		Index(jen.Lit(states)).Index(jen.Lit(cols)).Uint64().Values(rows...)

	f.Commentf("%sClosures holds the epsilon-closure of every state.", name)
	f.Var().Id(name + "Closures").Op("=").
		Index(jen.Lit(states)).Uint64().Values(closures...)

	f.Const().Defs(
		jen.Id(name+"Start").Op("=").Lit(automaton.Start()),
		jen.Id(name+"Accept").Uint64().Op("=").Add(maskLit([]int{automaton.Accept()})),
	)
}

// emitMatchFunc declares the whole-string matcher over the emitted tables.
func emitMatchFunc(f *jen.File, name, pattern string) {
	trans := name + "Trans"
	closures := name + "Closures"

	tz := func(arg string) jen.Code {
		return jen.Qual("math/bits", "TrailingZeros64").Call(jen.Id(arg))
	}
	bitLoop := func(src string, body jen.Code) jen.Code {
		return jen.For(
			jen.Id("set").Op(":=").Id(src),
			jen.Id("set").Op("!=").Lit(0),
			jen.Id("set").Op("&=").Id("set").Op("-").Lit(1),
		).Block(body)
	}

	f.Commentf("%sMatch reports whether input is fully matched by %q.", name, pattern)
	f.Func().Id(name + "Match").Params(jen.Id("input").String()).Bool().Block(
		jen.Id("current").Op(":=").Id(closures).Index(jen.Id(name+"Start")),
		jen.For(jen.Id("i").Op(":=").Lit(0), jen.Id("i").Op("<").Len(jen.Id("input")), jen.Id("i").Op("++")).Block(
			jen.Id("col").Op(":=").Id(name+"Col").Call(jen.Id("input").Index(jen.Id("i"))),
			jen.If(jen.Id("col").Op("<").Lit(0)).Block(jen.Return(jen.False())),
			jen.Var().Id("next").Uint64(),
			bitLoop("current",
				jen.Id("next").Op("|=").Id(trans).Index(tz("set")).Index(jen.Id("col"))),
			jen.Var().Id("expanded").Uint64(),
			bitLoop("next",
				jen.Id("expanded").Op("|=").Id(closures).Index(tz("set"))),
			jen.If(jen.Id("expanded").Op("==").Lit(0)).Block(jen.Return(jen.False())),
			jen.Id("current").Op("=").Id("expanded"),
		),
		jen.Return(jen.Id("current").Op("&").Id(name+"Accept").Op("!=").Lit(0)),
	)
}

// maskLit renders a state list as a hex uint64 bitmask token.
func maskLit(states []int) jen.Code {
	var mask uint64
	for _, s := range states {
		mask |= 1 << uint(s)
	}
	return jen.Id(fmt.Sprintf("%#x", mask))
}

// Package syntax turns a textual regular expression into a postfix token
// sequence ready for Thompson NFA construction.
//
// The grammar is deliberately small: single-byte literals, concatenation,
// alternation (|), Kleene star (*), positive closure (+), optional (?),
// grouping via parentheses and backslash escapes. A bare '.' is the explicit
// concatenation operator, not a wildcard.
//
// The pipeline runs in three passes, one token sequence each:
//
//	Tokenize     raw string -> tokens (escape handling)
//	InsertConcat make implicit adjacency explicit
//	ToPostfix    Shunting-Yard infix -> postfix
package syntax

import "fmt"

// Reserved pattern characters.
const (
	StarSymbol      byte = '*'
	PlusSymbol      byte = '+'
	OptionalSymbol  byte = '?'
	ConcatSymbol    byte = '.'
	AlternateSymbol byte = '|'
	LParenSymbol    byte = '('
	RParenSymbol    byte = ')'
	EscapeSymbol    byte = '\\'
)

// Kind identifies the role of a token in the expression grammar.
type Kind uint8

const (
	// Literal is a single-byte operand.
	Literal Kind = iota

	// Star is the Kleene star operator (zero or more).
	Star

	// Plus is the positive closure operator (one or more).
	Plus

	// Optional is the zero-or-one operator.
	Optional

	// Concat is the (explicit) concatenation operator.
	Concat

	// Alternate is the alternation operator.
	Alternate

	// LParen is an opening group parenthesis.
	LParen

	// RParen is a closing group parenthesis.
	RParen
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Literal:
		return "Literal"
	case Star:
		return "Star"
	case Plus:
		return "Plus"
	case Optional:
		return "Optional"
	case Concat:
		return "Concat"
	case Alternate:
		return "Alternate"
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Token is a single element of a tokenized pattern.
// Tokens are immutable values; Value holds the source byte even for
// operators so sequences can be rendered back to text.
type Token struct {
	Value byte
	Kind  Kind
}

// String renders the token as its source character.
func (t Token) String() string {
	return string(t.Value)
}

// kindOf classifies a raw (unescaped) pattern byte.
func kindOf(c byte) Kind {
	switch c {
	case StarSymbol:
		return Star
	case PlusSymbol:
		return Plus
	case OptionalSymbol:
		return Optional
	case ConcatSymbol:
		return Concat
	case AlternateSymbol:
		return Alternate
	case LParenSymbol:
		return LParen
	case RParenSymbol:
		return RParen
	default:
		return Literal
	}
}

// precedence returns the binding strength of an operator kind,
// higher is tighter. Non-operators get 0.
func precedence(k Kind) int {
	switch k {
	case Star, Plus, Optional:
		return 3
	case Concat:
		return 2
	case Alternate:
		return 1
	default:
		return 0
	}
}

// Render concatenates the source characters of a token sequence.
// This is the display form used for postfix introspection.
func Render(tokens []Token) string {
	buf := make([]byte, len(tokens))
	for i, t := range tokens {
		buf[i] = t.Value
	}
	return string(buf)
}

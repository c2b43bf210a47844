package syntax

import "errors"

// Parse errors returned by ToPostfix.
var (
	// ErrEmptyPattern indicates an empty pattern string was given.
	ErrEmptyPattern = errors.New("empty pattern")

	// ErrUnbalancedParens indicates mismatched grouping parentheses.
	ErrUnbalancedParens = errors.New("unbalanced parentheses")
)

// ToPostfix runs the full parse pipeline on a raw pattern and returns its
// tokens in postfix (reverse Polish) order with all concatenation explicit
// and all grouping removed.
//
// The resulting sequence is guaranteed to be consumable by a stack-based
// NFA builder without underflow; mismatched parentheses are rejected here
// with ErrUnbalancedParens.
func ToPostfix(pattern string) ([]Token, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}

	return shuntingYard(InsertConcat(Tokenize(pattern)))
}

// shuntingYard converts an infix token sequence (with explicit concatenation)
// to postfix order using Dijkstra's Shunting-Yard algorithm.
//
// Operators pop the stack while its top is not an opening parenthesis and has
// precedence >= their own, so equal precedence resolves left-associatively.
func shuntingYard(tokens []Token) ([]Token, error) {
	output := make([]Token, 0, len(tokens))
	stack := make([]Token, 0, len(tokens))

	for _, t := range tokens {
		switch t.Kind {
		case Literal:
			output = append(output, t)

		case Star, Plus, Optional, Concat, Alternate:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind == LParen || precedence(top.Kind) < precedence(t.Kind) {
					break
				}
				output = append(output, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, t)

		case LParen:
			stack = append(stack, t)

		case RParen:
			for {
				if len(stack) == 0 {
					return nil, ErrUnbalancedParens
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == LParen {
					break
				}
				output = append(output, top)
			}
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == LParen {
			return nil, ErrUnbalancedParens
		}
		output = append(output, top)
	}

	return output, nil
}

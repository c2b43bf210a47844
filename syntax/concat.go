package syntax

// endsExpression reports whether a token can terminate a sub-expression:
// a literal, a closing parenthesis, or any unary postfix operator.
func endsExpression(k Kind) bool {
	switch k {
	case Literal, RParen, Star, Plus, Optional:
		return true
	default:
		return false
	}
}

// beginsExpression reports whether a token can start a sub-expression:
// a literal or an opening parenthesis.
func beginsExpression(k Kind) bool {
	return k == Literal || k == LParen
}

// InsertConcat returns a new token sequence with an explicit Concat token
// inserted between every adjacent pair where the left token ends a
// sub-expression and the right one begins a new one. After this pass the
// grammar has no implicit adjacency rule and the Shunting-Yard conversion
// sees only unary and binary operators.
func InsertConcat(tokens []Token) []Token {
	if len(tokens) == 0 {
		return nil
	}

	out := make([]Token, 0, 2*len(tokens)-1)

	for i, t := range tokens {
		out = append(out, t)

		if i+1 < len(tokens) &&
			endsExpression(t.Kind) && beginsExpression(tokens[i+1].Kind) {
			out = append(out, Token{Value: ConcatSymbol, Kind: Concat})
		}
	}

	return out
}

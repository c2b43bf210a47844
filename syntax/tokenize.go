package syntax

// Tokenize converts a raw pattern into a token sequence, one token per
// pattern byte. A backslash consumes the following byte and emits it as a
// literal, so operators can be matched verbatim (`a\*` matches "a*").
// A trailing backslash with nothing to escape is itself a literal.
func Tokenize(pattern string) []Token {
	tokens := make([]Token, 0, len(pattern))

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]

		if c == EscapeSymbol && i+1 < len(pattern) {
			i++
			tokens = append(tokens, Token{Value: pattern[i], Kind: Literal})
			continue
		}

		tokens = append(tokens, Token{Value: c, Kind: kindOf(c)})
	}

	return tokens
}

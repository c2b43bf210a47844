package syntax

import (
	"reflect"
	"testing"
)

func TestTokenize_Classification(t *testing.T) {
	tokens := Tokenize("a*b+c?(d|e).f")

	want := []Kind{
		Literal, Star, Literal, Plus, Literal, Optional,
		LParen, Literal, Alternate, Literal, RParen,
		Concat, Literal,
	}

	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, k := range want {
		if tokens[i].Kind != k {
			t.Errorf("token %d (%q): kind = %s, want %s", i, tokens[i].Value, tokens[i].Kind, k)
		}
	}
}

func TestTokenize_Escapes(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    []Token
	}{
		{
			name:    "escaped star is a literal",
			pattern: `a\*`,
			want: []Token{
				{Value: 'a', Kind: Literal},
				{Value: '*', Kind: Literal},
			},
		},
		{
			name:    "escaped backslash",
			pattern: `\\`,
			want: []Token{
				{Value: '\\', Kind: Literal},
			},
		},
		{
			name:    "escaped ordinary character stays literal",
			pattern: `\a`,
			want: []Token{
				{Value: 'a', Kind: Literal},
			},
		},
		{
			name:    "trailing backslash is a literal backslash",
			pattern: `a\`,
			want: []Token{
				{Value: 'a', Kind: Literal},
				{Value: '\\', Kind: Literal},
			},
		},
		{
			name:    "escaped parens",
			pattern: `\(\)`,
			want: []Token{
				{Value: '(', Kind: Literal},
				{Value: ')', Kind: Literal},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.pattern)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestTokenize_Empty(t *testing.T) {
	if got := Tokenize(""); len(got) != 0 {
		t.Errorf("Tokenize(\"\") = %v, want empty", got)
	}
}

func TestTokenize_OneTokenPerByte(t *testing.T) {
	pattern := "hello world 123"
	tokens := Tokenize(pattern)
	if len(tokens) != len(pattern) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(pattern))
	}
	for i := range tokens {
		if tokens[i].Kind != Literal || tokens[i].Value != pattern[i] {
			t.Errorf("token %d = %+v, want literal %q", i, tokens[i], pattern[i])
		}
	}
}

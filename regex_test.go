package rematch

import (
	"errors"
	"regexp"
	"testing"

	"github.com/coregx/rematch/nfa"
	"github.com/coregx/rematch/syntax"
)

func TestMatch_Basics(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"a", "a", true},
		{"a", "b", false},
		{"a", "", false},

		{"a*", "", true},
		{"a*", "aaaa", true},
		{"a+", "", false},
		{"a+", "a", true},

		{"a|b", "a", true},
		{"a|b", "b", true},
		{"a|b", "c", false},

		{"(ab)*c", "ababc", true},
		{"(ab)*c", "ababcx", false}, // whole-string: trailing suffix fails

		{`a\*`, "a*", true},
		{`a\*`, "aa", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			re, err := Compile(tt.pattern)
			if err != nil {
				t.Fatalf("Compile(%q): %v", tt.pattern, err)
			}
			if got := re.MatchString(tt.input); got != tt.want {
				t.Errorf("MatchString(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		pattern string
		wantErr error
	}{
		{")", syntax.ErrUnbalancedParens},
		{"(a", syntax.ErrUnbalancedParens},
		{"", syntax.ErrEmptyPattern},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			_, err := Compile(tt.pattern)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Compile(%q) error = %v, want %v", tt.pattern, err, tt.wantErr)
			}

			var cerr *CompileError
			if !errors.As(err, &cerr) {
				t.Fatalf("error %v is not a *CompileError", err)
			}
			if cerr.Pattern != tt.pattern {
				t.Errorf("CompileError.Pattern = %q, want %q", cerr.Pattern, tt.pattern)
			}
		})
	}
}

func TestCompileWithConfig_CapacityError(t *testing.T) {
	_, err := CompileWithConfig("abcdefgh", nfa.Config{MaxStates: 4})
	if !errors.Is(err, nfa.ErrCapacityExceeded) {
		t.Errorf("error = %v, want ErrCapacityExceeded", err)
	}
}

func TestToPostfix(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"a(b|c)*", "abc|*."},
		{"ab", "ab."},
		{"(ab)*c", "ab.*c."},
	}

	for _, tt := range tests {
		got, err := ToPostfix(tt.pattern)
		if err != nil {
			t.Errorf("ToPostfix(%q): %v", tt.pattern, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ToPostfix(%q) = %q, want %q", tt.pattern, got, tt.want)
		}
	}

	if _, err := ToPostfix("(a"); !errors.Is(err, syntax.ErrUnbalancedParens) {
		t.Errorf("ToPostfix(\"(a\") error = %v, want ErrUnbalancedParens", err)
	}
}

func TestCompile_Idempotence(t *testing.T) {
	// Compiling the same pattern twice yields functionally equal automatons.
	inputs := []string{"", "a", "b", "ab", "ba", "aab", "abab", "ababc"}

	for _, pattern := range []string{"(ab)*c", "a|b", "a+b*"} {
		re1 := MustCompile(pattern)
		re2 := MustCompile(pattern)
		for _, in := range inputs {
			if re1.MatchString(in) != re2.MatchString(in) {
				t.Errorf("pattern %q: compilations disagree on %q", pattern, in)
			}
		}
	}
}

// TestMatch_AgainstStdlib cross-checks whole-string semantics against the
// standard library on the dialect subset both engines share (no explicit
// concatenation operator, no escapes).
func TestMatch_AgainstStdlib(t *testing.T) {
	patterns := []string{
		"a", "ab", "a|b", "a*", "a+", "a?",
		"(ab)*c", "(a|b)+", "a(b|c)*d", "(a|b)(c|d)", "a(a|b)*a",
	}

	alphabet := []byte("abcd")
	inputs := []string{""}
	queue := []string{""}
	for depth := 0; depth < 4; depth++ {
		var next []string
		for _, s := range queue {
			for _, c := range alphabet {
				next = append(next, s+string(c))
			}
		}
		inputs = append(inputs, next...)
		queue = next
	}

	for _, pattern := range patterns {
		re := MustCompile(pattern)
		std := regexp.MustCompile("^(?:" + pattern + ")$")

		for _, in := range inputs {
			got := re.MatchString(in)
			want := std.MatchString(in)
			if got != want {
				t.Errorf("pattern %q, input %q: got %v, stdlib says %v", pattern, in, got, want)
			}
		}
	}
}

func TestMustCompile_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCompile of an invalid pattern did not panic")
		}
	}()
	MustCompile("(a")
}

func TestRegex_Accessors(t *testing.T) {
	re := MustCompile("a(b|c)*")

	if re.String() != "a(b|c)*" {
		t.Errorf("String() = %q", re.String())
	}
	if re.Postfix() != "abc|*." {
		t.Errorf("Postfix() = %q", re.Postfix())
	}
	if re.NFA() == nil || re.NFA().States() == 0 {
		t.Error("NFA() accessor returned an empty automaton")
	}
}

func TestMatch_PrefilterAgreesWithAutomaton(t *testing.T) {
	// Patterns with extractable factors must behave identically to the
	// bare automaton on every input.
	patterns := []string{"(foo|bar)x*", "abc", "(ab)+c"}
	inputs := []string{"", "foo", "foox", "barxxx", "abc", "abcz", "zabc", "ababc", "bazqux"}

	for _, pattern := range patterns {
		re := MustCompile(pattern)
		for _, in := range inputs {
			got := re.MatchString(in)
			want := re.NFA().MatchString(in)
			if got != want {
				t.Errorf("pattern %q, input %q: facade %v, automaton %v", pattern, in, got, want)
			}
		}
	}
}

func BenchmarkMatchString(b *testing.B) {
	re := MustCompile("(a|b)*abb")
	input := "abababababababababababababb"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !re.MatchString(input) {
			b.Fatal("expected match")
		}
	}
}

func BenchmarkCompile(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Compile("a(b|c)*d+e?"); err != nil {
			b.Fatal(err)
		}
	}
}

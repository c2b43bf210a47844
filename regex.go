// Package rematch compiles a small regular-expression dialect into a
// Thompson NFA and decides whole-string matches.
//
// The dialect supports single-byte literals, concatenation, alternation (|),
// Kleene star (*), positive closure (+), optional (?), grouping parentheses
// and backslash escapes. A bare '.' is the explicit concatenation operator,
// not a wildcard; there are no character classes, anchors or capture groups.
// Matching is whole-string: the automaton must consume the entire input, so
// an unmatched prefix or suffix fails.
//
// Compilation runs the pattern through tokenization, explicit-concatenation
// insertion, Shunting-Yard postfix conversion, Thompson construction and a
// freeze into a dense bitmask automaton with precomputed epsilon-closures.
// Patterns whose required literal factors can be extracted additionally get
// an Aho-Corasick quick-reject prefilter.
//
// Basic usage:
//
//	re, err := rematch.Compile("(ab)*c")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.MatchString("ababc") // true
//	re.MatchString("ababcx") // false: trailing suffix
//
// A compiled Regex is immutable and safe for concurrent use.
package rematch

import (
	"fmt"

	"github.com/coregx/rematch/literal"
	"github.com/coregx/rematch/nfa"
	"github.com/coregx/rematch/prefilter"
	"github.com/coregx/rematch/syntax"
)

// Regex is a compiled regular expression.
type Regex struct {
	nfa     *nfa.NFA
	pre     prefilter.Prefilter
	pattern string
	postfix []syntax.Token
}

// CompileError wraps any compilation failure with the offending pattern.
// Unwrap exposes the underlying cause (syntax.ErrUnbalancedParens,
// syntax.ErrEmptyPattern, nfa.ErrCapacityExceeded, ...).
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("rematch: compiling %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error {
	return e.Err
}

// Compile compiles a pattern with the default configuration.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, nfa.DefaultConfig())
}

// CompileWithConfig compiles a pattern with a custom state budget.
//
// Example:
//
//	config := nfa.DefaultConfig()
//	config.MaxStates = 4096
//	re, err := rematch.CompileWithConfig(bigPattern, config)
func CompileWithConfig(pattern string, config nfa.Config) (*Regex, error) {
	postfix, err := syntax.ToPostfix(pattern)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	automaton, err := nfa.Compile(postfix, config)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	return &Regex{
		nfa:     automaton,
		pre:     prefilter.FromSeq(literal.Extract(postfix)),
		pattern: pattern,
		postfix: postfix,
	}, nil
}

// MustCompile compiles a pattern and panics on failure.
// Useful for patterns known to be valid at program start.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("rematch: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// ToPostfix parses a pattern and renders its postfix form, one character
// per token. Provided for introspection and display; it runs only the parse
// stages and never builds an automaton.
//
// Example:
//
//	s, _ := rematch.ToPostfix("a(b|c)*")
//	// s == "abc|*."
func ToPostfix(pattern string) (string, error) {
	postfix, err := syntax.ToPostfix(pattern)
	if err != nil {
		return "", &CompileError{Pattern: pattern, Err: err}
	}
	return syntax.Render(postfix), nil
}

// Match reports whether the pattern matches the entire input.
func (r *Regex) Match(input []byte) bool {
	if r.pre.CanReject(input) {
		return false
	}
	return r.nfa.Match(input)
}

// MatchString reports whether the pattern matches the entire string.
func (r *Regex) MatchString(s string) bool {
	return r.Match([]byte(s))
}

// String returns the source pattern.
func (r *Regex) String() string {
	return r.pattern
}

// Postfix returns the pattern's postfix form as display text.
func (r *Regex) Postfix() string {
	return syntax.Render(r.postfix)
}

// NFA returns the compiled automaton.
// The returned value is immutable and shared.
func (r *Regex) NFA() *nfa.NFA {
	return r.nfa
}

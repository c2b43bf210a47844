// Package nfa builds and simulates Thompson NFAs for whole-string matching.
//
// The package has a strict two-phase lifecycle. A Builder accumulates states,
// transitions and the symbol alphabet while Thompson construction runs over a
// postfix token sequence; Build then freezes everything into an immutable NFA
// with a dense transition table and precomputed epsilon-closures. The Builder
// is spent after Build and must not be reused, so build-time and match-time
// state can never alias.
//
// A compiled NFA is read-only: any number of goroutines may call Match on the
// same NFA concurrently without coordination.
package nfa

import (
	"errors"
	"fmt"
)

// Common NFA errors.
var (
	// ErrCapacityExceeded indicates the pattern needs more states than the
	// configured maximum allows.
	ErrCapacityExceeded = errors.New("state capacity exceeded")

	// ErrMalformedPostfix indicates the postfix token sequence is not
	// consumable by the fragment stack (underflow or leftover fragments).
	// A sequence produced by syntax.ToPostfix never triggers this.
	ErrMalformedPostfix = errors.New("malformed postfix sequence")
)

// CapacityError reports how far a pattern overran the state ceiling.
// It wraps ErrCapacityExceeded for errors.Is checks.
type CapacityError struct {
	States int // states the pattern required
	Max    int // configured maximum
}

// Error implements the error interface.
func (e *CapacityError) Error() string {
	return fmt.Sprintf("NFA needs %d states, configured maximum is %d: %v",
		e.States, e.Max, ErrCapacityExceeded)
}

// Unwrap returns ErrCapacityExceeded.
func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "nfa: invalid config: " + e.Field + ": " + e.Message
}

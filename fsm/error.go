// Package fsm compiles a restricted regular-expression dialect into a finite
// state graph and decides whether an input is accepted by it.
//
// The dialect has four atom kinds: an ASCII literal, '.' (any character),
// '*' (zero or more of the previous atom) and '+' (one or more of the
// previous atom). There is no escaping, alternation, grouping or anchoring;
// matching is whole-input by construction.
//
// Compilation is a single left-to-right pass over the pattern that rewrites
// a frontier of states (see Builder). Matching is a depth-first backtracking
// search over (state, position) pairs (see Backtracker). Repetition is wired
// with self-loops rather than a dedicated epsilon edge kind: a transition
// whose target rejects the current character is taken as a zero-width move
// instead.
package fsm

import (
	"errors"
	"fmt"
)

// Common compilation errors
var (
	// ErrInvalidPattern indicates the pattern contains a non-ASCII byte or an
	// operator with no preceding atom to apply to.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrTooComplex indicates the pattern exceeds a configured state limit.
	ErrTooComplex = errors.New("pattern too complex")
)

// CompileError wraps compilation errors with the offending pattern and,
// when known, the byte offset of the offending character.
type CompileError struct {
	Pattern string
	Pos     int // byte offset into Pattern, or -1 when not positional
	Err     error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("fsm: cannot compile pattern %q at position %d: %v", e.Pattern, e.Pos, e.Err)
	}
	return fmt.Sprintf("fsm: cannot compile pattern %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}

// BuildError represents an error during graph construction via the Builder API
type BuildError struct {
	Message string
	StateID StateID
}

// Error implements the error interface
func (e *BuildError) Error() string {
	if e.StateID != InvalidState {
		return fmt.Sprintf("fsm build error at state %d: %s", e.StateID, e.Message)
	}
	return fmt.Sprintf("fsm build error: %s", e.Message)
}

// Package microregex compiles a restricted regular-expression dialect into a
// finite state graph and decides whole-string acceptance against it.
//
// The dialect has four constructs:
//   - any plain ASCII character matches itself
//   - '.' matches any single character
//   - '*' repeats the previous atom zero or more times
//   - '+' repeats the previous atom one or more times
//
// There are no character classes, alternation, grouping, anchors or escapes;
// a literal '.', '*' or '+' cannot be expressed. Matching is anchored at both
// ends by construction — unlike stdlib regexp, MatchString asks "is the whole
// input accepted", not "does the input contain a match".
//
// Basic usage:
//
//	re, err := microregex.Compile("a*4.+hi")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.MatchString("aaaaaa4uhi") // true
//	re.MatchString("meow")       // false
//
// A compiled Regex is immutable and safe for concurrent use; per-search state
// is pooled internally.
package microregex

import (
	"sync"

	"github.com/coregx/microregex/fsm"
)

// Regex represents a compiled pattern.
//
// A Regex is safe to use concurrently from multiple goroutines.
type Regex struct {
	fsm     *fsm.FSM
	pattern string

	// prefilter is set when the graph has no Dot states, making the
	// accepted-byte set a sound quick-reject filter.
	prefilter bool

	// pool of per-search Backtracker state, so concurrent matches on the
	// same Regex never share a visited vector.
	pool sync.Pool
}

// Compile compiles a pattern with the default configuration.
//
// It returns an error wrapping fsm.ErrInvalidPattern if the pattern contains
// a non-ASCII byte or applies '*'/'+' with no preceding atom. On error no
// Regex is returned.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles a pattern with custom limits.
//
// Beyond Compile's pattern errors, it returns an error wrapping
// fsm.ErrTooComplex when the compiled graph exceeds config.MaxStates.
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	m, err := fsm.Compile(pattern)
	if err != nil {
		return nil, err
	}
	if config.MaxStates > 0 && m.States() > config.MaxStates {
		return nil, &fsm.CompileError{Pattern: pattern, Pos: -1, Err: fsm.ErrTooComplex}
	}

	r := &Regex{
		fsm:       m,
		pattern:   pattern,
		prefilter: !m.HasDot(),
	}
	r.pool.New = func() any { return fsm.NewBacktracker(m) }
	return r, nil
}

// MustCompile compiles a pattern and panics if it fails.
// Useful for patterns known to be valid at compile time.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("microregex: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// Match reports whether the FSM accepts the whole of b
func (r *Regex) Match(b []byte) bool {
	if r.prefilter && !r.fsm.ByteSet().ContainsAll(b) {
		return false
	}

	bt := r.pool.Get().(*fsm.Backtracker)
	ok := bt.IsMatch(b)
	r.pool.Put(bt)
	return ok
}

// MatchString reports whether the FSM accepts the whole of s
func (r *Regex) MatchString(s string) bool {
	return r.Match([]byte(s))
}

// String returns the source pattern
func (r *Regex) String() string {
	return r.pattern
}

// States returns the number of states in the compiled graph
func (r *Regex) States() int {
	return r.fsm.States()
}

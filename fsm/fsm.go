package fsm

import (
	"fmt"
	"strings"
)

// StateID uniquely identifies a state in the compiled graph.
// IDs are indices into the FSM's state arena.
type StateID uint32

// InvalidState represents an invalid/uninitialized state ID
const InvalidState StateID = 0xFFFFFFFF

// StateKind identifies the type of state and determines its character predicate.
type StateKind uint8

const (
	// KindStart is the entry state. Its predicate accepts any character;
	// it is never a transition target.
	KindStart StateKind = iota

	// KindTermination is the accepting sentinel. Its predicate rejects every
	// character and it has no outgoing transitions; its presence among a
	// state's transitions at end of input signals acceptance.
	KindTermination

	// KindDot accepts any single character ('.')
	KindDot

	// KindLiteral accepts one specific ASCII character
	KindLiteral

	// KindStar wraps another state and repeats it zero or more times ('*')
	KindStar

	// KindPlus wraps another state and repeats it one or more times ('+')
	KindPlus
)

// String returns a human-readable representation of the StateKind
func (k StateKind) String() string {
	switch k {
	case KindStart:
		return "Start"
	case KindTermination:
		return "Termination"
	case KindDot:
		return "Dot"
	case KindLiteral:
		return "Literal"
	case KindStar:
		return "Star"
	case KindPlus:
		return "Plus"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// State is a single graph node: a character predicate (determined by kind)
// plus an ordered list of transitions. Transition order affects search order
// only, never the accept/reject outcome.
type State struct {
	id   StateID
	kind StateKind

	// For Literal: the character to match
	sym byte

	// For Star/Plus: the wrapped state whose predicate is delegated to.
	// The graph is cyclic (Star/Plus states hold a self-loop), so states
	// reference each other by ID; the FSM arena owns all memory.
	inner StateID

	next []StateID
}

// ID returns the state's unique identifier
func (s *State) ID() StateID {
	return s.id
}

// Kind returns the state's type
func (s *State) Kind() StateKind {
	return s.kind
}

// Sym returns the literal character for KindLiteral states.
// Returns 0 for other kinds.
func (s *State) Sym() byte {
	if s.kind == KindLiteral {
		return s.sym
	}
	return 0
}

// Inner returns the wrapped state for KindStar/KindPlus states.
// Returns InvalidState for other kinds.
func (s *State) Inner() StateID {
	if s.kind == KindStar || s.kind == KindPlus {
		return s.inner
	}
	return InvalidState
}

// Next returns the state's outgoing transitions in search order.
// The returned slice must not be modified.
func (s *State) Next() []StateID {
	return s.next
}

// String returns a human-readable representation of the state
func (s *State) String() string {
	switch s.kind {
	case KindLiteral:
		return fmt.Sprintf("State(%d, Literal '%c' -> %v)", s.id, s.sym, s.next)
	case KindStar, KindPlus:
		return fmt.Sprintf("State(%d, %s of %d -> %v)", s.id, s.kind, s.inner, s.next)
	default:
		return fmt.Sprintf("State(%d, %s -> %v)", s.id, s.kind, s.next)
	}
}

// FSM is a compiled pattern: an arena of states in insertion order, rooted at
// a single Start state, with a single Termination state that never transitions
// out. An FSM is immutable once built and safe for concurrent reads.
type FSM struct {
	states []State
	start  StateID

	// byteSet records every byte some state's predicate can accept.
	// Valid for prefiltering only when hasDot is false.
	byteSet ByteSet
	hasDot  bool
}

// Start returns the starting state ID
func (m *FSM) Start() StateID {
	return m.start
}

// State returns the state with the given ID.
// Returns nil if the ID is invalid.
func (m *FSM) State(id StateID) *State {
	if id == InvalidState || int(id) >= len(m.states) {
		return nil
	}
	return &m.states[id]
}

// States returns the total number of states in the graph
func (m *FSM) States() int {
	return len(m.states)
}

// HasDot returns true if the graph contains any Dot state (directly or as the
// base of a repetition). When false, every consumable byte is in ByteSet.
func (m *FSM) HasDot() bool {
	return m.hasDot
}

// ByteSet returns the set of bytes some state predicate accepts
func (m *FSM) ByteSet() *ByteSet {
	return &m.byteSet
}

// Accepts reports whether the state identified by id accepts the character c.
// Start and Dot accept any character, Termination accepts none, Literal
// accepts its own character, and Star/Plus delegate to their wrapped state.
func (m *FSM) Accepts(id StateID, c byte) bool {
	for {
		s := m.State(id)
		if s == nil {
			return false
		}
		switch s.kind {
		case KindStart, KindDot:
			return true
		case KindTermination:
			return false
		case KindLiteral:
			return c == s.sym
		case KindStar, KindPlus:
			// Delegation is a single hop in practice (operators apply only to
			// atoms), but resolve iteratively to stay total.
			id = s.inner
		default:
			return false
		}
	}
}

// IsTermination reports whether id names the Termination state
func (m *FSM) IsTermination(id StateID) bool {
	if s := m.State(id); s != nil {
		return s.kind == KindTermination
	}
	return false
}

// String returns a multi-line dump of the graph, one state per line
func (m *FSM) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "FSM{states: %d, start: %d}\n", len(m.states), m.start)
	for i := range m.states {
		b.WriteString("  " + m.states[i].String() + "\n")
	}
	return b.String()
}

package fsm

import "fmt"

// Builder constructs state graphs incrementally using a low-level API.
// It owns the state arena and the compilation frontier: the ordered sequence
// of states that atoms and operators attach to. The frontier always starts
// with the Start state; AddLiteral/AddDot/ApplyStar/ApplyPlus each append
// exactly one state to it. Compile drives a Builder from a pattern string.
type Builder struct {
	states   []State
	frontier []StateID

	byteSet ByteSet
	hasDot  bool
}

// NewBuilder creates a builder holding only the Start state
func NewBuilder() *Builder {
	return NewBuilderWithCapacity(16)
}

// NewBuilderWithCapacity creates a builder with the given initial arena capacity
func NewBuilderWithCapacity(capacity int) *Builder {
	b := &Builder{
		states:   make([]State, 0, capacity),
		frontier: make([]StateID, 0, capacity),
	}
	start := b.alloc(State{kind: KindStart})
	b.frontier = append(b.frontier, start)
	return b
}

// alloc appends a state to the arena and returns its ID
func (b *Builder) alloc(s State) StateID {
	id := StateID(len(b.states))
	s.id = id
	b.states = append(b.states, s)
	return id
}

// last returns the most recently compiled frontier state
func (b *Builder) last() StateID {
	return b.frontier[len(b.frontier)-1]
}

// attach links the current last frontier state to id and pushes id
func (b *Builder) attach(id StateID) {
	tail := &b.states[b.last()]
	tail.next = append(tail.next, id)
	b.frontier = append(b.frontier, id)
}

// AddLiteral appends a state matching exactly the character c
func (b *Builder) AddLiteral(c byte) StateID {
	b.byteSet.Add(c)
	id := b.alloc(State{kind: KindLiteral, sym: c})
	b.attach(id)
	return id
}

// AddDot appends a state matching any single character
func (b *Builder) AddDot() StateID {
	b.hasDot = true
	id := b.alloc(State{kind: KindDot})
	b.attach(id)
	return id
}

// ApplyStar wraps the last frontier state in a zero-or-more repetition.
//
// With base the last frontier state and pred the one before it, the star
// state receives a self-loop plus base's current transitions, base receives
// everything now on the star (so a single pass through base can continue
// repeating via the star), and pred gets an edge straight to the star (the
// zero-repetition bypass of base). The star becomes the new frontier tail.
func (b *Builder) ApplyStar() (StateID, error) {
	base, pred, err := b.operands("*")
	if err != nil {
		return InvalidState, err
	}

	star := b.alloc(State{kind: KindStar, inner: base})
	s := &b.states[star]
	s.next = append(s.next, star)
	s.next = append(s.next, b.states[base].next...)

	bs := &b.states[base]
	bs.next = append(bs.next, s.next...)

	b.states[pred].next = append(b.states[pred].next, star)
	b.frontier = append(b.frontier, star)
	return star, nil
}

// ApplyPlus wraps the last frontier state in a one-or-more repetition.
//
// Unlike ApplyStar, no reciprocal edge is added from base back to the plus
// state: base keeps no outgoing transitions and becomes a dead branch.
// Forward progress and repetition are carried entirely by the plus state,
// whose predicate is base's, so at least one accepting character is still
// required before the search can move past it.
func (b *Builder) ApplyPlus() (StateID, error) {
	base, pred, err := b.operands("+")
	if err != nil {
		return InvalidState, err
	}

	plus := b.alloc(State{kind: KindPlus, inner: base})
	p := &b.states[plus]
	p.next = append(p.next, plus)
	p.next = append(p.next, b.states[base].next...)

	b.states[pred].next = append(b.states[pred].next, plus)
	b.frontier = append(b.frontier, plus)
	return plus, nil
}

// operands returns the (base, pred) frontier pair a repetition operator
// rewires. The base must be an atom: a leading operator leaves Start as the
// frontier tail, and doubled operators leave a Star/Plus there; both are
// rejected rather than wired into a malformed graph.
func (b *Builder) operands(op string) (base, pred StateID, err error) {
	base = b.last()
	if k := b.states[base].kind; k != KindLiteral && k != KindDot {
		return InvalidState, InvalidState, &BuildError{
			Message: fmt.Sprintf("operator %q must follow a literal or '.' atom, not %s", op, k),
			StateID: base,
		}
	}
	pred = b.frontier[len(b.frontier)-2]
	return base, pred, nil
}

// Build appends the Termination state, links it after the frontier tail,
// validates the graph and returns the finished FSM. The Builder must not be
// used after Build.
func (b *Builder) Build() (*FSM, error) {
	term := b.alloc(State{kind: KindTermination})
	tail := &b.states[b.last()]
	tail.next = append(tail.next, term)

	m := &FSM{
		states:  b.states,
		start:   b.frontier[0],
		byteSet: b.byteSet,
		hasDot:  b.hasDot,
	}
	if err := b.validate(term); err != nil {
		return nil, err
	}
	return m, nil
}

// validate checks that the graph is well-formed:
//   - state 0 is the single Start state
//   - term is the single Termination state and has no outgoing transitions
//   - every transition and inner reference is in bounds
//
// It deliberately does not require outgoing transitions on every state: the
// base of a '+' keeps none.
func (b *Builder) validate(term StateID) error {
	if len(b.states) == 0 || b.states[0].kind != KindStart {
		return &BuildError{Message: "state 0 is not the Start state", StateID: InvalidState}
	}
	for i := range b.states {
		s := &b.states[i]
		id := StateID(i)
		if s.kind == KindStart && id != 0 {
			return &BuildError{Message: "multiple Start states", StateID: id}
		}
		if s.kind == KindTermination {
			if id != term {
				return &BuildError{Message: "multiple Termination states", StateID: id}
			}
			if len(s.next) != 0 {
				return &BuildError{Message: "Termination state has outgoing transitions", StateID: id}
			}
		}
		for _, t := range s.next {
			if int(t) >= len(b.states) {
				return &BuildError{Message: fmt.Sprintf("transition target %d out of bounds", t), StateID: id}
			}
		}
		if s.kind == KindStar || s.kind == KindPlus {
			if int(s.inner) >= len(b.states) {
				return &BuildError{Message: fmt.Sprintf("inner state %d out of bounds", s.inner), StateID: id}
			}
		}
	}
	return nil
}

// Compile compiles a pattern into an immutable state graph.
//
// The pattern is scanned once, left to right: a plain ASCII character or '.'
// appends an atom after the frontier tail, and '*' or '+' rewires the atom
// just appended. Any non-ASCII byte, or an operator with no preceding atom
// (leading operator, doubled operator), fails with a CompileError wrapping
// ErrInvalidPattern; no partial graph is returned.
func Compile(pattern string) (*FSM, error) {
	b := NewBuilderWithCapacity(len(pattern) + 2)
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '.':
			b.AddDot()
		case c == '*':
			if _, err := b.ApplyStar(); err != nil {
				return nil, &CompileError{Pattern: pattern, Pos: i, Err: ErrInvalidPattern}
			}
		case c == '+':
			if _, err := b.ApplyPlus(); err != nil {
				return nil, &CompileError{Pattern: pattern, Pos: i, Err: ErrInvalidPattern}
			}
		case c <= 0x7F:
			b.AddLiteral(c)
		default:
			return nil, &CompileError{Pattern: pattern, Pos: i, Err: ErrInvalidPattern}
		}
	}

	m, err := b.Build()
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Pos: -1, Err: err}
	}
	return m, nil
}

package fsm

// Backtracker decides whether an input is accepted by a compiled FSM using a
// depth-first backtracking search over (state, position) pairs.
//
// A bit vector tracks visited pairs with O(1) lookup; revisiting a pair fails
// immediately. That guard is what bounds the search: the graph is cyclic
// (Star/Plus self-loops and the pass-through rule below), so without it the
// search would not terminate. The vector is laid out bit (state*(inputLen+1)
// + pos) and reused across calls on the same Backtracker.
//
// A Backtracker is not safe for concurrent use; compile once and give each
// goroutine its own Backtracker (or pool them, as the microregex facade does).
type Backtracker struct {
	fsm *FSM

	// visited is a bit vector over (state, position) pairs
	visited []uint64

	// inputLen is cached for index calculations
	inputLen int

	// numStates is cached for sizing
	numStates int
}

// NewBacktracker creates a backtracker for the given FSM
func NewBacktracker(m *FSM) *Backtracker {
	return &Backtracker{
		fsm:       m,
		numStates: m.States(),
	}
}

// reset prepares the visited vector for a new search
func (b *Backtracker) reset(inputLen int) {
	b.inputLen = inputLen

	bitsNeeded := b.numStates * (inputLen + 1)
	wordsNeeded := (bitsNeeded + 63) / 64

	if cap(b.visited) >= wordsNeeded {
		b.visited = b.visited[:wordsNeeded]
		for i := range b.visited {
			b.visited[i] = 0
		}
	} else {
		b.visited = make([]uint64, wordsNeeded)
	}
}

// shouldVisit checks if (state, pos) has been visited and marks it if not.
// Returns true if the pair still needs exploring. This is the hot path.
func (b *Backtracker) shouldVisit(state StateID, pos int) bool {
	idx := int(state)*(b.inputLen+1) + pos

	word := idx / 64
	bit := uint64(1) << (idx % 64)

	if b.visited[word]&bit != 0 {
		return false
	}
	b.visited[word] |= bit
	return true
}

// IsMatch reports whether the FSM accepts the whole input.
// Matching is anchored at both ends by construction; there is no substring
// search. Any input, including empty, is valid.
func (b *Backtracker) IsMatch(input []byte) bool {
	b.reset(len(input))
	return b.backtrack(input, 0, b.fsm.Start())
}

// IsMatchString is IsMatch for a string input
func (b *Backtracker) IsMatchString(input string) bool {
	return b.IsMatch([]byte(input))
}

// backtrack performs the recursive search from (state, pos).
//
// For each transition, if the target's predicate accepts the current
// character the search consumes it; otherwise the edge is taken as a
// zero-width pass-through. Both branches are tried exhaustively in
// transition order, so that order never changes the outcome.
func (b *Backtracker) backtrack(input []byte, pos int, state StateID) bool {
	if state == InvalidState || int(state) >= b.numStates {
		return false
	}
	if !b.shouldVisit(state, pos) {
		return false
	}

	s := b.fsm.State(state)
	if s == nil {
		return false
	}

	if pos == len(input) {
		return b.atEnd(s)
	}

	c := input[pos]
	for _, next := range s.Next() {
		if b.fsm.Accepts(next, c) {
			if b.backtrack(input, pos+1, next) {
				return true
			}
		} else if b.backtrack(input, pos, next) {
			return true
		}
	}
	return false
}

// atEnd decides acceptance once the input is exhausted: the Termination
// state must be among the current state's transitions, or reachable from
// them through Star states alone. Star repetitions match zero occurrences,
// so a trailing run of them is skippable with the input consumed; Plus
// states still owe at least one character and are never skipped here.
func (b *Backtracker) atEnd(s *State) bool {
	for _, next := range s.Next() {
		t := b.fsm.State(next)
		if t == nil {
			continue
		}
		switch t.Kind() {
		case KindTermination:
			return true
		case KindStar:
			if b.shouldVisit(next, b.inputLen) && b.atEnd(t) {
				return true
			}
		}
	}
	return false
}

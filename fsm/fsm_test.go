package fsm

import (
	"strings"
	"testing"
)

func TestStateKind_String(t *testing.T) {
	tests := []struct {
		kind StateKind
		want string
	}{
		{KindStart, "Start"},
		{KindTermination, "Termination"},
		{KindDot, "Dot"},
		{KindLiteral, "Literal"},
		{KindStar, "Star"},
		{KindPlus, "Plus"},
		{StateKind(99), "Unknown(99)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("StateKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestFSM_Accepts(t *testing.T) {
	// a.b* exercises every predicate kind except Plus
	m, err := Compile("a.b*")
	if err != nil {
		t.Fatal(err)
	}

	// states: 0=Start, 1=Literal(a), 2=Dot, 3=Literal(b), 4=Star(b), 5=Termination
	tests := []struct {
		id   StateID
		c    byte
		want bool
	}{
		{0, 'x', true},  // Start accepts anything
		{0, 0, true},
		{1, 'a', true},  // Literal
		{1, 'b', false},
		{2, 'z', true},  // Dot accepts anything
		{2, '.', true},
		{3, 'b', true},
		{3, 'a', false},
		{4, 'b', true},  // Star delegates to Literal(b)
		{4, 'a', false},
		{5, 'a', false}, // Termination accepts nothing
	}

	for _, tt := range tests {
		if got := m.Accepts(tt.id, tt.c); got != tt.want {
			t.Errorf("Accepts(%d, %q) = %v, want %v", tt.id, tt.c, got, tt.want)
		}
	}

	if m.Accepts(InvalidState, 'a') {
		t.Error("Accepts(InvalidState, 'a') = true, want false")
	}
	if m.Accepts(StateID(m.States()), 'a') {
		t.Error("Accepts(out of bounds) = true, want false")
	}
}

func TestFSM_AcceptsPlusDelegation(t *testing.T) {
	m, err := Compile("x+")
	if err != nil {
		t.Fatal(err)
	}

	// states: 0=Start, 1=Literal(x), 2=Plus(x), 3=Termination
	plus := m.State(2)
	if plus.Kind() != KindPlus {
		t.Fatalf("state 2 kind = %s, want Plus", plus.Kind())
	}
	if plus.Inner() != 1 {
		t.Errorf("Plus.Inner() = %d, want 1", plus.Inner())
	}
	if !m.Accepts(2, 'x') || m.Accepts(2, 'y') {
		t.Error("Plus state must delegate to its wrapped literal")
	}
}

func TestState_Accessors(t *testing.T) {
	m, err := Compile("a*")
	if err != nil {
		t.Fatal(err)
	}

	lit := m.State(1)
	if lit.ID() != 1 || lit.Kind() != KindLiteral || lit.Sym() != 'a' {
		t.Errorf("literal state = %s, want Literal 'a' with ID 1", lit)
	}
	if lit.Inner() != InvalidState {
		t.Errorf("Literal.Inner() = %d, want InvalidState", lit.Inner())
	}

	star := m.State(2)
	if star.Kind() != KindStar || star.Inner() != 1 {
		t.Errorf("star state = %s, want Star of 1", star)
	}
	if star.Sym() != 0 {
		t.Errorf("Star.Sym() = %d, want 0", star.Sym())
	}

	if m.State(InvalidState) != nil {
		t.Error("State(InvalidState) != nil")
	}
	if m.State(StateID(m.States())) != nil {
		t.Error("State(out of bounds) != nil")
	}
}

func TestFSM_IsTermination(t *testing.T) {
	m, err := Compile("a")
	if err != nil {
		t.Fatal(err)
	}
	if m.IsTermination(m.Start()) {
		t.Error("start state reported as Termination")
	}
	if !m.IsTermination(StateID(m.States() - 1)) {
		t.Error("last state not reported as Termination")
	}
	if m.IsTermination(InvalidState) {
		t.Error("InvalidState reported as Termination")
	}
}

func TestFSM_String(t *testing.T) {
	m, err := Compile("a*")
	if err != nil {
		t.Fatal(err)
	}

	s := m.String()
	for _, want := range []string{"states: 4", "Start", "Literal 'a'", "Star", "Termination"} {
		if !strings.Contains(s, want) {
			t.Errorf("FSM.String() missing %q:\n%s", want, s)
		}
	}
}

package fsm

import (
	"errors"
	"strings"
	"testing"
)

func TestCompileError_Message(t *testing.T) {
	err := &CompileError{Pattern: "a**", Pos: 2, Err: ErrInvalidPattern}
	msg := err.Error()
	for _, want := range []string{`"a**"`, "position 2", "invalid pattern"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}

	err = &CompileError{Pattern: "aaaa", Pos: -1, Err: ErrTooComplex}
	msg = err.Error()
	if strings.Contains(msg, "position") {
		t.Errorf("non-positional Error() = %q mentions a position", msg)
	}
	if !strings.Contains(msg, "too complex") {
		t.Errorf("Error() = %q, missing cause", msg)
	}
}

func TestCompileError_Unwrap(t *testing.T) {
	err := &CompileError{Pattern: "*", Pos: 0, Err: ErrInvalidPattern}
	if !errors.Is(err, ErrInvalidPattern) {
		t.Error("errors.Is(CompileError, ErrInvalidPattern) = false")
	}
	if errors.Is(err, ErrTooComplex) {
		t.Error("errors.Is(CompileError, ErrTooComplex) = true")
	}
}

func TestBuildError_Message(t *testing.T) {
	err := &BuildError{Message: "boom", StateID: 3}
	if !strings.Contains(err.Error(), "state 3") || !strings.Contains(err.Error(), "boom") {
		t.Errorf("Error() = %q", err.Error())
	}

	err = &BuildError{Message: "boom", StateID: InvalidState}
	if strings.Contains(err.Error(), "state ") {
		t.Errorf("Error() = %q mentions a state for InvalidState", err.Error())
	}
}

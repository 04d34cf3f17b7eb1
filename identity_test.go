package mdp

import (
	"errors"
	"testing"
)

func TestNewState(t *testing.T) {
	s, err := NewState("a")
	if err != nil {
		t.Fatalf("NewState(a) error = %v", err)
	}
	if s.Name() != "a" {
		t.Errorf("Name() = %q, want %q", s.Name(), "a")
	}
	if !s.IsState() || s.IsAction() {
		t.Errorf("kind = %v, want state", s.Kind())
	}
	if got := s.String(); got != "State(a)" {
		t.Errorf("String() = %q, want %q", got, "State(a)")
	}
}

func TestNewAction(t *testing.T) {
	a, err := NewAction("one")
	if err != nil {
		t.Fatalf("NewAction(one) error = %v", err)
	}
	if !a.IsAction() {
		t.Errorf("kind = %v, want action", a.Kind())
	}
	if got := a.String(); got != "Action(one)" {
		t.Errorf("String() = %q, want %q", got, "Action(one)")
	}
}

func TestEmptyNameRejected(t *testing.T) {
	if _, err := NewState(""); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NewState(\"\") error = %v, want ErrInvalidArgument", err)
	}
	if _, err := NewAction(""); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NewAction(\"\") error = %v, want ErrInvalidArgument", err)
	}
}

func TestIdentityEquality(t *testing.T) {
	tests := []struct {
		name string
		a, b Identity
		want bool
	}{
		{"same state", MustState("a"), MustState("a"), true},
		{"different states", MustState("a"), MustState("b"), false},
		{"same action", MustAction("one"), MustAction("one"), true},
		{"state vs action, same name", MustState("x"), MustAction("x"), false},
	}

	for _, tt := range tests {
		if got := tt.a == tt.b; got != tt.want {
			t.Errorf("%s: %v == %v is %v, want %v", tt.name, tt.a, tt.b, got, tt.want)
		}
	}
}

func TestIdentityAsMapKey(t *testing.T) {
	m := map[Identity]int{
		MustState("x"):  1,
		MustAction("x"): 2,
	}
	if len(m) != 2 {
		t.Fatalf("map has %d entries, want 2 (state and action keys must be distinct)", len(m))
	}
	if m[MustState("x")] != 1 || m[MustAction("x")] != 2 {
		t.Errorf("lookups = %d, %d, want 1, 2", m[MustState("x")], m[MustAction("x")])
	}
}

func TestMustStatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustState(\"\") did not panic")
		}
	}()
	MustState("")
}

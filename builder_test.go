package mdp

import (
	"errors"
	"testing"
)

func TestBuilderBuildsExample(t *testing.T) {
	a, b, c := MustState("a"), MustState("b"), MustState("c")
	one, two := MustAction("one"), MustAction("two")

	m, err := NewBuilder().
		Allow(a, one).
		Allow(b, two).
		Allow(c, one).
		Allow(c, two).
		Outcome(one, 0.1, b, 2.0).
		Outcome(one, 1.0, a, 3.0).
		Outcome(two, 1.0, a, 5.0).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if got := m.States(); !equalNames(got, "a", "b", "c") {
		t.Errorf("States() = %v, want [a b c]", names(got))
	}
	if got := m.Actions(); !equalNames(got, "one", "two") {
		t.Errorf("Actions() = %v, want [one two]", names(got))
	}

	sources, err := m.StatesToAction(one)
	if err != nil {
		t.Fatal(err)
	}
	if !equalNames(sources, "a", "c") {
		t.Errorf("StatesToAction(one) = %v, want [a c]", names(sources))
	}
}

// Outcome entries may arrive out of cumulative order; Build sorts them.
func TestBuilderUnorderedOutcomes(t *testing.T) {
	a, b := MustState("a"), MustState("b")
	one := MustAction("one")

	m, err := NewBuilder().
		Allow(a, one).
		AddState(b).
		Outcome(one, 1.0, a, 3.0).
		Outcome(one, 0.1, b, 2.0).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	probs, err := m.StateProbabilityMap(one)
	if err != nil {
		t.Fatal(err)
	}
	if p := probs[b]; p != 0.1 {
		t.Errorf("P(b) = %v, want 0.1", p)
	}
}

func TestBuilderValidationStillApplies(t *testing.T) {
	a := MustState("a")
	one := MustAction("one")

	_, err := NewBuilder().
		Allow(a, one).
		Outcome(one, 0.95, a, 3.0).
		Build()
	if !errors.Is(err, ErrProbabilityMass) {
		t.Errorf("Build() error = %v, want ErrProbabilityMass", err)
	}
}

// An action added without outcomes still fails construction: its table
// would carry no probability mass.
func TestBuilderActionWithoutOutcomes(t *testing.T) {
	a := MustState("a")
	one := MustAction("one")

	_, err := NewBuilder().Allow(a, one).Build()
	if !errors.Is(err, ErrProbabilityMass) {
		t.Errorf("Build() error = %v, want ErrProbabilityMass", err)
	}
}

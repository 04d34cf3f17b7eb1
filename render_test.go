package mdp

import (
	"strings"
	"testing"
)

func TestStringRendersEveryEdge(t *testing.T) {
	m := buildExample(t)
	out := m.String()

	want := []string{
		"State(a) -- (Action(one), P=0.900000, R=3.000000) --> State(a)",
		"State(a) -- (Action(one), P=0.100000, R=2.000000) --> State(b)",
		"State(b) -- (Action(two), P=1.000000, R=5.000000) --> State(a)",
		"State(c) -- (Action(one), P=0.900000, R=3.000000) --> State(a)",
		"State(c) -- (Action(one), P=0.100000, R=2.000000) --> State(b)",
		"State(c) -- (Action(two), P=1.000000, R=5.000000) --> State(a)",
	}
	for _, line := range want {
		if !strings.Contains(out, line+"\n") {
			t.Errorf("output missing line %q\ngot:\n%s", line, out)
		}
	}

	if got := strings.Count(out, "\n"); got != len(want) {
		t.Errorf("output has %d lines, want %d", got, len(want))
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("output is not newline-terminated")
	}
}

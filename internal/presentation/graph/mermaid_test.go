package graph

import (
	"strings"
	"testing"

	"github.com/autodidactus/mdp"
)

func buildExample(t *testing.T) *mdp.MDP {
	t.Helper()

	a, b := mdp.MustState("a"), mdp.MustState("b")
	one := mdp.MustAction("one")

	m, err := mdp.NewBuilder().
		Allow(a, one).
		AddState(b).
		Outcome(one, 0.1, b, 2.0).
		Outcome(one, 1.0, a, 3.0).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return m
}

func TestGenerateMermaid(t *testing.T) {
	out := GenerateMermaid(buildExample(t))

	if !strings.HasPrefix(out, "graph TD\n") {
		t.Errorf("output does not start with graph TD header:\n%s", out)
	}

	want := []string{
		`s_a(("a"))`,
		`s_b(("b"))`,
		`act_one[["one"]]`,
		`s_a --> act_one`,
		`act_one -- "P=0.10 R=2.00" --> s_b`,
		`act_one -- "P=0.90 R=3.00" --> s_a`,
	}
	for _, fragment := range want {
		if !strings.Contains(out, fragment) {
			t.Errorf("output missing %q\ngot:\n%s", fragment, out)
		}
	}
}

func TestSanitizeMermaidID(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"with space", "with_space"},
		{"semi;colon", "semi_colon"},
		{"under_score", "under_score"},
	}

	for _, tt := range tests {
		if got := sanitizeMermaidID(tt.in); got != tt.want {
			t.Errorf("sanitizeMermaidID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

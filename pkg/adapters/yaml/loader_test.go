package yaml_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/autodidactus/mdp"
	yamladapter "github.com/autodidactus/mdp/pkg/adapters/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleDoc = `
metadata:
  title: Reference process
  description: Three states, two actions.
states: [a, b, c]
actions:
  - name: one
    outcomes:
      - { cumulative: 0.1, to: b, reward: 2.0 }
      - { cumulative: 1.0, to: a, reward: 3.0 }
  - name: two
    outcomes:
      - { cumulative: 1.0, to: a, reward: 5.0 }
policy:
  a: [one]
  b: [two]
  c: [one, two]
`

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoaderLoad(t *testing.T) {
	loader := yamladapter.New(writeDoc(t, exampleDoc))

	m, err := loader.Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, m.States(), 3)
	assert.Len(t, m.Actions(), 2)

	probs, err := m.StateProbabilityMap(mdp.MustAction("one"))
	require.NoError(t, err)
	assert.InDelta(t, 0.1, probs[mdp.MustState("b")], 1e-12)
	assert.InDelta(t, 0.9, probs[mdp.MustState("a")], 1e-12)

	sources, err := m.StatesToAction(mdp.MustAction("one"))
	require.NoError(t, err)
	assert.Equal(t, []mdp.Identity{mdp.MustState("a"), mdp.MustState("c")}, sources)
}

func TestLoaderInfo(t *testing.T) {
	loader := yamladapter.New(writeDoc(t, exampleDoc))

	info, err := loader.Info(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Reference process", info.Title)
	assert.Equal(t, "Three states, two actions.", info.Description)
}

func TestLoaderMissingFile(t *testing.T) {
	loader := yamladapter.New(filepath.Join(t.TempDir(), "absent.yaml"))
	_, err := loader.Load(context.Background())
	assert.Error(t, err)
}

func TestLoaderInvalidYAML(t *testing.T) {
	loader := yamladapter.New(writeDoc(t, "states: [a\n  broken"))
	_, err := loader.Load(context.Background())
	assert.Error(t, err)
}

// Construction errors surface unwrapped so callers can branch on the
// taxonomy sentinels.
func TestLoaderConstructionErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name: "mass short of 1.0",
			doc: `
states: [a]
actions:
  - name: one
    outcomes:
      - { cumulative: 0.95, to: a, reward: 3.0 }
policy:
  a: [one]
`,
			wantErr: mdp.ErrProbabilityMass,
		},
		{
			name: "policy references undeclared action",
			doc: `
states: [a]
actions:
  - name: one
    outcomes:
      - { cumulative: 1.0, to: a, reward: 3.0 }
policy:
  a: [one, ghost]
`,
			wantErr: mdp.ErrDanglingReference,
		},
		{
			name: "policy keyed by undeclared state",
			doc: `
states: [a]
actions:
  - name: one
    outcomes:
      - { cumulative: 1.0, to: a, reward: 3.0 }
policy:
  a: [one]
  ghost: [one]
`,
			wantErr: mdp.ErrStructuralMismatch,
		},
		{
			name: "outcome targets undeclared state",
			doc: `
states: [a]
actions:
  - name: one
    outcomes:
      - { cumulative: 1.0, to: ghost, reward: 3.0 }
policy:
  a: [one]
`,
			wantErr: mdp.ErrDanglingReference,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := yamladapter.New(writeDoc(t, tt.doc))
			_, err := loader.Load(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// A state omitted from the policy block gets an empty action set rather
// than failing domain equality.
func TestLoaderOmittedPolicyEntry(t *testing.T) {
	doc := `
states: [a, sink]
actions:
  - name: one
    outcomes:
      - { cumulative: 1.0, to: sink, reward: 0.0 }
policy:
  a: [one]
`
	loader := yamladapter.New(writeDoc(t, doc))
	m, err := loader.Load(context.Background())
	require.NoError(t, err)

	available, err := m.ActionsFromState(mdp.MustState("sink"))
	require.NoError(t, err)
	assert.Empty(t, available)
}

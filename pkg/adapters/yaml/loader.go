// Package yaml loads Markov Decision Process definitions from YAML
// documents. The format mirrors the four construction collections:
//
//	metadata:
//	  title: Example
//	states: [a, b, c]
//	actions:
//	  - name: one
//	    outcomes:
//	      - { cumulative: 0.1, to: b, reward: 2.0 }
//	      - { cumulative: 1.0, to: a, reward: 3.0 }
//	policy:
//	  a: [one]
//
// States absent from the policy block get an empty action set. All graph
// validation happens in mdp.New; the loader only shapes the collections.
package yaml

import (
	"context"
	"fmt"
	"os"

	"github.com/autodidactus/mdp"
	"github.com/mitchellh/mapstructure"
	yamlv3 "gopkg.in/yaml.v3"
)

// Info is the typed view of a document's free-form metadata block.
type Info struct {
	Title       string `mapstructure:"title"`
	Description string `mapstructure:"description"`
}

type Document struct {
	Metadata map[string]any      `yaml:"metadata"`
	States   []string            `yaml:"states"`
	Actions  []ActionDoc         `yaml:"actions"`
	Policy   map[string][]string `yaml:"policy"`
}

type ActionDoc struct {
	Name     string       `yaml:"name"`
	Outcomes []OutcomeDoc `yaml:"outcomes"`
}

type OutcomeDoc struct {
	Cumulative float64 `yaml:"cumulative"`
	To         string  `yaml:"to"`
	Reward     float64 `yaml:"reward"`
}

// Loader implements ports.GraphLoader for a YAML file on disk.
type Loader struct {
	path string
}

// New creates a loader for the definition file at path.
func New(path string) *Loader {
	return &Loader{path: path}
}

// Load reads, parses and validates the definition.
func (l *Loader) Load(ctx context.Context) (*mdp.MDP, error) {
	doc, err := l.parse()
	if err != nil {
		return nil, err
	}
	return build(doc)
}

// Info returns the typed metadata block of the definition. Missing
// metadata yields a zero Info, not an error.
func (l *Loader) Info(ctx context.Context) (Info, error) {
	doc, err := l.parse()
	if err != nil {
		return Info{}, err
	}

	var info Info
	if err := mapstructure.Decode(doc.Metadata, &info); err != nil {
		return Info{}, fmt.Errorf("failed to decode metadata: %w", err)
	}
	return info, nil
}

func (l *Loader) parse() (*Document, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", l.path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML definition without touching the filesystem.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yamlv3.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse definition: %w", err)
	}
	return &doc, nil
}

// Build constructs the MDP from a parsed document.
func Build(doc *Document) (*mdp.MDP, error) {
	return build(doc)
}

func build(doc *Document) (*mdp.MDP, error) {
	states := make([]mdp.Identity, 0, len(doc.States))
	for _, name := range doc.States {
		s, err := mdp.NewState(name)
		if err != nil {
			return nil, err
		}
		states = append(states, s)
	}

	actions := make([]mdp.Identity, 0, len(doc.Actions))
	outcomes := make(map[mdp.Identity][]mdp.WeightedOutcome, len(doc.Actions))
	for _, ad := range doc.Actions {
		a, err := mdp.NewAction(ad.Name)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)

		entries := make([]mdp.WeightedOutcome, 0, len(ad.Outcomes))
		for _, od := range ad.Outcomes {
			target, err := mdp.NewState(od.To)
			if err != nil {
				return nil, fmt.Errorf("action %s: %w", ad.Name, err)
			}
			entries = append(entries, mdp.WeightedOutcome{
				Cumulative: od.Cumulative,
				Target:     target,
				Reward:     od.Reward,
			})
		}
		outcomes[a] = entries
	}

	// Policy entries pass through by name; states without an entry get an
	// empty action set. Undeclared names are left for mdp.New to reject.
	available := make(map[mdp.Identity][]mdp.Identity, len(states))
	for _, s := range states {
		available[s] = []mdp.Identity{}
	}
	for stateName, actionNames := range doc.Policy {
		s, err := mdp.NewState(stateName)
		if err != nil {
			return nil, err
		}
		edges := make([]mdp.Identity, 0, len(actionNames))
		for _, actionName := range actionNames {
			a, err := mdp.NewAction(actionName)
			if err != nil {
				return nil, fmt.Errorf("policy for %s: %w", stateName, err)
			}
			edges = append(edges, a)
		}
		available[s] = edges
	}

	return mdp.New(states, actions, available, outcomes)
}

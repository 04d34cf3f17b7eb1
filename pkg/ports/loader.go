package ports

import (
	"context"

	"github.com/autodidactus/mdp"
)

// GraphLoader resolves a decision-process definition into a validated MDP.
// This decouples the definition format (YAML file, in-memory builder) from
// the consumers in the CLI and HTTP layers.
type GraphLoader interface {
	// Load parses and validates the definition. Construction errors from
	// mdp.New pass through unwrapped so callers can branch with errors.Is.
	Load(ctx context.Context) (*mdp.MDP, error)
}

package ports

import (
	"context"

	"github.com/autodidactus/mdp"
)

// EpisodeStore persists sampled episodes keyed by ID. Implementations must
// isolate stored episodes from later caller mutation.
type EpisodeStore interface {
	// Save persists the episode under id, overwriting any previous value.
	Save(ctx context.Context, id string, ep *mdp.Episode) error

	// Load retrieves the episode stored under id.
	// Returns mdp.ErrEpisodeNotFound if it does not exist.
	Load(ctx context.Context, id string) (*mdp.Episode, error)

	// List returns the IDs of all stored episodes.
	List(ctx context.Context) ([]string, error)

	// Delete removes the episode stored under id.
	Delete(ctx context.Context, id string) error
}

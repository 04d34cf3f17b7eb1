package memory

import (
	"context"
	"sync"

	"github.com/autodidactus/mdp"
)

// Store implements ports.EpisodeStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*mdp.Episode
	mu   sync.RWMutex
}

// NewStore creates a new in-memory episode store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*mdp.Episode),
	}
}

func copyEpisode(ep *mdp.Episode) *mdp.Episode {
	out := *ep
	out.Steps = make([]mdp.Step, len(ep.Steps))
	copy(out.Steps, ep.Steps)
	return &out
}

// Save persists the episode in memory.
func (s *Store) Save(ctx context.Context, id string, ep *mdp.Episode) error {
	// Deep copy to ensure isolation, similar to serialization
	copied := copyEpisode(ep)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = copied
	return nil
}

// Load retrieves the episode from memory.
func (s *Store) Load(ctx context.Context, id string) (*mdp.Episode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ep, ok := s.data[id]
	if !ok {
		return nil, mdp.ErrEpisodeNotFound
	}

	// Copy on read so the caller can't mutate store state through the pointer
	return copyEpisode(ep), nil
}

// Delete removes the episode.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// List returns stored episode IDs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	return ids, nil
}

package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/autodidactus/mdp"
	backend "github.com/redis/go-redis/v9"
)

// Store implements ports.EpisodeStore using Redis.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration for stored episodes.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for stored episodes.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "mdp:episode:",
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) key(id string) string {
	return s.prefix + id
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// Save persists the episode to Redis.
func (s *Store) Save(ctx context.Context, id string, ep *mdp.Episode) error {
	data, err := json.Marshal(ep)
	if err != nil {
		return fmt.Errorf("failed to marshal episode: %w", err)
	}

	// The payload and its index entry land in one pipeline so List never
	// observes a half-written episode. The ZSET score is the expiration
	// instant; with no TTL it sits far enough out that pruning skips it.
	pipe := s.client.Pipeline()

	pipe.Set(ctx, s.key(id), data, s.ttl)

	score := float64(time.Now().Add(s.ttl).Unix())
	if s.ttl == 0 {
		score = 4102444800 // 2100-01-01
	}

	pipe.ZAdd(ctx, s.indexKey(), backend.Z{
		Score:  score,
		Member: id,
	})

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}

	return nil
}

// Load retrieves the episode from Redis.
func (s *Store) Load(ctx context.Context, id string) (*mdp.Episode, error) {
	val, err := s.client.Get(ctx, s.key(id)).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, mdp.ErrEpisodeNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var ep mdp.Episode
	if err := json.Unmarshal([]byte(val), &ep); err != nil {
		return nil, fmt.Errorf("failed to unmarshal episode: %w", err)
	}

	return &ep, nil
}

// Delete removes the episode.
func (s *Store) Delete(ctx context.Context, id string) error {
	pipe := s.client.Pipeline()

	pipe.Del(ctx, s.key(id))
	pipe.ZRem(ctx, s.indexKey(), id)

	_, err := pipe.Exec(ctx)
	return err
}

// List returns stored episode IDs, lazily pruning expired index entries.
func (s *Store) List(ctx context.Context) ([]string, error) {
	now := float64(time.Now().Unix())

	// Redis expires the payload keys on its own but leaves the index
	// behind, so sweep entries whose score is already in the past before
	// reading it. Stores without a TTL are unaffected.
	err := s.client.ZRemRangeByScore(ctx, s.indexKey(), "-inf", fmt.Sprintf("%f", now)).Err()
	if err != nil {
		return nil, fmt.Errorf("failed to prune expired episodes: %w", err)
	}

	ids, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list episodes: %w", err)
	}

	return ids, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}

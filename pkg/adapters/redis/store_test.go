package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/autodidactus/mdp"
	"github.com/autodidactus/mdp/pkg/adapters/redis"
	"github.com/autodidactus/mdp/pkg/ports/tests"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisStore_Contract(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	defer mr.Close()

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})

	store := redis.NewFromClient(client)
	tests.RunEpisodeStoreContract(t, store)
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, err := miniredis.Run()
	assert.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})

	store := redis.NewFromClient(client, redis.WithTTL(1*time.Second))
	ctx := context.Background()
	id := "episode-ttl"
	ep := &mdp.Episode{
		Start:       "a",
		Steps:       []mdp.Step{{From: "a", Action: "one", To: "b", Reward: 2.0}},
		TotalReward: 2.0,
	}

	err = store.Save(ctx, id, ep)
	assert.NoError(t, err)

	ids, err := store.List(ctx)
	assert.NoError(t, err)
	assert.Contains(t, ids, id)

	// Fast forward past the TTL so the key expires.
	mr.FastForward(2 * time.Second)

	_, err = store.Load(ctx, id)
	assert.ErrorIs(t, err, mdp.ErrEpisodeNotFound)

	// Index pruning keys off time.Now(), so wait out the wall-clock TTL
	// before checking the lazy cleanup.
	time.Sleep(1200 * time.Millisecond)

	ids, err = store.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, ids)
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, err := miniredis.Run()
	assert.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})

	store := redis.NewFromClient(client, redis.WithPrefix("custom:prefix:"))
	ctx := context.Background()

	err = store.Save(ctx, "ep1", &mdp.Episode{Start: "a"})
	assert.NoError(t, err)

	assert.True(t, mr.Exists("custom:prefix:ep1"))
	assert.False(t, mr.Exists("mdp:episode:ep1"))
}

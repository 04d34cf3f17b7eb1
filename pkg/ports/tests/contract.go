package tests

import (
	"context"
	"testing"
	"time"

	"github.com/autodidactus/mdp"
	"github.com/autodidactus/mdp/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunEpisodeStoreContract is a reusable test suite that verifies an adapter
// complies with ports.EpisodeStore.
func RunEpisodeStoreContract(t *testing.T, store ports.EpisodeStore) {
	t.Helper()

	ctx := context.Background()
	episodeID := "contract-test-episode-" + time.Now().Format("20060102150405")

	sample := func() *mdp.Episode {
		return &mdp.Episode{
			Start: "a",
			Steps: []mdp.Step{
				{From: "a", Action: "one", To: "b", Reward: 2.0},
				{From: "b", Action: "two", To: "a", Reward: 5.0},
			},
			TotalReward: 7.0,
		}
	}

	t.Run("Save and Load", func(t *testing.T) {
		err := store.Save(ctx, episodeID, sample())
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, episodeID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, "a", loaded.Start)
		assert.Len(t, loaded.Steps, 2)
		assert.Equal(t, 7.0, loaded.TotalReward)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+episodeID)
		assert.ErrorIs(t, err, mdp.ErrEpisodeNotFound)
	})

	t.Run("Isolation", func(t *testing.T) {
		ep := sample()
		require.NoError(t, store.Save(ctx, episodeID, ep))

		// Mutating the saved value must not leak into the store.
		ep.Steps[0].Reward = -99

		loaded, err := store.Load(ctx, episodeID)
		require.NoError(t, err)
		assert.Equal(t, 2.0, loaded.Steps[0].Reward)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, episodeID, sample()))

		err := store.Delete(ctx, episodeID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, episodeID)
		assert.ErrorIs(t, err, mdp.ErrEpisodeNotFound, "Load after Delete should return ErrEpisodeNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := episodeID + "-1"
		id2 := episodeID + "-2"
		_ = store.Save(ctx, id1, sample())
		_ = store.Save(ctx, id2, sample())

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id1)
		assert.Contains(t, ids, id2)
	})
}

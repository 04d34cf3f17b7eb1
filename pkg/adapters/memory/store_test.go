package memory_test

import (
	"testing"

	"github.com/autodidactus/mdp/pkg/adapters/memory"
	"github.com/autodidactus/mdp/pkg/ports/tests"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	tests.RunEpisodeStoreContract(t, store)
}

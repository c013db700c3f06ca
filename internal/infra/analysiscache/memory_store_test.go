package analysiscache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/syedmuhib/meeting-assistant/internal/domain/notes"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	analysis := notes.Analysis{ID: uuid.New(), Summary: "recap", ChunkCount: 2}

	require.NoError(t, store.Save(context.Background(), "key", analysis, 0))

	got, found, err := store.Get(context.Background(), "key")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, analysis, got)
}

func TestMemoryStoreMissingKey(t *testing.T) {
	store := NewMemoryStore()

	_, found, err := store.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.False(t, found)
}

func TestMemoryStoreExpiresEntries(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), "key", notes.Analysis{Summary: "recap"}, 10*time.Millisecond))

	time.Sleep(25 * time.Millisecond)

	_, found, err := store.Get(context.Background(), "key")
	require.NoError(t, err)
	require.False(t, found)
}

func TestMemoryStoreIgnoresEmptyKey(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), "", notes.Analysis{Summary: "recap"}, 0))

	_, found, err := store.Get(context.Background(), "")
	require.NoError(t, err)
	require.False(t, found)
}

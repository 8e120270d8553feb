package memory

import (
	"context"
	"sync"
	"testing"

	"edu-finder-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotStore(t *testing.T) {
	ctx := context.Background()
	store := NewSlotStore()

	t.Run("empty slot", func(t *testing.T) {
		_, err := store.Get(ctx, "client-a", domain.SlotProfile)
		assert.ErrorIs(t, err, domain.ErrSlotEmpty)
	})

	t.Run("put get delete", func(t *testing.T) {
		value := []byte(`["opp-1"]`)
		require.NoError(t, store.Put(ctx, "client-a", domain.SlotSaved, value))

		value[0] = 'x'
		got, err := store.Get(ctx, "client-a", domain.SlotSaved)
		require.NoError(t, err)
		assert.Equal(t, `["opp-1"]`, string(got))

		require.NoError(t, store.Delete(ctx, "client-a", domain.SlotSaved))
		_, err = store.Get(ctx, "client-a", domain.SlotSaved)
		assert.ErrorIs(t, err, domain.ErrSlotEmpty)
	})

	t.Run("clients are isolated", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "client-a", domain.SlotUser, []byte(`{}`)))
		_, err := store.Get(ctx, "client-b", domain.SlotUser)
		assert.ErrorIs(t, err, domain.ErrSlotEmpty)
	})

	t.Run("delete of missing slot is a no-op", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, "nobody", domain.SlotUser))
	})

	t.Run("ping honours context", func(t *testing.T) {
		assert.NoError(t, store.Ping(ctx))
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		assert.Error(t, store.Ping(cancelled))
	})
}

func TestSlotStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	store := NewSlotStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Put(ctx, "client", domain.SlotSaved, []byte(`[]`))
			_, _ = store.Get(ctx, "client", domain.SlotSaved)
		}()
	}
	wg.Wait()

	got, err := store.Get(ctx, "client", domain.SlotSaved)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))
}

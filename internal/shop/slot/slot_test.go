package slot

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openStores(t *testing.T) map[string]Store {
	t.Helper()

	sqlite, err := NewSQLite(filepath.Join(t.TempDir(), "slots.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close() })

	return map[string]Store{
		"sqlite": sqlite,
		"memory": NewMemory(),
	}
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	for name, store := range openStores(t) {
		store := store
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, ok, err := store.Get(ctx, Cart)
			require.NoError(t, err)
			require.False(t, ok)

			require.NoError(t, store.Put(ctx, Cart, []byte(`[{"name":"a"}]`)))
			payload, ok, err := store.Get(ctx, Cart)
			require.NoError(t, err)
			require.True(t, ok)
			require.JSONEq(t, `[{"name":"a"}]`, string(payload))

			// Put overwrites any prior value.
			require.NoError(t, store.Put(ctx, Cart, []byte(`[]`)))
			payload, ok, err = store.Get(ctx, Cart)
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, `[]`, string(payload))

			require.NoError(t, store.Delete(ctx, Cart))
			_, ok, err = store.Get(ctx, Cart)
			require.NoError(t, err)
			require.False(t, ok)

			// Deleting an absent slot is fine.
			require.NoError(t, store.Delete(ctx, Cart))
		})
	}
}

func TestSlotsAreIndependent(t *testing.T) {
	t.Parallel()

	for name, store := range openStores(t) {
		store := store
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, store.Put(ctx, Cart, []byte("cart")))
			require.NoError(t, store.Put(ctx, CustomerData, []byte("customer")))
			require.NoError(t, store.Delete(ctx, Cart))

			payload, ok, err := store.Get(ctx, CustomerData)
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, "customer", string(payload))
		})
	}
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "slots.db")
	ctx := context.Background()

	first, err := NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, first.Put(ctx, Cart, []byte("snapshot")))
	require.NoError(t, first.Close())

	second, err := NewSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	payload, ok, err := second.Get(ctx, Cart)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "snapshot", string(payload))
}

func TestMemoryGetReturnsCopy(t *testing.T) {
	t.Parallel()

	store := NewMemory()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, Cart, []byte("abc")))
	payload, _, err := store.Get(ctx, Cart)
	require.NoError(t, err)
	payload[0] = 'x'

	again, _, err := store.Get(ctx, Cart)
	require.NoError(t, err)
	require.Equal(t, "abc", string(again))
}

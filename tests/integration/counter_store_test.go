package integration

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quoteline/backend/internal/infrastructure/persistence"
)

// TestCounterStore_Integration exercises the atomic counter against a real
// PostgreSQL database
func TestCounterStore_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := NewTestDB(t)
	store := persistence.NewGormCounterStore(testDB.DB)
	ctx := context.Background()

	t.Run("first increment creates at 1", func(t *testing.T) {
		value, err := store.Increment(ctx, "quote", 2025)
		require.NoError(t, err)
		assert.Equal(t, int64(1), value)

		value, err = store.Increment(ctx, "quote", 2025)
		require.NoError(t, err)
		assert.Equal(t, int64(2), value)
	})

	t.Run("years are independent", func(t *testing.T) {
		value, err := store.Increment(ctx, "quote", 2026)
		require.NoError(t, err)
		assert.Equal(t, int64(1), value)
	})

	t.Run("concurrent increments never skip or duplicate", func(t *testing.T) {
		const workers = 20

		var wg sync.WaitGroup
		results := make([]int64, workers)
		errs := make([]error, workers)

		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], errs[i] = store.Increment(ctx, "invoice", 2025)
			}(i)
		}
		wg.Wait()

		for i, err := range errs {
			require.NoError(t, err, "worker %d", i)
		}

		sort.Slice(results, func(i, j int) bool { return results[i] < results[j] })
		for i, value := range results {
			assert.Equal(t, int64(i+1), value)
		}
	})

	t.Run("set and peek", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "vendor_po", 2025, 100))

		value, err := store.Peek(ctx, "vendor_po", 2025)
		require.NoError(t, err)
		assert.Equal(t, int64(100), value)

		value, err = store.Increment(ctx, "vendor_po", 2025)
		require.NoError(t, err)
		assert.Equal(t, int64(101), value)
	})

	t.Run("reset restarts the sequence", func(t *testing.T) {
		require.NoError(t, store.Reset(ctx, "vendor_po", 2025))

		value, err := store.Increment(ctx, "vendor_po", 2025)
		require.NoError(t, err)
		assert.Equal(t, int64(1), value)
	})

	t.Run("delete namespace clears all years", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "grn", 2024, 7))
		require.NoError(t, store.Set(ctx, "grn", 2025, 9))

		require.NoError(t, store.DeleteNamespace(ctx, "grn"))

		value, err := store.Peek(ctx, "grn", 2024)
		require.NoError(t, err)
		assert.Equal(t, int64(0), value)
		value, err = store.Peek(ctx, "grn", 2025)
		require.NoError(t, err)
		assert.Equal(t, int64(0), value)
	})
}

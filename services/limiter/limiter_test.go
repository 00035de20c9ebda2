package limiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreCountsWithinWindow(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		count, resetAt, err := store.Increment(ctx, "login:1.2.3.4", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, i, count)
		assert.True(t, resetAt.After(time.Now()))
	}
}

func TestMemoryStoreKeysAreIndependent(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	count, _, err := store.Increment(ctx, "login:1.2.3.4", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, _, err = store.Increment(ctx, "login:5.6.7.8", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMemoryStoreWindowReset(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	_, _, err := store.Increment(ctx, "contact:ip", 10*time.Millisecond)
	require.NoError(t, err)

	time.Sleep(30 * time.Millisecond)

	count, _, err := store.Increment(ctx, "contact:ip", 10*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

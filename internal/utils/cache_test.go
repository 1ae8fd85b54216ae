package utils

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewCache(rdb, ttl), mr
}

func TestNilCacheIsDisabled(t *testing.T) {
	c := NewCache(nil, time.Minute)
	assert.Nil(t, c)

	ctx := context.Background()
	var dest map[string]int
	found, err := c.Get(ctx, WalletKey("s1", 0), &dest)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, c.Set(ctx, WalletKey("s1", 0), map[string]int{"a": 1}))
	assert.NoError(t, c.InvalidateSession(ctx, "s1", 0))
}

func TestCacheKeys(t *testing.T) {
	assert.Equal(t, "wallet:session:s1:v0", WalletKey("s1", 0))
	assert.Equal(t, "summary:session:s1:v3", SummaryKey("s1", 3))
	assert.NotEqual(t, WalletKey("s1", 1), WalletKey("s2", 1))
	assert.NotEqual(t, WalletKey("s1", 1), WalletKey("s1", 2))
}

func TestCacheRoundTripAndTTL(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t, time.Minute)

	require.NoError(t, c.Set(ctx, WalletKey("s1", 1), map[string]int{"balance": 1250}))
	var got map[string]int
	found, err := c.Get(ctx, WalletKey("s1", 1), &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 1250, got["balance"])

	mr.FastForward(2 * time.Minute)
	found, err = c.Get(ctx, WalletKey("s1", 1), &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidateSessionDropsOneVersion(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t, time.Minute)

	require.NoError(t, c.Set(ctx, WalletKey("s1", 1), 1))
	require.NoError(t, c.Set(ctx, SummaryKey("s1", 1), 1))
	require.NoError(t, c.Set(ctx, WalletKey("s1", 2), 2))

	require.NoError(t, c.InvalidateSession(ctx, "s1", 1))
	assert.False(t, mr.Exists(WalletKey("s1", 1)))
	assert.False(t, mr.Exists(SummaryKey("s1", 1)))
	assert.True(t, mr.Exists(WalletKey("s1", 2)))
}

func TestLateWriteOfOldVersionIsNeverRead(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t, time.Minute)

	// a reader loaded version 1, a commit produced version 2 and invalidated
	// version 1, then the reader wrote its snapshot
	require.NoError(t, c.InvalidateSession(ctx, "s1", 1))
	require.NoError(t, c.Set(ctx, WalletKey("s1", 1), map[string]int{"balance": 1250}))

	var got map[string]int
	found, err := c.Get(ctx, WalletKey("s1", 2), &got)
	require.NoError(t, err)
	assert.False(t, found)
}

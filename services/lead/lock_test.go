package lead

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocker(t *testing.T) (*RedisSubmissionLocker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return &RedisSubmissionLocker{Client: client, TTL: 30 * time.Second}, mr
}

func TestRedisSubmissionLocker(t *testing.T) {
	locker, _ := newTestLocker(t)
	ctx := context.Background()

	acquired, err := locker.Acquire(ctx, "9876543210")
	require.NoError(t, err)
	assert.True(t, acquired)

	// A second attempt for the same number is blocked while held.
	acquired, err = locker.Acquire(ctx, "9876543210")
	require.NoError(t, err)
	assert.False(t, acquired)

	// A different submitter is unaffected.
	acquired, err = locker.Acquire(ctx, "9123456789")
	require.NoError(t, err)
	assert.True(t, acquired)

	require.NoError(t, locker.Release(ctx, "9876543210"))
	acquired, err = locker.Acquire(ctx, "9876543210")
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestRedisSubmissionLockerTTLExpiry(t *testing.T) {
	locker, mr := newTestLocker(t)
	ctx := context.Background()

	acquired, err := locker.Acquire(ctx, "9876543210")
	require.NoError(t, err)
	require.True(t, acquired)

	// A crashed attempt must not hold the lock past its TTL.
	mr.FastForward(31 * time.Second)

	acquired, err = locker.Acquire(ctx, "9876543210")
	require.NoError(t, err)
	assert.True(t, acquired)
}

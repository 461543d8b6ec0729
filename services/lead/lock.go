package lead

import (
	"context"
	"time"

	"rockgrip/utils"

	"github.com/go-redis/redis/v8"
)

// SubmissionLocker guards against a second submit starting for the same
// submitter while one is still in flight.
type SubmissionLocker interface {
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// RedisSubmissionLocker implements SubmissionLocker with SETNX and a TTL
// so a crashed attempt cannot hold the lock forever.
type RedisSubmissionLocker struct {
	Client *redis.Client
	TTL    time.Duration
}

func (l *RedisSubmissionLocker) Acquire(ctx context.Context, key string) (bool, error) {
	return l.Client.SetNX(ctx, utils.SubmissionLockPrefix+key, "1", l.TTL).Result()
}

func (l *RedisSubmissionLocker) Release(ctx context.Context, key string) error {
	return l.Client.Del(ctx, utils.SubmissionLockPrefix+key).Err()
}

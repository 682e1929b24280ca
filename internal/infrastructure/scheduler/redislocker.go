package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrLockHeld is returned when another instance holds the job lock.
var ErrLockHeld = errors.New("scheduler lock held by another instance")

// releaseScript deletes the key only if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker is a gocron.Locker backed by SET NX with a TTL.
type RedisLocker struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

var _ gocron.Locker = (*RedisLocker)(nil)

func NewRedisLocker(client *redis.Client, prefix string, ttl time.Duration) *RedisLocker {
	return &RedisLocker{client: client, prefix: prefix, ttl: ttl}
}

func (l *RedisLocker) Lock(ctx context.Context, key string) (gocron.Lock, error) {
	token := uuid.NewString()
	fullKey := l.prefix + key

	ok, err := l.client.SetNX(ctx, fullKey, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock %s: %w", fullKey, err)
	}
	if !ok {
		return nil, ErrLockHeld
	}
	return &redisLock{client: l.client, key: fullKey, token: token}, nil
}

type redisLock struct {
	client *redis.Client
	key    string
	token  string
}

func (l *redisLock) Unlock(ctx context.Context) error {
	if err := releaseScript.Run(ctx, l.client, []string{l.key}, l.token).Err(); err != nil {
		return fmt.Errorf("failed to release lock %s: %w", l.key, err)
	}
	return nil
}

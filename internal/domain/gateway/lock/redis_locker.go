package lock

import (
	"context"
	"time"

	"todo-api/pkg/redis"
)

// LockNamespace prefixes every todo lock key in Redis.
const LockNamespace = "todo-locks"

// RedisLocker serializes writers across replicas with a Redis lock on a single key.
type RedisLocker struct {
	client *redis.Client
	key    string
	opts   *redis.LockOptions
}

var _ Locker = (*RedisLocker)(nil)

// NewRedisLocker creates a locker on key with a copy of opts. A nil opts uses redis.NewLockOptions.
func NewRedisLocker(client *redis.Client, key string, opts *redis.LockOptions) *RedisLocker {
	if opts == nil {
		opts = redis.NewLockOptions()
	}
	lockOpts := *opts
	lockOpts.WithLockNamespace(LockNamespace)
	return &RedisLocker{client: client, key: key, opts: &lockOpts}
}

func (l *RedisLocker) WithLock(ctx context.Context, fn func(ctx context.Context) error) error {
	return redis.LockWithFunc(ctx, l.client, l.key, l.opts, func() error {
		return fn(ctx)
	})
}

// ErrNotAcquired is returned by RedisLeaseLocker when another replica holds the lease.
var ErrNotAcquired = redis.ErrLockNotAcquired

// RedisLeaseLocker runs fn only when key can be taken without waiting. The lease is not released
// and expires after ttl, so at most one replica runs fn per ttl window.
type RedisLeaseLocker struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

var _ Locker = (*RedisLeaseLocker)(nil)

func NewRedisLeaseLocker(client *redis.Client, key string, ttl time.Duration) *RedisLeaseLocker {
	return &RedisLeaseLocker{client: client, key: key, ttl: ttl}
}

func (l *RedisLeaseLocker) WithLock(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := redis.NewLockOptions().
		WithTTL(l.ttl).
		WithMaxRetries(0).
		WithLockNamespace(LockNamespace)
	if err := redis.NewLock(l.client, l.key, opts).Lock(ctx); err != nil {
		return err
	}
	return fn(ctx)
}

package redis

import (
	"context"
	"time"

	"todo-api/pkg/redis"
	"todo-api/pkg/resource"
)

// TodoCacheName is the cache holding the todo list snapshot.
const TodoCacheName = "todos"

// NewConfig builds the client configuration from app.redis.* and the todo cache TTL.
func NewConfig() *redis.Config {
	return redis.NewRedisConfig().
		WithHost(resource.GetStringWithDefault("app.redis.host", "localhost")).
		WithPort(resource.GetIntWithDefault("app.redis.port", 6379)).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")).
		WithCacheTTL(TodoCacheName, resource.GetDurationWithDefault("app.todo.cache.ttl", 10*time.Minute))
}

// NewClient connects to Redis and verifies the connection.
func NewClient(ctx context.Context) (*redis.Client, error) {
	client, err := redis.NewClient(NewConfig())
	if err != nil {
		return nil, err
	}
	if err = client.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// NewLockOptions builds the lock options from app.todo.lock.*.
func NewLockOptions() *redis.LockOptions {
	return redis.NewLockOptions().
		WithTTL(resource.GetDurationWithDefault("app.todo.lock.ttl", 30*time.Second)).
		WithRetryDelay(resource.GetDurationWithDefault("app.todo.lock.retry-delay", 50*time.Millisecond)).
		WithMaxRetries(resource.GetIntWithDefault("app.todo.lock.max-retries", 100))
}

// NewRateLimiterOptions builds the per-caller limits from app.todo.rate-limit.*.
func NewRateLimiterOptions() *redis.RateLimiterOptions {
	return redis.NewRateLimiterOptions().
		WithMaxPerSecond(resource.GetInt("app.todo.rate-limit.per-second")).
		WithMaxPerMinute(resource.GetIntWithDefault("app.todo.rate-limit.per-minute", 60)).
		WithNamespace("todo-rate")
}

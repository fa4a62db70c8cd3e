package redis

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, configure func(*Config)) (*miniredis.Miniredis, *Client) {
	t.Helper()
	server := miniredis.RunT(t)

	port, err := strconv.Atoi(server.Port())
	require.NoError(t, err)

	config := NewRedisConfig().WithHost(server.Host()).WithPort(port)
	config.MaxRetries = 0
	if configure != nil {
		configure(config)
	}

	client, err := NewClient(config)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return server, client
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"Defaults", func(*Config) {}, false},
		{"EmptyHost", func(c *Config) { c.Host = "" }, true},
		{"PortOutOfRange", func(c *Config) { c.Port = 70000 }, true},
		{"DatabaseOutOfRange", func(c *Config) { c.Database = 16 }, true},
		{"NegativePool", func(c *Config) { c.MaxActive = -1 }, true},
		{"NegativeTTL", func(c *Config) { c.WithCacheTTL("todos", -time.Second) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := NewRedisConfig()
			tt.mutate(config)
			if tt.wantErr {
				assert.Error(t, config.Validate())
			} else {
				assert.NoError(t, config.Validate())
			}
		})
	}

	_, err := NewClient(NewRedisConfig().WithPort(0))
	assert.Error(t, err)
}

func TestCache_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	server, client := newTestClient(t, func(c *Config) { c.WithCacheTTL("todos", time.Minute) })
	cache := NewCache(client, NewCacheOptions().WithCacheName("todos"))

	var missing []string
	assert.ErrorIs(t, cache.Get(ctx, "all", &missing), ErrCacheMiss)

	require.NoError(t, cache.Set(ctx, "all", []string{"A", "B"}))
	assert.True(t, server.Exists("todos::all"))
	assert.Equal(t, time.Minute, server.TTL("todos::all"))

	var got []string
	require.NoError(t, cache.Get(ctx, "all", &got))
	assert.Equal(t, []string{"A", "B"}, got)

	exists, err := cache.Exists(ctx, "all")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, cache.Delete(ctx, "all"))
	exists, err = cache.Exists(ctx, "all")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCache_TTLResolution(t *testing.T) {
	ctx := context.Background()
	server, client := newTestClient(t, func(c *Config) { c.DefaultCacheTTL = 0 })

	named := NewCache(client, NewCacheOptions().WithCacheName("other").WithTTL(3*time.Minute))
	require.NoError(t, named.Set(ctx, "k", 1))
	assert.Equal(t, 3*time.Minute, server.TTL("other::k"))

	plain := NewCache(client, nil)
	require.NoError(t, plain.Set(ctx, "k", 1))
	assert.Equal(t, time.Hour, server.TTL("k"))
}

func TestCache_RefreshTTL(t *testing.T) {
	ctx := context.Background()
	server, client := newTestClient(t, nil)
	cache := NewCache(client, NewCacheOptions().WithCacheName("todos").WithRefreshTTL(true))

	require.NoError(t, cache.Set(ctx, "all", "x"))
	server.FastForward(5 * time.Minute)
	assert.Equal(t, 5*time.Minute, server.TTL("todos::all"))

	var got string
	require.NoError(t, cache.Get(ctx, "all", &got))
	assert.Equal(t, 10*time.Minute, server.TTL("todos::all"))
}

func TestGetOrSetVersioned(t *testing.T) {
	ctx := context.Background()
	_, client := newTestClient(t, nil)
	cache := NewCache(client, NewCacheOptions().WithCacheName("todos"))

	loads := 0
	loader := func() ([]int, error) {
		loads++
		return []int{1, 2, 3}, nil
	}

	for i := 0; i < 3; i++ {
		value, err := GetOrSetVersioned(ctx, cache, "all", loader)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, value)
	}
	assert.Equal(t, 1, loads)

	boom := errors.New("load failed")
	_, err := GetOrSetVersioned(ctx, cache, "other", func() ([]int, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
	exists, err := cache.Exists(ctx, "other")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGetOrSet_FallsBackWhenRedisIsDown(t *testing.T) {
	server, client := newTestClient(t, nil)
	cache := NewCache(client, nil)
	server.Close()

	value, err := GetOrSetVersioned(context.Background(), cache, "all", func() (string, error) { return "loaded", nil })
	require.NoError(t, err)
	assert.Equal(t, "loaded", value)
}

func TestCache_Versions(t *testing.T) {
	ctx := context.Background()
	_, client := newTestClient(t, nil)
	cache := NewCache(client, NewCacheOptions().WithCacheName("todos"))

	version, err := cache.Version(ctx, "all")
	require.NoError(t, err)
	assert.Equal(t, int64(0), version)

	written, err := cache.SetIfVersion(ctx, "all", []int{1}, 0)
	require.NoError(t, err)
	assert.True(t, written)

	require.NoError(t, cache.BumpVersion(ctx, "all"))
	exists, err := cache.Exists(ctx, "all")
	require.NoError(t, err)
	assert.False(t, exists)
	version, err = cache.Version(ctx, "all")
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	written, err = cache.SetIfVersion(ctx, "all", []int{1}, 0)
	require.NoError(t, err)
	assert.False(t, written)
	exists, err = cache.Exists(ctx, "all")
	require.NoError(t, err)
	assert.False(t, exists)

	written, err = cache.SetIfVersion(ctx, "all", []int{1, 2}, 1)
	require.NoError(t, err)
	assert.True(t, written)
	ttl, err := cache.GetTTL(ctx, "all")
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestGetOrSetVersioned_SkipsWriteAfterBump(t *testing.T) {
	ctx := context.Background()
	_, client := newTestClient(t, nil)
	cache := NewCache(client, NewCacheOptions().WithCacheName("todos"))

	value, err := GetOrSetVersioned(ctx, cache, "all", func() ([]int, error) {
		require.NoError(t, cache.BumpVersion(ctx, "all"))
		return []int{1}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, value)

	exists, err := cache.Exists(ctx, "all")
	require.NoError(t, err)
	assert.False(t, exists)

	value, err = GetOrSetVersioned(ctx, cache, "all", func() ([]int, error) { return []int{1, 2}, nil })
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, value)
	exists, err = cache.Exists(ctx, "all")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLock(t *testing.T) {
	ctx := context.Background()
	server, client := newTestClient(t, nil)
	opts := NewLockOptions().WithLockNamespace("todo-locks").WithMaxRetries(1).WithRetryDelay(time.Millisecond).WithTTL(time.Minute)

	first := NewLock(client, "todo-list", opts)
	second := NewLock(client, "todo-list", opts)

	require.NoError(t, first.Lock(ctx))
	assert.True(t, server.Exists("todo-locks::todo-list"))

	err := second.Lock(ctx)
	assert.ErrorIs(t, err, ErrLockNotAcquired)
	assert.ErrorIs(t, second.Unlock(ctx), ErrLockNotHeld)
	assert.ErrorIs(t, second.Refresh(ctx), ErrLockNotHeld)

	server.FastForward(30 * time.Second)
	require.NoError(t, first.Refresh(ctx))
	assert.Equal(t, time.Minute, server.TTL("todo-locks::todo-list"))

	require.NoError(t, first.Unlock(ctx))
	assert.False(t, server.Exists("todo-locks::todo-list"))
	require.NoError(t, second.Lock(ctx))
}

func TestLock_ExpiresAfterTTL(t *testing.T) {
	ctx := context.Background()
	server, client := newTestClient(t, nil)
	opts := NewLockOptions().WithMaxRetries(0).WithTTL(time.Second)

	require.NoError(t, NewLock(client, "lease", opts).Lock(ctx))
	assert.ErrorIs(t, NewLock(client, "lease", opts).Lock(ctx), ErrLockNotAcquired)

	server.FastForward(2 * time.Second)
	assert.NoError(t, NewLock(client, "lease", opts).Lock(ctx))
}

func TestLockWithFunc(t *testing.T) {
	ctx := context.Background()
	server, client := newTestClient(t, nil)

	boom := errors.New("failed")
	err := LockWithFunc(ctx, client, "job", nil, func() error {
		assert.True(t, server.Exists("job"))
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.False(t, server.Exists("job"))
}

func TestPublisher_PublishJSON(t *testing.T) {
	ctx := context.Background()
	_, client := newTestClient(t, nil)

	subscriber := client.GetClient().Subscribe(ctx, "todo-events::todos")
	defer subscriber.Close()
	_, err := subscriber.Receive(ctx)
	require.NoError(t, err)

	publisher := NewPublisher(client, NewPubSubConfig().WithChannelNamespace("todo-events"))
	require.NoError(t, publisher.PublishJSON(ctx, "todos", map[string]int{"index": 1}))

	select {
	case message := <-subscriber.Channel():
		assert.Equal(t, "todo-events::todos", message.Channel)
		assert.JSONEq(t, `{"index":1}`, message.Payload)
	case <-time.After(2 * time.Second):
		t.Fatal("message was not delivered")
	}

	assert.Error(t, publisher.PublishJSON(ctx, "todos", make(chan int)))
}

func TestHealthChecker(t *testing.T) {
	server, client := newTestClient(t, nil)
	checker := NewHealthChecker(client)

	health := checker.HealthCheck()
	assert.Equal(t, StatusUp, health.Status)
	assert.Equal(t, server.Port(), health.Details["port"])
	assert.Equal(t, "0", health.Details["database"])
	assert.Empty(t, server.Keys())

	server.Close()
	health = checker.HealthCheck()
	assert.Equal(t, StatusDown, health.Status)
	assert.NotEmpty(t, health.Details["message"])
}

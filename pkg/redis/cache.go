package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"todo-api/pkg/log"
)

// setIfVersionScript writes KEYS[1] only while the version counter KEYS[2] still equals ARGV[2].
const setIfVersionScript = `
local current = redis.call("GET", KEYS[2]) or "0"
if current ~= ARGV[2] then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call("SET", KEYS[1], ARGV[1], "PX", ARGV[3])
else
	redis.call("SET", KEYS[1], ARGV[1])
end
return 1
`

// CacheOptions represents options for cache operations
type CacheOptions struct {
	// TTL is used when the client config has no TTL for CacheName
	TTL time.Duration
	// RefreshTTL extends the TTL on every hit
	RefreshTTL   bool
	Serializer   func(interface{}) ([]byte, error)
	Deserializer func([]byte, interface{}) error
	// CacheName prefixes keys as CacheName::key and selects the configured TTL
	CacheName string
}

// NewCacheOptions creates cache options with JSON serialization and a one hour TTL
func NewCacheOptions() *CacheOptions {
	return &CacheOptions{
		TTL:          time.Hour,
		Serializer:   json.Marshal,
		Deserializer: json.Unmarshal,
	}
}

func (co *CacheOptions) WithTTL(ttl time.Duration) *CacheOptions {
	co.TTL = ttl
	return co
}

func (co *CacheOptions) WithRefreshTTL(refresh bool) *CacheOptions {
	co.RefreshTTL = refresh
	return co
}

func (co *CacheOptions) WithCacheName(cacheName string) *CacheOptions {
	co.CacheName = cacheName
	return co
}

// Cache provides typed get/set on top of Client
type Cache struct {
	client *Client
	opts   *CacheOptions
}

func NewCache(client *Client, opts *CacheOptions) *Cache {
	if opts == nil {
		opts = NewCacheOptions()
	}
	return &Cache{client: client, opts: opts}
}

// getTTL prefers the client's per-cache TTL, then its default, then the options TTL
func (c *Cache) getTTL() time.Duration {
	if c.opts.CacheName != "" {
		if ttl, exists := c.client.config.CacheTTLs[c.opts.CacheName]; exists {
			return ttl
		}
		if c.client.config.DefaultCacheTTL > 0 {
			return c.client.config.DefaultCacheTTL
		}
	}
	return c.opts.TTL
}

func (c *Cache) buildCacheKey(key string) string {
	if c.opts.CacheName != "" {
		return c.opts.CacheName + "::" + key
	}
	return key
}

// Get loads key into dest. It returns ErrCacheMiss when the key is absent.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) error {
	fullKey := c.buildCacheKey(key)
	data, err := c.client.GetBytes(ctx, fullKey)
	if err != nil {
		return err
	}

	if c.opts.RefreshTTL {
		if err := c.client.Expire(ctx, fullKey, c.getTTL()); err != nil {
			log.Warnf("failed to refresh TTL of %s: %v", fullKey, err)
		}
	}

	return c.opts.Deserializer(data, dest)
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := c.opts.Serializer(value)
	if err != nil {
		return fmt.Errorf("failed to serialize value: %w", err)
	}
	return c.client.Set(ctx, c.buildCacheKey(key), data, c.getTTL())
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Delete(ctx, c.buildCacheKey(key))
}

func (c *Cache) Exists(ctx context.Context, key string) (bool, error) {
	count, err := c.client.Exists(ctx, c.buildCacheKey(key))
	return count > 0, err
}

func (c *Cache) buildVersionKey(key string) string {
	return c.buildCacheKey(key) + "::version"
}

// Version returns the write version of key, 0 when it was never bumped.
func (c *Cache) Version(ctx context.Context, key string) (int64, error) {
	data, err := c.client.GetBytes(ctx, c.buildVersionKey(key))
	if errors.Is(err, ErrCacheMiss) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(string(data), 10, 64)
}

// BumpVersion drops the cached value of key and increments its version in one transaction,
// so loads that started before the bump can no longer be stored.
func (c *Cache) BumpVersion(ctx context.Context, key string) error {
	pipe := c.client.GetClient().TxPipeline()
	pipe.Incr(ctx, c.buildVersionKey(key))
	pipe.Del(ctx, c.buildCacheKey(key))
	_, err := pipe.Exec(ctx)
	return err
}

// SetIfVersion stores value only if the version of key still equals version.
// It reports whether the value was written.
func (c *Cache) SetIfVersion(ctx context.Context, key string, value interface{}, version int64) (bool, error) {
	data, err := c.opts.Serializer(value)
	if err != nil {
		return false, fmt.Errorf("failed to serialize value: %w", err)
	}
	written, err := c.client.GetClient().Eval(ctx, setIfVersionScript,
		[]string{c.buildCacheKey(key), c.buildVersionKey(key)},
		data, strconv.FormatInt(version, 10), c.getTTL().Milliseconds()).Int64()
	if err != nil {
		return false, err
	}
	return written == 1, nil
}

// GetOrSetVersioned returns the cached value for key, calling loader and caching its result on a
// miss. The result is not cached when BumpVersion ran between the version read and the write.
// A failure to write the cache is logged; the loaded value is still returned.
func GetOrSetVersioned[T any](ctx context.Context, c *Cache, key string, loader func() (T, error)) (T, error) {
	var cached T
	err := c.Get(ctx, key, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		log.Warnf("cache read of %s failed, loading from source: %v", c.buildCacheKey(key), err)
		return loader()
	}

	version, err := c.Version(ctx, key)
	if err != nil {
		log.Warnf("cache version read of %s failed, loading from source: %v", c.buildCacheKey(key), err)
		return loader()
	}

	value, err := loader()
	if err != nil {
		return value, err
	}
	written, err := c.SetIfVersion(ctx, key, value, version)
	switch {
	case err != nil:
		log.Warnf("cache write of %s failed: %v", c.buildCacheKey(key), err)
	case !written:
		log.Debugf("cache write of %s skipped, version moved past %d", c.buildCacheKey(key), version)
	}
	return value, nil
}

// GetTTL returns the time to live of a key
func (c *Cache) GetTTL(ctx context.Context, key string) (time.Duration, error) {
	return c.client.TTL(ctx, c.buildCacheKey(key))
}

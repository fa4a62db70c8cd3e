package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrRateLimited is returned by RateLimiter.Allow when a window is full.
var ErrRateLimited = errors.New("rate limit exceeded")

const allowScript = `
	local per_second_key = KEYS[1]
	local per_minute_key = KEYS[2]

	local max_per_second = tonumber(ARGV[1])
	local max_per_minute = tonumber(ARGV[2])
	local member = ARGV[3]
	local now_ms = tonumber(ARGV[4])

	if max_per_second > 0 then
		redis.call("ZREMRANGEBYSCORE", per_second_key, "-inf", now_ms - 1000)
		if redis.call("ZCARD", per_second_key) >= max_per_second then
			return -1
		end
	end

	if max_per_minute > 0 then
		redis.call("ZREMRANGEBYSCORE", per_minute_key, "-inf", now_ms - 60000)
		if redis.call("ZCARD", per_minute_key) >= max_per_minute then
			return -2
		end
	end

	if max_per_second > 0 then
		redis.call("ZADD", per_second_key, now_ms, member)
		redis.call("EXPIRE", per_second_key, 2)
	end
	if max_per_minute > 0 then
		redis.call("ZADD", per_minute_key, now_ms, member)
		redis.call("EXPIRE", per_minute_key, 61)
	end
	return 1`

// RateLimiterOptions configures sliding one second and one minute windows. Zero disables a window.
type RateLimiterOptions struct {
	MaxPerSecond int
	MaxPerMinute int
	// Namespace prefixes keys as Namespace::key::window
	Namespace string
}

func NewRateLimiterOptions() *RateLimiterOptions {
	return &RateLimiterOptions{}
}

func (rlo *RateLimiterOptions) WithMaxPerSecond(limit int) *RateLimiterOptions {
	rlo.MaxPerSecond = limit
	return rlo
}

func (rlo *RateLimiterOptions) WithMaxPerMinute(limit int) *RateLimiterOptions {
	rlo.MaxPerMinute = limit
	return rlo
}

func (rlo *RateLimiterOptions) WithNamespace(namespace string) *RateLimiterOptions {
	rlo.Namespace = namespace
	return rlo
}

func (rlo *RateLimiterOptions) Validate() error {
	if rlo.MaxPerSecond < 0 || rlo.MaxPerMinute < 0 {
		return fmt.Errorf("rate limits must be non-negative")
	}
	if rlo.MaxPerSecond == 0 && rlo.MaxPerMinute == 0 {
		return fmt.Errorf("at least one of MaxPerSecond or MaxPerMinute must be configured")
	}
	return nil
}

// RateLimiter admits at most the configured number of events per key in each sliding window.
// The check and the record run in one Lua script, so replicas share the windows.
type RateLimiter struct {
	client *Client
	opts   *RateLimiterOptions
	now    func() time.Time
}

func NewRateLimiter(client *Client, opts *RateLimiterOptions) (*RateLimiter, error) {
	if opts == nil {
		return nil, errors.New("rate limiter options are required")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &RateLimiter{client: client, opts: opts, now: time.Now}, nil
}

func (rl *RateLimiter) buildKey(key, window string) string {
	if rl.opts.Namespace != "" {
		return rl.opts.Namespace + "::" + key + "::" + window
	}
	return key + "::" + window
}

// Allow records one event for key, or returns ErrRateLimited without recording it.
func (rl *RateLimiter) Allow(ctx context.Context, key string) error {
	result, err := rl.client.GetClient().Eval(ctx, allowScript,
		[]string{rl.buildKey(key, "tps"), rl.buildKey(key, "tpm")},
		rl.opts.MaxPerSecond,
		rl.opts.MaxPerMinute,
		uuid.NewString(),
		rl.now().UnixMilli(),
	).Int64()
	if err != nil {
		return fmt.Errorf("failed to evaluate rate limit for %s: %w", key, err)
	}

	switch result {
	case 1:
		return nil
	case -1:
		return fmt.Errorf("%w: %d per second", ErrRateLimited, rl.opts.MaxPerSecond)
	case -2:
		return fmt.Errorf("%w: %d per minute", ErrRateLimited, rl.opts.MaxPerMinute)
	default:
		return fmt.Errorf("unexpected rate limit result %d", result)
	}
}

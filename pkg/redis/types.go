package redis

import "errors"

// HealthStatus represents the health status
type HealthStatus string

const (
	StatusUp      HealthStatus = "UP"
	StatusDown    HealthStatus = "DOWN"
	StatusUnknown HealthStatus = "UNKNOWN"
)

var (
	// ErrCacheMiss is returned by Cache.Get when the key is absent.
	ErrCacheMiss = errors.New("cache miss")
	// ErrLockNotAcquired is returned by Lock.Lock when the key stays held after every retry.
	ErrLockNotAcquired = errors.New("lock is held by another client")
	// ErrLockNotHeld is returned when releasing or refreshing a lock owned by someone else.
	ErrLockNotHeld = errors.New("lock was not held by this client")
)

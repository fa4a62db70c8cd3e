package lock

import (
	"context"
	"sync"
)

// Locker runs fn while holding a mutual-exclusion lock shared by every writer of the list.
type Locker interface {
	WithLock(ctx context.Context, fn func(ctx context.Context) error) error
}

// LocalLocker serializes writers inside a single process.
type LocalLocker struct {
	mu sync.Mutex
}

var _ Locker = (*LocalLocker)(nil)

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{}
}

func (l *LocalLocker) WithLock(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return fn(ctx)
}

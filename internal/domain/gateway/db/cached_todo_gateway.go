package db

import (
	"context"

	"todo-api/internal/domain/entity"
	"todo-api/pkg/log"
	"todo-api/pkg/redis"
)

const todoListCacheKey = "all"

// CachedTodoGateway serves FindAll from a Redis cache. Every write drops the cached list and
// bumps its version, so a read that loaded before the write never stores its copy.
// Cache failures fall back to the wrapped gateway.
type CachedTodoGateway struct {
	TodoGateway
	cache *redis.Cache
}

var _ TodoGateway = (*CachedTodoGateway)(nil)

func NewCachedTodoGateway(gateway TodoGateway, cache *redis.Cache) *CachedTodoGateway {
	return &CachedTodoGateway{TodoGateway: gateway, cache: cache}
}

func (g *CachedTodoGateway) FindAll(ctx context.Context) ([]entity.Todo, error) {
	return redis.GetOrSetVersioned(ctx, g.cache, todoListCacheKey, func() ([]entity.Todo, error) {
		return g.TodoGateway.FindAll(ctx)
	})
}

func (g *CachedTodoGateway) Append(ctx context.Context, todo entity.Todo) (int, error) {
	defer g.invalidate(ctx)
	return g.TodoGateway.Append(ctx, todo)
}

func (g *CachedTodoGateway) ReplaceAt(ctx context.Context, index int, todo entity.Todo) error {
	defer g.invalidate(ctx)
	return g.TodoGateway.ReplaceAt(ctx, index, todo)
}

func (g *CachedTodoGateway) RemoveAt(ctx context.Context, index int) error {
	defer g.invalidate(ctx)
	return g.TodoGateway.RemoveAt(ctx, index)
}

func (g *CachedTodoGateway) invalidate(ctx context.Context) {
	if err := g.cache.BumpVersion(context.WithoutCancel(ctx), todoListCacheKey); err != nil {
		log.Warnf("todo cache invalidation failed: %v", err)
	}
}

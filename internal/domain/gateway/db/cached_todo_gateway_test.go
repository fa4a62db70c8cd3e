package db

import (
	"context"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-api/internal/domain/entity"
	"todo-api/pkg/redis"
)

// countingTodoGateway counts FindAll calls reaching the backing store.
type countingTodoGateway struct {
	TodoGateway
	findAllCalls int
}

func (g *countingTodoGateway) FindAll(ctx context.Context) ([]entity.Todo, error) {
	g.findAllCalls++
	return g.TodoGateway.FindAll(ctx)
}

func newCachedTodoGateway(t *testing.T) (*CachedTodoGateway, *countingTodoGateway, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client, err := redis.NewClient(redis.NewRedisConfig().WithHost(server.Host()).WithPort(serverPort(t, server)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	backing := &countingTodoGateway{TodoGateway: NewMemoryTodoGateway()}
	cache := redis.NewCache(client, redis.NewCacheOptions().WithCacheName("todos"))
	return NewCachedTodoGateway(backing, cache), backing, server
}

func serverPort(t *testing.T, server *miniredis.Miniredis) int {
	t.Helper()
	port, err := strconv.Atoi(server.Port())
	require.NoError(t, err)
	return port
}

func TestCachedTodoGateway(t *testing.T) {
	testTodoGatewayContract(t, func(t *testing.T) TodoGateway {
		gateway, _, _ := newCachedTodoGateway(t)
		return gateway
	})
}

func TestCachedTodoGateway_ServesReadsFromCache(t *testing.T) {
	ctx := context.Background()
	gateway, backing, server := newCachedTodoGateway(t)

	_, err := gateway.Append(ctx, newTodo("a"))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		todos, err := gateway.FindAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, titles(todos))
	}
	assert.Equal(t, 1, backing.findAllCalls)
	assert.True(t, server.Exists("todos::all"))
}

func TestCachedTodoGateway_WritesInvalidate(t *testing.T) {
	ctx := context.Background()
	gateway, backing, server := newCachedTodoGateway(t)

	_, err := gateway.Append(ctx, newTodo("a"))
	require.NoError(t, err)
	_, err = gateway.FindAll(ctx)
	require.NoError(t, err)

	require.NoError(t, gateway.ReplaceAt(ctx, 0, entity.Todo{Title: "a2", Status: entity.StatusUpdated}))
	assert.False(t, server.Exists("todos::all"))

	todos, err := gateway.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a2"}, titles(todos))

	require.NoError(t, gateway.RemoveAt(ctx, 0))
	todos, err = gateway.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, todos)

	assert.Equal(t, 3, backing.findAllCalls)
}

func TestCachedTodoGateway_FallsBackWhenRedisIsDown(t *testing.T) {
	ctx := context.Background()
	gateway, backing, server := newCachedTodoGateway(t)

	_, err := gateway.Append(ctx, newTodo("a"))
	require.NoError(t, err)
	server.Close()

	todos, err := gateway.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, titles(todos))
	assert.Equal(t, 1, backing.findAllCalls)
}

// interleavingTodoGateway runs afterLoad once, after the backing FindAll returned and before
// the caller can store the result.
type interleavingTodoGateway struct {
	TodoGateway
	afterLoad func()
}

func (g *interleavingTodoGateway) FindAll(ctx context.Context) ([]entity.Todo, error) {
	todos, err := g.TodoGateway.FindAll(ctx)
	if hook := g.afterLoad; hook != nil {
		g.afterLoad = nil
		hook()
	}
	return todos, err
}

func TestCachedTodoGateway_WriteDuringLoadIsNotMasked(t *testing.T) {
	tests := []struct {
		name  string
		write func(ctx context.Context, gateway TodoGateway) error
		want  []string
	}{
		{"Append", func(ctx context.Context, gateway TodoGateway) error {
			_, err := gateway.Append(ctx, newTodo("b"))
			return err
		}, []string{"a", "b"}},
		{"ReplaceAt", func(ctx context.Context, gateway TodoGateway) error {
			return gateway.ReplaceAt(ctx, 0, entity.Todo{Title: "a2", Status: entity.StatusUpdated})
		}, []string{"a2"}},
		{"RemoveAt", func(ctx context.Context, gateway TodoGateway) error {
			return gateway.RemoveAt(ctx, 0)
		}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			server := miniredis.RunT(t)
			client, err := redis.NewClient(redis.NewRedisConfig().WithHost(server.Host()).WithPort(serverPort(t, server)))
			require.NoError(t, err)
			t.Cleanup(func() { _ = client.Close() })

			backing := &interleavingTodoGateway{TodoGateway: NewMemoryTodoGateway()}
			gateway := NewCachedTodoGateway(backing, redis.NewCache(client, redis.NewCacheOptions().WithCacheName("todos")))

			_, err = gateway.Append(ctx, newTodo("a"))
			require.NoError(t, err)

			backing.afterLoad = func() {
				require.NoError(t, tt.write(ctx, gateway))
			}
			stale, err := gateway.FindAll(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"a"}, titles(stale))
			assert.False(t, server.Exists("todos::all"))

			todos, err := gateway.FindAll(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(todos))

			count, err := gateway.Count(ctx)
			require.NoError(t, err)
			assert.Equal(t, len(tt.want), count)
		})
	}
}

package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-api/internal/domain/entity"
)

var (
	testOwner = entity.MustParseAddress("0x5b38da6a701c568545dcfcb03fcb875f56beddc4")
	testOther = entity.MustParseAddress("0xab8483f64d9c6d1ecf9b849ae677dd3315835cb2")
)

func newTodo(title string) entity.Todo {
	return entity.Todo{Title: title, Description: title + " description", Status: entity.StatusCreated}
}

func titles(todos []entity.Todo) []string {
	result := make([]string, 0, len(todos))
	for _, todo := range todos {
		result = append(result, todo.Title)
	}
	return result
}

// testTodoGatewayContract runs the behaviour every TodoGateway implementation must share.
func testTodoGatewayContract(t *testing.T, newGateway func(t *testing.T) TodoGateway) {
	ctx := context.Background()

	t.Run("InitOwnerKeepsFirstOwner", func(t *testing.T) {
		gateway := newGateway(t)

		stored, err := gateway.InitOwner(ctx, testOwner)
		require.NoError(t, err)
		assert.Equal(t, testOwner, stored)

		stored, err = gateway.InitOwner(ctx, testOther)
		require.NoError(t, err)
		assert.Equal(t, testOwner, stored)
	})

	t.Run("EmptyList", func(t *testing.T) {
		gateway := newGateway(t)

		count, err := gateway.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, count)

		todos, err := gateway.FindAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, todos)
		assert.Empty(t, todos)

		_, err = gateway.FindByIndex(ctx, 0)
		assert.ErrorIs(t, err, ErrPositionNotFound)
	})

	t.Run("AppendReturnsSequentialIndexes", func(t *testing.T) {
		gateway := newGateway(t)

		for i, title := range []string{"a", "b", "c"} {
			index, err := gateway.Append(ctx, newTodo(title))
			require.NoError(t, err)
			assert.Equal(t, i, index)
		}

		count, err := gateway.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		found, err := gateway.FindByIndex(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, newTodo("b"), *found)
	})

	t.Run("ReplaceAt", func(t *testing.T) {
		gateway := newGateway(t)
		_, err := gateway.Append(ctx, newTodo("a"))
		require.NoError(t, err)

		updated := entity.Todo{Title: "a2", Description: "new", Status: entity.StatusUpdated}
		require.NoError(t, gateway.ReplaceAt(ctx, 0, updated))

		found, err := gateway.FindByIndex(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, updated, *found)

		assert.ErrorIs(t, gateway.ReplaceAt(ctx, 1, updated), ErrPositionNotFound)
	})

	t.Run("RemoveAtCompactsPreservingOrder", func(t *testing.T) {
		gateway := newGateway(t)
		for _, title := range []string{"a", "b", "c", "d"} {
			_, err := gateway.Append(ctx, newTodo(title))
			require.NoError(t, err)
		}

		require.NoError(t, gateway.RemoveAt(ctx, 1))

		todos, err := gateway.FindAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "c", "d"}, titles(todos))

		found, err := gateway.FindByIndex(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "c", found.Title)

		// appending after a removal continues at the new end
		index, err := gateway.Append(ctx, newTodo("e"))
		require.NoError(t, err)
		assert.Equal(t, 3, index)

		require.NoError(t, gateway.RemoveAt(ctx, 0))
		require.NoError(t, gateway.RemoveAt(ctx, 2))
		todos, err = gateway.FindAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"c", "d"}, titles(todos))

		assert.ErrorIs(t, gateway.RemoveAt(ctx, 2), ErrPositionNotFound)
	})
}

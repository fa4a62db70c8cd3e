package processor

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/usecase/todo"
)

const (
	ownerAddress = "0x5b38da6a701c568545dcfcb03fcb875f56beddc4"
	otherAddress = "0xab8483f64d9c6d1ecf9b849ae677dd3315835cb2"
)

func setup(t *testing.T) (*TodoCommandProcessor, todo.UseCase) {
	t.Helper()
	useCase, err := todo.NewTodoUseCase(context.Background(), entity.MustParseAddress(ownerAddress), db.NewMemoryTodoGateway(), nil, nil)
	require.NoError(t, err)
	return NewTodoCommandProcessor(useCase, 0), useCase
}

func message(body string) *types.Message {
	return &types.Message{MessageId: aws.String("m-1"), Body: aws.String(body)}
}

func TestTodoCommandProcessor_HandleMessage(t *testing.T) {
	processor, useCase := setup(t)
	ctx := context.Background()

	require.NoError(t, processor.HandleMessage(message(`{"caller":"`+ownerAddress+`","action":"create","title":"A","description":"B"}`)))
	require.NoError(t, processor.HandleMessage(message(`{"caller":"`+ownerAddress+`","action":"create","title":"C"}`)))
	require.NoError(t, processor.HandleMessage(message(`{"caller":"`+ownerAddress+`","action":"update","index":0,"title":"X","description":"Y"}`)))
	require.NoError(t, processor.HandleMessage(message(`{"caller":"`+ownerAddress+`","action":"complete","index":1}`)))

	todos, err := useCase.GetAllTodo(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entity.Todo{
		{Title: "X", Description: "Y", Status: entity.StatusUpdated},
		{Title: "C", Status: entity.StatusCompleted},
	}, todos)

	require.NoError(t, processor.HandleMessage(message(`{"caller":"`+ownerAddress+`","action":"delete","index":0}`)))
	todos, err = useCase.GetAllTodo(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entity.Todo{{Title: "C", Status: entity.StatusCompleted}}, todos)
}

func TestTodoCommandProcessor_Rejections(t *testing.T) {
	processor, useCase := setup(t)

	tests := []struct {
		name   string
		msg    *types.Message
		target error
	}{
		{"NilMessage", nil, nil},
		{"NilBody", &types.Message{}, nil},
		{"InvalidJSON", message(`{"action":`), nil},
		{"InvalidCaller", message(`{"caller":"nope","action":"create"}`), entity.ErrInvalidAddress},
		{"UnknownAction", message(`{"caller":"` + ownerAddress + `","action":"archive"}`), nil},
		{"NotOwner", message(`{"caller":"` + otherAddress + `","action":"create","title":"A"}`), todo.ErrUnauthorized},
		{"OutOfBound", message(`{"caller":"` + ownerAddress + `","action":"complete","index":3}`), todo.ErrIndexOutOfBound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := processor.HandleMessage(tt.msg)
			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}

	todos, err := useCase.GetAllTodo(context.Background())
	require.NoError(t, err)
	assert.Empty(t, todos)
}

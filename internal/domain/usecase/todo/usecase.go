package todo

import (
	"context"
	"errors"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

var (
	ErrUnauthorized    = errors.New("You're not allowed")
	ErrIndexOutOfBound = errors.New("Index is out-of-bound")
	// ErrOwnerMismatch is returned when the store was initialized by a different owner.
	ErrOwnerMismatch = errors.New("configured owner does not match the stored owner")
	ErrInvalidOwner  = errors.New("owner address must not be zero")
)

// UseCase is the owner-gated todo list. Only Owner may mutate it; reads are unrestricted.
// Mutators check authorization before bounds and leave the list untouched on failure.
type UseCase interface {
	Owner() entity.Address

	CreateTodo(ctx context.Context, caller entity.Address, title, description string) (int, *entity.Todo, error)
	UpdateTodo(ctx context.Context, caller entity.Address, index int, title, description string) (*entity.Todo, error)
	TodoCompleted(ctx context.Context, caller entity.Address, index int) (*entity.Todo, error)
	DeleteTodo(ctx context.Context, caller entity.Address, index int) error

	GetTodo(ctx context.Context, index int) (*entity.Todo, error)
	GetAllTodo(ctx context.Context) ([]entity.Todo, error)
	GetTodoPage(ctx context.Context, page, size int) (*model.Page[model.TodoResponse], error)

	Summary(ctx context.Context) (entity.TodoSummary, error)
	// PublishSummary computes the summary and emits it as a todo.summary event.
	PublishSummary(ctx context.Context) (entity.TodoSummary, error)
}

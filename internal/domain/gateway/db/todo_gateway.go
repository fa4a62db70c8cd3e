package db

import (
	"context"
	"errors"

	"todo-api/internal/domain/entity"
)

// ErrPositionNotFound is returned when a position is outside [0, Count).
var ErrPositionNotFound = errors.New("todo position not found")

// TodoGateway persists the ordered todo sequence and its owner. Implementations only store
// data; authorization and bounds rules belong to the caller.
type TodoGateway interface {
	// InitOwner records owner if no owner is stored yet and returns the stored owner.
	InitOwner(ctx context.Context, owner entity.Address) (entity.Address, error)

	Count(ctx context.Context) (int, error)
	FindAll(ctx context.Context) ([]entity.Todo, error)
	FindByIndex(ctx context.Context, index int) (*entity.Todo, error)

	// Append adds todo at the end and returns its index.
	Append(ctx context.Context, todo entity.Todo) (int, error)
	ReplaceAt(ctx context.Context, index int, todo entity.Todo) error
	// RemoveAt deletes the todo at index and shifts the following ones down by one.
	RemoveAt(ctx context.Context, index int) error
}

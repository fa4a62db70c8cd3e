package db

import (
	"context"
	"slices"
	"sync"

	"todo-api/internal/domain/entity"
)

type MemoryTodoGateway struct {
	mutex sync.RWMutex
	owner entity.Address
	todos []entity.Todo
}

var _ TodoGateway = (*MemoryTodoGateway)(nil)

func NewMemoryTodoGateway() *MemoryTodoGateway {
	return &MemoryTodoGateway{todos: make([]entity.Todo, 0)}
}

func (gateway *MemoryTodoGateway) InitOwner(_ context.Context, owner entity.Address) (entity.Address, error) {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()

	if gateway.owner.IsZero() {
		gateway.owner = owner
	}
	return gateway.owner, nil
}

func (gateway *MemoryTodoGateway) Count(_ context.Context) (int, error) {
	gateway.mutex.RLock()
	defer gateway.mutex.RUnlock()
	return len(gateway.todos), nil
}

func (gateway *MemoryTodoGateway) FindAll(_ context.Context) ([]entity.Todo, error) {
	gateway.mutex.RLock()
	defer gateway.mutex.RUnlock()
	return slices.Clone(gateway.todos), nil
}

func (gateway *MemoryTodoGateway) FindByIndex(_ context.Context, index int) (*entity.Todo, error) {
	gateway.mutex.RLock()
	defer gateway.mutex.RUnlock()

	if index < 0 || index >= len(gateway.todos) {
		return nil, ErrPositionNotFound
	}
	todo := gateway.todos[index]
	return &todo, nil
}

func (gateway *MemoryTodoGateway) Append(_ context.Context, todo entity.Todo) (int, error) {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()

	gateway.todos = append(gateway.todos, todo)
	return len(gateway.todos) - 1, nil
}

func (gateway *MemoryTodoGateway) ReplaceAt(_ context.Context, index int, todo entity.Todo) error {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()

	if index < 0 || index >= len(gateway.todos) {
		return ErrPositionNotFound
	}
	gateway.todos[index] = todo
	return nil
}

func (gateway *MemoryTodoGateway) RemoveAt(_ context.Context, index int) error {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()

	if index < 0 || index >= len(gateway.todos) {
		return ErrPositionNotFound
	}
	gateway.todos = slices.Delete(gateway.todos, index, index+1)
	return nil
}

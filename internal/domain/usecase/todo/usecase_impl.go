package todo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/lock"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/model"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/util/numberutils"
)

type todoUseCase struct {
	owner     entity.Address
	gateway   db.TodoGateway
	locker    lock.Locker
	publisher queue.EventPublisher
	now       func() time.Time
}

// NewTodoUseCase records owner in the gateway on first use. Reopening a store that belongs to
// another address fails with ErrOwnerMismatch. A nil locker or publisher falls back to a
// LocalLocker and a NoopEventPublisher.
func NewTodoUseCase(ctx context.Context, owner entity.Address, gateway db.TodoGateway, locker lock.Locker, publisher queue.EventPublisher) (UseCase, error) {
	if owner.IsZero() {
		return nil, ErrInvalidOwner
	}

	stored, err := gateway.InitOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize owner: %w", err)
	}
	if stored != owner {
		return nil, fmt.Errorf("%w: stored %s, configured %s", ErrOwnerMismatch, stored, owner)
	}

	if locker == nil {
		locker = lock.NewLocalLocker()
	}
	if publisher == nil {
		publisher = queue.NoopEventPublisher{}
	}

	log.Info(msg.GetMessage("todo.owner", owner))

	return &todoUseCase{
		owner:     owner,
		gateway:   gateway,
		locker:    locker,
		publisher: publisher,
		now:       time.Now,
	}, nil
}

func (uc *todoUseCase) Owner() entity.Address {
	return uc.owner
}

func (uc *todoUseCase) CreateTodo(ctx context.Context, caller entity.Address, title, description string) (int, *entity.Todo, error) {
	if err := uc.authorize(caller, "create"); err != nil {
		return 0, nil, err
	}

	todo := entity.Todo{Title: title, Description: description, Status: entity.StatusCreated}
	var index int
	err := uc.locker.WithLock(ctx, func(ctx context.Context) error {
		var err error
		index, err = uc.gateway.Append(ctx, todo)
		return err
	})
	if err != nil {
		return 0, nil, err
	}

	log.Info(msg.GetMessage("todo.created", index, caller))
	uc.publish(ctx, entity.EventTodoCreated, index, &todo, caller)
	return index, &todo, nil
}

func (uc *todoUseCase) UpdateTodo(ctx context.Context, caller entity.Address, index int, title, description string) (*entity.Todo, error) {
	if err := uc.authorize(caller, "update"); err != nil {
		return nil, err
	}

	todo := entity.Todo{Title: title, Description: description, Status: entity.StatusUpdated}
	err := uc.locker.WithLock(ctx, func(ctx context.Context) error {
		if err := uc.checkIndex(ctx, index); err != nil {
			return err
		}
		return uc.gateway.ReplaceAt(ctx, index, todo)
	})
	if err = uc.storeError(err, "update", caller); err != nil {
		return nil, err
	}

	log.Info(msg.GetMessage("todo.updated", index, caller))
	uc.publish(ctx, entity.EventTodoUpdated, index, &todo, caller)
	return &todo, nil
}

func (uc *todoUseCase) TodoCompleted(ctx context.Context, caller entity.Address, index int) (*entity.Todo, error) {
	if err := uc.authorize(caller, "complete"); err != nil {
		return nil, err
	}

	var todo entity.Todo
	err := uc.locker.WithLock(ctx, func(ctx context.Context) error {
		if numberutils.IsIntNegative(index) {
			return ErrIndexOutOfBound
		}
		current, err := uc.gateway.FindByIndex(ctx, index)
		if err != nil {
			return err
		}
		todo = *current
		todo.Status = entity.StatusCompleted
		return uc.gateway.ReplaceAt(ctx, index, todo)
	})
	if err = uc.storeError(err, "complete", caller); err != nil {
		return nil, err
	}

	log.Info(msg.GetMessage("todo.completed", index, caller))
	uc.publish(ctx, entity.EventTodoCompleted, index, &todo, caller)
	return &todo, nil
}

func (uc *todoUseCase) DeleteTodo(ctx context.Context, caller entity.Address, index int) error {
	if err := uc.authorize(caller, "delete"); err != nil {
		return err
	}

	var removed entity.Todo
	err := uc.locker.WithLock(ctx, func(ctx context.Context) error {
		if numberutils.IsIntNegative(index) {
			return ErrIndexOutOfBound
		}
		current, err := uc.gateway.FindByIndex(ctx, index)
		if err != nil {
			return err
		}
		removed = *current
		return uc.gateway.RemoveAt(ctx, index)
	})
	if err = uc.storeError(err, "delete", caller); err != nil {
		return err
	}

	log.Info(msg.GetMessage("todo.deleted", index, caller))
	uc.publish(ctx, entity.EventTodoDeleted, index, &removed, caller)
	return nil
}

func (uc *todoUseCase) GetTodo(ctx context.Context, index int) (*entity.Todo, error) {
	if numberutils.IsIntNegative(index) {
		return nil, ErrIndexOutOfBound
	}
	todo, err := uc.gateway.FindByIndex(ctx, index)
	if errors.Is(err, db.ErrPositionNotFound) {
		return nil, ErrIndexOutOfBound
	}
	return todo, err
}

func (uc *todoUseCase) GetAllTodo(ctx context.Context) ([]entity.Todo, error) {
	todos, err := uc.gateway.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if todos == nil {
		todos = make([]entity.Todo, 0)
	}
	return todos, nil
}

// GetTodoPage returns the zero-based page of the list. Responses keep their list index.
func (uc *todoUseCase) GetTodoPage(ctx context.Context, page, size int) (*model.Page[model.TodoResponse], error) {
	if numberutils.IsIntNegative(page) || !numberutils.IsIntPositive(size) {
		return nil, fmt.Errorf("invalid page %d of size %d", page, size)
	}

	todos, err := uc.GetAllTodo(ctx)
	if err != nil {
		return nil, err
	}

	from, to := model.PageWindow(page, size, len(todos))
	return model.NewPage(model.NewTodoResponses(from, todos[from:to]), page, size, int64(len(todos))), nil
}

func (uc *todoUseCase) Summary(ctx context.Context) (entity.TodoSummary, error) {
	todos, err := uc.GetAllTodo(ctx)
	if err != nil {
		return entity.TodoSummary{}, err
	}

	summary := entity.TodoSummary{Total: len(todos)}
	for _, todo := range todos {
		switch todo.Status {
		case entity.StatusCreated:
			summary.Created++
		case entity.StatusUpdated:
			summary.Updated++
		case entity.StatusCompleted:
			summary.Completed++
		}
	}
	return summary, nil
}

func (uc *todoUseCase) PublishSummary(ctx context.Context) (entity.TodoSummary, error) {
	summary, err := uc.Summary(ctx)
	if err != nil {
		return summary, err
	}

	event := uc.newEvent(entity.EventTodoSummary, 0, uc.owner)
	event.Summary = &summary
	if err = uc.publisher.Publish(ctx, event); err != nil {
		return summary, fmt.Errorf("failed to publish summary: %w", err)
	}
	return summary, nil
}

func (uc *todoUseCase) authorize(caller entity.Address, action string) error {
	if caller != uc.owner {
		log.Warn(msg.GetMessage("todo.rejected", action, caller, ErrUnauthorized))
		return ErrUnauthorized
	}
	return nil
}

// checkIndex rejects indices outside [0, Count).
func (uc *todoUseCase) checkIndex(ctx context.Context, index int) error {
	if numberutils.IsIntNegative(index) {
		return ErrIndexOutOfBound
	}
	count, err := uc.gateway.Count(ctx)
	if err != nil {
		return err
	}
	if index >= count {
		return ErrIndexOutOfBound
	}
	return nil
}

// storeError maps a missing position to ErrIndexOutOfBound and logs rejections.
func (uc *todoUseCase) storeError(err error, action string, caller entity.Address) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, db.ErrPositionNotFound) {
		err = ErrIndexOutOfBound
	}
	if errors.Is(err, ErrIndexOutOfBound) {
		log.Warn(msg.GetMessage("todo.rejected", action, caller, err))
	}
	return err
}

// publish emits a lifecycle event. Failures are logged; the mutation is already committed.
func (uc *todoUseCase) publish(ctx context.Context, eventType entity.EventType, index int, todo *entity.Todo, caller entity.Address) {
	event := uc.newEvent(eventType, index, caller)
	event.Todo = todo
	if err := uc.publisher.Publish(context.WithoutCancel(ctx), event); err != nil {
		log.Error(msg.GetMessage("todo.event.publish-failed", event.Type, err))
	}
}

func (uc *todoUseCase) newEvent(eventType entity.EventType, index int, caller entity.Address) entity.TodoEvent {
	return entity.TodoEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		Index:      index,
		Caller:     caller,
		OccurredAt: uc.now().UTC(),
	}
}

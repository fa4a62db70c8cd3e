package queue

import (
	"context"
	"errors"

	"todo-api/internal/domain/entity"
)

// EventPublisher emits todo lifecycle events to an external sink.
type EventPublisher interface {
	Publish(ctx context.Context, event entity.TodoEvent) error
}

// MultiEventPublisher fans an event out to every publisher and joins their errors.
type MultiEventPublisher struct {
	publishers []EventPublisher
}

var _ EventPublisher = (*MultiEventPublisher)(nil)

func NewMultiEventPublisher(publishers ...EventPublisher) *MultiEventPublisher {
	return &MultiEventPublisher{publishers: publishers}
}

// Add appends a publisher. It is not safe to call concurrently with Publish.
func (m *MultiEventPublisher) Add(publisher EventPublisher) {
	m.publishers = append(m.publishers, publisher)
}

func (m *MultiEventPublisher) Len() int {
	return len(m.publishers)
}

func (m *MultiEventPublisher) Publish(ctx context.Context, event entity.TodoEvent) error {
	var errs []error
	for _, publisher := range m.publishers {
		if err := publisher.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NoopEventPublisher discards events.
type NoopEventPublisher struct{}

func (NoopEventPublisher) Publish(context.Context, entity.TodoEvent) error {
	return nil
}

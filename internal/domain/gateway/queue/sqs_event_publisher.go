package queue

import (
	"context"
	"fmt"

	"todo-api/internal/domain/entity"
)

// EventTypeAttribute is the SQS message attribute carrying the event type.
const EventTypeAttribute = "event_type"

type SQSEventPublisher struct {
	sender    Sender
	queueName string
}

var _ EventPublisher = (*SQSEventPublisher)(nil)

func NewSQSEventPublisher(sender Sender, queueName string) *SQSEventPublisher {
	return &SQSEventPublisher{sender: sender, queueName: queueName}
}

func (p *SQSEventPublisher) Publish(ctx context.Context, event entity.TodoEvent) error {
	attributes := map[string]string{EventTypeAttribute: string(event.Type)}
	if err := p.sender.SendMessage(ctx, p.queueName, event, attributes); err != nil {
		return fmt.Errorf("sqs publish %s: %w", event.Type, err)
	}
	return nil
}

package queue

import (
	"context"
	"fmt"

	"todo-api/internal/domain/entity"
	"todo-api/pkg/redis"
)

type RedisEventPublisher struct {
	publisher *redis.Publisher
	channel   string
}

var _ EventPublisher = (*RedisEventPublisher)(nil)

func NewRedisEventPublisher(publisher *redis.Publisher, channel string) *RedisEventPublisher {
	return &RedisEventPublisher{publisher: publisher, channel: channel}
}

func (p *RedisEventPublisher) Publish(ctx context.Context, event entity.TodoEvent) error {
	if err := p.publisher.PublishJSON(ctx, p.channel, event); err != nil {
		return fmt.Errorf("redis publish %s: %w", event.Type, err)
	}
	return nil
}

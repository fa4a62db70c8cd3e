package api

import (
	"todo-api/internal/domain/gateway/queue"
)

// WebhookGateway forwards todo events to an HTTP endpoint.
type WebhookGateway interface {
	queue.EventPublisher
}

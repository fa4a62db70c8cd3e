package queue

import "context"

// Sender delivers a JSON-serializable body to a named queue.
type Sender interface {
	SendMessage(ctx context.Context, queueName string, body any, attributes map[string]string) error
}

package external

import "todo-api/internal/domain/entity"

// WebhookEventRequest is the body POSTed to the event webhook.
type WebhookEventRequest struct {
	Source string           `json:"source"`
	Event  entity.TodoEvent `json:"event"`
}

// WebhookErrorResponse is the error body a webhook receiver may answer with.
type WebhookErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

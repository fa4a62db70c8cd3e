package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model/external"
	"todo-api/pkg/http"
)

// webhookGatewayImpl implements the WebhookGateway interface
type webhookGatewayImpl struct {
	httpClient *http.Client
	path       string
	source     string
}

// NewWebhookGateway creates a WebhookGateway posting to endpoint. Events are sent as
// WebhookEventRequest with source set to the application name.
func NewWebhookGateway(endpoint, source string, clientOptions http.ClientOptions) (WebhookGateway, error) {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid webhook url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid webhook url %q: scheme and host are required", endpoint)
	}

	return &webhookGatewayImpl{
		httpClient: http.NewHttpClient(parsed.Scheme+"://"+parsed.Host, clientOptions),
		path:       parsed.RequestURI(),
		source:     source,
	}, nil
}

func (w *webhookGatewayImpl) Publish(ctx context.Context, event entity.TodoEvent) error {
	_, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.POST).
		WithPath(w.path).
		WithHeader("X-Event-Type", string(event.Type)).
		WithBody(external.WebhookEventRequest{Source: w.source, Event: event}).
		WithErrorResp(&external.WebhookErrorResponse{}).
		Execute()

	if err == nil {
		return nil
	}

	if errorResponse, ok := errResp.(*external.WebhookErrorResponse); ok && errorResponse != nil {
		reason := errorResponse.Message
		if reason == "" {
			reason = errorResponse.Error
		}
		if reason != "" {
			return fmt.Errorf("webhook %s rejected with status %d: %w", event.Type, status, errors.New(reason))
		}
	}

	return fmt.Errorf("webhook %s: %w", event.Type, err)
}

package http

import (
	"context"
	"errors"
	"math"
	"net/http"
	"time"
)

// BackoffConfig configures exponential retries for a request.
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
	// RetryOnStatus decides whether a response status is retried. Defaults to 429 and 5xx.
	RetryOnStatus func(status int) bool
}

// DefaultBackoff retries three times starting at 200ms.
func DefaultBackoff() *BackoffConfig {
	return &BackoffConfig{
		MaxRetries:      3,
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		Multiplier:      2,
	}
}

func (b *BackoffConfig) interval(attempt int) time.Duration {
	multiplier := b.Multiplier
	if multiplier < 1 {
		multiplier = 1
	}
	wait := time.Duration(float64(b.InitialInterval) * math.Pow(multiplier, float64(attempt)))
	if b.MaxInterval > 0 && wait > b.MaxInterval {
		return b.MaxInterval
	}
	return wait
}

func (b *BackoffConfig) shouldRetry(status int, err error) bool {
	var statusErr *StatusError
	if err != nil && !errors.As(err, &statusErr) {
		return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
	}
	if b.RetryOnStatus != nil {
		return b.RetryOnStatus(status)
	}
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

// doRequestWithBackoff executes doRequest, retrying per backoff or the client's default policy.
func (hc *Client) doRequestWithBackoff(ctx context.Context, method, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any, backoff *BackoffConfig) (any, any, int, error) {
	if backoff == nil {
		backoff = hc.backoff
	}

	for attempt := 0; ; attempt++ {
		success, failure, status, err := hc.doRequest(ctx, method, path, queryParams, headers, body, successResp, errorResp)
		if err == nil || backoff == nil || attempt >= backoff.MaxRetries || !backoff.shouldRetry(status, err) {
			return success, failure, status, err
		}

		wait := backoff.interval(attempt)
		if hc.logger != nil {
			hc.logger.LogRequestRetry(method, hc.buildURL(path), headers, "", status, "", wait.Milliseconds(), err, attempt+1, backoff.MaxRetries)
		}

		select {
		case <-ctx.Done():
			return nil, nil, status, ctx.Err()
		case <-time.After(wait):
		}
	}
}

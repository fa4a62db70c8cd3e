package http

import (
	"todo-api/pkg/log"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called immediately after receiving an error response or a transport failure
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)

	// LogRequestRetry is called when backoff exists and a retry attempt is about to be made
	LogRequestRetry(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error, retryCount, maxRetries int)
}

// ZapHTTPLogger writes HTTP client events through pkg/log.
type ZapHTTPLogger struct{}

func (ZapHTTPLogger) LogRequest(method, url string, _ map[string]string, body string) {
	log.Debugw("http request", "method", method, "url", url, "body", body)
}

func (ZapHTTPLogger) LogResponseSuccess(method, url string, _ map[string]string, _ string, httpStatus int, _ string, latency int64) {
	log.Debugw("http response", "method", method, "url", url, "status", httpStatus, "latency_ms", latency)
}

func (ZapHTTPLogger) LogResponseError(method, url string, _ map[string]string, _ string, httpStatus int, responseBody string, latency int64, err error) {
	log.Errorw("http request failed", "method", method, "url", url, "status", httpStatus,
		"response", responseBody, "latency_ms", latency, "error", err)
}

func (ZapHTTPLogger) LogRequestRetry(method, url string, _ map[string]string, _ string, httpStatus int, _ string, latency int64, err error, retryCount, maxRetries int) {
	log.Warnf("retrying %s %s (%d/%d) after status %d in %dms: %v", method, url, retryCount, maxRetries, httpStatus, latency, err)
}

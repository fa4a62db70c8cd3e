package http

import (
	"context"
	"errors"
	"maps"
)

// RequestMethod is the HTTP verb of a Request.
type RequestMethod string

const (
	GET    RequestMethod = "GET"
	POST   RequestMethod = "POST"
	PATCH  RequestMethod = "PATCH"
	PUT    RequestMethod = "PUT"
	DELETE RequestMethod = "DELETE"
)

// Request is a fluent builder executed by its Client. It defaults to GET / with a background context.
type Request struct {
	ctx         context.Context
	client      *Client
	method      RequestMethod
	path        string
	queryParams map[string]string
	headers     map[string]string
	body        any
	successResp any
	errorResp   any
	backoff     *BackoffConfig
}

func NewHttpClientRequest(client *Client) *Request {
	return &Request{
		ctx:     context.Background(),
		client:  client,
		method:  GET,
		path:    "/",
		headers: make(map[string]string),
	}
}

// WithContext bounds the request and its retries.
func (r *Request) WithContext(ctx context.Context) *Request {
	r.ctx = ctx
	return r
}

func (r *Request) WithMethod(method RequestMethod) *Request {
	r.method = method
	return r
}

func (r *Request) WithPath(path string) *Request {
	r.path = path
	return r
}

func (r *Request) WithQueryParams(params map[string]string) *Request {
	r.queryParams = params
	return r
}

// WithHeaders merges headers into the ones already set.
func (r *Request) WithHeaders(headers map[string]string) *Request {
	maps.Copy(r.headers, headers)
	return r
}

func (r *Request) WithHeader(key, value string) *Request {
	r.headers[key] = value
	return r
}

func (r *Request) WithBody(body any) *Request {
	r.body = body
	return r
}

// WithSuccessResp sets the pointer a 2xx body is decoded into.
func (r *Request) WithSuccessResp(successResp any) *Request {
	r.successResp = successResp
	return r
}

// WithErrorResp sets the pointer a non 2xx body is decoded into.
func (r *Request) WithErrorResp(errorResp any) *Request {
	r.errorResp = errorResp
	return r
}

// WithBackoff overrides the client's retry policy for this request.
func (r *Request) WithBackoff(backoff *BackoffConfig) *Request {
	r.backoff = backoff
	return r
}

// Execute sends the request and returns the success response, error response, status code, and error if any.
func (r *Request) Execute() (any, any, int, error) {
	switch {
	case r.client == nil:
		return nil, nil, 0, errors.New("client is required")
	case r.method == "":
		return nil, nil, 0, errors.New("method is required")
	case r.path == "":
		return nil, nil, 0, errors.New("path is required")
	}

	return r.client.doRequestWithBackoff(r.ctx, string(r.method), r.path, r.queryParams, r.headers,
		r.body, r.successResp, r.errorResp, r.backoff)
}

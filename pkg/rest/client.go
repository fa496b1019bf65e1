// Package rest is the transport used by catalog clients. It performs one HTTP
// exchange per call and never retries; error replies are handed to the
// caller-supplied ErrorHandler.
package rest

import (
	"context"
	"net/url"
)

// ErrorHandler turns a non-success reply into an error. body is the raw reply
// payload and may be empty.
type ErrorHandler interface {
	Accept(statusCode int, body []byte) error
}

// ErrorHandlerFunc adapts a function to ErrorHandler.
type ErrorHandlerFunc func(statusCode int, body []byte) error

func (f ErrorHandlerFunc) Accept(statusCode int, body []byte) error {
	return f(statusCode, body)
}

// Client is the REST capability consumed by catalog objects. path is relative
// to the server URI and must already be escaped. resp, when non-nil, receives
// the decoded JSON reply.
type Client interface {
	Get(ctx context.Context, path string, query url.Values, resp any, headers map[string]string, handler ErrorHandler) error
	Post(ctx context.Context, path string, body any, resp any, headers map[string]string, handler ErrorHandler) error
	Delete(ctx context.Context, path string, query url.Values, resp any, headers map[string]string, handler ErrorHandler) error
}

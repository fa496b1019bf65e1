package rest

import "context"

type contextKey int

const (
	requestIDKey contextKey = iota
	callerIDKey
)

// WithRequestID makes every call made with ctx carry id in X-Request-ID.
// Calls without one get a fresh uuid.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithCallerID sets the X-Caller-ID header for calls made with ctx.
func WithCallerID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, callerIDKey, id)
}

func CallerIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(callerIDKey).(string)
	return id
}

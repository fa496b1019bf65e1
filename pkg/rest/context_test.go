package rest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextIDs(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestIDFromContext(ctx))
	assert.Empty(t, CallerIDFromContext(ctx))

	ctx = WithRequestID(ctx, "req-1")
	ctx = WithCallerID(ctx, "etl-job")
	assert.Equal(t, "req-1", RequestIDFromContext(ctx))
	assert.Equal(t, "etl-job", CallerIDFromContext(ctx))

	// a caller id set later does not clobber the request id
	ctx = WithCallerID(ctx, "backfill")
	assert.Equal(t, "req-1", RequestIDFromContext(ctx))
	assert.Equal(t, "backfill", CallerIDFromContext(ctx))
}

package rest

import (
	"context"

	"github.com/google/uuid"
)

type requestIdKey struct{}

// WithRequestId returns a context carrying a new request id.
//
// Requests sent with the context have the id as "X-Request-Id" header.
func WithRequestId(ctx context.Context) (context.Context, string) {
	id := uuid.NewString()
	return context.WithValue(ctx, requestIdKey{}, id), id
}

func RequestIdOf(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIdKey{}).(string)
	return id, ok
}

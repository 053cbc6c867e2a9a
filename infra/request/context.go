package request

import (
	"context"

	"github.com/gofrs/uuid"
)

type contextKey int

const (
	ctxRequestID contextKey = 1
)

// GetRequestID returns a per request id if one was set
func GetRequestID(ctx context.Context) uuid.UUID {
	val := ctx.Value(ctxRequestID)
	id, ok := val.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}

// SetRequestID saves a request id into the context so logging and outgoing
// requests can correlate a single SDK call end to end.
func SetRequestID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxRequestID, id)
}

// NewRequestID generates a fresh request id and stores it in the context,
// unless one was already set by the caller.
func NewRequestID(ctx context.Context) context.Context {
	if GetRequestID(ctx) != uuid.Nil {
		return ctx
	}
	return SetRequestID(ctx, uuid.Must(uuid.NewV4()))
}

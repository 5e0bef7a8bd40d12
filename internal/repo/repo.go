package repo

import (
	"context"
	"errors"
	"time"
)

const defaultTimeout = 5 * time.Second

var (
	ErrNotFound   = errors.New("document not found")
	ErrEmailTaken = errors.New("email already registered")
)

// ensureTimeout bounds store operations that arrive without a deadline.
func ensureTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, hadDeadline := ctx.Deadline(); hadDeadline {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, timeout)
}

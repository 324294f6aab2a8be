package gateway

import "context"

// Listener receives the session-invalidated signal emitted after a failed refresh.
type Listener interface {
	SessionInvalidated(ctx context.Context, cause error)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(ctx context.Context, cause error)

func (f ListenerFunc) SessionInvalidated(ctx context.Context, cause error) {
	f(ctx, cause)
}

type nopListener struct{}

func (nopListener) SessionInvalidated(context.Context, error) {}

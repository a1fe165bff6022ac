package outcome

import (
	"context"
	"io"
)

// ContextCloser is the asynchronous disposal capability: a payload that
// releases its resource with context awareness.
type ContextCloser interface {
	CloseContext(ctx context.Context) error
}

// Release closes v when it implements io.Closer; anything else is a no-op.
// Disposal is a capability query, not a requirement on payload types.
func Release(v any) error {
	if c, ok := v.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// ReleaseContext prefers the context-aware close and falls back to the
// synchronous one. Exactly one release call is made per invocation.
func ReleaseContext(ctx context.Context, v any) error {
	if c, ok := v.(ContextCloser); ok {
		return c.CloseContext(ctx)
	}
	return Release(v)
}

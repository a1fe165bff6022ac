package maybe

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Dispose releases the success payload when it implements io.Closer. None,
// Fail and non-disposable payloads are no-ops.
func (m Maybe[T]) Dispose() error {
	if m.state != outcome.StateSuccess {
		return nil
	}
	return outcome.Release(m.value)
}

// DisposeContext releases the success payload, preferring the context-aware
// close and falling back to the synchronous one.
func (m Maybe[T]) DisposeContext(ctx context.Context) error {
	if m.state != outcome.StateSuccess {
		return nil
	}
	return outcome.ReleaseContext(ctx, m.value)
}

package typed

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Dispose releases the success payload when it implements io.Closer. Fail
// results and non-disposable payloads are no-ops. The caller picks exactly
// one release path per instance; double disposal is governed by the
// payload's own close contract.
func (r Result[T]) Dispose() error {
	if r.state != outcome.StateSuccess {
		return nil
	}
	return outcome.Release(r.value)
}

// DisposeContext releases the success payload, preferring the context-aware
// close and falling back to the synchronous one.
func (r Result[T]) DisposeContext(ctx context.Context) error {
	if r.state != outcome.StateSuccess {
		return nil
	}
	return outcome.ReleaseContext(ctx, r.value)
}

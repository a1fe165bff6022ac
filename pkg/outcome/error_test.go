package outcome

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var errCmp = cmp.Comparer(func(a, b Error) bool { return a.Equal(b) })

func TestNewError_EmptyMessageGetsDefault(t *testing.T) {
	t.Parallel()
	e := NewError("")
	if e.Message() != DefaultErrorMessage {
		t.Fatalf("expected default message, got %q", e.Message())
	}
}

func TestDefaultError_StableContent(t *testing.T) {
	t.Parallel()
	e := DefaultError()
	if e.Message() != DefaultErrorMessage || e.Code() != DefaultErrorCode {
		t.Fatalf("unexpected default error content: %q / %q", e.Message(), e.Code())
	}
	if diff := cmp.Diff(DefaultError(), e, errCmp); diff != "" {
		t.Fatalf("default error not stable:\n%s", diff)
	}
}

func TestWithMessage_KeepsCodeAndCause(t *testing.T) {
	t.Parallel()
	cause := NewError("root")
	e := WrapError("outer", cause).WithCode("E42").WithTrace("at somewhere")

	derived := e.WithMessage("replaced")
	if derived.Message() != "replaced" {
		t.Fatalf("expected replaced message, got %q", derived.Message())
	}
	if derived.Code() != "E42" || derived.Trace() != "at somewhere" {
		t.Fatalf("derivation lost code or trace: %q / %q", derived.Code(), derived.Trace())
	}
	got, ok := derived.Cause()
	if !ok {
		t.Fatal("derivation lost the cause")
	}
	if diff := cmp.Diff(cause, got, errCmp); diff != "" {
		t.Fatalf("cause changed:\n%s", diff)
	}

	// the original is untouched
	if e.Message() != "outer" {
		t.Fatalf("original mutated: %q", e.Message())
	}
}

func TestError_MessageOnlyRendering(t *testing.T) {
	t.Parallel()
	e := WrapError("outer", NewError("inner")).WithTrace("diagnostic")
	if e.Error() != "outer" {
		t.Fatalf("Error() must render the message only, got %q", e.Error())
	}
}

func TestChain_OutermostFirst(t *testing.T) {
	t.Parallel()
	e := WrapError("a", WrapError("b", NewError("c")))
	chain := e.Chain()
	if len(chain) != 3 {
		t.Fatalf("expected chain of 3, got %d", len(chain))
	}
	for i, want := range []string{"a", "b", "c"} {
		if chain[i].Message() != want {
			t.Fatalf("chain[%d] = %q, want %q", i, chain[i].Message(), want)
		}
	}
}

func TestUnwrap_StdlibTraversal(t *testing.T) {
	t.Parallel()
	root := CodedError("root", "E1")
	e := WrapError("outer", root)

	if !errors.Is(error(e), error(root)) {
		t.Fatal("errors.Is must find the cause through Unwrap")
	}
	if errors.Unwrap(error(root)) != nil {
		t.Fatal("leaf error must unwrap to nil")
	}
}

func TestEqual_ByValueIncludingChain(t *testing.T) {
	t.Parallel()
	a := WrapError("m", CodedError("c", "E1"))
	b := WrapError("m", CodedError("c", "E1"))
	if !a.Equal(b) {
		t.Fatal("structurally identical errors must be equal")
	}

	c := WrapError("m", CodedError("c", "E2"))
	if a.Equal(c) {
		t.Fatal("errors with different cause codes must not be equal")
	}
}

func TestFromError_NilGivesDefault(t *testing.T) {
	t.Parallel()
	if diff := cmp.Diff(DefaultError(), FromError(nil), errCmp); diff != "" {
		t.Fatalf("nil must adapt to the default error:\n%s", diff)
	}
}

func TestFromError_PassesErrorThrough(t *testing.T) {
	t.Parallel()
	e := CodedError("boom", "E9")
	if diff := cmp.Diff(e, FromError(e), errCmp); diff != "" {
		t.Fatalf("Error values must pass through unchanged:\n%s", diff)
	}
}

func TestFromError_WrappedBecomesCauseChain(t *testing.T) {
	t.Parallel()
	root := errors.New("root")
	wrapped := fmt.Errorf("outer: %w", root)

	e := FromError(wrapped)
	cause, ok := e.Cause()
	if !ok {
		t.Fatal("wrapped error must adapt to a cause chain")
	}
	if cause.Message() != "root" {
		t.Fatalf("unexpected cause message %q", cause.Message())
	}
}

func TestOrDefault(t *testing.T) {
	t.Parallel()
	if diff := cmp.Diff(DefaultError(), OrDefault(nil), errCmp); diff != "" {
		t.Fatalf("nil must dereference to the default error:\n%s", diff)
	}
	e := NewError("x")
	if diff := cmp.Diff(e, OrDefault(&e), errCmp); diff != "" {
		t.Fatalf("non-nil must dereference to itself:\n%s", diff)
	}
}

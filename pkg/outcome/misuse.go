package outcome

import "errors"

// Misuse is a programmer error, not a modeled outcome: it panics at the
// violating call and must never be converted into a Fail result.

// ErrNilTransform is the panic value raised when a combinator receives a nil
// transform or required handler. The check runs before any state branch.
var ErrNilTransform = errors.New("outcome: nil transform")

// AccessError is the panic value raised when a typed accessor is invoked on
// a result whose state does not carry the requested payload.
type AccessError struct {
	Op    string
	State State
}

func (e *AccessError) Error() string {
	return "outcome: " + e.Op + " called on " + e.State.String() + " result"
}

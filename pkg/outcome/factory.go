package outcome

// FailFactory is the abstract creation capability shared by every result
// family: it produces the family's Fail variant, substituting DefaultError
// when the caller supplies none. Each family embeds it in its own Factory
// interface and keeps the implementation unexported, so the contract can
// only be satisfied from inside the library, once per family.
//
// Factories hold no state and are safe to share across concurrent callers.
type FailFactory[R any] interface {
	// Fail returns a Fail result; a nil err is replaced by DefaultError.
	Fail(err *Error) R
}

package outcome

// State discriminates the variants of a result value. StateEmpty is the zero
// value of an uninitialized result struct; it sits outside the closed variant
// set and every typed accessor rejects it like any other mismatch.
type State uint8

const (
	StateEmpty State = iota
	StateSuccess
	StateNone
	StateFail
)

func (s State) String() string {
	switch s {
	case StateSuccess:
		return "success"
	case StateNone:
		return "none"
	case StateFail:
		return "fail"
	default:
		return "empty"
	}
}

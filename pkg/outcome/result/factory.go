package result

import "github.com/ib-77/outcome/pkg/outcome"

// Factory standardizes construction of Result values so call sites do not
// duplicate the default-error logic. It is stateless and safe to share.
type Factory interface {
	outcome.FailFactory[Result]
	// Success returns the canonical Success result.
	Success() Result
}

type factory struct{}

// NewFactory returns the Result factory. The implementation is unexported;
// this constructor is the only way to obtain one.
func NewFactory() Factory {
	return factory{}
}

func (factory) Success() Result {
	return Success()
}

func (factory) Fail(err *outcome.Error) Result {
	return Fail(err)
}

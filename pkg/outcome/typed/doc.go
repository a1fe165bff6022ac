// Package typed provides the value-carrying result family: Success with a
// payload of type T or Fail with an outcome.Error.
//
// - Success/Fail: create values (Fail substitutes the default Error for nil)
// - Value/Err/State: inspect; mismatched accessors panic with *AccessError
// - WithError: transform the failure description, passthrough otherwise
// - Map/Bind/Try/Validate: compose transformations with Fail passthrough
// - Ensure: trigger side effects without changing the result
// - Match: reduce to a concrete value via handlers
// - Dispose/DisposeContext: conditionally release a disposable payload
// - NewFactory: the family's creation factory
package typed

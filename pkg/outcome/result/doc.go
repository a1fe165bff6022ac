// Package result provides the payload-free result family: Success or Fail.
//
// - Success/Fail: create values (Fail substitutes the default Error for nil)
// - State/IsSuccess/IsFail/Err: inspect the current variant
// - WithError: transform the failure description, passthrough otherwise
// - Match: reduce to a concrete value via handlers
// - NewFactory: the family's creation factory
package result

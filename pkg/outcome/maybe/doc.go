// Package maybe provides the three-state result family: Success with a
// payload, None for deliberate absence, or Fail with an outcome.Error.
//
// None is distinct from Fail: it represents "no value, and that is fine".
// Reading the error of a None panics, the same misuse as reading the value
// of a Fail.
//
// The combinator set mirrors package typed with None propagation: Map, Bind
// and Try forward None untouched; Ensure and Match gain a None handler.
package maybe

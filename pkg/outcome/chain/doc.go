// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of typed.Result[T] values.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map/WithError: transform the value or the failure description
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via handlers
//
// A failed step short-circuits everything after it. The context is for the
// caller's own steps (repository calls and the like); the chain performs no
// scheduling of its own.
package chain

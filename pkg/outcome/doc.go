// Package outcome holds the leaf types shared by every result family:
//
// - Error: immutable failure description (message, code, cause chain, trace)
// - State: the discriminator of the closed variant set
// - AccessError / ErrNilTransform: fail-fast misuse panics
// - FailFactory: the abstract creation contract specialized per family
// - Release / ReleaseContext: conditional capability-based disposal
//
// The families themselves live in the result, typed and maybe subpackages;
// fluent composition lives in chain.
package outcome

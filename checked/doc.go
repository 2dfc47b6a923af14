// Package checked provides the error-returning counterparts of the values in
// package pure.
//
// A checked computation returns (R, error). It converts to a pure one in
// one of three explicitly named ways:
//
//   - Nest panics with a *NestedError carrying the failure, or with the
//     failure itself when it is unchecked (see IsUnchecked).
//   - Recover asks a handler for a fallback computation and applies it to
//     the same arguments.
//   - Lift turns every call into a Result value and never panics.
//
// CatchN goes the other way, turning the panics of a pure computation back
// into errors.
package checked

// Package pure provides typed functional values: functions, predicates and
// consumers of arity 0 to 3, the combinators that build new values from
// them, and memoization.
//
// A value of this package is assumed to be pure: not just deterministic,
// but referentially transparent. Memoized and the Tableize family rely on
// that and will happily cache the result of an impure function.
//
// Combinators check their inputs when a value is built. A nil function or a
// zero-value computation panics there with an error wrapping ErrNilFunction,
// never later when the result is applied.
//
//	sum := pure.F2(func(a, b int) int { return a + b }).Memoized()
//	inc := sum.Partial(1)
//	twice := pure.AndThen1(inc, func(n int) int { return n * 2 })
//	twice.Apply(3) // 8
//
// Combinators that keep slot types are methods. Those that change them
// (ComposeN, AndThenN, ConsumeN, UntupledN, UnboxedN) are functions, since
// Go methods cannot introduce type parameters.
//
// WARNING: Do not memoize impure functions (e.g., those depending on time,
// I/O, etc).
package pure

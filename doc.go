// Package mathops provides small stateless numeric operations:
//
//   - Integer addition and multiplication (native wraparound on overflow)
//   - Floating‑point division with a fixed 0.0 fallback on a zero denominator
//   - An explicit‑error division variant for callers that need to tell a
//     computed zero apart from the fallback
//   - An optional instrumented Calculator with Prometheus metrics and
//     lightweight structured debug logging
//
// Design goals:
//   - Small surface area – the package functions are plain pure functions
//   - Safe unsynchronized concurrent use; no operation touches shared state
//   - Observability is opt‑in via functional options, never imposed
//
// Typical usage:
//
//	sum := mathops.Add(5, 3)
//	q := mathops.DivideSafe(10.0, 2.0)
//
// Or, with instrumentation:
//
//	calc := mathops.New(
//	    mathops.WithMetrics(),
//	    mathops.WithSimpleLogger(),
//	)
//	q := calc.DivideSafe(5.0, 0.0) // records a fallback substitution, returns 0.0
//
// DivideSafe never fails: a zero denominator yields DivideFallback. Use
// Divide when the division-by-zero condition must be visible to the caller.
package mathops

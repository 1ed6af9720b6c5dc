// Package isqrt computes integer square roots over any raw.Backing.
//
// Every entry point is total. A negative input is reported as a
// NEGATIVE_SQRT_INPUT *arith.Error, never as a trap; this deliberately
// differs from the trapping division operators.
//
// The root is found with Heron's iteration n' = (n + x/n) / 2 from n = x,
// stopping at the first step that does not decrease. The sum n + x/n is
// never formed directly, so the iteration cannot overflow even at MAX.
package isqrt

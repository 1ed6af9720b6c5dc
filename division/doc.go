// Package division implements integer division and remainder under six
// rounding policies over any raw.Backing.
//
// For every policy the quotient q and remainder r satisfy
//
//	dividend == divisor*q + r
//
// and differ only in how q is rounded:
//
//	Trunc     toward zero; r has the sign of the dividend
//	Euclid    r is always in [0, |divisor|)
//	Floor     toward -inf; r has the sign of the divisor
//	Ceil      toward +inf; r has the opposite sign of the divisor
//	HalfAway  to nearest, ties away from zero
//	HalfEven  exact or even truncated quotients kept, odd ones bumped toward a/b
//
// Each entry point comes in a trapping form (DivRem, Quo, Rem) and a checked
// form (CheckedDivRem, CheckedQuo, CheckedRem). Exactly two inputs fail: a
// zero divisor and MIN / -1, the one quotient two's complement cannot
// represent. The trapping form traps with the same *arith.Error the checked
// form returns.
//
// No intermediate step overflows: every adjustment is arranged so that both
// operands of each primitive operation, and its result, lie in range.
package division

// Package rational builds exact fractions on top of boundint.
//
// A Rational[T] pairs an Any-domain numerator with a NonZero-domain
// denominator of the same backing T and is always kept in lowest terms
// with a positive denominator, so equal values have equal representations.
//
// Arithmetic uses the boundint operators and therefore traps on overflow
// at T's width; intermediate products are formed before reduction. Use a
// wider backing, or raw.Big, when operands approach the width's limits.
package rational

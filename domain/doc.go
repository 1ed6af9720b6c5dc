// Package domain defines the six sign/zero domains and their validator.
//
// A Kind fixes which raw values are legal:
//
//	Any          every value
//	NonZero      value != 0
//	Positive     value > 0
//	NonNegative  value >= 0
//	Negative     value < 0
//	NonPositive  value <= 0
//
// Membership depends only on the sign of a value, so the validator takes a
// sign (-1, 0, +1) rather than a raw value. Widths never change membership.
//
// This package has no dependencies and performs no I/O.
package domain

package boundint

import (
	"github.com/roach88/boundint/arith"
	"github.com/roach88/boundint/raw"
)

// Widen re-expresses x in the wider backing To. Widening never changes the
// value; naming a narrower To is a programming error and traps with
// WIDTH_MISMATCH.
//
//	w := boundint.Widen[raw.I64](x) // x is PositiveI8
func Widen[To raw.Backing[To], D Domain, From raw.Backing[From]](x Int[D, From]) Int[D, To] {
	var zero To
	if !zero.Width().Covers(x.v.Width()) {
		arith.Trapf(arith.CodeWidthMismatch, "widen", "%s bits cannot hold every %s-bit value", zero.Width(), x.v.Width())
	}
	v, ok := raw.Convert[To](x.v)
	if !ok {
		arith.Trapf(arith.CodeWidthMismatch, "widen", "cannot widen %s", x.v)
	}
	return Int[D, To]{v: v}
}

// Narrow re-expresses x in backing To, failing with OVERFLOW or UNDERFLOW
// when the value does not fit. Narrowing to an equal or wider backing
// always succeeds.
func Narrow[To raw.Backing[To], D Domain, From raw.Backing[From]](x Int[D, From]) (Int[D, To], error) {
	v, ok := raw.Convert[To](x.v)
	if !ok {
		var zero To
		code := arith.CodeOverflow
		if x.v.Sign() < 0 {
			code = arith.CodeUnderflow
		}
		return Int[D, To]{}, arith.New(code, "narrow", "%s does not fit in %s bits", x.v, zero.Width())
	}
	return Int[D, To]{v: v}, nil
}

// Convert moves x into domain To at the same width, failing with
// INVARIANT_VIOLATION when x is not a member of To.
//
//	p, err := boundint.Convert[boundint.Positive](anyValue)
func Convert[To, From Domain, T raw.Backing[T]](x Int[From, T]) (Int[To, T], error) {
	return TryNew[To](x.v)
}

// MustConvert is the trapping form of Convert, for conversions known to be
// valid, such as Positive to NonNegative.
func MustConvert[To, From Domain, T raw.Backing[T]](x Int[From, T]) Int[To, T] {
	return validated[To]("convert", x.v)
}

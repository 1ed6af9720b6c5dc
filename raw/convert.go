package raw

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/roach88/boundint/arith"
)

// Convert re-expresses v in the To backing. ok is false when v is not
// representable at To's width; widening conversions always succeed.
func Convert[To Backing[To], From Backing[From]](v From) (To, bool) {
	if t, ok := any(v).(To); ok {
		return t, true
	}
	var zero To
	if n, ok := v.Int64(); ok {
		return zero.FromInt64(n)
	}
	return zero.FromBig(v.Big())
}

// Of converts an int64 constant, trapping if it does not fit.
// Intended for literals whose range is known statically.
func Of[T Backing[T]](n int64) T {
	var zero T
	v, ok := zero.FromInt64(n)
	if !ok {
		arith.Trapf(rangeCode(int64Sign(n)), "raw.of", "%d does not fit in %s bits", n, zero.Width())
	}
	return v
}

// Zero returns 0 in backing T.
func Zero[T Backing[T]]() T {
	return Of[T](0)
}

// One returns 1 in backing T.
func One[T Backing[T]]() T {
	return Of[T](1)
}

// Parse reads a decimal literal (optionally signed, "_" separators allowed)
// into backing T. Out-of-range literals fail with an Overflow or Underflow
// *arith.Error; malformed literals fail with a plain error.
func Parse[T Backing[T]](s string) (T, error) {
	var zero T
	n, ok := new(big.Int).SetString(strings.ReplaceAll(strings.TrimSpace(s), "_", ""), 10)
	if !ok {
		return zero, fmt.Errorf("invalid integer literal %q", s)
	}
	v, ok := zero.FromBig(n)
	if !ok {
		return zero, arith.New(rangeCode(n.Sign()), "parse", "%s does not fit in %s bits", n, zero.Width())
	}
	return v, nil
}

// Abs returns |v|, with ok == false for MIN.
func Abs[T Backing[T]](v T) (T, bool) {
	if v.Sign() < 0 {
		return v.Neg()
	}
	return v, true
}

func rangeCode(sign int) arith.ErrorCode {
	if sign < 0 {
		return arith.CodeUnderflow
	}
	return arith.CodeOverflow
}

func int64Sign(n int64) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

package boundint

import (
	"github.com/roach88/boundint/isqrt"
	"github.com/roach88/boundint/raw"
)

// The square root of a member of any domain, when it exists, is a member of
// the same domain: roots are non-negative, a non-zero root comes from a
// non-zero input, and the only non-positive input with a root is 0.
// Negative inputs yield NEGATIVE_SQRT_INPUT; none of these functions trap.

// SqrtFloor returns the largest r with r*r <= x.
func SqrtFloor[D Domain, T raw.Backing[T]](x Int[D, T]) (Int[D, T], error) {
	v, err := isqrt.Floor(x.v)
	return wrapRoot[D]("sqrt_floor", v, err)
}

// SqrtCeil returns the smallest r with r*r >= x.
func SqrtCeil[D Domain, T raw.Backing[T]](x Int[D, T]) (Int[D, T], error) {
	v, err := isqrt.Ceil(x.v)
	return wrapRoot[D]("sqrt_ceil", v, err)
}

// SqrtRound returns the integer nearest to the square root of x.
func SqrtRound[D Domain, T raw.Backing[T]](x Int[D, T]) (Int[D, T], error) {
	v, err := isqrt.Round(x.v)
	return wrapRoot[D]("sqrt_round", v, err)
}

// SqrtFloorExact returns SqrtFloor(x) and whether x is a perfect square.
func SqrtFloorExact[D Domain, T raw.Backing[T]](x Int[D, T]) (Int[D, T], bool, error) {
	v, exact, err := isqrt.FloorExact(x.v)
	root, err := wrapRoot[D]("sqrt_floor", v, err)
	return root, exact, err
}

// SqrtCeilExact returns SqrtCeil(x) and whether x is a perfect square.
func SqrtCeilExact[D Domain, T raw.Backing[T]](x Int[D, T]) (Int[D, T], bool, error) {
	v, exact, err := isqrt.CeilExact(x.v)
	root, err := wrapRoot[D]("sqrt_ceil", v, err)
	return root, exact, err
}

// IsSquare reports whether x is a perfect square.
func IsSquare[D Domain, T raw.Backing[T]](x Int[D, T]) (bool, error) {
	return isqrt.IsSquare(x.v)
}

func wrapRoot[D Domain, T raw.Backing[T]](op string, v T, err error) (Int[D, T], error) {
	if err != nil {
		return Int[D, T]{}, err
	}
	if err := check[D](op, v); err != nil {
		return Int[D, T]{}, err
	}
	return Int[D, T]{v: v}, nil
}

package isqrt

import (
	"github.com/roach88/boundint/arith"
	"github.com/roach88/boundint/raw"
)

// Floor returns the largest r with r*r <= x.
func Floor[T raw.Backing[T]](x T) (T, error) {
	if x.Sign() < 0 {
		return x, negative("sqrt_floor", x)
	}
	return heron(x), nil
}

// FloorExact returns Floor(x) and whether x is a perfect square.
func FloorExact[T raw.Backing[T]](x T) (root T, exact bool, err error) {
	if x.Sign() < 0 {
		return x, false, negative("sqrt_floor", x)
	}
	root = heron(x)
	return root, isExact(root, x), nil
}

// Ceil returns the smallest r with r*r >= x.
func Ceil[T raw.Backing[T]](x T) (T, error) {
	root, _, err := CeilExact(x)
	return root, err
}

// CeilExact returns Ceil(x) and whether x is a perfect square.
func CeilExact[T raw.Backing[T]](x T) (root T, exact bool, err error) {
	if x.Sign() < 0 {
		return x, false, negative("sqrt_ceil", x)
	}
	root = heron(x)
	if isExact(root, x) {
		return root, true, nil
	}
	return succ(root), false, nil
}

// Round returns the integer nearest to the real square root of x.
//
// With f = Floor(x), (f+1)^2 - x < x - f^2 reduces to x - f^2 > f, which
// avoids forming (f+1)^2 when it would not fit the width.
func Round[T raw.Backing[T]](x T) (T, error) {
	if x.Sign() < 0 {
		return x, negative("sqrt_round", x)
	}
	f := heron(x)
	d := mustOK(x.Sub(square(f)))
	if d.Cmp(f) > 0 {
		return succ(f), nil
	}
	return f, nil
}

// IsSquare reports whether x is a perfect square.
func IsSquare[T raw.Backing[T]](x T) (bool, error) {
	_, exact, err := FloorExact(x)
	return exact, err
}

// heron is the floor square root of a non-negative x.
func heron[T raw.Backing[T]](x T) T {
	one := raw.One[T]()
	if x.Cmp(one) <= 0 {
		return x
	}
	two := raw.Of[T](2)
	n := x
	for {
		next := halfSum(n, x.Quo(n), two)
		if next.Cmp(n) >= 0 {
			return n
		}
		n = next
	}
}

// halfSum is floor((a+b)/2) for non-negative a and b, computed as
// a/2 + b/2 + (a%2 + b%2)/2.
func halfSum[T raw.Backing[T]](a, b, two T) T {
	s := mustOK(a.Quo(two).Add(b.Quo(two)))
	carry := mustOK(a.Rem(two).Add(b.Rem(two))).Quo(two)
	return mustOK(s.Add(carry))
}

func isExact[T raw.Backing[T]](root, x T) bool {
	return square(root).Cmp(x) == 0
}

// square never overflows: root is a floor square root of an in-range value.
func square[T raw.Backing[T]](root T) T {
	return mustOK(root.Mul(root))
}

func succ[T raw.Backing[T]](v T) T {
	return mustOK(v.Add(raw.One[T]()))
}

func mustOK[T any](v T, ok bool) T {
	if !ok {
		arith.Trapf(arith.CodeOverflow, "isqrt", "intermediate result out of range")
	}
	return v
}

func negative[T raw.Backing[T]](op string, x T) error {
	return arith.New(arith.CodeNegativeSqrt, op, "square root of %s", x)
}

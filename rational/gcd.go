package rational

import (
	"github.com/roach88/boundint/arith"
	"github.com/roach88/boundint/division"
	"github.com/roach88/boundint/raw"
)

// GCD returns the non-negative greatest common divisor of a and b, with
// GCD(0, 0) == 0. It fails with OVERFLOW only when the result is |MIN|.
func GCD[T raw.Backing[T]](a, b T) (T, error) {
	for b.Sign() != 0 {
		if isUnit(b) {
			return raw.One[T](), nil
		}
		r, err := division.CheckedRem(division.Trunc, a, b)
		if err != nil {
			return a, err
		}
		a, b = b, r
	}
	g, ok := raw.Abs(a)
	if !ok {
		return a, arith.New(arith.CodeOverflow, "gcd", "|%s| is not representable", a)
	}
	return g, nil
}

// isUnit reports whether v is 1 or -1. Stopping there also keeps
// MIN rem -1 out of the loop.
func isUnit[T raw.Backing[T]](v T) bool {
	if v.Sign() > 0 {
		return v.Cmp(raw.One[T]()) == 0
	}
	return v.Cmp(raw.Of[T](-1)) == 0
}

// reduce divides n and d by their GCD and moves the sign to n. d must be
// non-zero.
func reduce[T raw.Backing[T]](n, d T) (T, T, error) {
	g, err := GCD(n, d)
	if err != nil {
		return n, d, err
	}
	if n, err = division.CheckedQuo(division.Trunc, n, g); err != nil {
		return n, d, err
	}
	if d, err = division.CheckedQuo(division.Trunc, d, g); err != nil {
		return n, d, err
	}
	if d.Sign() > 0 {
		return n, d, nil
	}

	nn, ok := n.Neg()
	if !ok {
		return n, d, arith.New(arith.CodeOverflow, "rational", "-(%s) is not representable", n)
	}
	nd, ok := d.Neg()
	if !ok {
		return n, d, arith.New(arith.CodeOverflow, "rational", "-(%s) is not representable", d)
	}
	return nn, nd, nil
}

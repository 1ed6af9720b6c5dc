package division

import "github.com/roach88/boundint/raw"

func trunc[T raw.Backing[T]](a, b T) (T, T) {
	return a.Quo(b), a.Rem(b)
}

// euclid moves a negative truncated remainder into [0, |b|).
func euclid[T raw.Backing[T]](a, b T) (T, T) {
	q, r := trunc(a, b)
	if r.Sign() >= 0 {
		return q, r
	}
	one := raw.One[T]()
	if b.Sign() > 0 {
		return must(q.Sub(one)), must(r.Add(b))
	}
	return must(q.Add(one)), must(r.Sub(b))
}

// floor shifts the dividend one step toward zero when the signs disagree,
// so the truncated quotient of the shifted dividend is exactly one above
// the floored quotient. Exact and inexact cases take the same path.
func floor[T raw.Backing[T]](a, b T) (T, T) {
	one := raw.One[T]()
	switch {
	case a.Sign() > 0 && b.Sign() < 0:
		a1 := must(a.Sub(one))
		q := must(a1.Quo(b).Sub(one))
		r := must(must(a1.Rem(b).Add(b)).Add(one))
		return q, r
	case a.Sign() < 0 && b.Sign() > 0:
		a1 := must(a.Add(one))
		q := must(a1.Quo(b).Sub(one))
		r := must(must(a1.Rem(b).Add(b)).Sub(one))
		return q, r
	}
	return trunc(a, b)
}

// ceil mirrors floor with the sign condition reversed.
func ceil[T raw.Backing[T]](a, b T) (T, T) {
	one := raw.One[T]()
	switch {
	case a.Sign() > 0 && b.Sign() > 0:
		a1 := must(a.Sub(one))
		q := must(a1.Quo(b).Add(one))
		r := must(must(a1.Rem(b).Add(one)).Sub(b))
		return q, r
	case a.Sign() < 0 && b.Sign() < 0:
		a1 := must(a.Add(one))
		q := must(a1.Quo(b).Add(one))
		r := must(must(a1.Rem(b).Sub(one)).Sub(b))
		return q, r
	}
	return trunc(a, b)
}

// roundHalf compares 2*|r| against |b| without forming either product:
// with nr = -|r| and nb = -|b| (both representable), 2*|r| >= |b| holds
// iff nr <= nb - nr. The result is -1, 0 or +1 as 2*|r| is below, equal
// to or above |b|.
func roundHalf[T raw.Backing[T]](r, b T) int {
	nr := negAbs(r)
	half := must(negAbs(b).Sub(nr))
	return -nr.Cmp(half)
}

// bump moves q one step away from zero in the direction of a/b and
// rebalances r.
func bump[T raw.Backing[T]](a, b, q, r T) (T, T) {
	one := raw.One[T]()
	if a.Sign() == b.Sign() {
		return must(q.Add(one)), must(r.Sub(b))
	}
	return must(q.Sub(one)), must(r.Add(b))
}

func halfAway[T raw.Backing[T]](a, b T) (T, T) {
	q, r := trunc(a, b)
	if r.Sign() != 0 && roundHalf(r, b) >= 0 {
		return bump(a, b, q, r)
	}
	return q, r
}

// halfEven keeps an exact or even truncated quotient and bumps an odd one
// toward a/b, so every inexact quotient is even. The remainder is not
// compared with |b|: 7/5 gives 2 and 13/5 gives 2.
func halfEven[T raw.Backing[T]](a, b T) (T, T) {
	q, r := trunc(a, b)
	if r.Sign() != 0 && isOdd(q) {
		return bump(a, b, q, r)
	}
	return q, r
}

func isOdd[T raw.Backing[T]](v T) bool {
	return v.Rem(raw.Of[T](2)).Sign() != 0
}

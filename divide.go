package boundint

import (
	"github.com/roach88/boundint/division"
	"github.com/roach88/boundint/raw"
)

// The named division entry points take a dividend and divisor of the same
// domain and width and return quotient and remainder in the Any domain, so
// that the only failures are DIVISION_BY_ZERO and DIVISION_OVERFLOW
// (MIN / -1). Trapping forms trap on exactly the inputs for which the
// Checked forms return an error.

// CheckedDivRemBy divides under an explicit policy.
func CheckedDivRemBy[D Domain, T raw.Backing[T]](p division.Policy, a, b Int[D, T]) (q, r Int[Any, T], err error) {
	qv, rv, err := division.CheckedDivRem(p, a.v, b.v)
	if err != nil {
		return q, r, err
	}
	return Int[Any, T]{v: qv}, Int[Any, T]{v: rv}, nil
}

// DivRemBy is the trapping form of CheckedDivRemBy.
func DivRemBy[D Domain, T raw.Backing[T]](p division.Policy, a, b Int[D, T]) (q, r Int[Any, T]) {
	qv, rv := division.DivRem(p, a.v, b.v)
	return Int[Any, T]{v: qv}, Int[Any, T]{v: rv}
}

// DivTrunc returns a / b truncated toward zero.
func DivTrunc[D Domain, T raw.Backing[T]](a, b Int[D, T]) Int[Any, T] {
	return Int[Any, T]{v: division.Quo(division.Trunc, a.v, b.v)}
}

// CheckedDivTrunc is the checked form of DivTrunc.
func CheckedDivTrunc[D Domain, T raw.Backing[T]](a, b Int[D, T]) (Int[Any, T], error) {
	q, _, err := CheckedDivRemBy(division.Trunc, a, b)
	return q, err
}

// RemTrunc returns the remainder matching DivTrunc.
func RemTrunc[D Domain, T raw.Backing[T]](a, b Int[D, T]) Int[Any, T] {
	return Int[Any, T]{v: division.Rem(division.Trunc, a.v, b.v)}
}

// CheckedRemTrunc is the checked form of RemTrunc.
func CheckedRemTrunc[D Domain, T raw.Backing[T]](a, b Int[D, T]) (Int[Any, T], error) {
	_, r, err := CheckedDivRemBy(division.Trunc, a, b)
	return r, err
}

// DivRemTrunc returns both results of one division.
func DivRemTrunc[D Domain, T raw.Backing[T]](a, b Int[D, T]) (q, r Int[Any, T]) {
	return DivRemBy(division.Trunc, a, b)
}

// CheckedDivRemTrunc is the checked form of DivRemTrunc.
func CheckedDivRemTrunc[D Domain, T raw.Backing[T]](a, b Int[D, T]) (q, r Int[Any, T], err error) {
	return CheckedDivRemBy(division.Trunc, a, b)
}

// DivEuclid returns a / b Euclidean: the remainder is always in [0, |b|).
func DivEuclid[D Domain, T raw.Backing[T]](a, b Int[D, T]) Int[Any, T] {
	return Int[Any, T]{v: division.Quo(division.Euclid, a.v, b.v)}
}

// CheckedDivEuclid is the checked form of DivEuclid.
func CheckedDivEuclid[D Domain, T raw.Backing[T]](a, b Int[D, T]) (Int[Any, T], error) {
	q, _, err := CheckedDivRemBy(division.Euclid, a, b)
	return q, err
}

// RemEuclid returns the remainder matching DivEuclid.
func RemEuclid[D Domain, T raw.Backing[T]](a, b Int[D, T]) Int[Any, T] {
	return Int[Any, T]{v: division.Rem(division.Euclid, a.v, b.v)}
}

// CheckedRemEuclid is the checked form of RemEuclid.
func CheckedRemEuclid[D Domain, T raw.Backing[T]](a, b Int[D, T]) (Int[Any, T], error) {
	_, r, err := CheckedDivRemBy(division.Euclid, a, b)
	return r, err
}

// DivRemEuclid returns both results of one division.
func DivRemEuclid[D Domain, T raw.Backing[T]](a, b Int[D, T]) (q, r Int[Any, T]) {
	return DivRemBy(division.Euclid, a, b)
}

// CheckedDivRemEuclid is the checked form of DivRemEuclid.
func CheckedDivRemEuclid[D Domain, T raw.Backing[T]](a, b Int[D, T]) (q, r Int[Any, T], err error) {
	return CheckedDivRemBy(division.Euclid, a, b)
}

// DivFloor returns a / b rounded toward negative infinity.
func DivFloor[D Domain, T raw.Backing[T]](a, b Int[D, T]) Int[Any, T] {
	return Int[Any, T]{v: division.Quo(division.Floor, a.v, b.v)}
}

// CheckedDivFloor is the checked form of DivFloor.
func CheckedDivFloor[D Domain, T raw.Backing[T]](a, b Int[D, T]) (Int[Any, T], error) {
	q, _, err := CheckedDivRemBy(division.Floor, a, b)
	return q, err
}

// RemFloor returns the remainder matching DivFloor.
func RemFloor[D Domain, T raw.Backing[T]](a, b Int[D, T]) Int[Any, T] {
	return Int[Any, T]{v: division.Rem(division.Floor, a.v, b.v)}
}

// CheckedRemFloor is the checked form of RemFloor.
func CheckedRemFloor[D Domain, T raw.Backing[T]](a, b Int[D, T]) (Int[Any, T], error) {
	_, r, err := CheckedDivRemBy(division.Floor, a, b)
	return r, err
}

// DivRemFloor returns both results of one division.
func DivRemFloor[D Domain, T raw.Backing[T]](a, b Int[D, T]) (q, r Int[Any, T]) {
	return DivRemBy(division.Floor, a, b)
}

// CheckedDivRemFloor is the checked form of DivRemFloor.
func CheckedDivRemFloor[D Domain, T raw.Backing[T]](a, b Int[D, T]) (q, r Int[Any, T], err error) {
	return CheckedDivRemBy(division.Floor, a, b)
}

// DivCeil returns a / b rounded toward positive infinity.
func DivCeil[D Domain, T raw.Backing[T]](a, b Int[D, T]) Int[Any, T] {
	return Int[Any, T]{v: division.Quo(division.Ceil, a.v, b.v)}
}

// CheckedDivCeil is the checked form of DivCeil.
func CheckedDivCeil[D Domain, T raw.Backing[T]](a, b Int[D, T]) (Int[Any, T], error) {
	q, _, err := CheckedDivRemBy(division.Ceil, a, b)
	return q, err
}

// RemCeil returns the remainder matching DivCeil.
func RemCeil[D Domain, T raw.Backing[T]](a, b Int[D, T]) Int[Any, T] {
	return Int[Any, T]{v: division.Rem(division.Ceil, a.v, b.v)}
}

// CheckedRemCeil is the checked form of RemCeil.
func CheckedRemCeil[D Domain, T raw.Backing[T]](a, b Int[D, T]) (Int[Any, T], error) {
	_, r, err := CheckedDivRemBy(division.Ceil, a, b)
	return r, err
}

// DivRemCeil returns both results of one division.
func DivRemCeil[D Domain, T raw.Backing[T]](a, b Int[D, T]) (q, r Int[Any, T]) {
	return DivRemBy(division.Ceil, a, b)
}

// CheckedDivRemCeil is the checked form of DivRemCeil.
func CheckedDivRemCeil[D Domain, T raw.Backing[T]](a, b Int[D, T]) (q, r Int[Any, T], err error) {
	return CheckedDivRemBy(division.Ceil, a, b)
}

// DivHalfAway returns a / b rounded to nearest, ties away from zero.
func DivHalfAway[D Domain, T raw.Backing[T]](a, b Int[D, T]) Int[Any, T] {
	return Int[Any, T]{v: division.Quo(division.HalfAway, a.v, b.v)}
}

// CheckedDivHalfAway is the checked form of DivHalfAway.
func CheckedDivHalfAway[D Domain, T raw.Backing[T]](a, b Int[D, T]) (Int[Any, T], error) {
	q, _, err := CheckedDivRemBy(division.HalfAway, a, b)
	return q, err
}

// RemHalfAway returns the remainder matching DivHalfAway.
func RemHalfAway[D Domain, T raw.Backing[T]](a, b Int[D, T]) Int[Any, T] {
	return Int[Any, T]{v: division.Rem(division.HalfAway, a.v, b.v)}
}

// CheckedRemHalfAway is the checked form of RemHalfAway.
func CheckedRemHalfAway[D Domain, T raw.Backing[T]](a, b Int[D, T]) (Int[Any, T], error) {
	_, r, err := CheckedDivRemBy(division.HalfAway, a, b)
	return r, err
}

// DivRemHalfAway returns both results of one division.
func DivRemHalfAway[D Domain, T raw.Backing[T]](a, b Int[D, T]) (q, r Int[Any, T]) {
	return DivRemBy(division.HalfAway, a, b)
}

// CheckedDivRemHalfAway is the checked form of DivRemHalfAway.
func CheckedDivRemHalfAway[D Domain, T raw.Backing[T]](a, b Int[D, T]) (q, r Int[Any, T], err error) {
	return CheckedDivRemBy(division.HalfAway, a, b)
}

// DivHalfEven returns the truncated quotient of a / b, moved one step toward
// a/b when the division is inexact and that quotient is odd: 7/5 is 2.
func DivHalfEven[D Domain, T raw.Backing[T]](a, b Int[D, T]) Int[Any, T] {
	return Int[Any, T]{v: division.Quo(division.HalfEven, a.v, b.v)}
}

// CheckedDivHalfEven is the checked form of DivHalfEven.
func CheckedDivHalfEven[D Domain, T raw.Backing[T]](a, b Int[D, T]) (Int[Any, T], error) {
	q, _, err := CheckedDivRemBy(division.HalfEven, a, b)
	return q, err
}

// RemHalfEven returns the remainder matching DivHalfEven.
func RemHalfEven[D Domain, T raw.Backing[T]](a, b Int[D, T]) Int[Any, T] {
	return Int[Any, T]{v: division.Rem(division.HalfEven, a.v, b.v)}
}

// CheckedRemHalfEven is the checked form of RemHalfEven.
func CheckedRemHalfEven[D Domain, T raw.Backing[T]](a, b Int[D, T]) (Int[Any, T], error) {
	_, r, err := CheckedDivRemBy(division.HalfEven, a, b)
	return r, err
}

// DivRemHalfEven returns both results of one division.
func DivRemHalfEven[D Domain, T raw.Backing[T]](a, b Int[D, T]) (q, r Int[Any, T]) {
	return DivRemBy(division.HalfEven, a, b)
}

// CheckedDivRemHalfEven is the checked form of DivRemHalfEven.
func CheckedDivRemHalfEven[D Domain, T raw.Backing[T]](a, b Int[D, T]) (q, r Int[Any, T], err error) {
	return CheckedDivRemBy(division.HalfEven, a, b)
}

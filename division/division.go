package division

import (
	"github.com/roach88/boundint/arith"
	"github.com/roach88/boundint/raw"
)

// CheckedDivRem returns the quotient and remainder of a / b under p.
// err is DIVISION_BY_ZERO when b == 0 and DIVISION_OVERFLOW when a is MIN
// and b is -1; no other input fails.
func CheckedDivRem[T raw.Backing[T]](p Policy, a, b T) (q, r T, err error) {
	op := "div_" + p.String()
	if e := Check(op, a, b); e != nil {
		return q, r, e
	}

	switch p {
	case Trunc:
		q, r = trunc(a, b)
	case Euclid:
		q, r = euclid(a, b)
	case Floor:
		q, r = floor(a, b)
	case Ceil:
		q, r = ceil(a, b)
	case HalfAway:
		q, r = halfAway(a, b)
	case HalfEven:
		q, r = halfEven(a, b)
	default:
		arith.Trapf(arith.CodeInvariantViolation, op, "unknown policy %d", uint8(p))
	}
	return q, r, nil
}

// DivRem is the trapping form of CheckedDivRem.
func DivRem[T raw.Backing[T]](p Policy, a, b T) (q, r T) {
	q, r, err := CheckedDivRem(p, a, b)
	if err != nil {
		arith.Trap(err.(*arith.Error))
	}
	return q, r
}

// CheckedQuo returns only the quotient of CheckedDivRem.
func CheckedQuo[T raw.Backing[T]](p Policy, a, b T) (T, error) {
	q, _, err := CheckedDivRem(p, a, b)
	return q, err
}

// CheckedRem returns only the remainder of CheckedDivRem.
func CheckedRem[T raw.Backing[T]](p Policy, a, b T) (T, error) {
	_, r, err := CheckedDivRem(p, a, b)
	return r, err
}

// Quo is the trapping form of CheckedQuo.
func Quo[T raw.Backing[T]](p Policy, a, b T) T {
	q, _ := DivRem(p, a, b)
	return q
}

// Rem is the trapping form of CheckedRem.
func Rem[T raw.Backing[T]](p Policy, a, b T) T {
	_, r := DivRem(p, a, b)
	return r
}

// Check reports the failure a division of a by b would hit, or nil.
func Check[T raw.Backing[T]](op string, a, b T) error {
	if b.Sign() == 0 {
		return arith.New(arith.CodeDivisionByZero, op, "%s / 0", a)
	}
	if a.IsMin() && isNegOne(b) {
		return arith.New(arith.CodeDivisionOverflow, op, "%s / -1 is not representable", a)
	}
	return nil
}

func isNegOne[T raw.Backing[T]](v T) bool {
	return v.Sign() < 0 && v.Cmp(raw.Of[T](-1)) == 0
}

// must unwraps a primitive result whose range was established by the caller.
func must[T any](v T, ok bool) T {
	if !ok {
		arith.Trapf(arith.CodeOverflow, "division", "intermediate result out of range")
	}
	return v
}

// negAbs returns -|v|, which is representable for every v including MIN.
func negAbs[T raw.Backing[T]](v T) T {
	if v.Sign() > 0 {
		return must(v.Neg())
	}
	return v
}

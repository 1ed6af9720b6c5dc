package boundint

import (
	"github.com/roach88/boundint/arith"
	"github.com/roach88/boundint/division"
	"github.com/roach88/boundint/raw"
)

type opKind uint8

const (
	opAdd opKind = iota
	opSub
	opMul
	opQuo
	opRem
)

var opNames = [...]string{
	opAdd: "add",
	opSub: "sub",
	opMul: "mul",
	opQuo: "div",
	opRem: "rem",
}

// Add returns a + b in a's domain and width. b may have any domain and any
// width up to a's; it is widened before the addition.
//
// Values of every domain are stored signed, so adding a Negative or
// NonPositive operand is the same primitive addition as any other.
func Add[D1, D2 Domain, T1 raw.Backing[T1], T2 raw.Backing[T2]](a Int[D1, T1], b Int[D2, T2]) Int[D1, T1] {
	return apply(opAdd, a, operand[T1](opAdd, b.v))
}

// Sub returns a - b in a's domain and width.
func Sub[D1, D2 Domain, T1 raw.Backing[T1], T2 raw.Backing[T2]](a Int[D1, T1], b Int[D2, T2]) Int[D1, T1] {
	return apply(opSub, a, operand[T1](opSub, b.v))
}

// Mul returns a * b in a's domain and width.
func Mul[D1, D2 Domain, T1 raw.Backing[T1], T2 raw.Backing[T2]](a Int[D1, T1], b Int[D2, T2]) Int[D1, T1] {
	return apply(opMul, a, operand[T1](opMul, b.v))
}

// Quo returns a / b truncated toward zero, in a's domain and width.
// Use the Div* family for other rounding policies.
func Quo[D1, D2 Domain, T1 raw.Backing[T1], T2 raw.Backing[T2]](a Int[D1, T1], b Int[D2, T2]) Int[D1, T1] {
	return apply(opQuo, a, operand[T1](opQuo, b.v))
}

// Rem returns the truncated remainder of a / b, in a's domain and width.
func Rem[D1, D2 Domain, T1 raw.Backing[T1], T2 raw.Backing[T2]](a Int[D1, T1], b Int[D2, T2]) Int[D1, T1] {
	return apply(opRem, a, operand[T1](opRem, b.v))
}

// AddPrim adds a bare backing value of width up to a's.
func AddPrim[D Domain, T raw.Backing[T], P raw.Backing[P]](a Int[D, T], b P) Int[D, T] {
	return apply(opAdd, a, operand[T](opAdd, b))
}

// SubPrim subtracts a bare backing value of width up to a's.
func SubPrim[D Domain, T raw.Backing[T], P raw.Backing[P]](a Int[D, T], b P) Int[D, T] {
	return apply(opSub, a, operand[T](opSub, b))
}

// MulPrim multiplies by a bare backing value of width up to a's.
func MulPrim[D Domain, T raw.Backing[T], P raw.Backing[P]](a Int[D, T], b P) Int[D, T] {
	return apply(opMul, a, operand[T](opMul, b))
}

// QuoPrim divides by a bare backing value of width up to a's.
func QuoPrim[D Domain, T raw.Backing[T], P raw.Backing[P]](a Int[D, T], b P) Int[D, T] {
	return apply(opQuo, a, operand[T](opQuo, b))
}

// RemPrim takes the truncated remainder by a bare backing value.
func RemPrim[D Domain, T raw.Backing[T], P raw.Backing[P]](a Int[D, T], b P) Int[D, T] {
	return apply(opRem, a, operand[T](opRem, b))
}

// Same-domain, same-width shorthands.

func (x Int[D, T]) Add(y Int[D, T]) Int[D, T] { return apply(opAdd, x, y.v) }
func (x Int[D, T]) Sub(y Int[D, T]) Int[D, T] { return apply(opSub, x, y.v) }
func (x Int[D, T]) Mul(y Int[D, T]) Int[D, T] { return apply(opMul, x, y.v) }
func (x Int[D, T]) Quo(y Int[D, T]) Int[D, T] { return apply(opQuo, x, y.v) }
func (x Int[D, T]) Rem(y Int[D, T]) Int[D, T] { return apply(opRem, x, y.v) }

// Neg returns -x in x's domain. It traps with OVERFLOW for MIN and with
// INVARIANT_VIOLATION whenever -x leaves the domain, e.g. for any non-zero
// Positive value.
func (x Int[D, T]) Neg() Int[D, T] {
	v, ok := x.v.Neg()
	if !ok {
		arith.Trapf(arith.CodeOverflow, "neg", "-(%s) is not representable", x.v)
	}
	if k := kindOf[D](); !k.Accepts(v.Sign()) {
		arith.Trapf(arith.CodeInvariantViolation, "neg", "-(%s) is %s, not %s", x.v, k.Negated(), k)
	}
	return Int[D, T]{v: v}
}

// operand widens a right operand to the left operand's backing. A right
// operand wider than the left is a programming error and traps.
func operand[T1 raw.Backing[T1], T2 raw.Backing[T2]](op opKind, v T2) T1 {
	var zero T1
	if !zero.Width().Covers(v.Width()) {
		arith.Trapf(arith.CodeWidthMismatch, opNames[op],
			"right operand width %s exceeds result width %s", v.Width(), zero.Width())
	}
	w, ok := raw.Convert[T1](v)
	if !ok {
		arith.Trapf(arith.CodeWidthMismatch, opNames[op], "cannot widen %s", v)
	}
	return w
}

// apply runs the primitive operation and re-validates against D.
func apply[D Domain, T raw.Backing[T]](op opKind, a Int[D, T], b T) Int[D, T] {
	name := opNames[op]
	var (
		r  T
		ok bool
	)

	switch op {
	case opAdd:
		r, ok = a.v.Add(b)
		if !ok {
			rangeTrap(name, b.Sign(), a.v, b)
		}
	case opSub:
		r, ok = a.v.Sub(b)
		if !ok {
			rangeTrap(name, -b.Sign(), a.v, b)
		}
	case opMul:
		r, ok = a.v.Mul(b)
		if !ok {
			rangeTrap(name, a.v.Sign()*b.Sign(), a.v, b)
		}
	case opQuo, opRem:
		if err := division.Check(name, a.v, b); err != nil {
			arith.Trap(err.(*arith.Error))
		}
		if op == opQuo {
			r = a.v.Quo(b)
		} else {
			r = a.v.Rem(b)
		}
	}
	return validated[D](name, r)
}

// rangeTrap reports an out-of-range result. direction is the sign of the
// true (unwrapped) result.
func rangeTrap[T raw.Backing[T]](op string, direction int, a, b T) {
	if direction < 0 {
		arith.Trapf(arith.CodeUnderflow, op, "result below minimum (%s, %s)", a, b)
	}
	arith.Trapf(arith.CodeOverflow, op, "result above maximum (%s, %s)", a, b)
}

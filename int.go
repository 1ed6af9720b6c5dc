package boundint

import (
	"github.com/roach88/boundint/arith"
	"github.com/roach88/boundint/domain"
	"github.com/roach88/boundint/raw"
)

// Int is a value of backing T that is a member of domain D.
//
// The zero value is 0, which is only a valid member for domains that admit
// zero; always obtain values through New, TryNew, Parse or arithmetic.
type Int[D Domain, T raw.Backing[T]] struct {
	v T
}

// New returns v as a member of D, trapping with INVARIANT_VIOLATION if it
// is not one.
func New[D Domain, T raw.Backing[T]](v T) Int[D, T] {
	return validated[D]("new", v)
}

// TryNew returns v as a member of D, or an INVARIANT_VIOLATION error.
func TryNew[D Domain, T raw.Backing[T]](v T) (Int[D, T], error) {
	if err := check[D]("try_new", v); err != nil {
		return Int[D, T]{}, err
	}
	return Int[D, T]{v: v}, nil
}

// Parse reads a decimal literal into a member of D.
func Parse[D Domain, T raw.Backing[T]](s string) (Int[D, T], error) {
	v, err := raw.Parse[T](s)
	if err != nil {
		return Int[D, T]{}, err
	}
	return TryNew[D](v)
}

// Min returns the least member of D at T's width. ok is false when there is
// none (the negative end of an unbounded backing).
func Min[D Domain, T raw.Backing[T]]() (Int[D, T], bool) {
	switch kindOf[D]() {
	case domain.Positive:
		return Int[D, T]{v: raw.One[T]()}, true
	case domain.NonNegative:
		return Int[D, T]{v: raw.Zero[T]()}, true
	}
	var zero T
	lo, _, ok := zero.Bounds()
	return Int[D, T]{v: lo}, ok
}

// Max returns the greatest member of D at T's width. ok is false when there
// is none (the positive end of an unbounded backing).
func Max[D Domain, T raw.Backing[T]]() (Int[D, T], bool) {
	switch kindOf[D]() {
	case domain.Negative:
		return Int[D, T]{v: raw.Of[T](-1)}, true
	case domain.NonPositive:
		return Int[D, T]{v: raw.Zero[T]()}, true
	}
	var zero T
	_, hi, ok := zero.Bounds()
	return Int[D, T]{v: hi}, ok
}

// Get returns the raw value.
func (x Int[D, T]) Get() T { return x.v }

// Kind returns the domain of x.
func (x Int[D, T]) Kind() domain.Kind { return kindOf[D]() }

// Width returns the bit-width of x.
func (x Int[D, T]) Width() raw.Width { return x.v.Width() }

func (x Int[D, T]) String() string { return x.v.String() }

// CanZero, CanOne and CanNegOne are fixed per domain.
func (x Int[D, T]) CanZero() bool   { return kindOf[D]().CanZero() }
func (x Int[D, T]) CanOne() bool    { return kindOf[D]().CanOne() }
func (x Int[D, T]) CanNegOne() bool { return kindOf[D]().CanNegOne() }

func (x Int[D, T]) IsZero() bool   { return x.v.Sign() == 0 }
func (x Int[D, T]) IsOne() bool    { return x.v.Cmp(raw.One[T]()) == 0 }
func (x Int[D, T]) IsNegOne() bool { return x.v.Sign() < 0 && x.v.Cmp(raw.Of[T](-1)) == 0 }

// Sign returns -1, 0 or +1.
func (x Int[D, T]) Sign() int { return x.v.Sign() }

// Cmp orders values of the same domain and width.
func (x Int[D, T]) Cmp(y Int[D, T]) int    { return x.v.Cmp(y.v) }
func (x Int[D, T]) Equal(y Int[D, T]) bool { return x.v.Cmp(y.v) == 0 }
func (x Int[D, T]) Less(y Int[D, T]) bool  { return x.v.Cmp(y.v) < 0 }

// Relax returns x in the Any domain. It never fails.
func (x Int[D, T]) Relax() Int[Any, T] { return Int[Any, T]{v: x.v} }

// Abs returns |x| in the Any domain, trapping with OVERFLOW for MIN.
func (x Int[D, T]) Abs() Int[Any, T] {
	v, ok := raw.Abs(x.v)
	if !ok {
		arith.Trapf(arith.CodeOverflow, "abs", "|%s| is not representable", x.v)
	}
	return Int[Any, T]{v: v}
}

// Signum returns -1, 0 or +1 in the Any domain at x's width.
func (x Int[D, T]) Signum() Int[Any, T] {
	return Int[Any, T]{v: raw.Of[T](int64(x.v.Sign()))}
}

// check is the domain validator applied at every construction boundary.
func check[D Domain, T raw.Backing[T]](op string, v T) error {
	k := kindOf[D]()
	if !k.Accepts(v.Sign()) {
		return arith.New(arith.CodeInvariantViolation, op, "%s is not %s", v, k)
	}
	return nil
}

func validated[D Domain, T raw.Backing[T]](op string, v T) Int[D, T] {
	if err := check[D](op, v); err != nil {
		arith.Trap(err.(*arith.Error))
	}
	return Int[D, T]{v: v}
}

package rational

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/roach88/boundint"
	"github.com/roach88/boundint/arith"
	"github.com/roach88/boundint/division"
	"github.com/roach88/boundint/raw"
)

// Rational is num/den in lowest terms with den > 0.
//
// The zero value has a zero denominator and is not a valid Rational; use
// New, Of, FromInt or Parse.
type Rational[T raw.Backing[T]] struct {
	num boundint.Int[boundint.Any, T]
	den boundint.Int[boundint.NonZero, T]
}

// TryNew returns num/den reduced to lowest terms.
func TryNew[T raw.Backing[T]](num boundint.Int[boundint.Any, T], den boundint.Int[boundint.NonZero, T]) (Rational[T], error) {
	n, d, err := reduce(num.Get(), den.Get())
	if err != nil {
		return Rational[T]{}, err
	}
	return Rational[T]{
		num: boundint.New[boundint.Any](n),
		den: boundint.New[boundint.NonZero](d),
	}, nil
}

// New is the trapping form of TryNew.
func New[T raw.Backing[T]](num boundint.Int[boundint.Any, T], den boundint.Int[boundint.NonZero, T]) Rational[T] {
	return arith.Must(TryNew(num, den))
}

// Of returns n/d from raw values. A zero d fails with DIVISION_BY_ZERO.
func Of[T raw.Backing[T]](n, d T) (Rational[T], error) {
	den, err := boundint.TryNew[boundint.NonZero](d)
	if err != nil {
		return Rational[T]{}, arith.New(arith.CodeDivisionByZero, "rational", "%s/0", n)
	}
	return TryNew(boundint.New[boundint.Any](n), den)
}

// FromInt returns x/1.
func FromInt[T raw.Backing[T]](x boundint.Int[boundint.Any, T]) Rational[T] {
	return Rational[T]{num: x, den: boundint.New[boundint.NonZero](raw.One[T]())}
}

// Parse reads "n" or "n/d".
func Parse[T raw.Backing[T]](s string) (Rational[T], error) {
	ns, ds, frac := strings.Cut(strings.TrimSpace(s), "/")
	n, err := raw.Parse[T](ns)
	if err != nil {
		return Rational[T]{}, fmt.Errorf("numerator: %w", err)
	}
	if !frac {
		return FromInt(boundint.New[boundint.Any](n)), nil
	}
	d, err := raw.Parse[T](ds)
	if err != nil {
		return Rational[T]{}, fmt.Errorf("denominator: %w", err)
	}
	return Of(n, d)
}

func (x Rational[T]) Num() boundint.Int[boundint.Any, T]     { return x.num }
func (x Rational[T]) Den() boundint.Int[boundint.NonZero, T] { return x.den }

func (x Rational[T]) Sign() int       { return x.num.Sign() }
func (x Rational[T]) IsZero() bool    { return x.num.IsZero() }
func (x Rational[T]) IsInteger() bool { return x.den.IsOne() }

// String returns "n" for integers and "n/d" otherwise.
func (x Rational[T]) String() string {
	if x.IsInteger() {
		return x.num.String()
	}
	return x.num.String() + "/" + x.den.String()
}

// Add returns x + y.
func (x Rational[T]) Add(y Rational[T]) Rational[T] {
	n := boundint.Add(boundint.Mul(x.num, y.den), boundint.Mul(y.num, x.den))
	return New(n, boundint.Mul(x.den, y.den))
}

// Sub returns x - y.
func (x Rational[T]) Sub(y Rational[T]) Rational[T] {
	n := boundint.Sub(boundint.Mul(x.num, y.den), boundint.Mul(y.num, x.den))
	return New(n, boundint.Mul(x.den, y.den))
}

// Mul returns x * y.
func (x Rational[T]) Mul(y Rational[T]) Rational[T] {
	return New(boundint.Mul(x.num, y.num), boundint.Mul(x.den, y.den))
}

// Quo returns x / y, trapping with DIVISION_BY_ZERO when y is zero.
func (x Rational[T]) Quo(y Rational[T]) Rational[T] {
	return x.Mul(y.Inv())
}

// Inv returns 1/x, trapping with DIVISION_BY_ZERO when x is zero.
func (x Rational[T]) Inv() Rational[T] {
	if x.IsZero() {
		arith.Trapf(arith.CodeDivisionByZero, "rational_inv", "1/0")
	}
	return New(x.den.Relax(), boundint.MustConvert[boundint.NonZero](x.num))
}

// Neg returns -x, trapping with OVERFLOW when the numerator is MIN.
func (x Rational[T]) Neg() Rational[T] {
	return Rational[T]{num: x.num.Neg(), den: x.den}
}

// Abs returns |x|.
func (x Rational[T]) Abs() Rational[T] {
	if x.Sign() < 0 {
		return x.Neg()
	}
	return x
}

// Cmp compares x and y exactly; it never overflows.
func (x Rational[T]) Cmp(y Rational[T]) int {
	l := new(big.Int).Mul(x.num.Get().Big(), y.den.Get().Big())
	r := new(big.Int).Mul(y.num.Get().Big(), x.den.Get().Big())
	return l.Cmp(r)
}

func (x Rational[T]) Equal(y Rational[T]) bool { return x.Cmp(y) == 0 }
func (x Rational[T]) Less(y Rational[T]) bool  { return x.Cmp(y) < 0 }

// Int rounds x to an integer under policy p. The denominator is positive,
// so this never fails.
func (x Rational[T]) Int(p division.Policy) boundint.Int[boundint.Any, T] {
	q, _ := boundint.DivRemBy(p, x.num, x.den.Relax())
	return q
}

func (x Rational[T]) Trunc() boundint.Int[boundint.Any, T] { return x.Int(division.Trunc) }
func (x Rational[T]) Floor() boundint.Int[boundint.Any, T] { return x.Int(division.Floor) }
func (x Rational[T]) Ceil() boundint.Int[boundint.Any, T]  { return x.Int(division.Ceil) }

// Round divides with the HalfEven policy: an inexact odd truncation is bumped
// toward x, so 7/5 rounds to 2.
func (x Rational[T]) Round() boundint.Int[boundint.Any, T] { return x.Int(division.HalfEven) }

package eval

import (
	"fmt"

	"github.com/roach88/boundint"
	"github.com/roach88/boundint/arith"
	"github.com/roach88/boundint/domain"
	"github.com/roach88/boundint/raw"
)

func widen[D boundint.Domain, T raw.Backing[T]](x boundint.Int[D, T], w raw.Width) (Outcome, error) {
	switch w {
	case raw.W8:
		return result(boundint.Widen[raw.I8](x)), nil
	case raw.W16:
		return result(boundint.Widen[raw.I16](x)), nil
	case raw.W32:
		return result(boundint.Widen[raw.I32](x)), nil
	case raw.W64:
		return result(boundint.Widen[raw.I64](x)), nil
	case raw.W128:
		return result(boundint.Widen[raw.I128](x)), nil
	case raw.Unbounded:
		return result(boundint.Widen[raw.Big](x)), nil
	}
	return Outcome{}, fmt.Errorf("widen: unsupported width %s", w)
}

func narrow[D boundint.Domain, T raw.Backing[T]](x boundint.Int[D, T], w raw.Width) (Outcome, error) {
	switch w {
	case raw.W8:
		return narrowTo[raw.I8](x)
	case raw.W16:
		return narrowTo[raw.I16](x)
	case raw.W32:
		return narrowTo[raw.I32](x)
	case raw.W64:
		return narrowTo[raw.I64](x)
	case raw.W128:
		return narrowTo[raw.I128](x)
	case raw.Unbounded:
		return narrowTo[raw.Big](x)
	}
	return Outcome{}, fmt.Errorf("narrow: unsupported width %s", w)
}

func narrowTo[To raw.Backing[To], D boundint.Domain, T raw.Backing[T]](x boundint.Int[D, T]) (Outcome, error) {
	n, err := boundint.Narrow[To](x)
	if err != nil {
		return fail(err)
	}
	return result(n), nil
}

func convert[D boundint.Domain, T raw.Backing[T]](x boundint.Int[D, T], k domain.Kind) (Outcome, error) {
	switch k {
	case domain.Any:
		return convertTo[boundint.Any](x)
	case domain.NonZero:
		return convertTo[boundint.NonZero](x)
	case domain.Positive:
		return convertTo[boundint.Positive](x)
	case domain.NonNegative:
		return convertTo[boundint.NonNegative](x)
	case domain.Negative:
		return convertTo[boundint.Negative](x)
	case domain.NonPositive:
		return convertTo[boundint.NonPositive](x)
	}
	return Outcome{}, fmt.Errorf("convert: unsupported domain %s", k)
}

func convertTo[To, D boundint.Domain, T raw.Backing[T]](x boundint.Int[D, T]) (Outcome, error) {
	c, err := boundint.Convert[To](x)
	if err != nil {
		return fail(err)
	}
	return result(c), nil
}

// divide relaxes both operands to Any, which is where the policy entry
// points put their results. The operands must share a width.
func divide[D boundint.Domain, T raw.Backing[T]](x boundint.Int[D, T], req Request) (Outcome, error) {
	op := "div_" + req.Policy.String()
	if req.Right.Width != x.Width() {
		return Outcome{Err: arith.New(arith.CodeWidthMismatch, op,
			"divisor width %s differs from dividend width %s", req.Right.Width, x.Width())}, nil
	}
	y, err := relaxed[T](*req.Right)
	if err != nil {
		return fail(err)
	}
	q, r, err := boundint.CheckedDivRemBy(req.Policy, x.Relax(), y)
	if err != nil {
		return fail(err)
	}
	out := result(q)
	out.Remainder = r.String()
	return out, nil
}

func relaxed[T raw.Backing[T]](o Operand) (boundint.Int[boundint.Any, T], error) {
	switch o.Domain {
	case domain.Any:
		return parseRelaxed[boundint.Any, T](o.Value)
	case domain.NonZero:
		return parseRelaxed[boundint.NonZero, T](o.Value)
	case domain.Positive:
		return parseRelaxed[boundint.Positive, T](o.Value)
	case domain.NonNegative:
		return parseRelaxed[boundint.NonNegative, T](o.Value)
	case domain.Negative:
		return parseRelaxed[boundint.Negative, T](o.Value)
	case domain.NonPositive:
		return parseRelaxed[boundint.NonPositive, T](o.Value)
	}
	return boundint.Int[boundint.Any, T]{}, fmt.Errorf("unsupported domain %s", o.Domain)
}

func parseRelaxed[D boundint.Domain, T raw.Backing[T]](s string) (boundint.Int[boundint.Any, T], error) {
	v, err := boundint.Parse[D, T](s)
	if err != nil {
		return boundint.Int[boundint.Any, T]{}, err
	}
	return v.Relax(), nil
}

func byRightWidth[D boundint.Domain, T raw.Backing[T]](x boundint.Int[D, T], req Request) (Outcome, error) {
	switch req.Right.Width {
	case raw.W8:
		return byRightDomain[D, T, raw.I8](x, req)
	case raw.W16:
		return byRightDomain[D, T, raw.I16](x, req)
	case raw.W32:
		return byRightDomain[D, T, raw.I32](x, req)
	case raw.W64:
		return byRightDomain[D, T, raw.I64](x, req)
	case raw.W128:
		return byRightDomain[D, T, raw.I128](x, req)
	case raw.Unbounded:
		return byRightDomain[D, T, raw.Big](x, req)
	}
	return Outcome{}, fmt.Errorf("unsupported width %s", req.Right.Width)
}

func byRightDomain[D boundint.Domain, T raw.Backing[T], T2 raw.Backing[T2]](x boundint.Int[D, T], req Request) (Outcome, error) {
	switch req.Right.Domain {
	case domain.Any:
		return binary[D, boundint.Any, T, T2](x, req)
	case domain.NonZero:
		return binary[D, boundint.NonZero, T, T2](x, req)
	case domain.Positive:
		return binary[D, boundint.Positive, T, T2](x, req)
	case domain.NonNegative:
		return binary[D, boundint.NonNegative, T, T2](x, req)
	case domain.Negative:
		return binary[D, boundint.Negative, T, T2](x, req)
	case domain.NonPositive:
		return binary[D, boundint.NonPositive, T, T2](x, req)
	}
	return Outcome{}, fmt.Errorf("unsupported domain %s", req.Right.Domain)
}

func binary[D1, D2 boundint.Domain, T1 raw.Backing[T1], T2 raw.Backing[T2]](x boundint.Int[D1, T1], req Request) (Outcome, error) {
	y, err := boundint.Parse[D2, T2](req.Right.Value)
	if err != nil {
		return fail(err)
	}
	switch req.Op {
	case OpAdd:
		return result(boundint.Add(x, y)), nil
	case OpSub:
		return result(boundint.Sub(x, y)), nil
	case OpMul:
		return result(boundint.Mul(x, y)), nil
	case OpQuo:
		return result(boundint.Quo(x, y)), nil
	case OpRem:
		return result(boundint.Rem(x, y)), nil
	}
	return Outcome{}, fmt.Errorf("%s is not a binary operation", req.Op)
}

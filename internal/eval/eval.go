package eval

import (
	"errors"
	"fmt"

	"github.com/roach88/boundint"
	"github.com/roach88/boundint/arith"
	"github.com/roach88/boundint/division"
	"github.com/roach88/boundint/domain"
	"github.com/roach88/boundint/raw"
)

// Operand is a decimal literal claimed to be a member of Domain at Width.
type Operand struct {
	Domain domain.Kind
	Width  raw.Width
	Value  string
}

func (o Operand) String() string {
	return fmt.Sprintf("%s_%s(%s)", o.Domain, o.Width, o.Value)
}

// Request describes one operation.
type Request struct {
	Op     Op
	Left   Operand
	Right  *Operand        // binary operations only
	Policy division.Policy // OpDiv
	Domain domain.Kind     // OpConvert target
	Width  raw.Width       // OpWiden and OpNarrow target
}

// Outcome is the result of a request: either a value or an arithmetic
// error.
type Outcome struct {
	Value     string
	Remainder string // OpDiv only
	Exact     *bool  // square root operations only
	Domain    domain.Kind
	Width     raw.Width
	Err       *arith.Error
}

// OK reports whether the operation produced a value.
func (o Outcome) OK() bool { return o.Err == nil }

// Eval runs req.
func Eval(req Request) (Outcome, error) {
	if err := req.validate(); err != nil {
		return Outcome{}, err
	}

	var (
		out Outcome
		err error
	)
	if trap := arith.Catch(func() { out, err = byWidth(req) }); trap != nil {
		return fail(trap)
	}
	return out, err
}

func (r Request) validate() error {
	if !r.Left.Domain.Valid() {
		return fmt.Errorf("%s: invalid left domain %s", r.Op, r.Left.Domain)
	}
	if r.Op.Binary() {
		if r.Right == nil {
			return fmt.Errorf("%s: right operand is required", r.Op)
		}
		if !r.Right.Domain.Valid() {
			return fmt.Errorf("%s: invalid right domain %s", r.Op, r.Right.Domain)
		}
	} else if r.Right != nil {
		return fmt.Errorf("%s: takes no right operand", r.Op)
	}
	if r.Op == OpConvert && !r.Domain.Valid() {
		return fmt.Errorf("convert: invalid target domain %s", r.Domain)
	}
	return nil
}

// fail folds an arithmetic error into an Outcome and passes anything else
// through as a request error.
func fail(err error) (Outcome, error) {
	var e *arith.Error
	if errors.As(err, &e) {
		return Outcome{Err: e}, nil
	}
	return Outcome{}, err
}

func result[D boundint.Domain, T raw.Backing[T]](x boundint.Int[D, T]) Outcome {
	return Outcome{Value: x.String(), Domain: x.Kind(), Width: x.Width()}
}

func byWidth(req Request) (Outcome, error) {
	switch req.Left.Width {
	case raw.W8:
		return byDomain[raw.I8](req)
	case raw.W16:
		return byDomain[raw.I16](req)
	case raw.W32:
		return byDomain[raw.I32](req)
	case raw.W64:
		return byDomain[raw.I64](req)
	case raw.W128:
		return byDomain[raw.I128](req)
	case raw.Unbounded:
		return byDomain[raw.Big](req)
	}
	return Outcome{}, fmt.Errorf("unsupported width %s", req.Left.Width)
}

func byDomain[T raw.Backing[T]](req Request) (Outcome, error) {
	switch req.Left.Domain {
	case domain.Any:
		return run[boundint.Any, T](req)
	case domain.NonZero:
		return run[boundint.NonZero, T](req)
	case domain.Positive:
		return run[boundint.Positive, T](req)
	case domain.NonNegative:
		return run[boundint.NonNegative, T](req)
	case domain.Negative:
		return run[boundint.Negative, T](req)
	case domain.NonPositive:
		return run[boundint.NonPositive, T](req)
	}
	return Outcome{}, fmt.Errorf("unsupported domain %s", req.Left.Domain)
}

func run[D boundint.Domain, T raw.Backing[T]](req Request) (Outcome, error) {
	x, err := boundint.Parse[D, T](req.Left.Value)
	if err != nil {
		return fail(err)
	}

	switch req.Op {
	case OpNew:
		return result(x), nil
	case OpNeg:
		return result(x.Neg()), nil
	case OpAbs:
		return result(x.Abs()), nil
	case OpSqrtFloor:
		r, exact, err := boundint.SqrtFloorExact(x)
		return root(r, exact, err)
	case OpSqrtCeil:
		r, exact, err := boundint.SqrtCeilExact(x)
		return root(r, exact, err)
	case OpSqrtRound:
		r, err := boundint.SqrtRound(x)
		if err != nil {
			return fail(err)
		}
		return result(r), nil
	case OpIsSquare:
		sq, err := boundint.IsSquare(x)
		if err != nil {
			return fail(err)
		}
		return Outcome{Exact: &sq, Domain: x.Kind(), Width: x.Width()}, nil
	case OpWiden:
		return widen(x, req.Width)
	case OpNarrow:
		return narrow(x, req.Width)
	case OpConvert:
		return convert(x, req.Domain)
	case OpDiv:
		return divide(x, req)
	case OpAdd, OpSub, OpMul, OpQuo, OpRem:
		return byRightWidth(x, req)
	}
	return Outcome{}, fmt.Errorf("unsupported operation %q", req.Op)
}

func root[D boundint.Domain, T raw.Backing[T]](r boundint.Int[D, T], exact bool, err error) (Outcome, error) {
	if err != nil {
		return fail(err)
	}
	out := result(r)
	out.Exact = &exact
	return out, nil
}

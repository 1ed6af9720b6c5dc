// Package eval runs boundint operations whose domains and widths are only
// known at run time, as in scenario files and CLI arguments.
//
// Each request is resolved to one instantiation of the generic core by
// switching on width and then domain, first for the left operand and then
// for the right. Arithmetic failures, whether returned or trapped, are
// reported in the Outcome; only malformed requests produce an error.
package eval

import (
	"fmt"
	"strings"
)

// Op names an operation.
type Op string

const (
	OpNew       Op = "new"
	OpAdd       Op = "add"
	OpSub       Op = "sub"
	OpMul       Op = "mul"
	OpQuo       Op = "quo"
	OpRem       Op = "rem"
	OpNeg       Op = "neg"
	OpAbs       Op = "abs"
	OpDiv       Op = "div"
	OpSqrtFloor Op = "sqrt_floor"
	OpSqrtCeil  Op = "sqrt_ceil"
	OpSqrtRound Op = "sqrt_round"
	OpIsSquare  Op = "is_square"
	OpWiden     Op = "widen"
	OpNarrow    Op = "narrow"
	OpConvert   Op = "convert"
)

// Ops lists every operation.
var Ops = []Op{
	OpNew, OpAdd, OpSub, OpMul, OpQuo, OpRem, OpNeg, OpAbs, OpDiv,
	OpSqrtFloor, OpSqrtCeil, OpSqrtRound, OpIsSquare,
	OpWiden, OpNarrow, OpConvert,
}

// ParseOp parses an operation name; "-" and "_" are interchangeable.
func ParseOp(s string) (Op, error) {
	op := Op(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	for _, o := range Ops {
		if o == op {
			return op, nil
		}
	}
	return "", fmt.Errorf("unknown operation %q", s)
}

// Binary reports whether op takes a right operand.
func (o Op) Binary() bool {
	switch o {
	case OpAdd, OpSub, OpMul, OpQuo, OpRem, OpDiv:
		return true
	}
	return false
}

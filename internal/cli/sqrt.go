package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/boundint/internal/eval"
)

// SqrtOptions holds flags for the sqrt command.
type SqrtOptions struct {
	*RootOptions
	OperandOptions
}

// SqrtResult holds every square-root form of one input.
type SqrtResult struct {
	Input  string `json:"input"`
	Floor  string `json:"floor"`
	Ceil   string `json:"ceil"`
	Round  string `json:"round"`
	Square bool   `json:"square"`
}

func (r SqrtResult) String() string {
	return fmt.Sprintf("sqrt %s: floor=%s ceil=%s round=%s square=%t",
		r.Input, r.Floor, r.Ceil, r.Round, r.Square)
}

// NewSqrtCommand creates the sqrt command.
func NewSqrtCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SqrtOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sqrt <operand>",
		Short: "Integer square roots",
		Long: `Compute the floor, ceiling and rounded integer square roots of an operand
and report whether it is a perfect square.

A negative input fails with NEGATIVE_SQRT_INPUT.

Examples:
  boundint sqrt 17
  boundint sqrt positive:128:170141183460469231731687303715884105727
  boundint sqrt 100000000000000000000000000000000000000000 --width big`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSqrt(opts, args[0], cmd)
		},
	}

	opts.bind(cmd, "nonnegative", "64")

	return cmd
}

func runSqrt(opts *SqrtOptions, arg string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	x, err := opts.parseOperand(arg)
	if err != nil {
		return formatter.Fail(err, arg)
	}

	result := SqrtResult{Input: x.String()}
	for _, op := range []eval.Op{eval.OpSqrtFloor, eval.OpSqrtCeil, eval.OpSqrtRound, eval.OpIsSquare} {
		out, err := eval.Eval(eval.Request{Op: op, Left: x})
		if err != nil {
			return formatter.Fail(err, arg)
		}
		if !out.OK() {
			return formatter.Fail(out.Err, arg)
		}
		switch op {
		case eval.OpSqrtFloor:
			result.Floor = out.Value
		case eval.OpSqrtCeil:
			result.Ceil = out.Value
		case eval.OpSqrtRound:
			result.Round = out.Value
		case eval.OpIsSquare:
			result.Square = *out.Exact
		}
	}
	return formatter.Success(result)
}

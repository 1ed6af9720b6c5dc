package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/boundint/division"
	"github.com/roach88/boundint/domain"
	"github.com/roach88/boundint/internal/eval"
	"github.com/roach88/boundint/raw"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	*RootOptions
	OperandOptions
	Policy string // division policy for div
	To     string // target width (widen, narrow) or domain (convert)
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "eval <op> <operand> [operand]",
		Short: "Evaluate one operation",
		Long: `Evaluate one operation on domain-typed operands.

Operands are written as domain:width:value, width:value or value; missing
parts come from --domain and --width. A value starting with "-" must follow
"--" or carry its domain and width.

Operations: new add sub mul quo rem neg abs div sqrt_floor sqrt_ceil
sqrt_round is_square widen narrow convert

Exit codes:
  0 - The operation produced a value
  1 - The operation failed with an arithmetic error
  2 - Command error (unknown op, malformed operand, etc.)

Examples:
  boundint eval add positive:8:4 positive:8:3
  boundint eval sub positive:8:4 positive:8:7
  boundint eval div any:8:7 any:8:2 --policy floor
  boundint eval widen positive:8:100 --to 64
  boundint eval convert any:32:5 --to positive`,
		Args:          cobra.RangeArgs(2, 3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(opts, args, cmd)
		},
	}

	opts.bind(cmd, "any", "64")
	cmd.Flags().StringVarP(&opts.Policy, "policy", "p", "trunc", "division policy for div (trunc|euclid|floor|ceil|half_away|half_even)")
	cmd.Flags().StringVar(&opts.To, "to", "", "target width for widen/narrow, target domain for convert")

	return cmd
}

func runEval(opts *EvalOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	req, err := opts.request(args)
	if err != nil {
		return formatter.Fail(err, args)
	}
	formatter.VerboseLog("evaluating %s on %v", req.Op, args[1:])

	out, err := eval.Eval(req)
	if err != nil {
		return formatter.Fail(err, args)
	}
	result := newOpResult(req, out)
	if !out.OK() {
		return formatter.Fail(out.Err, result)
	}
	return formatter.Success(result)
}

// request builds the evaluation request for "op left [right]".
func (o *EvalOptions) request(args []string) (eval.Request, error) {
	op, err := eval.ParseOp(args[0])
	if err != nil {
		return eval.Request{}, err
	}
	req := eval.Request{Op: op}

	if req.Left, err = o.parseOperand(args[1]); err != nil {
		return req, err
	}
	switch {
	case op.Binary() && len(args) != 3:
		return req, fmt.Errorf("%s requires two operands", op)
	case !op.Binary() && len(args) != 2:
		return req, fmt.Errorf("%s takes one operand", op)
	case op.Binary():
		right, err := o.parseOperand(args[2])
		if err != nil {
			return req, err
		}
		req.Right = &right
	}

	switch op {
	case eval.OpDiv:
		req.Policy, err = division.ParsePolicy(o.Policy)
	case eval.OpWiden, eval.OpNarrow:
		if o.To == "" {
			return req, fmt.Errorf("%s requires --to <width>", op)
		}
		req.Width, err = raw.ParseWidth(o.To)
	case eval.OpConvert:
		if o.To == "" {
			return req, fmt.Errorf("convert requires --to <domain>")
		}
		req.Domain, err = domain.ParseKind(o.To)
	}
	return req, err
}

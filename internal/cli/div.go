package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/boundint/division"
	"github.com/roach88/boundint/internal/eval"
)

// DivOptions holds flags for the div command.
type DivOptions struct {
	*RootOptions
	OperandOptions
	Policy string // empty runs every policy
}

// DivRow is the outcome of one division policy.
type DivRow struct {
	Policy    string `json:"policy"`
	Quotient  string `json:"quotient,omitempty"`
	Remainder string `json:"remainder,omitempty"`
	Error     string `json:"error,omitempty"`
}

// DivResult compares division policies on one dividend and divisor.
type DivResult struct {
	Dividend string   `json:"dividend"`
	Divisor  string   `json:"divisor"`
	Rows     []DivRow `json:"rows"`
}

func (r DivResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s / %s\n", r.Dividend, r.Divisor)
	for _, row := range r.Rows {
		if row.Error != "" {
			fmt.Fprintf(&b, "  %-10s %s\n", row.Policy, row.Error)
			continue
		}
		fmt.Fprintf(&b, "  %-10s q=%s r=%s\n", row.Policy, row.Quotient, row.Remainder)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// NewDivCommand creates the div command.
func NewDivCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DivOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "div <dividend> <divisor>",
		Short: "Compare division policies",
		Long: `Divide with every rounding policy, or with the one named by --policy.

Both operands must have the same width. Each policy reports its quotient
and remainder, or DIVISION_BY_ZERO / DIVISION_OVERFLOW.

Examples:
  boundint div 7 2
  boundint div -- -7 2 --width 8
  boundint div 7 2 --policy half_even`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiv(opts, args, cmd)
		},
	}

	opts.bind(cmd, "any", "64")
	cmd.Flags().StringVarP(&opts.Policy, "policy", "p", "", "run a single policy instead of all six")

	return cmd
}

func runDiv(opts *DivOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	left, err := opts.parseOperand(args[0])
	if err != nil {
		return formatter.Fail(err, args)
	}
	right, err := opts.parseOperand(args[1])
	if err != nil {
		return formatter.Fail(err, args)
	}

	policies := division.Policies
	if opts.Policy != "" {
		p, err := division.ParsePolicy(opts.Policy)
		if err != nil {
			return formatter.Fail(err, args)
		}
		policies = []division.Policy{p}
	}

	result := DivResult{Dividend: left.String(), Divisor: right.String()}
	for _, p := range policies {
		out, err := eval.Eval(eval.Request{Op: eval.OpDiv, Left: left, Right: &right, Policy: p})
		if err != nil {
			return formatter.Fail(err, args)
		}
		row := DivRow{Policy: p.String()}
		if out.OK() {
			row.Quotient, row.Remainder = out.Value, out.Remainder
		} else {
			row.Error = string(out.Err.Code)
		}
		formatter.VerboseLog("%s: %+v", p, row)
		result.Rows = append(result.Rows, row)
	}
	return formatter.Success(result)
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/boundint/domain"
	"github.com/roach88/boundint/internal/eval"
	"github.com/roach88/boundint/raw"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Width  string
	Domain string // empty checks every domain
}

// Membership reports whether a value belongs to one domain.
type Membership struct {
	Domain string `json:"domain"`
	Member bool   `json:"member"`
	Error  string `json:"error,omitempty"`
}

// CheckResult lists the domains a value belongs to at one width.
type CheckResult struct {
	Value   string       `json:"value"`
	Width   string       `json:"width"`
	Domains []Membership `json:"domains"`
}

func (r CheckResult) String() string {
	var in, out []string
	for _, m := range r.Domains {
		if m.Member {
			in = append(in, m.Domain)
		} else {
			out = append(out, m.Domain+" ("+m.Error+")")
		}
	}
	s := fmt.Sprintf("%s at width %s", r.Value, r.Width)
	if len(in) > 0 {
		s += "\n  member of: " + strings.Join(in, ", ")
	}
	if len(out) > 0 {
		s += "\n  rejected:  " + strings.Join(out, ", ")
	}
	return s
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <value>...",
		Short: "Check domain membership of values",
		Long: `Check which domains accept each value at a width.

A value outside the width's range is rejected by every domain with
OVERFLOW or UNDERFLOW; a value inside it is rejected by the domains
whose invariant it breaks with INVARIANT_VIOLATION.

Examples:
  boundint check 0 1 --width 8
  boundint check -- -128 --width 8 --domain negative`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Width, "width", "w", "64", "width (8|16|32|64|128|big)")
	cmd.Flags().StringVarP(&opts.Domain, "domain", "d", "", "check a single domain instead of all six")

	return cmd
}

func runCheck(opts *CheckOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	w, err := raw.ParseWidth(opts.Width)
	if err != nil {
		return formatter.Fail(err, nil)
	}
	kinds := domain.Kinds
	if opts.Domain != "" {
		k, err := domain.ParseKind(opts.Domain)
		if err != nil {
			return formatter.Fail(err, nil)
		}
		kinds = []domain.Kind{k}
	}

	results := make([]CheckResult, 0, len(args))
	for _, value := range args {
		r := CheckResult{Value: value, Width: w.String()}
		for _, k := range kinds {
			out, err := eval.Eval(eval.Request{
				Op:   eval.OpNew,
				Left: eval.Operand{Domain: k, Width: w, Value: value},
			})
			if err != nil {
				return formatter.Fail(err, value)
			}
			m := Membership{Domain: k.String(), Member: out.OK()}
			if !out.OK() {
				m.Error = string(out.Err.Code)
			}
			r.Domains = append(r.Domains, m)
		}
		results = append(results, r)
	}

	if opts.Format == "json" {
		return formatter.Success(results)
	}
	for _, r := range results {
		if err := formatter.Success(r); err != nil {
			return err
		}
	}
	return nil
}

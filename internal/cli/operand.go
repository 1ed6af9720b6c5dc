package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/boundint/domain"
	"github.com/roach88/boundint/internal/eval"
	"github.com/roach88/boundint/raw"
)

// OperandOptions holds the default domain and width for operands given
// without them.
type OperandOptions struct {
	Domain string
	Width  string
}

func (o *OperandOptions) bind(cmd *cobra.Command, defDomain, defWidth string) {
	cmd.Flags().StringVarP(&o.Domain, "domain", "d", defDomain, "domain of operands given as a bare value")
	cmd.Flags().StringVarP(&o.Width, "width", "w", defWidth, "width of operands given as a bare value (8|16|32|64|128|big)")
}

// parseOperand reads an operand written as "value", "width:value" or
// "domain:width:value". Missing parts come from the flags.
func (o *OperandOptions) parseOperand(s string) (eval.Operand, error) {
	domainName, widthName, value := o.Domain, o.Width, s
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 1:
	case 2:
		widthName, value = parts[0], parts[1]
	case 3:
		domainName, widthName, value = parts[0], parts[1], parts[2]
	default:
		return eval.Operand{}, fmt.Errorf("invalid operand %q: want [[domain:]width:]value", s)
	}

	k, err := domain.ParseKind(domainName)
	if err != nil {
		return eval.Operand{}, fmt.Errorf("operand %q: %w", s, err)
	}
	w, err := raw.ParseWidth(widthName)
	if err != nil {
		return eval.Operand{}, fmt.Errorf("operand %q: %w", s, err)
	}
	if value == "" {
		return eval.Operand{}, fmt.Errorf("operand %q: missing value", s)
	}
	return eval.Operand{Domain: k, Width: w, Value: value}, nil
}

// OpResult is the JSON form of one evaluated operation.
type OpResult struct {
	Op        string   `json:"op"`
	Policy    string   `json:"policy,omitempty"`
	Args      []string `json:"args"`
	Target    string   `json:"to,omitempty"`
	Value     string   `json:"value,omitempty"`
	Remainder string   `json:"remainder,omitempty"`
	Exact     *bool    `json:"exact,omitempty"`
	Domain    string   `json:"domain,omitempty"`
	Width     string   `json:"width,omitempty"`
	Error     string   `json:"error,omitempty"`
}

func newOpResult(req eval.Request, out eval.Outcome) OpResult {
	r := OpResult{
		Op:   string(req.Op),
		Args: []string{req.Left.String()},
	}
	if req.Right != nil {
		r.Args = append(r.Args, req.Right.String())
	}
	switch req.Op {
	case eval.OpDiv:
		r.Policy = req.Policy.String()
	case eval.OpWiden, eval.OpNarrow:
		r.Target = req.Width.String()
	case eval.OpConvert:
		r.Target = req.Domain.String()
	}
	if !out.OK() {
		r.Error = string(out.Err.Code)
		return r
	}
	r.Value = out.Value
	r.Remainder = out.Remainder
	r.Exact = out.Exact
	r.Domain = out.Domain.String()
	r.Width = out.Width.String()
	return r
}

// String renders the result as "op args = outcome".
func (r OpResult) String() string {
	name := r.Op
	if r.Policy != "" {
		name += "_" + r.Policy
	}
	call := name + " " + strings.Join(r.Args, " ")
	if r.Target != "" {
		call += " to " + r.Target
	}

	switch {
	case r.Error != "":
		return call + " = " + r.Error
	case r.Value == "" && r.Exact != nil:
		return fmt.Sprintf("%s = %t", call, *r.Exact)
	}
	out := fmt.Sprintf("%s = %s_%s(%s)", call, r.Domain, r.Width, r.Value)
	if r.Remainder != "" {
		out += " rem " + r.Remainder
	}
	if r.Exact != nil && !*r.Exact {
		out += " (inexact)"
	}
	return out
}

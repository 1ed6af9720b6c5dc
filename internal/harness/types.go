package harness

import (
	"strconv"

	"github.com/roach88/boundint/internal/eval"
)

// TraceEvent records one step and its outcome.
type TraceEvent struct {
	Seq       int64    `json:"seq"`
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

// Outcome summarizes the event for logs: the value, or the error code.
func (e TraceEvent) Outcome() string {
	switch {
	case e.Error != "":
		return e.Error
	case e.Value == "" && e.Exact != nil:
		return strconv.FormatBool(*e.Exact)
	case e.Remainder != "":
		return e.Value + " rem " + e.Remainder
	}
	return e.Value
}

// newTraceEvent builds the event for step seq.
func newTraceEvent(seq int64, req eval.Request, out eval.Outcome) TraceEvent {
	ev := TraceEvent{
		Seq:  seq,
		Op:   string(req.Op),
		Args: []string{req.Left.String()},
	}
	if req.Right != nil {
		ev.Args = append(ev.Args, req.Right.String())
	}
	switch req.Op {
	case eval.OpDiv:
		ev.Policy = req.Policy.String()
	case eval.OpWiden, eval.OpNarrow:
		ev.Target = req.Width.String()
	case eval.OpConvert:
		ev.Target = req.Domain.String()
	}

	if !out.OK() {
		ev.Error = string(out.Err.Code)
		return ev
	}
	ev.Value = out.Value
	ev.Remainder = out.Remainder
	ev.Exact = out.Exact
	ev.Domain = out.Domain.String()
	ev.Width = out.Width.String()
	return ev
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true if every expectation and assertion held.
	Pass bool `json:"pass"`

	// Trace contains one event per step, in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains expectation and assertion failures.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

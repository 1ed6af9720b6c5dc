package harness

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/boundint/internal/eval"
	"github.com/roach88/boundint/raw"
)

// Harness executes scenarios.
type Harness struct {
	logger *slog.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithLogger routes per-step logging to l. The default discards it.
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) {
		h.logger = l
	}
}

// New creates a Harness.
func New(opts ...Option) *Harness {
	h := &Harness{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run executes a scenario with a default Harness.
func Run(scenario *Scenario) (*Result, error) {
	return New().Run(scenario)
}

// Run executes every step, checks its expectation, then evaluates the
// scenario's assertions over the trace.
//
// A step that cannot be turned into a request is an error; an arithmetic
// failure is an ordinary outcome recorded in the trace.
func (h *Harness) Run(scenario *Scenario) (*Result, error) {
	result := NewResult()
	log := h.logger.With("scenario", scenario.Name)

	for i, step := range scenario.Steps {
		req, err := step.Request()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		out, err := eval.Eval(req)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, req.Op, err)
		}

		event := newTraceEvent(int64(i+1), req, out)
		result.Trace = append(result.Trace, event)
		log.Debug("step", "seq", event.Seq, "op", event.Op, "args", event.Args, "outcome", event.Outcome())

		if step.Expect == nil {
			continue
		}
		for _, msg := range checkExpect(event, step.Expect) {
			log.Warn("expectation failed", "seq", event.Seq, "detail", msg)
			result.AddError(fmt.Sprintf("step %d (%s): %s", event.Seq, event.Op, msg))
		}
	}

	for _, msg := range EvaluateAssertions(result.Trace, scenario.Assertions) {
		result.AddError(msg)
	}
	log.Info("scenario finished", "steps", len(result.Trace), "pass", result.Pass)
	return result, nil
}

// checkExpect compares one event against its expectation.
func checkExpect(ev TraceEvent, want *Expect) []string {
	if want.Error != "" {
		if ev.Error != want.Error {
			return []string{fmt.Sprintf("expected error %s, got %s", want.Error, ev.Outcome())}
		}
		return nil
	}
	if ev.Error != "" {
		return []string{fmt.Sprintf("unexpected error %s", ev.Error)}
	}

	var errs []string
	if want.Value != nil && !sameLiteral(string(*want.Value), ev.Value) {
		errs = append(errs, fmt.Sprintf("value: expected %s, got %s", *want.Value, ev.Value))
	}
	if want.Remainder != nil && !sameLiteral(string(*want.Remainder), ev.Remainder) {
		errs = append(errs, fmt.Sprintf("remainder: expected %s, got %s", *want.Remainder, ev.Remainder))
	}
	if want.Exact != nil && (ev.Exact == nil || *ev.Exact != *want.Exact) {
		errs = append(errs, fmt.Sprintf("exact: expected %t, got %s", *want.Exact, ev.Outcome()))
	}
	if want.Domain != "" && want.Domain != ev.Domain {
		errs = append(errs, fmt.Sprintf("domain: expected %s, got %s", want.Domain, ev.Domain))
	}
	if want.Width != "" && string(want.Width) != ev.Width {
		errs = append(errs, fmt.Sprintf("width: expected %s, got %s", want.Width, ev.Width))
	}
	return errs
}

// sameLiteral compares decimal literals by value, so "+7" matches "7" and
// "1_000" matches "1000".
func sameLiteral(want, got string) bool {
	w, err := raw.Parse[raw.Big](want)
	if err != nil {
		return want == got
	}
	g, err := raw.Parse[raw.Big](got)
	if err != nil {
		return false
	}
	return w.Cmp(g) == 0
}

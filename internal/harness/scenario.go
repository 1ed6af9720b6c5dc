package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/boundint/division"
	"github.com/roach88/boundint/domain"
	"github.com/roach88/boundint/internal/eval"
	"github.com/roach88/boundint/raw"
)

// Scenario is a named list of operations with expected outcomes.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Steps run in order. Each is independent; no value flows between steps.
	Steps []Step `yaml:"steps"`

	// Assertions validate the trace as a whole.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Step is one operation.
type Step struct {
	Op     string   `yaml:"op"`
	Policy string   `yaml:"policy,omitempty"`
	Left   Operand  `yaml:"left"`
	Right  *Operand `yaml:"right,omitempty"`
	To     *Target  `yaml:"to,omitempty"`

	// Expect is compared with the step's outcome. If nil, any outcome is
	// accepted.
	Expect *Expect `yaml:"expect,omitempty"`
}

// Operand is a literal with its domain and width.
type Operand struct {
	Domain string  `yaml:"domain"`
	Width  Literal `yaml:"width"`
	Value  Literal `yaml:"value"`
}

// Target is the destination of widen, narrow and convert.
type Target struct {
	Domain string  `yaml:"domain,omitempty"`
	Width  Literal `yaml:"width,omitempty"`
}

// Expect is a subset match against a step's outcome. Error and the value
// fields are mutually exclusive.
type Expect struct {
	Value     *Literal `yaml:"value,omitempty"`
	Remainder *Literal `yaml:"remainder,omitempty"`
	Exact     *bool    `yaml:"exact,omitempty"`
	Domain    string   `yaml:"domain,omitempty"`
	Width     Literal  `yaml:"width,omitempty"`
	Error     string   `yaml:"error,omitempty"`
}

// Literal is a scalar kept exactly as written, so `value: 7` and
// `value: "7"` both read as "7" and wide literals never pass through a
// machine integer.
type Literal string

// UnmarshalYAML accepts any scalar node.
func (l *Literal) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar, got %s", n.Line, n.ShortTag())
	}
	*l = Literal(n.Value)
	return nil
}

// Assertion validates the trace.
type Assertion struct {
	// Type is one of trace_contains, trace_order, trace_count.
	Type string `yaml:"type"`

	// Op is the operation (trace_contains, trace_count).
	Op string `yaml:"op,omitempty"`

	// Error optionally restricts trace_contains to steps failing with this
	// code.
	Error string `yaml:"error,omitempty"`

	// Ops is the expected order (trace_order).
	Ops []string `yaml:"ops,omitempty"`

	// Count is the expected number of occurrences (trace_count).
	Count int `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertTraceContains = "trace_contains"
	AssertTraceOrder    = "trace_order"
	AssertTraceCount    = "trace_count"
)

// LoadScenario reads, schema-checks and parses a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(path, data)
}

// ParseScenario parses scenario data. filename is used in error messages.
func ParseScenario(filename string, data []byte) (*Scenario, error) {
	if err := ValidateSchema(filename, data); err != nil {
		return nil, err
	}

	// The schema already rejects unknown fields; strict decoding keeps the
	// Go types honest if the two drift apart.
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks what the schema cannot: that every step resolves
// to a well-formed request.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}
	for i, step := range s.Steps {
		if _, err := step.Request(); err != nil {
			return fmt.Errorf("steps[%d]: %w", i, err)
		}
	}
	for i, a := range s.Assertions {
		if err := validateAssertion(i, &a); err != nil {
			return err
		}
	}
	return nil
}

func validateAssertion(index int, a *Assertion) error {
	switch a.Type {
	case AssertTraceContains, AssertTraceCount:
		if a.Op == "" {
			return fmt.Errorf("assertions[%d]: op is required for %s", index, a.Type)
		}
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative", index)
		}
	case AssertTraceOrder:
		if len(a.Ops) == 0 {
			return fmt.Errorf("assertions[%d]: ops list is required for trace_order", index)
		}
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}

// Request resolves the step into an evaluation request.
func (s Step) Request() (eval.Request, error) {
	op, err := eval.ParseOp(s.Op)
	if err != nil {
		return eval.Request{}, err
	}
	req := eval.Request{Op: op}

	if req.Left, err = s.Left.operand(); err != nil {
		return req, fmt.Errorf("left: %w", err)
	}
	if s.Right != nil {
		right, err := s.Right.operand()
		if err != nil {
			return req, fmt.Errorf("right: %w", err)
		}
		req.Right = &right
	}
	if op.Binary() && req.Right == nil {
		return req, fmt.Errorf("%s requires a right operand", op)
	}
	if !op.Binary() && req.Right != nil {
		return req, fmt.Errorf("%s takes no right operand", op)
	}

	if op == eval.OpDiv && s.Policy != "" {
		if req.Policy, err = division.ParsePolicy(s.Policy); err != nil {
			return req, err
		}
	} else if s.Policy != "" {
		return req, fmt.Errorf("policy only applies to div")
	}

	switch op {
	case eval.OpWiden, eval.OpNarrow:
		if s.To == nil || s.To.Width == "" {
			return req, fmt.Errorf("%s requires to.width", op)
		}
		if req.Width, err = raw.ParseWidth(string(s.To.Width)); err != nil {
			return req, err
		}
	case eval.OpConvert:
		if s.To == nil || s.To.Domain == "" {
			return req, fmt.Errorf("convert requires to.domain")
		}
		if req.Domain, err = domain.ParseKind(s.To.Domain); err != nil {
			return req, err
		}
	default:
		if s.To != nil {
			return req, fmt.Errorf("%s takes no target", op)
		}
	}
	return req, nil
}

func (o Operand) operand() (eval.Operand, error) {
	k, err := domain.ParseKind(o.Domain)
	if err != nil {
		return eval.Operand{}, err
	}
	w, err := raw.ParseWidth(string(o.Width))
	if err != nil {
		return eval.Operand{}, err
	}
	return eval.Operand{Domain: k, Width: w, Value: string(o.Value)}, nil
}

package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/boundint/division"
	"github.com/roach88/boundint/domain"
	"github.com/roach88/boundint/internal/eval"
	"github.com/roach88/boundint/raw"
)

const minimalScenario = `
name: minimal
description: "one step"
steps:
  - op: add
    left: { domain: positive, width: 8, value: 4 }
    right: { domain: positive, width: 8, value: 3 }
    expect: { value: 7 }
`

func TestParseScenario_Valid(t *testing.T) {
	s, err := ParseScenario("minimal.yaml", []byte(minimalScenario))
	require.NoError(t, err)
	assert.Equal(t, "minimal", s.Name)
	require.Len(t, s.Steps, 1)

	step := s.Steps[0]
	assert.Equal(t, "add", step.Op)
	assert.Equal(t, Literal("8"), step.Left.Width)
	assert.Equal(t, Literal("4"), step.Left.Value)
	require.NotNil(t, step.Expect)
	require.NotNil(t, step.Expect.Value)
	assert.Equal(t, Literal("7"), *step.Expect.Value)
}

func TestLoadScenario_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalScenario), 0o644))

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "minimal", s.Name)

	_, err = LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadScenario_Testdata(t *testing.T) {
	paths, err := filepath.Glob("testdata/scenarios/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, paths)
	for _, path := range paths {
		_, err := LoadScenario(path)
		assert.NoError(t, err, path)
	}
}

func TestParseScenario_SchemaRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown field", `
name: bad
description: "x"
steps:
  - op: add
    lefty: { domain: any, width: 8, value: 1 }
`},
		{"unknown op", `
name: bad
description: "x"
steps:
  - op: pow
    left: { domain: any, width: 8, value: 1 }
`},
		{"bad width", `
name: bad
description: "x"
steps:
  - op: new
    left: { domain: any, width: 12, value: 1 }
`},
		{"bad domain", `
name: bad
description: "x"
steps:
  - op: new
    left: { domain: odd, width: 8, value: 1 }
`},
		{"bad literal", `
name: bad
description: "x"
steps:
  - op: new
    left: { domain: any, width: 8, value: "1.5" }
`},
		{"no steps", `
name: bad
description: "x"
steps: []
`},
		{"missing description", `
name: bad
steps:
  - op: new
    left: { domain: any, width: 8, value: 1 }
`},
		{"bad error code", `
name: bad
description: "x"
steps:
  - op: new
    left: { domain: any, width: 8, value: 1 }
    expect: { error: OOPS }
`},
		{"bad name", `
name: Bad Name
description: "x"
steps:
  - op: new
    left: { domain: any, width: 8, value: 1 }
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario(tt.name+".yaml", []byte(tt.yaml))
			require.Error(t, err)
			var schemaErr *SchemaError
			assert.ErrorAs(t, err, &schemaErr)
		})
	}
}

func TestParseScenario_SemanticErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		msg  string
	}{
		{"missing right", `
name: bad
description: "x"
steps:
  - op: add
    left: { domain: any, width: 8, value: 1 }
`, "requires a right operand"},
		{"widen without target", `
name: bad
description: "x"
steps:
  - op: widen
    left: { domain: any, width: 8, value: 1 }
`, "requires to.width"},
		{"policy on add", `
name: bad
description: "x"
steps:
  - op: add
    policy: floor
    left: { domain: any, width: 8, value: 1 }
    right: { domain: any, width: 8, value: 1 }
`, "policy only applies to div"},
		{"trace_order without ops", `
name: bad
description: "x"
steps:
  - op: new
    left: { domain: any, width: 8, value: 1 }
assertions:
  - type: trace_order
`, "ops list is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario(tt.name+".yaml", []byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestStepRequest(t *testing.T) {
	step := Step{
		Op:     "div",
		Policy: "half-even",
		Left:   Operand{Domain: "non_zero", Width: "128", Value: "-7"},
		Right:  &Operand{Domain: "positive", Width: "128", Value: "2"},
	}
	req, err := step.Request()
	require.NoError(t, err)
	assert.Equal(t, eval.OpDiv, req.Op)
	assert.Equal(t, division.HalfEven, req.Policy)
	assert.Equal(t, eval.Operand{Domain: domain.NonZero, Width: raw.W128, Value: "-7"}, req.Left)
	require.NotNil(t, req.Right)
	assert.Equal(t, domain.Positive, req.Right.Domain)

	conv := Step{Op: "convert", Left: Operand{Domain: "any", Width: "big", Value: "1"}, To: &Target{Domain: "positive"}}
	req, err = conv.Request()
	require.NoError(t, err)
	assert.Equal(t, domain.Positive, req.Domain)
	assert.Equal(t, raw.Unbounded, req.Left.Width)
}

package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommand_Valid(t *testing.T) {
	out, err := execute(t, "validate", harnessScenarios)
	require.NoError(t, err)
	assert.Equal(t, "✓ All 3 scenario file(s) valid\n", out)
}

func TestValidateCommand_Invalid(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "good.yaml", passingScenario)
	schemaBad := writeScenario(t, dir, "schema.yaml", `
name: schema
description: "unknown op"
steps:
  - op: pow
    left: { domain: any, width: 8, value: 1 }
`)
	semanticBad := writeScenario(t, dir, "semantic.yaml", `
name: semantic
description: "missing right operand"
steps:
  - op: add
    left: { domain: any, width: 8, value: 1 }
`)

	out, err := execute(t, "validate", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "validation failed with 2 error(s)")
	assert.Contains(t, out, "✗ Validation failed")
	assert.Contains(t, out, schemaBad+"\n  E_SCHEMA:")
	assert.Contains(t, out, semanticBad+"\n  E_INVALID_SCENARIO:")
	assert.Contains(t, out, "add requires a right operand")
}

func TestValidateCommand_JSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "validate", filepath.Join(harnessScenarios, "conversions.yaml"))
	require.NoError(t, err)

	var resp struct {
		Status string           `json:"status"`
		Data   ValidationResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, ValidationResult{Valid: true, Files: 1}, resp.Data)

	dir := t.TempDir()
	writeScenario(t, dir, "bad.yaml", "name: bad\n")
	out, err = execute(t, "--format", "json", "validate", dir)
	require.Error(t, err)

	resp.Data = ValidationResult{}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.False(t, resp.Data.Valid)
	require.Len(t, resp.Data.Errors, 1)
	assert.Equal(t, ErrCodeSchema, resp.Data.Errors[0].Code)
}

func TestValidateCommand_CommandErrors(t *testing.T) {
	_, err := execute(t, "validate", "/nonexistent")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	out, err := execute(t, "validate", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "no scenario files found")
}

package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDivCommand_AllPolicies(t *testing.T) {
	out, err := execute(t, "div", "7", "2", "--width", "8")
	require.NoError(t, err)
	assert.Equal(t, `any_8(7) / any_8(2)
  trunc      q=3 r=1
  euclid     q=3 r=1
  floor      q=3 r=1
  ceil       q=4 r=-1
  half_away  q=4 r=-1
  half_even  q=4 r=-1
`, out)
}

func divRows(t *testing.T, args ...string) []DivRow {
	t.Helper()
	out, err := execute(t, append([]string{"--format", "json", "div"}, args...)...)
	require.NoError(t, err)

	var resp struct {
		Status string    `json:"status"`
		Data   DivResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	return resp.Data.Rows
}

func TestDivCommand_NegativeDividend(t *testing.T) {
	rows := divRows(t, "--width", "32", "--", "-7", "2")
	assert.Equal(t, []DivRow{
		{Policy: "trunc", Quotient: "-3", Remainder: "-1"},
		{Policy: "euclid", Quotient: "-4", Remainder: "1"},
		{Policy: "floor", Quotient: "-4", Remainder: "1"},
		{Policy: "ceil", Quotient: "-3", Remainder: "-1"},
		{Policy: "half_away", Quotient: "-4", Remainder: "1"},
		{Policy: "half_even", Quotient: "-4", Remainder: "1"},
	}, rows)
}

func TestDivCommand_SinglePolicy(t *testing.T) {
	rows := divRows(t, "--policy", "half-even", "any:8:7", "any:8:5")
	assert.Equal(t, []DivRow{{Policy: "half_even", Quotient: "2", Remainder: "-3"}}, rows)
}

func TestDivCommand_Failures(t *testing.T) {
	for _, row := range divRows(t, "5", "0") {
		assert.Equal(t, "DIVISION_BY_ZERO", row.Error, row.Policy)
	}
	for _, row := range divRows(t, "--width", "8", "--", "-128", "-1") {
		assert.Equal(t, "DIVISION_OVERFLOW", row.Error, row.Policy)
	}
	for _, row := range divRows(t, "8:7", "16:2") {
		assert.Equal(t, "WIDTH_MISMATCH", row.Error, row.Policy)
	}
}

func TestDivCommand_CommandErrors(t *testing.T) {
	_, err := execute(t, "div", "7", "2", "--policy", "nearest")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = execute(t, "div", "seven", "2")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = execute(t, "div", "7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg")
}

package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqrtCommand_Text(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"sqrt", "17"}, "sqrt nonnegative_64(17): floor=4 ceil=5 round=4 square=false\n"},
		{[]string{"sqrt", "16", "--width", "8"}, "sqrt nonnegative_8(16): floor=4 ceil=4 round=4 square=true\n"},
		{[]string{"sqrt", "positive:16:12"}, "sqrt positive_16(12): floor=3 ceil=4 round=3 square=false\n"},
		{[]string{"sqrt", "0"}, "sqrt nonnegative_64(0): floor=0 ceil=0 round=0 square=true\n"},
	}
	for _, tt := range tests {
		t.Run(tt.args[1], func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestSqrtCommand_Big(t *testing.T) {
	out, err := execute(t, "--format", "json", "sqrt", "100000000000000000000000000000000000000000", "--width", "big")
	require.NoError(t, err)

	var resp struct {
		Data SqrtResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "316227766016837933199", resp.Data.Floor)
	assert.Equal(t, "316227766016837933200", resp.Data.Ceil)
	assert.False(t, resp.Data.Square)
}

func TestSqrtCommand_Errors(t *testing.T) {
	out, err := execute(t, "sqrt", "any:8:-4")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error [NEGATIVE_SQRT_INPUT]")

	out, err = execute(t, "sqrt", "--", "-4")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error [INVARIANT_VIOLATION]")

	_, err = execute(t, "sqrt", "4", "--width", "7")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "boundint", cmd.Use)
	assert.Contains(t, cmd.Long, "nonnegative")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"check", "eval", "div", "sqrt", "test", "validate"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestOperandFlagDefaults(t *testing.T) {
	cmd := NewRootCommand()
	tests := []struct {
		command string
		domain  string
		width   string
	}{
		{"eval", "any", "64"},
		{"div", "any", "64"},
		{"sqrt", "nonnegative", "64"},
		{"check", "", "64"},
	}
	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{tt.command})
			require.NoError(t, err)

			domainFlag := sub.Flags().Lookup("domain")
			require.NotNil(t, domainFlag)
			assert.Equal(t, "d", domainFlag.Shorthand)
			assert.Equal(t, tt.domain, domainFlag.DefValue)

			widthFlag := sub.Flags().Lookup("width")
			require.NotNil(t, widthFlag)
			assert.Equal(t, tt.width, widthFlag.DefValue)
		})
	}
}

func TestTestCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	testCmd, _, err := cmd.Find([]string{"test"})
	require.NoError(t, err)

	for _, name := range []string{"update", "filter", "golden-dir"} {
		assert.NotNil(t, testCmd.Flags().Lookup(name), name)
	}
}

func TestInvalidFormat(t *testing.T) {
	_, err := execute(t, "--format", "xml", "eval", "new", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "xml"`)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestLogger(t *testing.T) {
	buf := &bytes.Buffer{}

	(&RootOptions{}).logger(buf).Info("hidden")
	assert.Empty(t, buf.String())

	(&RootOptions{Verbose: true}).logger(buf).Debug("shown", "k", 1)
	assert.Contains(t, buf.String(), "msg=shown k=1")
}

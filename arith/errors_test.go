package arith

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"code only", &Error{Code: CodeOverflow}, "OVERFLOW"},
		{"code and op", &Error{Code: CodeOverflow, Op: "add"}, "OVERFLOW: add"},
		{"code and message", &Error{Code: CodeUnderflow, Message: "below min"}, "UNDERFLOW: below min"},
		{"all fields", New(CodeDivisionByZero, "div_trunc", "divisor is %d", 0), "DIVISION_BY_ZERO: div_trunc: divisor is 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorIsMatchesCode(t *testing.T) {
	err := New(CodeDivisionOverflow, "div_floor", "MIN / -1")

	assert.True(t, errors.Is(err, ErrDivisionOverflow))
	assert.False(t, errors.Is(err, ErrDivisionByZero))

	wrapped := fmt.Errorf("step 3: %w", err)
	assert.True(t, errors.Is(wrapped, ErrDivisionOverflow))
	assert.Equal(t, CodeDivisionOverflow, CodeOf(wrapped))
}

func TestCodeOfForeignError(t *testing.T) {
	assert.Equal(t, ErrorCode(""), CodeOf(errors.New("boom")))
	assert.Equal(t, ErrorCode(""), CodeOf(nil))
}

func TestCatchRecoversTrap(t *testing.T) {
	err := Catch(func() {
		Trapf(CodeOverflow, "add", "127 + 1")
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOverflow))
	assert.Equal(t, "OVERFLOW: add: 127 + 1", err.Error())
}

func TestCatchNoTrap(t *testing.T) {
	ran := false
	err := Catch(func() { ran = true })

	assert.NoError(t, err)
	assert.True(t, ran)
}

func TestCatchRepanicsForeignPanic(t *testing.T) {
	assert.PanicsWithValue(t, "not an arith error", func() {
		_ = Catch(func() { panic("not an arith error") })
	})
}

func TestIsTrap(t *testing.T) {
	assert.True(t, IsTrap(func() { Trap(ErrNegativeSqrt) }))
	assert.False(t, IsTrap(func() {}))
}

func TestMust(t *testing.T) {
	assert.Equal(t, 7, Must(7, nil))

	err := Catch(func() {
		Must(0, New(CodeInvariantViolation, "try_new", "0 is not positive"))
	})
	assert.True(t, errors.Is(err, ErrInvariantViolation))
}

package rational

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/boundint/arith"
	"github.com/roach88/boundint/division"
	"github.com/roach88/boundint/raw"
)

func r8(t *testing.T, s string) Rational[raw.I8] {
	t.Helper()
	x, err := Parse[raw.I8](s)
	require.NoError(t, err)
	return x
}

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b, want int8
	}{
		{12, 18, 6},
		{-12, 18, 6},
		{12, -18, 6},
		{0, 5, 5},
		{5, 0, 5},
		{0, 0, 0},
		{-128, 64, 64},
		{-128, -1, 1},
		{-128, 3, 1},
		{17, 17, 17},
	}
	for _, tt := range tests {
		g, err := GCD(raw.I8(tt.a), raw.I8(tt.b))
		require.NoError(t, err, "gcd(%d, %d)", tt.a, tt.b)
		assert.Equal(t, raw.I8(tt.want), g, "gcd(%d, %d)", tt.a, tt.b)
	}

	_, err := GCD(raw.I8(-128), raw.I8(0))
	assert.ErrorIs(t, err, arith.ErrOverflow)
	_, err = GCD(raw.I8(-128), raw.I8(-128))
	assert.ErrorIs(t, err, arith.ErrOverflow)
}

func TestOf_Normalizes(t *testing.T) {
	tests := []struct {
		n, d int8
		want string
	}{
		{6, -4, "-3/2"},
		{-6, -4, "3/2"},
		{0, -7, "0"},
		{10, 5, "2"},
		{-128, 2, "-64"},
		{3, -127, "-3/127"},
	}
	for _, tt := range tests {
		x, err := Of(raw.I8(tt.n), raw.I8(tt.d))
		require.NoError(t, err)
		assert.Equal(t, tt.want, x.String(), "%d/%d", tt.n, tt.d)
		assert.Positive(t, x.Den().Sign())
	}
}

func TestOf_Failures(t *testing.T) {
	_, err := Of(raw.I8(1), raw.I8(0))
	assert.ErrorIs(t, err, arith.ErrDivisionByZero)

	// -1/-128 needs +128 in the denominator.
	_, err = Of(raw.I8(-1), raw.I8(-128))
	assert.ErrorIs(t, err, arith.ErrOverflow)

	_, err = Of(raw.I8(-128), raw.I8(-1))
	assert.ErrorIs(t, err, arith.ErrOverflow)
}

func TestParse(t *testing.T) {
	x := r8(t, " 4/6 ")
	assert.Equal(t, "2/3", x.String())
	assert.Equal(t, "-5", r8(t, "-5").String())

	_, err := Parse[raw.I8]("1/x")
	assert.Error(t, err)
	_, err = Parse[raw.I8]("300/2")
	assert.ErrorIs(t, err, arith.ErrOverflow)
	_, err = Parse[raw.I8]("1/0")
	assert.ErrorIs(t, err, arith.ErrDivisionByZero)
}

func TestArithmetic(t *testing.T) {
	half, third := r8(t, "1/2"), r8(t, "1/3")

	assert.Equal(t, "5/6", half.Add(third).String())
	assert.Equal(t, "1/6", half.Sub(third).String())
	assert.Equal(t, "-1/6", third.Sub(half).String())
	assert.Equal(t, "1/6", half.Mul(third).String())
	assert.Equal(t, "3/2", half.Quo(third).String())
	assert.Equal(t, "-1/2", half.Neg().String())
	assert.Equal(t, "1/2", half.Neg().Abs().String())
	assert.Equal(t, "-3", r8(t, "-1/3").Inv().String())
	assert.Equal(t, "1", half.Add(half).String())
	assert.True(t, half.Add(half).IsInteger())
	assert.True(t, half.Sub(half).IsZero())
}

func TestArithmetic_Traps(t *testing.T) {
	zero := r8(t, "0")
	err := arith.Catch(func() { r8(t, "1/2").Quo(zero) })
	assert.ErrorIs(t, err, arith.ErrDivisionByZero)

	err = arith.Catch(func() { r8(t, "-128").Neg() })
	assert.ErrorIs(t, err, arith.ErrOverflow)

	// 1/100 + 1/99 needs a denominator of 9900.
	err = arith.Catch(func() { r8(t, "1/100").Add(r8(t, "1/99")) })
	assert.ErrorIs(t, err, arith.ErrOverflow)
}

func TestCmp(t *testing.T) {
	a, b := r8(t, "-127/2"), r8(t, "127/3")
	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
	assert.True(t, a.Less(b))
	assert.True(t, r8(t, "2/4").Equal(r8(t, "1/2")))
	assert.Equal(t, 1, r8(t, "1/99").Cmp(r8(t, "1/100")))
}

func TestRounding(t *testing.T) {
	tests := []struct {
		in                        string
		trunc, floor, ceil, round int8
	}{
		{"7/2", 3, 3, 4, 4},
		{"-7/2", -3, -4, -3, -4},
		{"5/2", 2, 2, 3, 2},
		{"-5/2", -2, -3, -2, -2},
		{"7/5", 1, 1, 2, 2},
		{"13/5", 2, 2, 3, 2},
		{"-4", -4, -4, -4, -4},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			x := r8(t, tt.in)
			assert.Equal(t, raw.I8(tt.trunc), x.Trunc().Get())
			assert.Equal(t, raw.I8(tt.floor), x.Floor().Get())
			assert.Equal(t, raw.I8(tt.ceil), x.Ceil().Get())
			assert.Equal(t, raw.I8(tt.round), x.Round().Get())
		})
	}

	assert.Equal(t, raw.I8(-4), r8(t, "-7/2").Int(division.HalfAway).Get())
}

func TestWideBacking(t *testing.T) {
	x, err := Parse[raw.I128]("1/3")
	require.NoError(t, err)
	y, err := Parse[raw.I128]("1/7")
	require.NoError(t, err)
	assert.Equal(t, "10/21", x.Add(y).String())

	b, err := Parse[raw.Big]("-170141183460469231731687303715884105728/6")
	require.NoError(t, err)
	assert.Equal(t, "-85070591730234615865843651857942052864/3", b.String())
	assert.Equal(t, "-28356863910078205288614550619314017621", b.Trunc().String())
}

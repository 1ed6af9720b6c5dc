package boundint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/boundint"
	"github.com/roach88/boundint/arith"
	"github.com/roach88/boundint/domain"
	"github.com/roach88/boundint/raw"
)

func TestWiden(t *testing.T) {
	x := boundint.New[boundint.Negative](raw.I8(-128))

	w16 := boundint.Widen[raw.I16](x)
	assert.Equal(t, raw.I16(-128), w16.Get())
	assert.Equal(t, domain.Negative, w16.Kind())

	w128 := boundint.Widen[raw.I128](w16)
	assert.Equal(t, "-128", w128.String())

	wbig := boundint.Widen[raw.Big](w128)
	assert.Equal(t, "-128", wbig.String())
	assert.Equal(t, raw.Unbounded, wbig.Width())
}

func TestWiden_NarrowerTargetTraps(t *testing.T) {
	x := boundint.New[boundint.Positive](raw.I32(1))
	err := arith.Catch(func() { boundint.Widen[raw.I16](x) })
	assert.ErrorIs(t, err, arith.ErrWidthMismatch)
}

func TestNarrow(t *testing.T) {
	tests := []struct {
		name string
		v    int64
		want *arith.Error
	}{
		{"fits", 100, nil},
		{"max", 127, nil},
		{"min", -128, nil},
		{"above", 128, arith.ErrOverflow},
		{"below", -129, arith.ErrUnderflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := boundint.New[boundint.Any](raw.I64(tt.v))
			n, err := boundint.Narrow[raw.I8](x)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, raw.I8(tt.v), n.Get())
		})
	}
}

func TestNarrow_FromBig(t *testing.T) {
	b, err := boundint.Parse[boundint.Positive, raw.Big]("170141183460469231731687303715884105728")
	require.NoError(t, err)
	_, err = boundint.Narrow[raw.I128](b)
	assert.ErrorIs(t, err, arith.ErrOverflow)

	m, err := boundint.Parse[boundint.Positive, raw.Big]("170141183460469231731687303715884105727")
	require.NoError(t, err)
	n, err := boundint.Narrow[raw.I128](m)
	require.NoError(t, err)
	assert.Equal(t, "170141183460469231731687303715884105727", n.String())
}

func TestWidenNarrow_RoundTrip(t *testing.T) {
	for v := int64(-128); v <= 127; v++ {
		x := boundint.New[boundint.Any](raw.I8(v))
		back, err := boundint.Narrow[raw.I8](boundint.Widen[raw.I64](x))
		require.NoError(t, err)
		require.Equal(t, x, back)

		viaBig, err := boundint.Narrow[raw.I8](boundint.Widen[raw.Big](boundint.Widen[raw.I128](x)))
		require.NoError(t, err)
		require.Equal(t, x, viaBig)
	}
}

func TestConvert(t *testing.T) {
	a := boundint.New[boundint.Any](raw.I16(12))

	p, err := boundint.Convert[boundint.Positive](a)
	require.NoError(t, err)
	assert.Equal(t, domain.Positive, p.Kind())
	assert.Equal(t, raw.I16(12), p.Get())

	_, err = boundint.Convert[boundint.Negative](a)
	assert.ErrorIs(t, err, arith.ErrInvariantViolation)

	nn := boundint.MustConvert[boundint.NonNegative](p)
	assert.Equal(t, domain.NonNegative, nn.Kind())

	err = arith.Catch(func() { boundint.MustConvert[boundint.NonPositive](p) })
	assert.ErrorIs(t, err, arith.ErrInvariantViolation)
}

package raw

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/boundint/arith"
)

// Compile-time contract checks.
var (
	_ Backing[I8]   = I8(0)
	_ Backing[I16]  = I16(0)
	_ Backing[I32]  = I32(0)
	_ Backing[I64]  = I64(0)
	_ Backing[I128] = I128{}
	_ Backing[Big]  = Big{}
)

func TestI8AddOverflow(t *testing.T) {
	tests := []struct {
		name   string
		a, b   I8
		want   I8
		wantOK bool
	}{
		{"small", 4, 3, 7, true},
		{"to max", 100, 27, 127, true},
		{"past max", 100, 28, 0, false},
		{"to min", -100, -28, -128, true},
		{"past min", -100, -29, 0, false},
		{"mixed signs", 127, -128, -1, true},
		{"zero", 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.Add(tt.b)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestI8SubOverflow(t *testing.T) {
	_, ok := I8(-128).Sub(1)
	assert.False(t, ok)

	_, ok = I8(127).Sub(-1)
	assert.False(t, ok)

	_, ok = I8(0).Sub(-128)
	assert.False(t, ok, "0 - MIN is MAX+1")

	got, ok := I8(-1).Sub(-128)
	assert.True(t, ok)
	assert.Equal(t, I8(127), got)
}

func TestI8MulOverflow(t *testing.T) {
	tests := []struct {
		a, b   I8
		wantOK bool
	}{
		{16, 8, false},
		{-16, 8, true},
		{-16, -8, false},
		{-1, -128, false},
		{-128, -1, false},
		{-128, 1, true},
		{0, -128, true},
		{11, 11, true},
		{12, 11, false},
	}

	for _, tt := range tests {
		got, ok := tt.a.Mul(tt.b)
		assert.Equal(t, tt.wantOK, ok, "%d * %d", tt.a, tt.b)
		if ok {
			assert.Equal(t, int64(tt.a)*int64(tt.b), int64(got))
		}
	}
}

// Every 8-bit pair agrees with int64 arithmetic plus a range check.
func TestI8ExhaustiveAgainstInt64(t *testing.T) {
	inRange := func(n int64) bool { return n >= math.MinInt8 && n <= math.MaxInt8 }

	for a := math.MinInt8; a <= math.MaxInt8; a++ {
		for b := math.MinInt8; b <= math.MaxInt8; b++ {
			x, y := I8(a), I8(b)

			sum, ok := x.Add(y)
			if ok != inRange(int64(a+b)) || (ok && int(sum) != a+b) {
				t.Fatalf("Add(%d, %d) = %d, %v", a, b, sum, ok)
			}
			diff, ok := x.Sub(y)
			if ok != inRange(int64(a-b)) || (ok && int(diff) != a-b) {
				t.Fatalf("Sub(%d, %d) = %d, %v", a, b, diff, ok)
			}
			prod, ok := x.Mul(y)
			if ok != inRange(int64(a*b)) || (ok && int(prod) != a*b) {
				t.Fatalf("Mul(%d, %d) = %d, %v", a, b, prod, ok)
			}
		}
	}
}

func TestNegOverflow(t *testing.T) {
	_, ok := I8(math.MinInt8).Neg()
	assert.False(t, ok)

	got, ok := I8(math.MaxInt8).Neg()
	assert.True(t, ok)
	assert.Equal(t, I8(-127), got)

	_, ok = I64(math.MinInt64).Neg()
	assert.False(t, ok)
}

func TestIsMin(t *testing.T) {
	assert.True(t, I8(math.MinInt8).IsMin())
	assert.True(t, I16(math.MinInt16).IsMin())
	assert.True(t, I32(math.MinInt32).IsMin())
	assert.True(t, I64(math.MinInt64).IsMin())
	assert.False(t, I64(math.MinInt64+1).IsMin())

	lo, _, _ := I128{}.Bounds()
	assert.True(t, lo.IsMin())
	assert.False(t, BigFrom64(math.MinInt64).IsMin())
}

func TestWidths(t *testing.T) {
	assert.Equal(t, W8, I8(0).Width())
	assert.Equal(t, W16, I16(0).Width())
	assert.Equal(t, W32, I32(0).Width())
	assert.Equal(t, W64, I64(0).Width())
	assert.Equal(t, W128, I128{}.Width())
	assert.Equal(t, Unbounded, Big{}.Width())
}

func TestWidthCovers(t *testing.T) {
	assert.True(t, W16.Covers(W8))
	assert.True(t, W16.Covers(W16))
	assert.False(t, W8.Covers(W16))
	assert.True(t, Unbounded.Covers(W128))
	assert.False(t, W128.Covers(Unbounded))
}

func TestParseWidth(t *testing.T) {
	for _, s := range []string{"8", "16", "32", "64", "128"} {
		w, err := ParseWidth(s)
		require.NoError(t, err)
		assert.Equal(t, s, w.String())
	}

	w, err := ParseWidth("big")
	require.NoError(t, err)
	assert.Equal(t, Unbounded, w)

	_, err = ParseWidth("12")
	assert.Error(t, err)
	_, err = ParseWidth("wide")
	assert.Error(t, err)
}

func TestI128Arithmetic(t *testing.T) {
	lo, hi, ok := I128{}.Bounds()
	require.True(t, ok)
	assert.Equal(t, "-170141183460469231731687303715884105728", lo.String())
	assert.Equal(t, "170141183460469231731687303715884105727", hi.String())

	_, ok = hi.Add(I128From64(1))
	assert.False(t, ok)
	_, ok = lo.Sub(I128From64(1))
	assert.False(t, ok)
	_, ok = lo.Mul(I128From64(-1))
	assert.False(t, ok)
	_, ok = I128From64(-1).Mul(lo)
	assert.False(t, ok)

	sum, ok := hi.Add(lo)
	assert.True(t, ok)
	assert.Equal(t, "-1", sum.String())

	big64 := I128From64(math.MaxInt64)
	prod, ok := big64.Mul(big64)
	assert.True(t, ok)
	assert.Equal(t, "85070591730234615847396907784232501249", prod.String())

	_, ok = prod.Mul(I128From64(4))
	assert.False(t, ok)

	assert.Equal(t, "-3", I128From64(-7).Quo(I128From64(2)).String())
	assert.Equal(t, "-1", I128From64(-7).Rem(I128From64(2)).String())
	assert.Equal(t, -1, I128From64(-7).Sign())
	assert.Equal(t, 0, I128{}.Sign())
}

func TestBigNeverOverflows(t *testing.T) {
	x := BigFrom64(math.MaxInt64)
	sum, ok := x.Add(x)
	assert.True(t, ok)
	assert.Equal(t, "18446744073709551614", sum.String())

	_, ok = sum.Int64()
	assert.False(t, ok)

	_, _, bounded := Big{}.Bounds()
	assert.False(t, bounded)
	assert.Equal(t, 0, Big{}.Sign())
}

func TestBigIsImmutable(t *testing.T) {
	src := big.NewInt(5)
	x := NewBig(src)
	src.SetInt64(9)
	assert.Equal(t, "5", x.String())

	out := x.Big()
	out.SetInt64(11)
	assert.Equal(t, "5", x.String())
}

func TestConvertWidenAndNarrow(t *testing.T) {
	wide, ok := Convert[I64](I8(-128))
	require.True(t, ok)
	assert.Equal(t, I64(-128), wide)

	back, ok := Convert[I8](wide)
	require.True(t, ok)
	assert.Equal(t, I8(-128), back)

	_, ok = Convert[I8](I16(128))
	assert.False(t, ok)

	hi := I128From64(math.MaxInt64)
	hi, _ = hi.Add(I128From64(1))
	_, ok = Convert[I64](hi)
	assert.False(t, ok)

	b, ok := Convert[Big](hi)
	require.True(t, ok)
	assert.Equal(t, "9223372036854775808", b.String())

	same, ok := Convert[I32](I32(77))
	require.True(t, ok)
	assert.Equal(t, I32(77), same)
}

// Widening then narrowing recovers every representable value.
func TestConvertRoundTrip(t *testing.T) {
	for n := math.MinInt16; n <= math.MaxInt16; n += 7 {
		v := I16(n)
		w, ok := Convert[I128](v)
		require.True(t, ok)
		back, ok := Convert[I16](w)
		require.True(t, ok)
		require.Equal(t, v, back)

		_, fits := Convert[I8](v)
		assert.Equal(t, n >= math.MinInt8 && n <= math.MaxInt8, fits)
	}
}

func TestParse(t *testing.T) {
	v, err := Parse[I8]("-128")
	require.NoError(t, err)
	assert.Equal(t, I8(-128), v)

	v, err = Parse[I8](" 1_0 ")
	require.NoError(t, err)
	assert.Equal(t, I8(10), v)

	_, err = Parse[I8]("128")
	assert.True(t, errors.Is(err, arith.ErrOverflow))

	_, err = Parse[I8]("-129")
	assert.True(t, errors.Is(err, arith.ErrUnderflow))

	_, err = Parse[I8]("twelve")
	require.Error(t, err)
	assert.Equal(t, arith.ErrorCode(""), arith.CodeOf(err))

	h, err := Parse[I128]("-170141183460469231731687303715884105728")
	require.NoError(t, err)
	assert.True(t, h.IsMin())
}

func TestOf(t *testing.T) {
	assert.Equal(t, I16(300), Of[I16](300))
	assert.Equal(t, "1", One[Big]().String())
	assert.Equal(t, I8(0), Zero[I8]())

	err := arith.Catch(func() { Of[I8](300) })
	assert.True(t, errors.Is(err, arith.ErrOverflow))
}

func TestAbs(t *testing.T) {
	v, ok := Abs(I8(-5))
	assert.True(t, ok)
	assert.Equal(t, I8(5), v)

	_, ok = Abs(I8(math.MinInt8))
	assert.False(t, ok)
}

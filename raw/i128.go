package raw

import (
	"math"
	"math/big"

	num "github.com/shabbyrobe/go-num"
)

var (
	minI128  = num.I128FromRaw(1<<63, 0)
	maxI128  = num.I128FromRaw(math.MaxInt64, math.MaxUint64)
	zeroI128 = num.I128{}
	negOne   = num.I128From64(-1)
)

// I128 is the 128-bit backing, built on num.I128.
type I128 struct {
	v num.I128
}

// I128From64 widens an int64.
func I128From64(n int64) I128 {
	return I128{v: num.I128From64(n)}
}

func (x I128) Width() Width      { return W128 }
func (x I128) Sign() int         { return x.v.Cmp(zeroI128) }
func (x I128) Cmp(y I128) int    { return x.v.Cmp(y.v) }
func (x I128) IsMin() bool       { return x.v.Cmp(minI128) == 0 }
func (x I128) Quo(y I128) I128   { return I128{v: x.v.Quo(y.v)} }
func (x I128) Rem(y I128) I128   { return I128{v: x.v.Rem(y.v)} }
func (x I128) Big() *big.Int     { return x.v.AsBigInt() }
func (x I128) String() string    { return x.v.String() }
func (x I128) Neg() (I128, bool) { return I128{v: x.v.Neg()}, !x.IsMin() }

func (I128) Bounds() (lo, hi I128, ok bool) {
	return I128{v: minI128}, I128{v: maxI128}, true
}

// Add reports overflow when the wrapped sum moves against the sign of y.
func (x I128) Add(y I128) (I128, bool) {
	c := x.v.Add(y.v)
	return I128{v: c}, (c.Cmp(x.v) > 0) == (y.Sign() > 0)
}

func (x I128) Sub(y I128) (I128, bool) {
	c := x.v.Sub(y.v)
	return I128{v: c}, (c.Cmp(x.v) < 0) == (y.Sign() > 0)
}

func (x I128) Mul(y I128) (I128, bool) {
	if x.Sign() == 0 || y.Sign() == 0 {
		return I128{}, true
	}
	c := x.v.Mul(y.v)
	if (x.v.Cmp(negOne) == 0 && y.IsMin()) || (y.v.Cmp(negOne) == 0 && x.IsMin()) {
		return I128{v: c}, false
	}
	return I128{v: c}, c.Quo(y.v).Cmp(x.v) == 0
}

func (x I128) Int64() (int64, bool) {
	if !x.v.IsInt64() {
		return 0, false
	}
	return x.v.AsInt64(), true
}

func (I128) FromInt64(n int64) (I128, bool) {
	return I128From64(n), true
}

func (I128) FromBig(n *big.Int) (I128, bool) {
	v, accurate := num.I128FromBigInt(n)
	return I128{v: v}, accurate
}

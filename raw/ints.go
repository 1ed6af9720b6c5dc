package raw

import (
	"math"
	"math/big"
	"strconv"
)

// I8 is the 8-bit backing.
type I8 int8

func (x I8) Width() Width               { return W8 }
func (x I8) Sign() int                  { return signFixed(x) }
func (x I8) Cmp(y I8) int               { return cmpFixed(x, y) }
func (x I8) IsMin() bool                { return x == math.MinInt8 }
func (x I8) Add(y I8) (I8, bool)        { return addFixed(x, y) }
func (x I8) Sub(y I8) (I8, bool)        { return subFixed(x, y) }
func (x I8) Mul(y I8) (I8, bool)        { return mulFixed(x, y, math.MinInt8) }
func (x I8) Neg() (I8, bool)            { return negFixed(x, math.MinInt8) }
func (x I8) Quo(y I8) I8                { return x / y }
func (x I8) Rem(y I8) I8                { return x % y }
func (x I8) Int64() (int64, bool)       { return int64(x), true }
func (x I8) Big() *big.Int              { return big.NewInt(int64(x)) }
func (x I8) String() string             { return strconv.FormatInt(int64(x), 10) }
func (I8) Bounds() (lo, hi I8, ok bool) { return math.MinInt8, math.MaxInt8, true }

func (I8) FromInt64(n int64) (I8, bool) {
	return I8(n), n >= math.MinInt8 && n <= math.MaxInt8
}

func (I8) FromBig(n *big.Int) (I8, bool) {
	if !n.IsInt64() {
		return 0, false
	}
	return I8(0).FromInt64(n.Int64())
}

// I16 is the 16-bit backing.
type I16 int16

func (x I16) Width() Width                { return W16 }
func (x I16) Sign() int                   { return signFixed(x) }
func (x I16) Cmp(y I16) int               { return cmpFixed(x, y) }
func (x I16) IsMin() bool                 { return x == math.MinInt16 }
func (x I16) Add(y I16) (I16, bool)       { return addFixed(x, y) }
func (x I16) Sub(y I16) (I16, bool)       { return subFixed(x, y) }
func (x I16) Mul(y I16) (I16, bool)       { return mulFixed(x, y, math.MinInt16) }
func (x I16) Neg() (I16, bool)            { return negFixed(x, math.MinInt16) }
func (x I16) Quo(y I16) I16               { return x / y }
func (x I16) Rem(y I16) I16               { return x % y }
func (x I16) Int64() (int64, bool)        { return int64(x), true }
func (x I16) Big() *big.Int               { return big.NewInt(int64(x)) }
func (x I16) String() string              { return strconv.FormatInt(int64(x), 10) }
func (I16) Bounds() (lo, hi I16, ok bool) { return math.MinInt16, math.MaxInt16, true }

func (I16) FromInt64(n int64) (I16, bool) {
	return I16(n), n >= math.MinInt16 && n <= math.MaxInt16
}

func (I16) FromBig(n *big.Int) (I16, bool) {
	if !n.IsInt64() {
		return 0, false
	}
	return I16(0).FromInt64(n.Int64())
}

// I32 is the 32-bit backing.
type I32 int32

func (x I32) Width() Width                { return W32 }
func (x I32) Sign() int                   { return signFixed(x) }
func (x I32) Cmp(y I32) int               { return cmpFixed(x, y) }
func (x I32) IsMin() bool                 { return x == math.MinInt32 }
func (x I32) Add(y I32) (I32, bool)       { return addFixed(x, y) }
func (x I32) Sub(y I32) (I32, bool)       { return subFixed(x, y) }
func (x I32) Mul(y I32) (I32, bool)       { return mulFixed(x, y, math.MinInt32) }
func (x I32) Neg() (I32, bool)            { return negFixed(x, math.MinInt32) }
func (x I32) Quo(y I32) I32               { return x / y }
func (x I32) Rem(y I32) I32               { return x % y }
func (x I32) Int64() (int64, bool)        { return int64(x), true }
func (x I32) Big() *big.Int               { return big.NewInt(int64(x)) }
func (x I32) String() string              { return strconv.FormatInt(int64(x), 10) }
func (I32) Bounds() (lo, hi I32, ok bool) { return math.MinInt32, math.MaxInt32, true }

func (I32) FromInt64(n int64) (I32, bool) {
	return I32(n), n >= math.MinInt32 && n <= math.MaxInt32
}

func (I32) FromBig(n *big.Int) (I32, bool) {
	if !n.IsInt64() {
		return 0, false
	}
	return I32(0).FromInt64(n.Int64())
}

// I64 is the 64-bit backing.
type I64 int64

func (x I64) Width() Width                { return W64 }
func (x I64) Sign() int                   { return signFixed(x) }
func (x I64) Cmp(y I64) int               { return cmpFixed(x, y) }
func (x I64) IsMin() bool                 { return x == math.MinInt64 }
func (x I64) Add(y I64) (I64, bool)       { return addFixed(x, y) }
func (x I64) Sub(y I64) (I64, bool)       { return subFixed(x, y) }
func (x I64) Mul(y I64) (I64, bool)       { return mulFixed(x, y, math.MinInt64) }
func (x I64) Neg() (I64, bool)            { return negFixed(x, math.MinInt64) }
func (x I64) Quo(y I64) I64               { return x / y }
func (x I64) Rem(y I64) I64               { return x % y }
func (x I64) Int64() (int64, bool)        { return int64(x), true }
func (x I64) Big() *big.Int               { return big.NewInt(int64(x)) }
func (x I64) String() string              { return strconv.FormatInt(int64(x), 10) }
func (I64) Bounds() (lo, hi I64, ok bool) { return math.MinInt64, math.MaxInt64, true }

func (I64) FromInt64(n int64) (I64, bool) {
	return I64(n), n >= math.MinInt64 && n <= math.MaxInt64
}

func (I64) FromBig(n *big.Int) (I64, bool) {
	if !n.IsInt64() {
		return 0, false
	}
	return I64(0).FromInt64(n.Int64())
}

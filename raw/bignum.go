package raw

import "math/big"

var bigZero = new(big.Int)

// Big is the arbitrary-precision backing. Its Width is Unbounded and its
// arithmetic never overflows. The zero value is 0.
type Big struct {
	v *big.Int
}

// NewBig copies n into a Big.
func NewBig(n *big.Int) Big {
	return Big{v: new(big.Int).Set(n)}
}

// BigFrom64 converts an int64.
func BigFrom64(n int64) Big {
	return Big{v: big.NewInt(n)}
}

func (x Big) val() *big.Int {
	if x.v == nil {
		return bigZero
	}
	return x.v
}

func (x Big) Width() Width     { return Unbounded }
func (x Big) Sign() int        { return x.val().Sign() }
func (x Big) Cmp(y Big) int    { return x.val().Cmp(y.val()) }
func (x Big) IsMin() bool      { return false }
func (x Big) Big() *big.Int    { return new(big.Int).Set(x.val()) }
func (x Big) String() string   { return x.val().String() }
func (x Big) Quo(y Big) Big    { return Big{v: new(big.Int).Quo(x.val(), y.val())} }
func (x Big) Rem(y Big) Big    { return Big{v: new(big.Int).Rem(x.val(), y.val())} }
func (x Big) Neg() (Big, bool) { return Big{v: new(big.Int).Neg(x.val())}, true }

func (x Big) Add(y Big) (Big, bool) {
	return Big{v: new(big.Int).Add(x.val(), y.val())}, true
}

func (x Big) Sub(y Big) (Big, bool) {
	return Big{v: new(big.Int).Sub(x.val(), y.val())}, true
}

func (x Big) Mul(y Big) (Big, bool) {
	return Big{v: new(big.Int).Mul(x.val(), y.val())}, true
}

func (x Big) Int64() (int64, bool) {
	if !x.val().IsInt64() {
		return 0, false
	}
	return x.val().Int64(), true
}

func (Big) FromInt64(n int64) (Big, bool)  { return BigFrom64(n), true }
func (Big) FromBig(n *big.Int) (Big, bool) { return NewBig(n), true }

// Bounds reports ok == false: Big has no minimum or maximum.
func (Big) Bounds() (lo, hi Big, ok bool) { return Big{}, Big{}, false }

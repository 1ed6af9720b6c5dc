package raw

import (
	"fmt"
	"math/big"
	"strconv"
)

// Width is a bit-width. Unbounded marks the arbitrary-precision backing.
type Width uint16

const (
	Unbounded Width = 0
	W8        Width = 8
	W16       Width = 16
	W32       Width = 32
	W64       Width = 64
	W128      Width = 128
)

// Widths lists the fixed widths in ascending order.
var Widths = []Width{W8, W16, W32, W64, W128}

// String returns the bit count, or "big" for Unbounded.
func (w Width) String() string {
	if w == Unbounded {
		return "big"
	}
	return strconv.Itoa(int(w))
}

// Covers reports whether every value of width o is representable at w.
func (w Width) Covers(o Width) bool {
	if w == Unbounded {
		return true
	}
	return o != Unbounded && o <= w
}

// ParseWidth parses "8", "16", "32", "64", "128" or "big".
func ParseWidth(s string) (Width, error) {
	if s == "big" {
		return Unbounded, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid width %q", s)
	}
	for _, w := range Widths {
		if int(w) == n {
			return w, nil
		}
	}
	return 0, fmt.Errorf("invalid width %q: must be one of 8, 16, 32, 64, 128, big", s)
}

// Backing is the raw-value contract.
//
// Methods that construct a value from outside (FromInt64, FromBig, Bounds)
// ignore their receiver; call them on the zero value:
//
//	var zero T
//	v, ok := zero.FromInt64(42)
//
// Quo and Rem truncate toward zero. Their divisor must be non-zero and the
// pair must not be (MIN, -1); the division package enforces both.
type Backing[T any] interface {
	Width() Width
	Sign() int
	Cmp(y T) int
	IsMin() bool

	Add(y T) (T, bool)
	Sub(y T) (T, bool)
	Mul(y T) (T, bool)
	Neg() (T, bool)
	Quo(y T) T
	Rem(y T) T

	Int64() (int64, bool)
	Big() *big.Int
	FromInt64(n int64) (T, bool)
	FromBig(n *big.Int) (T, bool)
	Bounds() (min, max T, bounded bool)

	String() string
}

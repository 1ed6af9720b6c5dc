// Package raw provides the backing primitives for boundint values.
//
// A backing is a fixed-width two's-complement integer (I8, I16, I32, I64,
// I128) or the arbitrary-precision Big. Every backing implements Backing,
// the raw-value contract consumed by the division, square-root and typed
// layers:
//
//	sum, ok := raw.I8(100).Add(raw.I8(27))  // 127, true
//	_, ok = raw.I8(100).Add(raw.I8(28))     // ok == false: overflow
//
// Backings never trap. Arithmetic reports overflow through a boolean and
// conversions report loss of range the same way; callers decide whether a
// failure traps or is returned.
//
// Values are immutable. Big copies on the way in and on the way out so
// that no *big.Int is ever shared between two backings.
package raw

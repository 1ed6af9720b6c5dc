// Package boundint provides fixed-width integers that carry a sign/zero
// domain in their type.
//
// An Int[D, T] is an immutable value of backing T (raw.I8 ... raw.I128,
// or raw.Big) that is guaranteed to be a member of domain D:
//
//	p := boundint.New[boundint.Positive](raw.I8(4))   // PositiveI8
//	q := boundint.Add(p, boundint.New[boundint.Positive](raw.I8(3)))
//	fmt.Println(q)                                     // 7
//
// Construction comes in two styles. New traps (panics with an *arith.Error)
// when the value is not a member and is meant for statically known input
// such as literals; TryNew returns the error instead.
//
// Arithmetic operators (Add, Sub, Mul, Quo, Rem and Neg) combine a left
// operand with a right operand of any domain and of equal or narrower width.
// The right operand is widened first, the result keeps the left operand's
// domain and width, and the result is re-validated. Overflow and domain
// violations both trap; there is no checked operator family.
//
// Division under an explicit rounding policy (DivFloor, CheckedDivFloor,
// DivRemHalfEven, ...) and the square-root family (SqrtFloor, ...) are the
// recoverable alternatives for the operations that can fail on valid input.
//
// All values are safe to copy and share between goroutines.
package boundint

package raw

// fixed is the set of Go integer kinds behind I8..I64.
type fixed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Generic arithmetic wraps at the width of T, so overflow is detected by
// comparing the wrapped result against the operands.

func addFixed[T fixed](a, b T) (T, bool) {
	c := a + b
	return c, (c > a) == (b > 0)
}

func subFixed[T fixed](a, b T) (T, bool) {
	c := a - b
	return c, (c < a) == (b > 0)
}

func mulFixed[T fixed](a, b, minimum T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if (a == -1 && b == minimum) || (b == -1 && a == minimum) {
		return c, false
	}
	return c, c/b == a
}

func negFixed[T fixed](a, minimum T) (T, bool) {
	return -a, a != minimum
}

func signFixed[T fixed](a T) int {
	switch {
	case a < 0:
		return -1
	case a > 0:
		return 1
	}
	return 0
}

func cmpFixed[T fixed](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

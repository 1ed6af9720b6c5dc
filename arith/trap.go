package arith

// Trap aborts the current computation with err.
//
// Trap never returns. The panic value is err itself so that a recovered
// value can be inspected with errors.As.
func Trap(err *Error) {
	panic(err)
}

// Trapf is shorthand for Trap(New(code, op, format, args...)).
func Trapf(code ErrorCode, op, format string, args ...any) {
	panic(New(code, op, format, args...))
}

// Must returns v or traps with err.
func Must[T any](v T, err error) T {
	if err != nil {
		if e, ok := err.(*Error); ok {
			panic(e)
		}
		panic(err)
	}
	return v
}

// Catch runs fn and converts a trap raised inside it into an error.
//
// Only *Error panics are recovered. Any other panic is a genuine bug and is
// re-raised unchanged.
func Catch(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(*Error); ok {
			err = e
			return
		}
		panic(r)
	}()
	fn()
	return nil
}

// IsTrap reports whether fn traps.
func IsTrap(fn func()) bool {
	return Catch(fn) != nil
}

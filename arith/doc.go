// Package arith defines the failure vocabulary shared by every boundint package.
//
// Two failure styles coexist and are never blended:
//   - Trapping entry points abort the current computation by panicking with
//     an *Error. A trap signals a programming error: the caller promised the
//     operands were valid and they were not.
//   - Checked entry points return (value, error). The error is always an
//     *Error whose Code names the failure kind.
//
// Catch converts a trap back into an ordinary error for the few callers that
// must survive one (the CLI and the scenario harness). Library code never
// recovers.
package arith

// Package harness runs boundint scenarios: YAML files that list operations
// together with their expected values or error codes.
//
// # Scenario Format
//
//	name: positive_arithmetic
//	description: "Positive operands stay positive or trap"
//	steps:
//	  - op: add
//	    left: { domain: positive, width: 8, value: 4 }
//	    right: { domain: positive, width: 8, value: 3 }
//	    expect: { value: 7 }
//	  - op: div
//	    policy: half_even
//	    left: { domain: any, width: 8, value: 6 }
//	    right: { domain: any, width: 8, value: 4 }
//	    expect: { value: 2, remainder: -2 }
//	  - op: narrow
//	    left: { domain: any, width: 64, value: 300 }
//	    to: { width: 8 }
//	    expect: { error: OVERFLOW }
//	assertions:
//	  - type: trace_count
//	    op: add
//	    count: 1
//
// Widths are 8, 16, 32, 64, 128 or "big". Values may be written as YAML
// integers or as quoted decimal strings; quoting is only needed for
// literals beyond what a YAML reader is expected to handle.
//
// Files are checked against an embedded CUE schema before being decoded,
// so unknown fields and misspelt operation names are rejected with a
// position.
//
// # Assertion Types
//
//   - trace_contains: an op appears in the trace, optionally failing with a
//     given error code
//   - trace_order: ops appear in the given order
//   - trace_count: an op appears exactly N times
//
// # Deterministic Traces
//
// Every step produces one trace event numbered from 1. The trace of a run
// is serialized as canonical JSON and compared against
// testdata/golden/<name>.golden with RunWithGolden.
package harness

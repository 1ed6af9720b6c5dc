package division

import (
	"fmt"
	"strings"
)

// Policy selects a quotient rounding rule.
type Policy uint8

const (
	Trunc Policy = iota
	Euclid
	Floor
	Ceil
	HalfAway
	HalfEven
)

// Policies lists every policy in declaration order.
var Policies = []Policy{Trunc, Euclid, Floor, Ceil, HalfAway, HalfEven}

var policyNames = [...]string{
	Trunc:    "trunc",
	Euclid:   "euclid",
	Floor:    "floor",
	Ceil:     "ceil",
	HalfAway: "half_away",
	HalfEven: "half_even",
}

func (p Policy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}
	return fmt.Sprintf("Policy(%d)", uint8(p))
}

// ParsePolicy parses a policy name; "-" and "_" are interchangeable.
func ParsePolicy(s string) (Policy, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for p, name := range policyNames {
		if name == norm {
			return Policy(p), nil
		}
	}
	return 0, fmt.Errorf("unknown division policy %q", s)
}

package domain

import (
	"fmt"
	"strings"
)

// Kind identifies a sign/zero domain.
type Kind uint8

const (
	Any Kind = iota
	NonZero
	Positive
	NonNegative
	Negative
	NonPositive
)

// Kinds lists every domain in declaration order.
var Kinds = []Kind{Any, NonZero, Positive, NonNegative, Negative, NonPositive}

var kindNames = [...]string{
	Any:         "any",
	NonZero:     "nonzero",
	Positive:    "positive",
	NonNegative: "nonnegative",
	Negative:    "negative",
	NonPositive: "nonpositive",
}

// String returns the lower-case name used by the CLI and scenario files.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k is one of the six declared domains.
func (k Kind) Valid() bool {
	return int(k) < len(kindNames)
}

// ParseKind parses a domain name. Matching ignores case, "-" and "_", so
// "non_zero", "NonZero" and "nonzero" are equivalent.
func ParseKind(s string) (Kind, error) {
	norm := strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(strings.TrimSpace(s)))
	for k, name := range kindNames {
		if name == norm {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown domain %q", s)
}

// Accepts is the domain invariant validator. sign is the sign of the raw
// value (-1, 0 or +1). Accepts is pure and total.
func (k Kind) Accepts(sign int) bool {
	switch k {
	case Any:
		return true
	case NonZero:
		return sign != 0
	case Positive:
		return sign > 0
	case NonNegative:
		return sign >= 0
	case Negative:
		return sign < 0
	case NonPositive:
		return sign <= 0
	}
	return false
}

// CanZero reports whether 0 is a member of k.
func (k Kind) CanZero() bool { return k.Accepts(0) }

// CanOne reports whether 1 is a member of k.
func (k Kind) CanOne() bool { return k.Accepts(1) }

// CanNegOne reports whether -1 is a member of k.
func (k Kind) CanNegOne() bool { return k.Accepts(-1) }

// Includes reports whether every member of k is also a member of other.
// A conversion from k to other can then never fail.
func (k Kind) Includes(other Kind) bool {
	for _, sign := range [...]int{-1, 0, 1} {
		if k.Accepts(sign) && !other.Accepts(sign) {
			return false
		}
	}
	return true
}

// Negated returns the domain holding the negations of k's members.
func (k Kind) Negated() Kind {
	switch k {
	case Positive:
		return Negative
	case Negative:
		return Positive
	case NonNegative:
		return NonPositive
	case NonPositive:
		return NonNegative
	}
	return k
}

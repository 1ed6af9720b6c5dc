package boundint

import "github.com/roach88/boundint/domain"

// Domain is implemented by the six domain marker types. A marker is a
// zero-size type whose only role is to select a domain.Kind at compile time.
type Domain interface {
	Kind() domain.Kind
}

type (
	// Any admits every value.
	Any struct{}
	// NonZero admits every value except 0.
	NonZero struct{}
	// Positive admits values > 0.
	Positive struct{}
	// NonNegative admits values >= 0.
	NonNegative struct{}
	// Negative admits values < 0.
	Negative struct{}
	// NonPositive admits values <= 0.
	NonPositive struct{}
)

func (Any) Kind() domain.Kind         { return domain.Any }
func (NonZero) Kind() domain.Kind     { return domain.NonZero }
func (Positive) Kind() domain.Kind    { return domain.Positive }
func (NonNegative) Kind() domain.Kind { return domain.NonNegative }
func (Negative) Kind() domain.Kind    { return domain.Negative }
func (NonPositive) Kind() domain.Kind { return domain.NonPositive }

func kindOf[D Domain]() domain.Kind {
	var d D
	return d.Kind()
}

package boundint

import "github.com/roach88/boundint/raw"

// Concrete domain and width combinations.
type (
	AnyI8   = Int[Any, raw.I8]
	AnyI16  = Int[Any, raw.I16]
	AnyI32  = Int[Any, raw.I32]
	AnyI64  = Int[Any, raw.I64]
	AnyI128 = Int[Any, raw.I128]

	NonZeroI8   = Int[NonZero, raw.I8]
	NonZeroI16  = Int[NonZero, raw.I16]
	NonZeroI32  = Int[NonZero, raw.I32]
	NonZeroI64  = Int[NonZero, raw.I64]
	NonZeroI128 = Int[NonZero, raw.I128]

	PositiveI8   = Int[Positive, raw.I8]
	PositiveI16  = Int[Positive, raw.I16]
	PositiveI32  = Int[Positive, raw.I32]
	PositiveI64  = Int[Positive, raw.I64]
	PositiveI128 = Int[Positive, raw.I128]

	NonNegativeI8   = Int[NonNegative, raw.I8]
	NonNegativeI16  = Int[NonNegative, raw.I16]
	NonNegativeI32  = Int[NonNegative, raw.I32]
	NonNegativeI64  = Int[NonNegative, raw.I64]
	NonNegativeI128 = Int[NonNegative, raw.I128]

	NegativeI8   = Int[Negative, raw.I8]
	NegativeI16  = Int[Negative, raw.I16]
	NegativeI32  = Int[Negative, raw.I32]
	NegativeI64  = Int[Negative, raw.I64]
	NegativeI128 = Int[Negative, raw.I128]

	NonPositiveI8   = Int[NonPositive, raw.I8]
	NonPositiveI16  = Int[NonPositive, raw.I16]
	NonPositiveI32  = Int[NonPositive, raw.I32]
	NonPositiveI64  = Int[NonPositive, raw.I64]
	NonPositiveI128 = Int[NonPositive, raw.I128]
)

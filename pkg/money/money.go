package money

import (
	"math"

	"github.com/shopspring/decimal"
)

// Cents is a monetary amount in integer minor currency units. Storage and
// comparison always happen in Cents; decimal or float values appear only as
// intermediates and are rounded back before use.
type Cents int64

// FromDecimal rounds a decimal cents value half away from zero.
func FromDecimal(d decimal.Decimal) Cents {
	return Cents(d.Round(0).IntPart())
}

// FromFloat rounds a float cents value half away from zero.
func FromFloat(f float64) Cents {
	return Cents(math.Round(f))
}

// Decimal returns the amount as a decimal cents value.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(c))
}

// Mul multiplies by a decimal factor and rounds back to whole cents.
func (c Cents) Mul(factor decimal.Decimal) Cents {
	return FromDecimal(c.Decimal().Mul(factor))
}

// Abs returns the magnitude of the amount.
func (c Cents) Abs() Cents {
	if c < 0 {
		return -c
	}
	return c
}

// String formats the amount as a plain decimal currency value, e.g. "1234.56".
func (c Cents) String() string {
	return c.Decimal().Div(decimal.NewFromInt(100)).StringFixed(2)
}

// Format formats the amount with a currency symbol.
func (c Cents) Format() string {
	return "$" + c.String()
}

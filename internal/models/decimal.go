package models

import (
	"github.com/shopspring/decimal"
)

// Decimal is a custom type for decimal.Decimal
// the difference from `shopspring` is the json representation is without quotes
// for example the result of this type is 10 instead of "10"
//
// WARNING: if client side is using javascript and unmarshalling this type, the precision will be lost
// since javascript will unmarshal JSON numbers to IEEE 754 double-precision floating point numbers
type Decimal struct {
	decimal.Decimal
}

var Zero = Decimal{decimal.Zero}

func NewDecimalFromExternal(d decimal.Decimal) Decimal {
	return Decimal{d}
}

func NewDecimal(value string) (Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Decimal{}, err
	}

	return Decimal{d}, nil
}

// MustDecimal is meant for constants and tests.
func MustDecimal(value string) Decimal {
	return Decimal{decimal.RequireFromString(value)}
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d Decimal) Add(o Decimal) Decimal {
	return Decimal{d.Decimal.Add(o.Decimal)}
}

func (d Decimal) Sub(o Decimal) Decimal {
	return Decimal{d.Decimal.Sub(o.Decimal)}
}

func (d Decimal) Neg() Decimal {
	return Decimal{d.Decimal.Neg()}
}

func (d Decimal) Abs() Decimal {
	return Decimal{d.Decimal.Abs()}
}

func (d Decimal) Equal(o Decimal) bool {
	return d.Decimal.Equal(o.Decimal)
}

// SumDecimals adds every value, starting from zero.
func SumDecimals(values ...Decimal) Decimal {
	total := Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// Package money converts human entered currency amounts to integer minor units.
package money

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// MinorUnits is the number of minor units in one major unit (cents per dollar).
const MinorUnits = 100

// MaxScale is the most decimal places an amount may carry.
const MaxScale = 20

// MaxAmount bounds the magnitude of an accepted amount. Its minor value is far
// inside the int64 range.
var MaxAmount = decimal.New(1, 15)

// maxExponent is the largest exponent a non zero amount within MaxAmount can have.
const maxExponent = 15

var hundred = decimal.NewFromInt(MinorUnits)

// Amount is a decimal value together with its minor unit representation.
type Amount struct {
	Decimal decimal.Decimal
	Minor   int64
}

// Parse reads a decimal amount such as "19.99". Surrounding whitespace is ignored.
// Amounts beyond MaxAmount or with more than MaxScale decimal places are rejected.
func Parse(value string) (out decimal.Decimal, err error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return out, errors.New("amount is empty")
	} else if out, err = decimal.NewFromString(value); err != nil {
		return out, errors.Wrapf(err, "amount %q is not a decimal number", value)
	} else if out.IsZero() {
		return decimal.Zero, nil
	}
	// exponents are checked before comparing so "1e100000000" is never expanded
	if out.Exponent() < -MaxScale {
		return decimal.Zero, errors.Errorf("amount %q has more than %d decimal places", value, MaxScale)
	} else if out.Exponent() > maxExponent || out.Abs().GreaterThan(MaxAmount) {
		return decimal.Zero, errors.Errorf("amount %q exceeds %s", value, MaxAmount.String())
	}
	return
}

// ToMinor multiplies by 100 using exact decimal arithmetic and rounds half away
// from zero. Negative amounts stay negative.
func ToMinor(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}

// FromFloat uses the shortest decimal representation of f, so 19.99 stays 19.99
// instead of 19.989999999999998436805981327779591083526611328125.
func FromFloat(f float64) int64 {
	return ToMinor(decimal.NewFromFloat(f))
}

// Normalize parses value and returns both representations.
func Normalize(value string) (out Amount, err error) {
	if out.Decimal, err = Parse(value); err != nil {
		return
	}
	out.Minor = ToMinor(out.Decimal)
	return
}

// Whole is the integer part of the amount with the fraction discarded.
func (a Amount) Whole() int64 {
	return a.Decimal.Truncate(0).IntPart()
}

func (a Amount) String() string {
	return a.Decimal.StringFixed(2)
}

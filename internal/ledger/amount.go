package ledger

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var maxAmount = decimal.NewFromInt(math.MaxInt64)

// Input bounds checked before any arithmetic. Rescaling 1e20000000 to a whole
// number allocates a coefficient with twenty million digits.
const (
	maxExponent = 18
	maxDigits   = 38
)

// ParseAmount converts user input into a whole positive amount.
//
// The input must be a finite decimal number with no fractional part, greater
// than zero and within int64. "150", " 150 " and "150.00" are accepted;
// "", "abc", "NaN", "Inf", "-5", "0" and "12.5" are ErrInvalidAmount.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return AmountFromDecimal(d)
}

// AmountFromDecimal applies the same rules as ParseAmount to an already decoded number.
func AmountFromDecimal(d decimal.Decimal) (int64, error) {
	if exp := d.Exponent(); exp > maxExponent || exp < -maxExponent || d.NumDigits() > maxDigits {
		return 0, ErrInvalidAmount
	}
	if !d.IsPositive() || !d.Equal(d.Truncate(0)) || d.GreaterThan(maxAmount) {
		return 0, ErrInvalidAmount
	}
	return d.IntPart(), nil
}

// Percent returns part*100/whole rounded half away from zero, or 0 when whole is 0.
func Percent(part, whole int64) int64 {
	if whole == 0 {
		return 0
	}
	return decimal.NewFromInt(part).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(whole)).
		Round(0).
		IntPart()
}

// Display formats an amount with the fixed currency symbol.
func Display(amount int64) string {
	if amount < 0 {
		return "-₹" + decimal.NewFromInt(-amount).String()
	}
	return "₹" + decimal.NewFromInt(amount).String()
}

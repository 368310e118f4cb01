package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// amountPlaces is the currency precision amounts are rounded to.
const amountPlaces = 2

// Bounds on parsed amounts. Exponents are checked before rounding.
const (
	maxExponent = 15
	minExponent = -18
)

// maxAmount is the largest magnitude accepted: one quadrillion.
var maxAmount = decimal.New(1, maxExponent)

// ParseAmount parses user-entered text into a currency amount rounded to two
// decimal places. field names the input in the returned ValidationError.
// Sign is not checked here; callers decide which range is valid.
func ParseAmount(field, s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ValidationError{Field: field, Value: s, Reason: "is required"}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ValidationError{Field: field, Value: s, Reason: "is not a valid number"}
	}
	if d.IsZero() {
		return decimal.Zero, nil
	}
	if d.Exponent() > maxExponent {
		return decimal.Zero, ValidationError{Field: field, Value: s, Reason: "is too large"}
	}
	if d.Exponent() < minExponent {
		return decimal.Zero, ValidationError{Field: field, Value: s, Reason: "has too many decimal places"}
	}
	if d.Abs().GreaterThan(maxAmount) {
		return decimal.Zero, ValidationError{Field: field, Value: s, Reason: "is too large"}
	}
	return d.Round(amountPlaces), nil
}

func parsePositive(field, s string) (decimal.Decimal, error) {
	d, err := ParseAmount(field, s)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsPositive() {
		return decimal.Zero, ValidationError{Field: field, Value: strings.TrimSpace(s), Reason: "must be positive"}
	}
	return d, nil
}

// Package money converts between user-entered amount text and decimal
// values, and renders amounts as currency strings.
package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount reports input that cannot be read as a monetary amount.
var ErrInvalidAmount = errors.New("invalid amount")

// Parse reads an amount from user input. Comma and dot are both accepted
// as the decimal separator.
func Parse(input string) (decimal.Decimal, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	s = strings.Replace(s, ",", ".", 1)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// Format renders an amount with exactly two fraction digits and a dot
// separator, e.g. "R$ 1500.00", regardless of how it was entered.
func Format(amount decimal.Decimal, symbol string) string {
	return symbol + " " + amount.StringFixed(2)
}

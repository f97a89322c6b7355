package entity

import "github.com/shopspring/decimal"

// AmountScale is the number of fractional digits kept for receipt amounts
const AmountScale = 2

// FormatAmount renders an optional amount with exactly two decimal places
func FormatAmount(amount *decimal.Decimal) *string {
	if amount == nil {
		return nil
	}
	formatted := amount.StringFixed(AmountScale)
	return &formatted
}

// RoundAmount rounds an amount to the stored precision
func RoundAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(AmountScale)
}

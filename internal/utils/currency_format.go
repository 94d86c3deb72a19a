package utils

import "github.com/shopspring/decimal"

// DisplayPrecision is the number of decimal places amounts are rounded to for display.
const DisplayPrecision = 2

// FormatWithPrecision formats an amount with the given precision
// Example: amount 12.3456 with precision 2 returns "12.35"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// RoundForDisplay rounds an amount half away from zero to DisplayPrecision places.
func RoundForDisplay(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(DisplayPrecision)
}

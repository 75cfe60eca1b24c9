package utils

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatMMK renders an amount the way the client header shows it: grouped
// thousands, no decimal places.
// Example: 1234567.8 returns "1,234,568"
func FormatMMK(amount decimal.Decimal) string {
	return humanize.CommafWithDigits(amount.Round(0).InexactFloat64(), 0)
}

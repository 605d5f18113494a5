package output

import (
	"github.com/rpgo/synthfeed/pkg/decimal"
	shop "github.com/shopspring/decimal"
)

// FormatValue formats a feed value with exactly five decimals.
func FormatValue(v float64) string { return decimal.NewPrice(v).String() }

// FormatSigned formats a price change with an explicit sign.
func FormatSigned(p decimal.Price) string {
	if p.Decimal.IsNegative() {
		return p.String()
	}
	return "+" + p.String()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount shop.Decimal) string { return amount.StringFixed(2) + "%" }

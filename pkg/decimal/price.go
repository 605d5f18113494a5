package decimal

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// PricePlaces is the number of decimals a feed value carries.
const PricePlaces = 5

// Price represents a synthetic feed value with fixed display precision
type Price struct {
	decimal.Decimal
}

// NewPrice creates a new Price from a float64
func NewPrice(value float64) Price {
	return Price{decimal.NewFromFloat(value)}
}

// Sub subtracts another Price
func (p Price) Sub(other Price) Price {
	return Price{p.Decimal.Sub(other.Decimal)}
}

// ChangePercent returns the percentage change from base to p. A zero base yields zero.
func (p Price) ChangePercent(base Price) decimal.Decimal {
	if base.Decimal.IsZero() {
		return decimal.Zero
	}
	return p.Decimal.Sub(base.Decimal).Div(base.Decimal).Mul(decimal.NewFromInt(100))
}

// LessThan checks if this price is less than another
func (p Price) LessThan(other Price) bool {
	return p.Decimal.LessThan(other.Decimal)
}

// GreaterThan checks if this price is greater than another
func (p Price) GreaterThan(other Price) bool {
	return p.Decimal.GreaterThan(other.Decimal)
}

// Min returns the lower of two prices
func Min(a, b Price) Price {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the higher of two prices
func Max(a, b Price) Price {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// String returns the value with exactly PricePlaces decimals
func (p Price) String() string {
	return p.Decimal.StringFixed(PricePlaces)
}

// RoundFloat rounds v to the given number of decimal places, correctly rounded from the
// exact binary value of v.
// NaN and infinities are returned unchanged.
func RoundFloat(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return r
}

package calculation

import (
	"github.com/rpgo/synthfeed/internal/domain"
	"github.com/rpgo/synthfeed/pkg/decimal"
	shop "github.com/shopspring/decimal"
)

// SeriesSummary condenses a feed into the figures shown in console reports.
type SeriesSummary struct {
	Points        int           `json:"points"`
	FirstDate     string        `json:"first_date"`
	LastDate      string        `json:"last_date"`
	First         decimal.Price `json:"first"`
	Last          decimal.Price `json:"last"`
	Min           decimal.Price `json:"min"`
	Max           decimal.Price `json:"max"`
	Change        decimal.Price `json:"change"`
	ChangePercent shop.Decimal  `json:"change_percent"`
}

// Summarize computes first/last/min/max and the overall change of a feed.
// An empty feed yields a zero summary.
func Summarize(points []domain.TimePoint) SeriesSummary {
	if len(points) == 0 {
		return SeriesSummary{}
	}

	first := decimal.NewPrice(points[0].Value)
	last := decimal.NewPrice(points[len(points)-1].Value)
	lo, hi := first, first
	for _, p := range points[1:] {
		v := decimal.NewPrice(p.Value)
		lo = decimal.Min(lo, v)
		hi = decimal.Max(hi, v)
	}

	return SeriesSummary{
		Points:        len(points),
		FirstDate:     points[0].Time,
		LastDate:      points[len(points)-1].Time,
		First:         first,
		Last:          last,
		Min:           lo,
		Max:           hi,
		Change:        last.Sub(first),
		ChangePercent: last.ChangePercent(first),
	}
}

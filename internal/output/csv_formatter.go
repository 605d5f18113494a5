package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/synthfeed/internal/domain"
)

// CSVFormatter exports every point of every panel, one row per point, panels in display order.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(dashboard *domain.Dashboard) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"chart", "seed", "time", "value"}); err != nil {
		return nil, err
	}
	for _, p := range dashboard.Panels {
		seed := strconv.FormatInt(p.Seed, 10)
		for _, pt := range p.Points() {
			if err := w.Write([]string{p.Key, seed, pt.Time, FormatValue(pt.Value)}); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package domain

// TimePoint is a single dated sample of a synthetic feed.
type TimePoint struct {
	Time  string  `json:"time"`  // ISO calendar date, YYYY-MM-DD
	Value float64 `json:"value"` // rounded to 5 decimals
}

// SeriesTypeBaseline is the only series type the dashboard renders.
const SeriesTypeBaseline = "Baseline"

// Series is one drawable series as the charting widget expects it.
type Series struct {
	Type    string          `json:"type"`
	Data    []TimePoint     `json:"data"`
	Options BaselineOptions `json:"options"`
}

// BaseValue anchors the baseline series; values above and below it are coloured differently.
type BaseValue struct {
	Type  string  `json:"type"`
	Price float64 `json:"price"`
}

// BaselineOptions holds the cosmetic options of a baseline series. None of them affect the data.
type BaselineOptions struct {
	BaseValue        BaseValue `json:"baseValue"`
	TopLineColor     string    `json:"topLineColor"`
	TopFillColor1    string    `json:"topFillColor1"`
	TopFillColor2    string    `json:"topFillColor2"`
	BottomLineColor  string    `json:"bottomLineColor"`
	BottomFillColor1 string    `json:"bottomFillColor1"`
	BottomFillColor2 string    `json:"bottomFillColor2"`
	LineWidth        int       `json:"lineWidth"`
}

// Background of the chart canvas.
type Background struct {
	Type  string `json:"type"`
	Color string `json:"color"`
}

// Layout controls text and background of the chart canvas.
type Layout struct {
	TextColor  string     `json:"textColor"`
	Background Background `json:"background"`
}

// LineVisibility toggles a set of grid lines.
type LineVisibility struct {
	Visible bool `json:"visible"`
}

// Grid toggles vertical and horizontal grid lines.
type Grid struct {
	VertLines LineVisibility `json:"vertLines"`
	HorzLines LineVisibility `json:"horzLines"`
}

// ScaleBorder styles an axis border.
type ScaleBorder struct {
	BorderColor string `json:"borderColor"`
}

// ChartOptions is the chart-level styling shared by every panel.
type ChartOptions struct {
	Layout          Layout      `json:"layout"`
	Grid            Grid        `json:"grid"`
	TimeScale       ScaleBorder `json:"timeScale"`
	RightPriceScale ScaleBorder `json:"rightPriceScale"`
	Height          int         `json:"height"`
}

// ChartSpec is the unit consumed by the display sink: styling plus the series payload.
type ChartSpec struct {
	Chart  ChartOptions `json:"chart"`
	Series []Series     `json:"series"`
}

// Panel is one titled chart on the dashboard together with the seed that produced it.
type Panel struct {
	Key   string    `json:"key"`
	Title string    `json:"title"`
	Seed  int64     `json:"seed"`
	Spec  ChartSpec `json:"spec"`
}

// Points returns the data of the panel's first series, or nil when the panel is empty.
func (p Panel) Points() []TimePoint {
	if len(p.Spec.Series) == 0 {
		return nil
	}
	return p.Spec.Series[0].Data
}

// Dashboard is everything needed to render one page view.
type Dashboard struct {
	Title           string  `json:"title"`
	Caption         string  `json:"caption"`
	RegenerateLabel string  `json:"regenerate_label"`
	Panels          []Panel `json:"panels"`
}

// Seeds returns the seeds of all panels in display order.
func (d *Dashboard) Seeds() SeedSet {
	seeds := make(SeedSet, len(d.Panels))
	for i, p := range d.Panels {
		seeds[i] = p.Seed
	}
	return seeds
}

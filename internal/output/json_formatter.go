package output

import (
	"encoding/json"

	"github.com/rpgo/synthfeed/internal/domain"
)

// JSONFormatter serializes the dashboard as the list of chart specs the display sink consumes.
type JSONFormatter struct {
	Indent bool
}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(dashboard *domain.Dashboard) ([]byte, error) {
	specs := chartSpecs(dashboard)
	if j.Indent {
		return json.MarshalIndent(specs, "", "  ")
	}
	return json.Marshal(specs)
}

// panelSpec flattens a panel into {key,title,seed,chart,series}.
type panelSpec struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Seed  int64  `json:"seed"`
	domain.ChartSpec
}

func chartSpecs(dashboard *domain.Dashboard) []panelSpec {
	specs := make([]panelSpec, 0, len(dashboard.Panels))
	for _, p := range dashboard.Panels {
		specs = append(specs, panelSpec{Key: p.Key, Title: p.Title, Seed: p.Seed, ChartSpec: p.Spec})
	}
	return specs
}

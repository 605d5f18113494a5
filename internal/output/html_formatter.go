package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/rpgo/synthfeed/internal/domain"
)

// ChartScriptURL is the lightweight-charts build the page loads.
const ChartScriptURL = "https://unpkg.com/lightweight-charts@4.1.3/dist/lightweight-charts.standalone.production.js"

// HTMLFormatter produces the dashboard page: title, caption, one column per panel and,
// when RegenerateAction is set, a button posting to it.
type HTMLFormatter struct {
	RegenerateAction string
}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/dashboard.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("dashboard").Funcs(template.FuncMap{
	"json": func(v interface{}) (template.JS, error) {
		b, err := json.Marshal(v)
		return template.JS(b), err
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(dashboard *domain.Dashboard) ([]byte, error) {
	var buf bytes.Buffer

	// page colours follow the first chart; config values are trusted
	data := struct {
		*domain.Dashboard
		RegenerateAction string
		ScriptURL        string
		Specs            []panelSpec
		Background       template.CSS
		TextColor        template.CSS
		Height           int
	}{
		Dashboard:        dashboard,
		RegenerateAction: h.RegenerateAction,
		ScriptURL:        ChartScriptURL,
		Specs:            chartSpecs(dashboard),
		Background:       "rgb(16,12,12)",
		TextColor:        "white",
		Height:           300,
	}
	if len(dashboard.Panels) > 0 {
		chart := dashboard.Panels[0].Spec.Chart
		data.Background = template.CSS(chart.Layout.Background.Color)
		data.TextColor = template.CSS(chart.Layout.TextColor)
		data.Height = chart.Height
	}

	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

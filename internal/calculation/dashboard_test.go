package calculation

import (
	"context"
	"testing"

	"github.com/rpgo/synthfeed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDashboardConfig(numPoints int) DashboardConfig {
	return DashboardConfig{
		Title:           "Welcome, Ben",
		Caption:         "Last login 10/05/25 00:31",
		RegenerateLabel: "Regenerate Data",
		Charts: []domain.ChartSettings{
			{Key: "area1", Title: "Chart 1 – Synthetic Feed A", DefaultSeed: 123},
			{Key: "area2", Title: "Chart 2 – Synthetic Feed B", DefaultSeed: 456},
		},
		Theme: domain.ThemeSettings{
			TextColor:        "white",
			BackgroundColor:  "rgb(16,12,12)",
			BorderColor:      "white",
			Height:           300,
			LineWidth:        1,
			TopLineColor:     "rgba( 38, 166, 154, 1)",
			BottomLineColor:  "rgba( 239, 83, 80, 1)",
			TopFillColor1:    "rgba( 38, 166, 154, 0.28)",
			BottomFillColor2: "rgba( 239, 83, 80, 0.28)",
		},
		NumPoints: numPoints,
	}
}

func TestDashboardBuilder_Build(t *testing.T) {
	builder := NewDashboardBuilder(testDashboardConfig(5), NewPathGenerator(DefaultPathConfig(), nil), nil)

	dash, err := builder.Build(context.Background(), builder.DefaultSeeds())
	require.NoError(t, err)
	require.Len(t, dash.Panels, 2)

	assert.Equal(t, "Welcome, Ben", dash.Title)
	assert.Equal(t, domain.SeedSet{123, 456}, dash.Seeds())

	first := dash.Panels[0]
	assert.Equal(t, "area1", first.Key)
	assert.Equal(t, "Chart 1 – Synthetic Feed A", first.Title)
	require.Len(t, first.Spec.Series, 1)
	series := first.Spec.Series[0]
	assert.Equal(t, "Baseline", series.Type)
	assert.Equal(t, []float64{1, 0.99412, 0.99972, 1.0007, 0.99222}, values(series.Data))
	assert.Equal(t, domain.BaseValue{Type: "price", Price: 1}, series.Options.BaseValue)
	assert.Equal(t, 1, series.Options.LineWidth)

	chart := first.Spec.Chart
	assert.Equal(t, 300, chart.Height)
	assert.Equal(t, "solid", chart.Layout.Background.Type)
	assert.Equal(t, "rgb(16,12,12)", chart.Layout.Background.Color)
	assert.False(t, chart.Grid.VertLines.Visible)
	assert.Equal(t, "white", chart.TimeScale.BorderColor)

	assert.Equal(t, []float64{1, 0.99697, 0.99536, 0.9996, 1.00362}, values(dash.Panels[1].Points()))
}

func TestDashboardBuilder_ParallelMatchesSequential(t *testing.T) {
	cfg := testDashboardConfig(200)
	cfg.MaxConcurrency = 1
	sequential := NewDashboardBuilder(cfg, NewPathGenerator(DefaultPathConfig(), nil), nil)
	cfg.MaxConcurrency = 8
	parallel := NewDashboardBuilder(cfg, NewPathGenerator(DefaultPathConfig(), nil), nil)

	seeds := domain.SeedSet{11, 22}
	a, err := sequential.Build(context.Background(), seeds)
	require.NoError(t, err)
	b, err := parallel.Build(context.Background(), seeds)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDashboardBuilder_SeedCountMismatch(t *testing.T) {
	builder := NewDashboardBuilder(testDashboardConfig(5), NewPathGenerator(DefaultPathConfig(), nil), nil)
	_, err := builder.Build(context.Background(), domain.SeedSet{1})
	assert.ErrorIs(t, err, ErrSeedCountMismatch)
}

func TestDashboardBuilder_CancelledContext(t *testing.T) {
	builder := NewDashboardBuilder(testDashboardConfig(5), NewPathGenerator(DefaultPathConfig(), nil), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := builder.Build(ctx, builder.DefaultSeeds())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDashboardBuilder_Defaults(t *testing.T) {
	builder := NewDashboardBuilder(DashboardConfig{}, NewPathGenerator(DefaultPathConfig(), nil), nil)
	assert.Equal(t, DefaultNumPoints, builder.config.NumPoints)
	assert.Equal(t, 4, builder.config.MaxConcurrency)
	assert.Empty(t, builder.DefaultSeeds())
}

func TestDashboardBuilder_PanelFollowsItsSeed(t *testing.T) {
	builder := NewDashboardBuilder(testDashboardConfig(3), NewPathGenerator(DefaultPathConfig(), nil), nil)

	dash, err := builder.Build(context.Background(), domain.SeedSet{123, 7})
	require.NoError(t, err)
	require.Len(t, dash.Panels, 2)
	assert.Equal(t, "area2", dash.Panels[1].Key)
	assert.Equal(t, int64(7), dash.Panels[1].Seed)
	assert.Equal(t, []float64{1, 1.00889, 1.00653}, values(dash.Panels[1].Points()))
	assert.Equal(t, domain.SeedSet{123, 7}, dash.Seeds())
}

func TestDashboardBuilder_BuildSeriesInvalid(t *testing.T) {
	builder := NewDashboardBuilder(testDashboardConfig(3), NewPathGenerator(DefaultPathConfig(), nil), nil)
	_, err := builder.BuildSeries(1, 0)
	assert.ErrorIs(t, err, ErrInvalidPointCount)
}

func TestNewDashboardConfig(t *testing.T) {
	cfg := &domain.Configuration{
		Dashboard:  domain.DashboardSettings{Title: "T", Caption: "C", RegenerateLabel: "R"},
		Generation: domain.GenerationSettings{NumPoints: 10},
		Charts:     []domain.ChartSettings{{Key: "k", DefaultSeed: 9}},
	}
	dc := NewDashboardConfig(cfg)
	assert.Equal(t, "T", dc.Title)
	assert.Equal(t, 10, dc.NumPoints)
	assert.Len(t, dc.Charts, 1)
}

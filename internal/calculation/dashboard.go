package calculation

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rpgo/synthfeed/internal/domain"
)

// ErrSeedCountMismatch is returned when the number of seeds differs from the number of charts.
var ErrSeedCountMismatch = errors.New("seed count does not match chart count")

// DashboardConfig holds everything the builder needs besides the generator.
type DashboardConfig struct {
	Title           string
	Caption         string
	RegenerateLabel string
	Charts          []domain.ChartSettings
	Theme           domain.ThemeSettings
	NumPoints       int
	MaxConcurrency  int
}

// NewDashboardConfig extracts the builder settings from a loaded configuration.
func NewDashboardConfig(cfg *domain.Configuration) DashboardConfig {
	return DashboardConfig{
		Title:           cfg.Dashboard.Title,
		Caption:         cfg.Dashboard.Caption,
		RegenerateLabel: cfg.Dashboard.RegenerateLabel,
		Charts:          cfg.Charts,
		Theme:           cfg.Dashboard.Theme,
		NumPoints:       cfg.Generation.NumPoints,
	}
}

// DashboardBuilder assembles the chart panels for a set of seeds.
type DashboardBuilder struct {
	config    DashboardConfig
	generator *PathGenerator
	logger    Logger
}

// NewDashboardBuilder creates a builder. A nil logger disables logging.
func NewDashboardBuilder(config DashboardConfig, generator *PathGenerator, logger Logger) *DashboardBuilder {
	if config.NumPoints <= 0 {
		config.NumPoints = DefaultNumPoints
	}
	if config.MaxConcurrency <= 0 {
		config.MaxConcurrency = 4
	}
	return &DashboardBuilder{config: config, generator: generator, logger: orNop(logger)}
}

// DefaultSeeds returns the configured default seed of every chart.
func (b *DashboardBuilder) DefaultSeeds() domain.SeedSet {
	seeds := make(domain.SeedSet, len(b.config.Charts))
	for i, ch := range b.config.Charts {
		seeds[i] = ch.DefaultSeed
	}
	return seeds
}

// Build generates one panel per configured chart, seeds[i] feeding chart i.
// Panels are generated concurrently; the result keeps chart order.
func (b *DashboardBuilder) Build(ctx context.Context, seeds domain.SeedSet) (*domain.Dashboard, error) {
	if len(seeds) != len(b.config.Charts) {
		return nil, fmt.Errorf("%w: %d seeds for %d charts", ErrSeedCountMismatch, len(seeds), len(b.config.Charts))
	}

	panels := make([]domain.Panel, len(b.config.Charts))
	errs := make([]error, len(b.config.Charts))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, b.config.MaxConcurrency)

	for i, chart := range b.config.Charts {
		wg.Add(1)
		go func(idx int, chart domain.ChartSettings, seed int64) {
			defer wg.Done()
			semaphore <- struct{}{}        // Acquire semaphore
			defer func() { <-semaphore }() // Release semaphore

			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}
			panel, err := b.buildPanel(chart, seed)
			if err != nil {
				errs[idx] = fmt.Errorf("chart %s: %w", chart.Key, err)
				return
			}
			panels[idx] = panel
		}(i, chart, seeds[i])
	}

	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	b.logger.Infof("built dashboard with %d panels, seeds=%v", len(panels), []int64(seeds))
	return &domain.Dashboard{
		Title:           b.config.Title,
		Caption:         b.config.Caption,
		RegenerateLabel: b.config.RegenerateLabel,
		Panels:          panels,
	}, nil
}

// BuildSeries wraps a freshly generated feed in a styled baseline series.
func (b *DashboardBuilder) BuildSeries(seed int64, numPoints int) (domain.Series, error) {
	data, err := b.generator.GenerateSeries(seed, numPoints)
	if err != nil {
		return domain.Series{}, err
	}
	return domain.Series{
		Type:    domain.SeriesTypeBaseline,
		Data:    data,
		Options: baselineOptions(b.config.Theme, b.generator.Config().Mean),
	}, nil
}

func (b *DashboardBuilder) buildPanel(chart domain.ChartSettings, seed int64) (domain.Panel, error) {
	series, err := b.BuildSeries(seed, b.config.NumPoints)
	if err != nil {
		return domain.Panel{}, err
	}
	return domain.Panel{
		Key:   chart.Key,
		Title: chart.Title,
		Seed:  seed,
		Spec: domain.ChartSpec{
			Chart:  chartOptions(b.config.Theme),
			Series: []domain.Series{series},
		},
	}, nil
}

func chartOptions(theme domain.ThemeSettings) domain.ChartOptions {
	return domain.ChartOptions{
		Layout: domain.Layout{
			TextColor:  theme.TextColor,
			Background: domain.Background{Type: "solid", Color: theme.BackgroundColor},
		},
		Grid: domain.Grid{
			VertLines: domain.LineVisibility{Visible: theme.GridVisible},
			HorzLines: domain.LineVisibility{Visible: theme.GridVisible},
		},
		TimeScale:       domain.ScaleBorder{BorderColor: theme.BorderColor},
		RightPriceScale: domain.ScaleBorder{BorderColor: theme.BorderColor},
		Height:          theme.Height,
	}
}

// baselineOptions anchors the baseline at the mean level of the walk.
func baselineOptions(theme domain.ThemeSettings, base float64) domain.BaselineOptions {
	return domain.BaselineOptions{
		BaseValue:        domain.BaseValue{Type: "price", Price: base},
		TopLineColor:     theme.TopLineColor,
		TopFillColor1:    theme.TopFillColor1,
		TopFillColor2:    theme.TopFillColor2,
		BottomLineColor:  theme.BottomLineColor,
		BottomFillColor1: theme.BottomFillColor1,
		BottomFillColor2: theme.BottomFillColor2,
		LineWidth:        theme.LineWidth,
	}
}

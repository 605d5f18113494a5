package calculation

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rpgo/synthfeed/internal/domain"
	"github.com/rpgo/synthfeed/pkg/dateutil"
	"github.com/rpgo/synthfeed/pkg/decimal"
)

// DefaultNumPoints is the length of a generated feed when the caller does not choose one.
const DefaultNumPoints = 50000

// DefaultStartDate is the date of the first point of every feed.
const DefaultStartDate = "2018-12-22"

// ErrInvalidPointCount is returned when a path of fewer than one point is requested.
var ErrInvalidPointCount = errors.New("number of points must be positive")

// ErrInvalidPathConfig is returned for process constants that make the recurrence meaningless.
var ErrInvalidPathConfig = errors.New("invalid path configuration")

// PathConfig holds the fixed constants of the mean-reverting, trend-following walk.
type PathConfig struct {
	InitialValue  float64   // S0
	Mean          float64   // level the walk reverts to
	MeanReversion float64   // pull towards Mean per step
	Drift         float64   // r
	TimeStep      float64   // year fraction per step
	Volatility    float64   // V
	TrendWeight   float64   // share of the trend added to each step
	TrendScale    float64   // divisor of the trend innovation
	TrendDecay    float64   // divisor of the trend decay
	InitialTrend  float64   // trend before the first step
	StartDate     time.Time // date of index 0
}

// DefaultPathConfig returns the constants of the dashboard feeds.
func DefaultPathConfig() PathConfig {
	return PathConfig{
		InitialValue:  1,
		Mean:          1,
		MeanReversion: 0.004,
		Drift:         0,
		TimeStep:      1.0 / 365,
		Volatility:    0.1,
		TrendWeight:   0.7,
		TrendScale:    2000,
		TrendDecay:    10,
		InitialTrend:  0,
		StartDate:     dateutil.MustParseISODate(DefaultStartDate),
	}
}

// NewPathConfig builds a PathConfig from configuration settings.
func NewPathConfig(s domain.GenerationSettings) (PathConfig, error) {
	if s.StepsPerYear <= 0 {
		return PathConfig{}, fmt.Errorf("%w: steps per year must be positive, got %d", ErrInvalidPathConfig, s.StepsPerYear)
	}
	start, err := dateutil.ParseISODate(s.StartDate)
	if err != nil {
		return PathConfig{}, fmt.Errorf("%w: %v", ErrInvalidPathConfig, err)
	}
	cfg := PathConfig{
		InitialValue:  s.InitialValue,
		Mean:          s.Mean,
		MeanReversion: s.MeanReversion,
		Drift:         s.Drift,
		TimeStep:      1 / float64(s.StepsPerYear),
		Volatility:    s.Volatility,
		TrendWeight:   s.TrendWeight,
		TrendScale:    s.TrendScale,
		TrendDecay:    s.TrendDecay,
		StartDate:     start,
	}
	return cfg, cfg.Validate()
}

// Validate checks the constants for values that would divide by zero or produce NaN.
func (c PathConfig) Validate() error {
	switch {
	case !(c.TimeStep > 0):
		return fmt.Errorf("%w: time step must be positive", ErrInvalidPathConfig)
	case c.Volatility < 0:
		return fmt.Errorf("%w: volatility cannot be negative", ErrInvalidPathConfig)
	case c.TrendScale == 0:
		return fmt.Errorf("%w: trend scale cannot be zero", ErrInvalidPathConfig)
	case c.TrendDecay == 0:
		return fmt.Errorf("%w: trend decay cannot be zero", ErrInvalidPathConfig)
	case c.StartDate.IsZero():
		return fmt.Errorf("%w: start date is required", ErrInvalidPathConfig)
	}
	return nil
}

// PathGenerator turns seeds into synthetic feeds. It holds no mutable state and is safe for
// concurrent use; each call owns its own random stream.
type PathGenerator struct {
	config PathConfig
	logger Logger
}

// NewPathGenerator creates a generator. A nil logger disables logging.
func NewPathGenerator(config PathConfig, logger Logger) *PathGenerator {
	return &PathGenerator{config: config, logger: orNop(logger)}
}

// Config returns the constants the generator was built with.
func (g *PathGenerator) Config() PathConfig { return g.config }

// GeneratePath returns the unrounded walk of numPoints values for seed.
//
// Both innovation sequences are drawn up front from one stream: numPoints-1 shocks for the
// log-normal step, then numPoints-1 trend innovations. Because the second block starts
// where the first ends, paths of different lengths do not share a prefix.
func (g *PathGenerator) GeneratePath(seed int64, numPoints int) ([]float64, error) {
	if numPoints <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPointCount, numPoints)
	}

	stream := NewNormalStream(seed)
	shocks := stream.StandardNormals(numPoints - 1)
	trendShocks := stream.StandardNormals(numPoints - 1)

	path := g.config.walk(shocks, trendShocks, numPoints)
	g.logger.Debugf("generated path seed=%d points=%d last=%.5f", seed, numPoints, path[len(path)-1])
	return path, nil
}

// GenerateSeries returns numPoints dated values for seed, rounded to five decimals.
func (g *PathGenerator) GenerateSeries(seed int64, numPoints int) ([]domain.TimePoint, error) {
	path, err := g.GeneratePath(seed, numPoints)
	if err != nil {
		return nil, err
	}

	days := dateutil.DaySequence(g.config.StartDate, numPoints)
	points := make([]domain.TimePoint, numPoints)
	for i, v := range path {
		points[i] = domain.TimePoint{
			Time:  days[i],
			Value: decimal.RoundFloat(v, decimal.PricePlaces),
		}
	}
	return points, nil
}

// walk evaluates the recurrence. The operation order is part of the contract: products are
// converted explicitly so that no multiply-add is fused on architectures that support it.
func (c PathConfig) walk(shocks, trendShocks []float64, numPoints int) []float64 {
	path := make([]float64, numPoints)
	path[0] = c.InitialValue

	drift := float64(c.Drift-float64(0.5*float64(c.Volatility*c.Volatility))) * c.TimeStep
	diffusion := float64(math.Sqrt(c.TimeStep) * c.Volatility)

	trend := c.InitialTrend
	for i := 1; i < numPoints; i++ {
		prev := path[i-1]

		// decay and perturb in place; the new trend is applied to this step
		trend += float64(trendShocks[i-1]*prev)/c.TrendScale - trend/c.TrendDecay

		growth := math.Exp(drift + float64(diffusion*shocks[i-1]))
		path[i] = float64(c.MeanReversion*(c.Mean-prev)) + float64(prev*growth) + float64(c.TrendWeight*trend)
	}
	return path
}

// Generate produces the default feed for seed: numPoints dated values following the
// dashboard's fixed process constants. It is a pure function of (seed, numPoints).
func Generate(seed int64, numPoints int) ([]domain.TimePoint, error) {
	return NewPathGenerator(DefaultPathConfig(), nil).GenerateSeries(seed, numPoints)
}

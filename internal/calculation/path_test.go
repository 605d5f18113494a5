package calculation

import (
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/rpgo/synthfeed/internal/domain"
	"github.com/rpgo/synthfeed/pkg/dateutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values(points []domain.TimePoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Value
	}
	return out
}

func TestGenerate_Snapshots(t *testing.T) {
	tests := []struct {
		name  string
		seed  int64
		n     int
		times []string
		want  []float64
	}{
		{
			name:  "seed 123",
			seed:  123,
			n:     5,
			times: []string{"2018-12-22", "2018-12-23", "2018-12-24", "2018-12-25", "2018-12-26"},
			want:  []float64{1, 0.99412, 0.99972, 1.0007, 0.99222},
		},
		{
			name:  "seed 456",
			seed:  456,
			n:     5,
			times: []string{"2018-12-22", "2018-12-23", "2018-12-24", "2018-12-25", "2018-12-26"},
			want:  []float64{1, 0.99697, 0.99536, 0.9996, 1.00362},
		},
		{
			name:  "seed 7 three points",
			seed:  7,
			n:     3,
			times: []string{"2018-12-22", "2018-12-23", "2018-12-24"},
			want:  []float64{1, 1.00889, 1.00653},
		},
		{
			name:  "upper seed bound",
			seed:  99999,
			n:     4,
			times: []string{"2018-12-22", "2018-12-23", "2018-12-24", "2018-12-25"},
			want:  []float64{1, 1.00344, 1.01021, 1.00152},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, err := Generate(tt.seed, tt.n)
			require.NoError(t, err)
			require.Len(t, points, tt.n)
			for i, p := range points {
				assert.Equal(t, tt.times[i], p.Time)
			}
			assert.Equal(t, tt.want, values(points))
		})
	}
}

func TestGenerate_DefaultLength(t *testing.T) {
	points, err := Generate(123, DefaultNumPoints)
	require.NoError(t, err)
	require.Len(t, points, 50000)

	last := points[len(points)-1]
	assert.Equal(t, "2155-11-13", last.Time)
	assert.Equal(t, 0.97074, last.Value)

	summary := Summarize(points)
	assert.Equal(t, "0.80055", summary.Min.String())
	assert.Equal(t, "1.27434", summary.Max.String())

	other, err := Generate(456, DefaultNumPoints)
	require.NoError(t, err)
	assert.Equal(t, 1.07064, other[len(other)-1].Value)
}

func TestGenerate_Properties(t *testing.T) {
	start := dateutil.MustParseISODate(DefaultStartDate)
	for _, seed := range []int64{1, 2, 123, 456, 4242, 99999} {
		for _, n := range []int{1, 2, 17, 365} {
			points, err := Generate(seed, n)
			require.NoError(t, err)
			require.Len(t, points, n)
			assert.Equal(t, 1.0, points[0].Value, "first value must be S0")

			again, err := Generate(seed, n)
			require.NoError(t, err)
			assert.Equal(t, points, again, "generation must be reproducible")

			for i, p := range points {
				d, err := dateutil.ParseISODate(p.Time)
				require.NoError(t, err)
				assert.Equal(t, start.AddDate(0, 0, i), d)
				assertFiveDecimals(t, p.Value)
			}
		}
	}
}

func TestGenerate_DifferentSeedsDiffer(t *testing.T) {
	a, err := Generate(123, 50)
	require.NoError(t, err)
	b, err := Generate(456, 50)
	require.NoError(t, err)

	assert.Equal(t, a[0], b[0])
	assert.NotEqual(t, values(a[1:]), values(b[1:]))
}

// Trend innovations are drawn after all log-normal shocks, so the stream offset of the
// second block depends on the requested length and prefixes are not shared.
func TestGenerate_NoPrefixConsistency(t *testing.T) {
	short, err := Generate(123, 10)
	require.NoError(t, err)
	long, err := Generate(123, 20)
	require.NoError(t, err)

	assert.Equal(t, 0.99402, short[1].Value)
	assert.Equal(t, 0.99446, long[1].Value)
	assert.Equal(t, short[0], long[0])
}

func TestGenerate_InvalidPointCount(t *testing.T) {
	for _, n := range []int{0, -1, -50000} {
		points, err := Generate(123, n)
		assert.Nil(t, points)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidPointCount))
	}
}

func TestGenerate_SinglePoint(t *testing.T) {
	points, err := Generate(-17, 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.TimePoint{{Time: "2018-12-22", Value: 1}}, points)
}

func TestGeneratePath_Unrounded(t *testing.T) {
	gen := NewPathGenerator(DefaultPathConfig(), nil)
	path, err := gen.GeneratePath(123, 5)
	require.NoError(t, err)
	require.Len(t, path, 5)
	assert.InDelta(t, 0.99412, path[1], 5e-6)
	assert.Equal(t, 1.0, path[0])
}

func TestGenerate_Concurrent(t *testing.T) {
	want, err := Generate(321, 500)
	require.NoError(t, err)

	gen := NewPathGenerator(DefaultPathConfig(), nil)
	results := make(chan []domain.TimePoint, 8)
	for i := 0; i < 8; i++ {
		go func() {
			pts, _ := gen.GenerateSeries(321, 500)
			results <- pts
		}()
	}
	for i := 0; i < 8; i++ {
		assert.Equal(t, want, <-results)
	}
}

func TestNewPathConfig(t *testing.T) {
	settings := domain.GenerationSettings{
		NumPoints:     50000,
		StartDate:     "2018-12-22",
		InitialValue:  1,
		Mean:          1,
		MeanReversion: 0.004,
		StepsPerYear:  365,
		Volatility:    0.1,
		TrendWeight:   0.7,
		TrendScale:    2000,
		TrendDecay:    10,
	}
	cfg, err := NewPathConfig(settings)
	require.NoError(t, err)
	assert.Equal(t, DefaultPathConfig(), cfg)

	bad := settings
	bad.StepsPerYear = 0
	_, err = NewPathConfig(bad)
	assert.ErrorIs(t, err, ErrInvalidPathConfig)

	bad = settings
	bad.StartDate = "yesterday"
	_, err = NewPathConfig(bad)
	assert.ErrorIs(t, err, ErrInvalidPathConfig)

	bad = settings
	bad.TrendDecay = 0
	_, err = NewPathConfig(bad)
	assert.ErrorIs(t, err, ErrInvalidPathConfig)
}

func TestPathConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultPathConfig().Validate())

	cfg := DefaultPathConfig()
	cfg.Volatility = -0.1
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidPathConfig)

	cfg = DefaultPathConfig()
	cfg.TrendScale = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidPathConfig)

	cfg = DefaultPathConfig()
	cfg.StartDate = time.Time{}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidPathConfig)
}

func assertFiveDecimals(t *testing.T, v float64) {
	t.Helper()
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		assert.LessOrEqual(t, len(s)-dot-1, 5, "value %s has more than five decimals", s)
	}
}

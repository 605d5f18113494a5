package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rpgo/synthfeed/internal/domain"
	"github.com/rpgo/synthfeed/pkg/dateutil"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvListen    = "SYNTHFEED_LISTEN"
	EnvLogLevel  = "SYNTHFEED_LOG_LEVEL"
	EnvLogFile   = "SYNTHFEED_LOG_FILE"
	EnvNumPoints = "SYNTHFEED_NUM_POINTS"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// DefaultConfiguration returns the configuration of the stock two-chart dashboard.
func DefaultConfiguration() *domain.Configuration {
	seeds := domain.DefaultSeedSet()
	return &domain.Configuration{
		Dashboard: domain.DashboardSettings{
			Title:           "Welcome, Ben",
			Caption:         "Last login 10/05/25 00:31",
			RegenerateLabel: "Regenerate Data",
			Theme: domain.ThemeSettings{
				TextColor:        "white",
				BackgroundColor:  "rgb(16,12,12)",
				BorderColor:      "white",
				GridVisible:      false,
				Height:           300,
				LineWidth:        1,
				TopLineColor:     "rgba( 38, 166, 154, 1)",
				TopFillColor1:    "rgba( 38, 166, 154, 0.28)",
				TopFillColor2:    "rgba( 38, 166, 154, 0.05)",
				BottomLineColor:  "rgba( 239, 83, 80, 1)",
				BottomFillColor1: "rgba( 239, 83, 80, 0.05)",
				BottomFillColor2: "rgba( 239, 83, 80, 0.28)",
			},
		},
		Generation: domain.GenerationSettings{
			NumPoints:     50000,
			StartDate:     "2018-12-22",
			InitialValue:  1,
			Mean:          1,
			MeanReversion: 0.004,
			Drift:         0,
			StepsPerYear:  365,
			Volatility:    0.1,
			TrendWeight:   0.7,
			TrendScale:    2000,
			TrendDecay:    10,
			SeedMin:       1,
			SeedMax:       100000,
		},
		Charts: []domain.ChartSettings{
			{Key: "area1", Title: "Chart 1 – Synthetic Feed A", DefaultSeed: seeds[0]},
			{Key: "area2", Title: "Chart 2 – Synthetic Feed B", DefaultSeed: seeds[1]},
		},
		Server: domain.ServerSettings{
			Listen:     ":8080",
			SessionTTL: 24 * time.Hour,
			MaxPoints:  200000,
		},
		Logging: domain.LoggingSettings{
			Level:      "info",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
	}
}

// Load reads filename (defaults only when empty), applies the environment overlay and validates.
func (ip *InputParser) Load(filename string, envFiles ...string) (*domain.Configuration, error) {
	config := DefaultConfiguration()
	if filename != "" {
		loaded, err := ip.LoadFromFile(filename)
		if err != nil {
			return nil, err
		}
		config = loaded
	}

	if err := ApplyEnv(config, envFiles...); err != nil {
		return nil, err
	}
	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.LoadFromBytes(data)
}

// LoadFromBytes parses YAML on top of the defaults, so omitted keys keep their default value.
func (ip *InputParser) LoadFromBytes(data []byte) (*domain.Configuration, error) {
	config := DefaultConfiguration()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Validate the configuration
	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// ApplyEnv loads the named env files (or ./.env when none are named) and overlays the
// SYNTHFEED_* variables onto config. Only the implicit ./.env may be missing.
func ApplyEnv(config *domain.Configuration, envFiles ...string) error {
	if err := godotenv.Load(envFiles...); err != nil {
		if len(envFiles) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load env file: %w", err)
		}
	}

	if v := os.Getenv(EnvListen); v != "" {
		config.Server.Listen = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		config.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		config.Logging.File = v
	}
	if v := os.Getenv(EnvNumPoints); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvNumPoints, err)
		}
		config.Generation.NumPoints = n
	}
	return nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateGeneration(&config.Generation); err != nil {
		return fmt.Errorf("generation settings validation failed: %w", err)
	}

	if len(config.Charts) == 0 {
		return fmt.Errorf("no charts provided")
	}
	seen := make(map[string]bool, len(config.Charts))
	for i, chart := range config.Charts {
		if chart.Key == "" {
			return fmt.Errorf("chart %d: key is required", i)
		}
		if seen[chart.Key] {
			return fmt.Errorf("chart %d: duplicate key %q", i, chart.Key)
		}
		seen[chart.Key] = true
	}

	if config.Dashboard.Theme.Height <= 0 {
		return fmt.Errorf("theme height must be positive")
	}
	if config.Dashboard.Theme.LineWidth <= 0 {
		return fmt.Errorf("theme line width must be positive")
	}

	if err := ip.validateServer(&config.Server, config.Generation.NumPoints); err != nil {
		return fmt.Errorf("server settings validation failed: %w", err)
	}

	if _, err := logrus.ParseLevel(config.Logging.Level); err != nil {
		return fmt.Errorf("logging level: %w", err)
	}

	return nil
}

// validateGeneration checks the process constants and the seed range
func (ip *InputParser) validateGeneration(g *domain.GenerationSettings) error {
	if g.NumPoints <= 0 {
		return fmt.Errorf("num points must be positive")
	}
	if _, err := dateutil.ParseISODate(g.StartDate); err != nil {
		return fmt.Errorf("start date: %w", err)
	}
	if g.StepsPerYear <= 0 {
		return fmt.Errorf("steps per year must be positive")
	}
	if g.Volatility < 0 {
		return fmt.Errorf("volatility cannot be negative")
	}
	if g.TrendScale == 0 {
		return fmt.Errorf("trend scale cannot be zero")
	}
	if g.TrendDecay == 0 {
		return fmt.Errorf("trend decay cannot be zero")
	}
	if g.SeedMin < 0 || g.SeedMin >= g.SeedMax {
		return fmt.Errorf("seed range [%d, %d) is empty or negative", g.SeedMin, g.SeedMax)
	}
	return nil
}

func (ip *InputParser) validateServer(s *domain.ServerSettings, numPoints int) error {
	if s.Listen == "" {
		return fmt.Errorf("listen address is required")
	}
	if s.SessionTTL <= 0 {
		return fmt.Errorf("session ttl must be positive")
	}
	if s.MaxPoints < numPoints {
		return fmt.Errorf("max points (%d) must cover num points (%d)", s.MaxPoints, numPoints)
	}
	return nil
}

// SaveConfiguration writes config as YAML
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

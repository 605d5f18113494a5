package domain

import "time"

// Configuration is the complete, file-backed configuration of a synthfeed deployment.
type Configuration struct {
	Dashboard  DashboardSettings  `yaml:"dashboard" json:"dashboard"`
	Generation GenerationSettings `yaml:"generation" json:"generation"`
	Charts     []ChartSettings    `yaml:"charts" json:"charts"`
	Server     ServerSettings     `yaml:"server" json:"server"`
	Logging    LoggingSettings    `yaml:"logging" json:"logging"`
}

// DashboardSettings covers page text and chart styling.
type DashboardSettings struct {
	Title           string        `yaml:"title" json:"title"`
	Caption         string        `yaml:"caption" json:"caption"`
	RegenerateLabel string        `yaml:"regenerate_label" json:"regenerate_label"`
	Theme           ThemeSettings `yaml:"theme" json:"theme"`
}

// ThemeSettings are purely cosmetic; they never influence generated values.
type ThemeSettings struct {
	TextColor        string `yaml:"text_color" json:"text_color"`
	BackgroundColor  string `yaml:"background_color" json:"background_color"`
	BorderColor      string `yaml:"border_color" json:"border_color"`
	GridVisible      bool   `yaml:"grid_visible" json:"grid_visible"`
	Height           int    `yaml:"height" json:"height"`
	LineWidth        int    `yaml:"line_width" json:"line_width"`
	TopLineColor     string `yaml:"top_line_color" json:"top_line_color"`
	TopFillColor1    string `yaml:"top_fill_color_1" json:"top_fill_color_1"`
	TopFillColor2    string `yaml:"top_fill_color_2" json:"top_fill_color_2"`
	BottomLineColor  string `yaml:"bottom_line_color" json:"bottom_line_color"`
	BottomFillColor1 string `yaml:"bottom_fill_color_1" json:"bottom_fill_color_1"`
	BottomFillColor2 string `yaml:"bottom_fill_color_2" json:"bottom_fill_color_2"`
}

// GenerationSettings holds the constants of the path recurrence and the seed range.
type GenerationSettings struct {
	NumPoints     int     `yaml:"num_points" json:"num_points"`
	StartDate     string  `yaml:"start_date" json:"start_date"`
	InitialValue  float64 `yaml:"initial_value" json:"initial_value"`
	Mean          float64 `yaml:"mean" json:"mean"`
	MeanReversion float64 `yaml:"mean_reversion" json:"mean_reversion"`
	Drift         float64 `yaml:"drift" json:"drift"`
	StepsPerYear  int     `yaml:"steps_per_year" json:"steps_per_year"`
	Volatility    float64 `yaml:"volatility" json:"volatility"`
	TrendWeight   float64 `yaml:"trend_weight" json:"trend_weight"`
	TrendScale    float64 `yaml:"trend_scale" json:"trend_scale"`
	TrendDecay    float64 `yaml:"trend_decay" json:"trend_decay"`
	SeedMin       int64   `yaml:"seed_min" json:"seed_min"`
	SeedMax       int64   `yaml:"seed_max" json:"seed_max"` // exclusive
}

// ChartSettings describes one dashboard panel.
type ChartSettings struct {
	Key         string `yaml:"key" json:"key"`
	Title       string `yaml:"title" json:"title"`
	DefaultSeed int64  `yaml:"default_seed" json:"default_seed"`
}

// ServerSettings configures the HTTP dashboard.
type ServerSettings struct {
	Listen     string        `yaml:"listen" json:"listen"`
	SessionTTL time.Duration `yaml:"session_ttl" json:"session_ttl"`
	MaxPoints  int           `yaml:"max_points" json:"max_points"`
}

// LoggingSettings configures pkg/logger.
type LoggingSettings struct {
	Level      string `yaml:"level" json:"level"`
	File       string `yaml:"file" json:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" json:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" json:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days" json:"max_age_days"`
	Compress   bool   `yaml:"compress" json:"compress"`
}

package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rpgo/synthfeed/internal/domain"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// TimestampFormat is the layout of log timestamps.
const TimestampFormat = "06-01-02 15:04:05"

// Config configures Init.
type Config struct {
	Level      string    // debug, info, warn, error
	OutputFile string    // optional rotating log file
	MaxSize    int       // MB
	MaxBackups int       // rotated files kept
	MaxAge     int       // days
	Compress   bool      // gzip rotated files
	Console    io.Writer // defaults to os.Stdout
}

// FromSettings maps the logging section of the configuration file.
func FromSettings(s domain.LoggingSettings) Config {
	return Config{
		Level:      s.Level,
		OutputFile: s.File,
		MaxSize:    s.MaxSizeMB,
		MaxBackups: s.MaxBackups,
		MaxAge:     s.MaxAgeDays,
		Compress:   s.Compress,
	}
}

// Init builds a logger writing to the console and, if configured, a rotating file.
// An unknown level falls back to info.
func Init(config Config) (*logrus.Logger, error) {
	logger := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	console := config.Console
	if console == nil {
		console = os.Stdout
	}
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: TimestampFormat,
		DisableColors:   console != os.Stdout,
	})

	writers := []io.Writer{console}
	if config.OutputFile != "" {
		if err := os.MkdirAll(filepath.Dir(config.OutputFile), 0755); err != nil {
			return nil, err
		}
		writers = append(writers, &lumberjack.Logger{
			Filename:   config.OutputFile,
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		})
	}
	logger.SetOutput(io.MultiWriter(writers...))
	return logger, nil
}

package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rpgo/synthfeed/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConsoleOnly(t *testing.T) {
	var buf bytes.Buffer
	log, err := Init(Config{Level: "warn", Console: &buf})
	require.NoError(t, err)

	assert.Equal(t, logrus.WarnLevel, log.GetLevel())

	log.Info("hidden")
	log.WithField("seed", 123).Warn("shown")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "seed=123")
}

func TestInitUnknownLevelFallsBackToInfo(t *testing.T) {
	log, err := Init(Config{Level: "chatty", Console: &bytes.Buffer{}})
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestInitWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "synthfeed.log")
	log, err := Init(Config{Level: "debug", OutputFile: path, MaxSize: 1, Console: &bytes.Buffer{}})
	require.NoError(t, err)

	log.Debug("to file")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestFromSettings(t *testing.T) {
	cfg := FromSettings(domain.LoggingSettings{Level: "debug", File: "x.log", MaxSizeMB: 5, MaxBackups: 2, MaxAgeDays: 3, Compress: true})
	assert.Equal(t, Config{Level: "debug", OutputFile: "x.log", MaxSize: 5, MaxBackups: 2, MaxAge: 3, Compress: true}, cfg)
}

func TestInitReturnsIndependentLoggers(t *testing.T) {
	var a, b bytes.Buffer
	first, err := Init(Config{Level: "info", Console: &a})
	require.NoError(t, err)
	second, err := Init(Config{Level: "info", Console: &b})
	require.NoError(t, err)

	first.WithFields(logrus.Fields{"chart": "area1"}).Info("built")
	assert.Contains(t, a.String(), "chart=area1")
	assert.Empty(t, b.String())
	assert.NotSame(t, first, second)
}

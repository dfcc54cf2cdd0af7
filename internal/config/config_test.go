package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, 10, cfg.LogMaxSize)
	assert.Equal(t, 3, cfg.LogMaxBackups)
	assert.Equal(t, 28, cfg.LogMaxAge)
	assert.True(t, cfg.LogCompress)
	assert.Equal(t, float32(900), cfg.WindowWidth)
	assert.Equal(t, float32(600), cfg.WindowHeight)
	assert.Equal(t, float32(300), cfg.PlotHeight)
	assert.False(t, cfg.LogScale)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HISTOGRAM_LOG_LEVEL", "warn")
	t.Setenv("HISTOGRAM_LOG_FILE", " /tmp/histogram.log ")
	t.Setenv("HISTOGRAM_WINDOW_WIDTH", "1280")
	t.Setenv("HISTOGRAM_PLOT_LOG_SCALE", "true")

	cfg := Load()

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "/tmp/histogram.log", cfg.LogFile)
	assert.Equal(t, float32(1280), cfg.WindowWidth)
	assert.True(t, cfg.LogScale)
}

func TestLoadDebugShorthand(t *testing.T) {
	t.Setenv("DEBUG", "1")
	assert.Equal(t, "debug", Load().LogLevel)

	t.Setenv("HISTOGRAM_LOG_LEVEL", "error")
	assert.Equal(t, "error", Load().LogLevel)
}

func TestLoadClampsSizes(t *testing.T) {
	t.Setenv("HISTOGRAM_WINDOW_WIDTH", "10")
	t.Setenv("HISTOGRAM_WINDOW_HEIGHT", "10")
	t.Setenv("HISTOGRAM_PLOT_HEIGHT", "1")

	cfg := Load()

	assert.Equal(t, float32(minWindowWidth), cfg.WindowWidth)
	assert.Equal(t, float32(minWindowHeight), cfg.WindowHeight)
	assert.Equal(t, float32(minPlotHeight), cfg.PlotHeight)
}

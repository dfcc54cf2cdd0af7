// Package config resolves runtime settings from HISTOGRAM_* environment
// variables. No configuration file is read.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

const (
	envPrefix = "HISTOGRAM"

	logLevelKey      = "log.level"
	logFileKey       = "log.file"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	windowWidthKey  = "window.width"
	windowHeightKey = "window.height"
	plotHeightKey   = "plot.height"
	plotLogScaleKey = "plot.log_scale"

	defaultLogLevel      = "info"
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true

	defaultWindowWidth  = 900
	defaultWindowHeight = 600
	defaultPlotHeight   = 300

	minWindowWidth  = 480
	minWindowHeight = 360
	minPlotHeight   = 120
)

type Config struct {
	LogLevel      string
	LogFile       string
	LogMaxSize    int
	LogMaxBackups int
	LogMaxAge     int
	LogCompress   bool

	WindowWidth  float32
	WindowHeight float32
	PlotHeight   float32
	LogScale     bool
}

// Load reads the environment. DEBUG=1 is honoured as a shorthand for a debug
// log level when HISTOGRAM_LOG_LEVEL is unset.
func Load() Config {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(logFileKey, "")
	v.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	v.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	v.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	v.SetDefault(logCompressKey, defaultLogCompress)
	v.SetDefault(windowWidthKey, defaultWindowWidth)
	v.SetDefault(windowHeightKey, defaultWindowHeight)
	v.SetDefault(plotHeightKey, defaultPlotHeight)
	v.SetDefault(plotLogScaleKey, false)

	_ = v.BindEnv("debug", "DEBUG")

	cfg := Config{
		LogLevel:      v.GetString(logLevelKey),
		LogFile:       strings.TrimSpace(v.GetString(logFileKey)),
		LogMaxSize:    v.GetInt(logMaxSizeKey),
		LogMaxBackups: v.GetInt(logMaxBackupsKey),
		LogMaxAge:     v.GetInt(logMaxAgeKey),
		LogCompress:   v.GetBool(logCompressKey),
		WindowWidth:   float32(v.GetFloat64(windowWidthKey)),
		WindowHeight:  float32(v.GetFloat64(windowHeightKey)),
		PlotHeight:    float32(v.GetFloat64(plotHeightKey)),
		LogScale:      v.GetBool(plotLogScaleKey),
	}

	if strings.TrimSpace(cfg.LogLevel) == "" {
		cfg.LogLevel = defaultLogLevel
		if v.GetString("debug") == "1" {
			cfg.LogLevel = "debug"
		}
	}

	return cfg.normalize()
}

func (c Config) normalize() Config {
	if c.WindowWidth < minWindowWidth {
		c.WindowWidth = minWindowWidth
	}
	if c.WindowHeight < minWindowHeight {
		c.WindowHeight = minWindowHeight
	}
	if c.PlotHeight < minPlotHeight {
		c.PlotHeight = minPlotHeight
	}
	return c
}

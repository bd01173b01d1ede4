// Package config provides default configuration values for fractui.
package config

import (
	"github.com/bnema/fractui/internal/domain/entity"
)

// Logging defaults
const (
	defaultMaxLogSizeMB = 10 // MB
	defaultMaxBackups   = 3  // backup files
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the default configuration values for fractui.
func DefaultConfig() *Config {
	return &Config{
		Fractal: FractalConfig{
			MaxIterations:  entity.DefaultMaxIterations,
			DefaultType:    entity.FractalMandelbrot.Key(),
			DefaultPalette: entity.PaletteClassic.Key(),
			JuliaReal:      entity.DefaultJuliaReal,
			JuliaImag:      entity.DefaultJuliaImag,
		},
		Render: RenderConfig{
			Workers: 0, // one per CPU
		},
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			EnableFileLog: true,
			LogDir:        getDefaultLogDir(),
			MaxSize:       defaultMaxLogSizeMB,
			MaxBackups:    defaultMaxBackups,
		},
		Appearance: AppearanceConfig{
			ActiveBorder:   "2", // green
			InactiveBorder: "8", // dark gray
			Header:         "6", // cyan
			Accent:         "3", // yellow
		},
	}
}

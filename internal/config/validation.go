// Package config provides validation utilities for configuration values.
package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bnema/fractui/internal/domain/entity"
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate reports every invalid value of c.
func (c *Config) Validate() error {
	normalize(c)
	return validateConfig(c)
}

// validateConfig checks every value and reports all problems at once.
func validateConfig(config *Config) error {
	var validationErrors []string

	if config.Fractal.MaxIterations < entity.MinIterations {
		validationErrors = append(validationErrors,
			fmt.Sprintf("fractal.max_iterations must be at least %d (got: %d)", entity.MinIterations, config.Fractal.MaxIterations))
	}
	if _, err := entity.ParseFractalType(config.Fractal.DefaultType); err != nil {
		validationErrors = append(validationErrors,
			fmt.Sprintf("fractal.default_type must be one of: mandelbrot, burning_ship, julia (got: %s)", config.Fractal.DefaultType))
	}
	if _, err := entity.ParsePalette(config.Fractal.DefaultPalette); err != nil {
		validationErrors = append(validationErrors,
			fmt.Sprintf("fractal.default_palette must be one of: classic, rainbow, magma (got: %s)", config.Fractal.DefaultPalette))
	}

	if config.Render.Workers < 0 {
		validationErrors = append(validationErrors, "render.workers must be non-negative")
	}

	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of: trace, debug, info, warn, error (got: %s)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be 'console' or 'json' (got: %s)", config.Logging.Format))
	}
	if config.Logging.MaxSize < 0 {
		validationErrors = append(validationErrors, "logging.max_size must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}

	colors := []struct {
		key   string
		value string
	}{
		{"appearance.active_border", config.Appearance.ActiveBorder},
		{"appearance.inactive_border", config.Appearance.InactiveBorder},
		{"appearance.header", config.Appearance.Header},
		{"appearance.accent", config.Appearance.Accent},
	}
	for _, c := range colors {
		if !validColor(c.value) {
			validationErrors = append(validationErrors,
				fmt.Sprintf("%s must be a hex color or an ANSI index 0-255 (got: %s)", c.key, c.value))
		}
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidConfig, strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

// validColor accepts #RGB, #RRGGBB or an ANSI 256 index. Empty means terminal default.
func validColor(s string) bool {
	if s == "" || hexColor.MatchString(s) {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}

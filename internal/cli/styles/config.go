package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/fractui/internal/config"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPaths renders the config file and log file locations.
func (r *ConfigRenderer) RenderPaths(configFile, logFile string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle

	return fmt.Sprintf(
		"\n  %s Config %s\n  %s Logs   %s\n",
		iconStyle.Render(IconConfig),
		pathStyle.Render(configFile),
		iconStyle.Render(IconLogs),
		pathStyle.Render(logFile),
	)
}

// RenderSettings renders the effective configuration as key/value lines.
func (r *ConfigRenderer) RenderSettings(cfg *config.Config) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Highlight
	valueStyle := r.theme.Normal

	settings := []struct {
		key   string
		value any
	}{
		{"fractal.max_iterations", cfg.Fractal.MaxIterations},
		{"fractal.default_type", cfg.Fractal.DefaultType},
		{"fractal.default_palette", cfg.Fractal.DefaultPalette},
		{"fractal.julia_real", cfg.Fractal.JuliaReal},
		{"fractal.julia_imag", cfg.Fractal.JuliaImag},
		{"render.workers", cfg.Render.Workers},
		{"logging.level", cfg.Logging.Level},
		{"logging.format", cfg.Logging.Format},
		{"logging.enable_file_log", cfg.Logging.EnableFileLog},
		{"logging.log_dir", cfg.Logging.LogDir},
		{"appearance.active_border", cfg.Appearance.ActiveBorder},
		{"appearance.inactive_border", cfg.Appearance.InactiveBorder},
		{"appearance.header", cfg.Appearance.Header},
		{"appearance.accent", cfg.Appearance.Accent},
	}

	var sb strings.Builder
	sb.WriteString("\n")
	for _, s := range settings {
		sb.WriteString(fmt.Sprintf("  %s %s = %s\n",
			iconStyle.Render(IconCursor),
			keyStyle.Render(s.key),
			valueStyle.Render(fmt.Sprint(s.value)),
		))
	}
	return sb.String()
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}

// Package styles provides the lipgloss colors and styles of fractui.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/fractui/internal/config"
)

// Theme holds lipgloss colors and styles derived from config.
type Theme struct {
	// Explorer colors (from config.AppearanceConfig)
	ActiveBorder   lipgloss.Color
	InactiveBorder lipgloss.Color
	Header         lipgloss.Color
	Accent         lipgloss.Color

	// Fixed colors
	Text        lipgloss.Color
	Muted       lipgloss.Color
	Error       lipgloss.Color
	Warning     lipgloss.Color
	Success     lipgloss.Color
	PopupBG     lipgloss.Color
	EditBG      lipgloss.Color
	PopupBorder lipgloss.Color

	// Pre-built styles for command output
	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style
	HelpKey      lipgloss.Style
	HelpDesc     lipgloss.Style
}

// NewTheme creates a Theme from config. A nil config uses the defaults.
func NewTheme(cfg *config.Config) *Theme {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return NewThemeFromAppearance(cfg.Appearance)
}

// NewThemeFromAppearance creates a Theme from the appearance section.
func NewThemeFromAppearance(a config.AppearanceConfig) *Theme {
	d := config.DefaultConfig().Appearance
	t := &Theme{
		ActiveBorder:   lipgloss.Color(orDefault(a.ActiveBorder, d.ActiveBorder)),
		InactiveBorder: lipgloss.Color(orDefault(a.InactiveBorder, d.InactiveBorder)),
		Header:         lipgloss.Color(orDefault(a.Header, d.Header)),
		Accent:         lipgloss.Color(orDefault(a.Accent, d.Accent)),

		Text:        lipgloss.Color("15"),
		Muted:       lipgloss.Color("8"),
		Error:       lipgloss.Color("1"),
		Warning:     lipgloss.Color("3"),
		Success:     lipgloss.Color("2"),
		PopupBG:     lipgloss.Color("0"),
		EditBG:      lipgloss.Color("8"),
		PopupBorder: lipgloss.Color("7"),
	}

	t.buildStyles()
	return t
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// buildStyles creates all derived lipgloss styles.
func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().
		Foreground(t.Header).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	t.HelpKey = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(t.Muted)
}

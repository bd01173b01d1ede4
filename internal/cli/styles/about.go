package styles

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/fractui/internal/domain/build"
)

// A small Mandelbrot drawn in braille, used as the about logo.
const logo = `⠀⠀⠀⠀⠀⠀⢀⣴⣦⡀⠀⠀
⠀⠀⢀⣤⣤⣴⣿⣿⣿⣿⣦⡀
⠰⣶⣿⣿⣿⣿⣿⣿⣿⣿⣿⡇
⠀⠀⠈⠛⠛⠻⣿⣿⣿⣿⠟⠁
⠀⠀⠀⠀⠀⠀⠈⠻⠟⠁⠀⠀`

// AboutRenderer renders build info in fastfetch style.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render renders build info with the logo and styled info lines.
func (r *AboutRenderer) Render(info build.Info, workers int) string {
	logoStyle := lipgloss.NewStyle().Foreground(r.theme.Header).Bold(true).MarginTop(1).MarginLeft(2)
	return lipgloss.JoinHorizontal(lipgloss.Top, logoStyle.Render(logo), "   ", r.renderInfoLines(info, workers))
}

func (r *AboutRenderer) renderInfoLines(info build.Info, workers int) string {
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	line := func(icon, key, val string) string {
		return fmt.Sprintf("%s %s %s", iconStyle.Render(icon), keyStyle.Render(key), valStyle.Render(val))
	}

	lines := []string{
		r.theme.Title.Render("fractui"),
		line(IconVersion, "Version", info.Version),
		line(IconGitBranch, "Commit", info.Commit),
		line(IconCalendar, "Built", info.BuildDate),
		line(IconGo, "Go", info.GoVersion),
		line(IconCPU, "Workers", fmt.Sprintf("%d of %d CPUs", workers, runtime.NumCPU())),
		"",
		fmt.Sprintf("%s %s", iconStyle.Render(IconGithub), keyStyle.Render(build.RepoURL())),
		fmt.Sprintf("%s %s", keyStyle.Render("by"), valStyle.Render(strings.Join(build.Contributors(), ", "))),
	}

	return strings.Join(lines, "\n")
}

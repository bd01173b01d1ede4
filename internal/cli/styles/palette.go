package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/fractui/internal/domain/entity"
)

var (
	// ANSI indexes
	classicColors = []lipgloss.Color{
		"1",  // red
		"9",  // light red
		"3",  // yellow
		"11", // light yellow
		"2",  // green
		"10", // light green
		"4",  // blue
		"6",  // cyan
	}

	rainbowColors = []lipgloss.Color{
		"5",  // magenta
		"13", // light magenta
		"4",  // blue
		"12", // light blue
		"6",  // cyan
		"2",  // green
		"3",  // yellow
		"9",  // light red
	}

	magmaColors = []lipgloss.Color{
		"#030412", "#D95269", "#000004", "#0C0927", "#231151", "#410F75",
		"#5F187F", "#7B2382", "#982D80", "#B63679", "#D3436E", "#EB5760",
		"#F8765C", "#FD9A6A", "#FEBF84", "#FDDC9E", "#FCF2B0", "#FCFDBF",
	}
)

// PaletteColors returns the color table of a palette. Escape counts are
// bucketed modulo its length. The slice must not be modified.
func PaletteColors(p entity.Palette) []lipgloss.Color {
	switch p {
	case entity.PaletteRainbow:
		return rainbowColors
	case entity.PaletteMagma:
		return magmaColors
	default:
		return classicColors
	}
}

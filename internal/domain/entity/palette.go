package entity

import (
	"fmt"
	"strings"
)

// Palette selects one of the fixed color tables. The tables themselves
// are presentation data and live with the drawing surface.
type Palette int

const (
	PaletteClassic Palette = iota
	PaletteRainbow
	PaletteMagma
)

// Palettes lists every palette in cycle order.
func Palettes() []Palette {
	return []Palette{PaletteClassic, PaletteRainbow, PaletteMagma}
}

func (p Palette) String() string {
	switch p {
	case PaletteClassic:
		return "Classic"
	case PaletteRainbow:
		return "Rainbow"
	case PaletteMagma:
		return "Magma"
	default:
		return "Unknown"
	}
}

// Key returns the configuration key for the palette.
func (p Palette) Key() string {
	return strings.ToLower(p.String())
}

// Next returns the following palette in the cycle Classic -> Rainbow -> Magma -> Classic.
func (p Palette) Next() Palette {
	switch p {
	case PaletteClassic:
		return PaletteRainbow
	case PaletteRainbow:
		return PaletteMagma
	default:
		return PaletteClassic
	}
}

// ParsePalette parses a configuration key such as "magma".
func ParsePalette(s string) (Palette, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "classic":
		return PaletteClassic, nil
	case "rainbow":
		return PaletteRainbow, nil
	case "magma":
		return PaletteMagma, nil
	default:
		return PaletteClassic, fmt.Errorf("unknown palette %q", s)
	}
}

package entity

import (
	"fmt"
	"strings"
)

// FractalType selects the escape-time recurrence rendered by a pane.
type FractalType int

const (
	FractalMandelbrot FractalType = iota
	FractalBurningShip
	FractalJulia
)

// String returns the display name used in pane titles.
func (f FractalType) String() string {
	switch f {
	case FractalMandelbrot:
		return "Mandelbrot"
	case FractalBurningShip:
		return "BurningShip"
	case FractalJulia:
		return "Julia"
	default:
		return "Unknown"
	}
}

// Key returns the configuration key for the fractal type.
func (f FractalType) Key() string {
	switch f {
	case FractalBurningShip:
		return "burning_ship"
	case FractalJulia:
		return "julia"
	default:
		return "mandelbrot"
	}
}

// Next returns the following type in the closed cycle
// Mandelbrot -> BurningShip -> Julia -> Mandelbrot.
func (f FractalType) Next() FractalType {
	switch f {
	case FractalMandelbrot:
		return FractalBurningShip
	case FractalBurningShip:
		return FractalJulia
	default:
		return FractalMandelbrot
	}
}

// ParseFractalType parses a configuration key such as "burning_ship".
func ParseFractalType(s string) (FractalType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "mandelbrot":
		return FractalMandelbrot, nil
	case "burning_ship", "burningship", "burning-ship":
		return FractalBurningShip, nil
	case "julia":
		return FractalJulia, nil
	default:
		return FractalMandelbrot, fmt.Errorf("unknown fractal type %q", s)
	}
}

// Package fractal holds the escape-time kernels for the supported fractal families.
package fractal

import "github.com/bnema/fractui/internal/domain/entity"

// bailout is |z|^2 beyond which an orbit is considered escaped.
const bailout = 4.0

// Mandelbrot iterates z <- z^2 + c from z = 0 and returns the number of
// iterations before |z| exceeded 2, or maxIter for points that never escaped.
func Mandelbrot(cx, cy float64, maxIter int) int {
	var x, y float64
	iter := 0
	for x*x+y*y <= bailout && iter < maxIter {
		x, y = x*x-y*y+cx, 2*x*y+cy
		iter++
	}
	return iter
}

// BurningShip is Mandelbrot with the absolute value of both components
// taken before squaring.
func BurningShip(cx, cy float64, maxIter int) int {
	var x, y float64
	iter := 0
	for x*x+y*y <= bailout && iter < maxIter {
		ax, ay := abs(x), abs(y)
		x, y = ax*ax-ay*ay+cx, 2*ax*ay+cy
		iter++
	}
	return iter
}

// Julia iterates z <- z^2 + k starting at the sample point z.
func Julia(zx, zy, kr, ki float64, maxIter int) int {
	x, y := zx, zy
	iter := 0
	for x*x+y*y <= bailout && iter < maxIter {
		x, y = x*x-y*y+kr, 2*x*y+ki
		iter++
	}
	return iter
}

// Params selects a kernel and its constants for one pane.
type Params struct {
	Type          entity.FractalType
	MaxIterations int
	JuliaReal     float64
	JuliaImag     float64
}

// ParamsFor captures the kernel parameters of a pane.
func ParamsFor(p *entity.Pane) Params {
	return Params{
		Type:          p.FractalType,
		MaxIterations: p.MaxIterations,
		JuliaReal:     p.JuliaReal,
		JuliaImag:     p.JuliaImag,
	}
}

// Escape runs the kernel for the given point.
func (p Params) Escape(x, y float64) int {
	switch p.Type {
	case entity.FractalBurningShip:
		return BurningShip(x, y, p.MaxIterations)
	case entity.FractalJulia:
		return Julia(x, y, p.JuliaReal, p.JuliaImag, p.MaxIterations)
	default:
		return Mandelbrot(x, y, p.MaxIterations)
	}
}

// Bucket maps an escape count to a palette slot. Interior points
// (count == maxIter) return -1.
func Bucket(count, maxIter, paletteSize int) int {
	if count >= maxIter || paletteSize <= 0 {
		return -1
	}
	return count % paletteSize
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

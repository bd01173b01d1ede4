package entity

import "math"

// Viewport constants.
const (
	DefaultCenterX = -0.75
	DefaultCenterY = 0.0
	DefaultScale   = 3.0

	PanFraction  = 0.1   // pan step as a fraction of the current scale
	KeyZoomStep  = 0.9   // keyboard zoom factor
	WheelZoomIn  = 0.9   // scale factor for scroll-up
	WheelZoomOut = 1.1   // scale factor for scroll-down
	MinScale     = 1e-14 // double-precision floor
)

// Bounds is the mathematical window shown by a pane.
type Bounds struct {
	Left   float64
	Right  float64
	Bottom float64
	Top    float64
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent.
func (b Bounds) Height() float64 {
	return b.Top - b.Bottom
}

// IsFinite reports whether all four edges are finite numbers.
func (b Bounds) IsFinite() bool {
	for _, v := range [...]float64{b.Left, b.Right, b.Bottom, b.Top} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// PointAt returns the world point under the normalized screen position
// (nx, ny). Screen y grows downward, math y grows upward.
func (b Bounds) PointAt(nx, ny float64) (x, y float64) {
	return b.Left + nx*b.Width(), b.Top - ny*b.Height()
}

// CellAspect returns the width/height correction for a cell rectangle.
// Terminal cells are roughly twice as tall as they are wide.
func CellAspect(area Rect) float64 {
	return float64(area.W) / math.Max(float64(area.H)*2.0, 1.0)
}

// BoundsIn derives the math window for the pane drawn into area.
func (p *Pane) BoundsIn(area Rect) Bounds {
	height := p.Scale
	width := p.Scale * CellAspect(area)
	return Bounds{
		Left:   p.CenterX - width/2,
		Right:  p.CenterX + width/2,
		Bottom: p.CenterY - height/2,
		Top:    p.CenterY + height/2,
	}
}

// Bounds derives the math window from the last rendered rectangle.
func (p *Pane) Bounds() Bounds {
	return p.BoundsIn(p.Area)
}

// EnsureFiniteBounds returns the pane's bounds in area. When any edge is
// NaN or infinite the view is reset to the default center and scale first;
// recovered reports whether that happened.
func (p *Pane) EnsureFiniteBounds(area Rect) (b Bounds, recovered bool) {
	b = p.BoundsIn(area)
	if b.IsFinite() {
		return b, false
	}
	p.CenterX = DefaultCenterX
	p.CenterY = DefaultCenterY
	p.Scale = DefaultScale
	return p.BoundsIn(area), true
}

// Pan moves the center by dx/dy steps of 10% of the current scale.
// Positive dy moves up.
func (p *Pane) Pan(dx, dy int) {
	step := p.Scale * PanFraction
	p.CenterX += float64(dx) * step
	p.CenterY += float64(dy) * step
}

// ZoomIn shrinks the scale about the view center.
func (p *Pane) ZoomIn() bool {
	return p.setScale(p.Scale * KeyZoomStep)
}

// ZoomOut grows the scale about the view center.
func (p *Pane) ZoomOut() bool {
	return p.setScale(p.Scale / KeyZoomStep)
}

func (p *Pane) setScale(scale float64) bool {
	if scale < MinScale {
		return false
	}
	p.Scale = scale
	return true
}

// ZoomAt scales the view by factor while keeping the world point under the
// normalized cursor position (nx, ny) fixed on screen. The zoom is rejected
// when the new scale would fall below MinScale.
func (p *Pane) ZoomAt(nx, ny, factor float64) bool {
	aspect := CellAspect(p.Area)
	wx, wy := p.Bounds().PointAt(nx, ny)

	newScale := p.Scale * factor
	if newScale < MinScale {
		return false
	}
	newWidth := newScale * aspect

	p.CenterX = wx - (nx-0.5)*newWidth
	p.CenterY = wy - (0.5-ny)*newScale
	p.Scale = newScale
	return true
}

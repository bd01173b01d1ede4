package canvas

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/fractui/internal/domain/entity"
)

const brailleBlank = 0x2800

// Dot bits of a braille cell, indexed by [column][row] of the 2x4 dot grid.
var brailleDots = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// BrailleLayer plots world points into a rectangle of cells at 2x4 dots
// per cell. A cell takes the color of the last point plotted into it.
type BrailleLayer struct {
	area   entity.Rect
	bounds entity.Bounds
	masks  []uint8
	colors []lipgloss.Color
}

// NewBrailleLayer creates a layer mapping bounds onto area.
func NewBrailleLayer(area entity.Rect, bounds entity.Bounds) *BrailleLayer {
	n := max(area.W, 0) * max(area.H, 0)
	return &BrailleLayer{
		area:   area,
		bounds: bounds,
		masks:  make([]uint8, n),
		colors: make([]lipgloss.Color, n),
	}
}

// Dot maps a world point to dot coordinates. ok is false for points that
// fall outside the layer.
func (l *BrailleLayer) Dot(x, y float64) (dx, dy int, ok bool) {
	if l.area.Empty() {
		return 0, 0, false
	}
	b := l.bounds
	if x < b.Left || x > b.Right || y < b.Bottom || y > b.Top {
		return 0, 0, false
	}
	w, h := l.area.W*2, l.area.H*4
	dx = int((x - b.Left) * float64(w-1) / b.Width())
	dy = int((b.Top - y) * float64(h-1) / b.Height())
	if dx < 0 || dx >= w || dy < 0 || dy >= h {
		return 0, 0, false
	}
	return dx, dy, true
}

// Plot sets the dot under (x, y).
func (l *BrailleLayer) Plot(x, y float64, c lipgloss.Color) {
	dx, dy, ok := l.Dot(x, y)
	if !ok {
		return
	}
	i := (dy/4)*l.area.W + dx/2
	l.masks[i] |= brailleDots[dx%2][dy%4]
	l.colors[i] = c
}

// Flush copies every non-empty cell of the layer into g.
func (l *BrailleLayer) Flush(g *Grid) {
	for i, mask := range l.masks {
		if mask == 0 {
			continue
		}
		x := l.area.X + i%l.area.W
		y := l.area.Y + i/l.area.W
		g.Set(x, y, rune(brailleBlank+int(mask)), Attr{FG: l.colors[i]})
	}
}

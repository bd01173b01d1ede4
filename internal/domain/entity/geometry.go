// Package entity defines domain entities for the fractal explorer.
package entity

// Rect is a rectangle of terminal cells. X/Y is the top-left cell.
type Rect struct {
	X, Y int
	W, H int
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the cell at (col, row) lies inside the rectangle.
func (r Rect) Contains(col, row int) bool {
	return col >= r.X && col < r.Right() && row >= r.Y && row < r.Bottom()
}

// Inner returns the rectangle shrunk by one cell on every side (the area inside a border).
func (r Rect) Inner() Rect {
	if r.W < 2 || r.H < 2 {
		return Rect{X: r.X, Y: r.Y}
	}
	return Rect{X: r.X + 1, Y: r.Y + 1, W: r.W - 2, H: r.H - 2}
}

// Normalize maps a cell inside the rectangle to [0,1) coordinates.
func (r Rect) Normalize(col, row int) (nx, ny float64) {
	if r.W > 0 {
		nx = float64(col-r.X) / float64(r.W)
	}
	if r.H > 0 {
		ny = float64(row-r.Y) / float64(r.H)
	}
	return nx, ny
}

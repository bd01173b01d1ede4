// Package canvas draws the explorer into a cell grid and turns the grid
// into styled terminal output.
package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/fractui/internal/domain/entity"
)

// Attr is the style of one cell. An empty color keeps the terminal default.
type Attr struct {
	FG   lipgloss.Color
	BG   lipgloss.Color
	Bold bool
}

func (a Attr) style() lipgloss.Style {
	s := lipgloss.NewStyle().Bold(a.Bold)
	if a.FG != "" {
		s = s.Foreground(a.FG)
	}
	if a.BG != "" {
		s = s.Background(a.BG)
	}
	return s
}

// Cell is one terminal cell.
type Cell struct {
	Rune rune
	Attr Attr
}

var blank = Cell{Rune: ' '}

// Grid is a width x height buffer of cells, row-major.
type Grid struct {
	cells  []Cell
	width  int
	height int
}

// NewGrid creates a blank grid.
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Resize(width, height)
	return g
}

// Resize changes the dimensions and clears the grid. The backing slice
// is reused when large enough.
func (g *Grid) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(g.cells) < size {
		g.cells = make([]Cell, size)
	} else {
		g.cells = g.cells[:size]
	}
	g.width = width
	g.height = height
	g.Clear()
}

// Clear blanks every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = blank
	}
}

// Size returns the grid dimensions.
func (g *Grid) Size() (width, height int) {
	return g.width, g.height
}

// Bounds returns the grid as a rectangle at the origin.
func (g *Grid) Bounds() entity.Rect {
	return entity.Rect{W: g.width, H: g.height}
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Set writes a cell. Writes outside the grid are dropped.
func (g *Grid) Set(x, y int, r rune, a Attr) {
	if !g.inBounds(x, y) {
		return
	}
	g.cells[y*g.width+x] = Cell{Rune: r, Attr: a}
}

// At returns the cell at (x, y), or a blank cell outside the grid.
func (g *Grid) At(x, y int) Cell {
	if !g.inBounds(x, y) {
		return blank
	}
	return g.cells[y*g.width+x]
}

// Fill sets every cell of r.
func (g *Grid) Fill(r entity.Rect, ch rune, a Attr) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			g.Set(x, y, ch, a)
		}
	}
}

// Text returns the grid runes without styling, one line per row.
func (g *Grid) Text() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range g.row(y) {
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}

// Line returns row y without styling.
func (g *Grid) Line(y int) string {
	var sb strings.Builder
	for _, c := range g.row(y) {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// Render returns the grid as styled terminal output. Runs of cells that
// share an Attr are styled together.
func (g *Grid) Render() string {
	var sb strings.Builder
	var run []rune
	for y := 0; y < g.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		row := g.row(y)
		for start := 0; start < len(row); {
			attr := row[start].Attr
			run = run[:0]
			end := start
			for end < len(row) && row[end].Attr == attr {
				run = append(run, row[end].Rune)
				end++
			}
			if attr == (Attr{}) {
				sb.WriteString(string(run))
			} else {
				sb.WriteString(attr.style().Render(string(run)))
			}
			start = end
		}
	}
	return sb.String()
}

func (g *Grid) row(y int) []Cell {
	if y < 0 || y >= g.height {
		return nil
	}
	return g.cells[y*g.width : (y+1)*g.width]
}

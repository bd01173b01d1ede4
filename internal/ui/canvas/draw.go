package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/fractui/internal/domain/entity"
)

// Box drawing runes of lipgloss.NormalBorder.
var boxRunes = func() (runes struct{ tl, t, tr, l, r, bl, b, br rune }) {
	b := lipgloss.NormalBorder()
	first := func(s string) rune {
		for _, c := range s {
			return c
		}
		return ' '
	}
	runes.tl, runes.t, runes.tr = first(b.TopLeft), first(b.Top), first(b.TopRight)
	runes.l, runes.r = first(b.Left), first(b.Right)
	runes.bl, runes.b, runes.br = first(b.BottomLeft), first(b.Bottom), first(b.BottomRight)
	return runes
}()

// DrawText writes s starting at (x, y), clipped to maxW columns.
// Returns the number of columns written.
func (g *Grid) DrawText(x, y, maxW int, s string, a Attr) int {
	n := 0
	for _, r := range s {
		if n >= maxW {
			break
		}
		g.Set(x+n, y, r, a)
		n++
	}
	return n
}

// DrawBlock draws a single-line border around r with the title on the
// top edge. The interior is left untouched.
func (g *Grid) DrawBlock(r entity.Rect, title string, border, titleAttr Attr) {
	if r.W < 2 || r.H < 2 {
		g.Fill(r, ' ', border)
		return
	}
	right, bottom := r.Right()-1, r.Bottom()-1

	g.Set(r.X, r.Y, boxRunes.tl, border)
	g.Set(right, r.Y, boxRunes.tr, border)
	g.Set(r.X, bottom, boxRunes.bl, border)
	g.Set(right, bottom, boxRunes.br, border)
	for x := r.X + 1; x < right; x++ {
		g.Set(x, r.Y, boxRunes.t, border)
		g.Set(x, bottom, boxRunes.b, border)
	}
	for y := r.Y + 1; y < bottom; y++ {
		g.Set(r.X, y, boxRunes.l, border)
		g.Set(right, y, boxRunes.r, border)
	}

	if title != "" {
		g.DrawText(r.X+1, r.Y, r.W-2, title, titleAttr)
	}
}

// DrawParagraph writes lines inside r, one per row, optionally centered.
func (g *Grid) DrawParagraph(r entity.Rect, text string, a Attr, center bool) {
	for i, line := range strings.Split(text, "\n") {
		if i >= r.H {
			return
		}
		x := r.X
		if n := len([]rune(line)); center && n < r.W {
			x += (r.W - n) / 2
		}
		g.DrawText(x, r.Y+i, r.Right()-x, line, a)
	}
}

// CenteredRect returns a rectangle of pctX% by pctY% of r, centered in r.
func CenteredRect(pctX, pctY int, r entity.Rect) entity.Rect {
	return entity.Rect{
		X: r.X + r.W*((100-pctX)/2)/100,
		Y: r.Y + r.H*((100-pctY)/2)/100,
		W: r.W * pctX / 100,
		H: r.H * pctY / 100,
	}
}

package canvas

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/fractui/internal/application/port"
	"github.com/bnema/fractui/internal/cli/styles"
	"github.com/bnema/fractui/internal/domain/entity"
	"github.com/bnema/fractui/internal/logging"
)

// Surface draws pane frames into a grid. It implements port.Surface.
type Surface struct {
	grid  *Grid
	theme *styles.Theme
}

var _ port.Surface = (*Surface)(nil)

// NewSurface creates a surface drawing into grid.
func NewSurface(grid *Grid, theme *styles.Theme) *Surface {
	return &Surface{grid: grid, theme: theme}
}

// PaletteSize returns the number of colors of a palette.
func (s *Surface) PaletteSize(p entity.Palette) int {
	return len(styles.PaletteColors(p))
}

// Title returns the border title of a pane.
func Title(number int, p *entity.Pane) string {
	return fmt.Sprintf("%d: [%s, %d, %s]", number, p.FractalType, p.MaxIterations, p.Palette)
}

// DrawPane clears the frame area, draws the border and title, plots the
// batches inside the border and overlays the Julia inputs.
func (s *Surface) DrawPane(ctx context.Context, frame port.PaneFrame) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	area := frame.Area
	if area.Empty() {
		return nil
	}

	border := Attr{FG: s.theme.InactiveBorder}
	if frame.Active {
		border = Attr{FG: s.theme.ActiveBorder}
	}
	titleAttr := border
	titleAttr.Bold = frame.Active

	s.grid.Fill(area, ' ', Attr{})
	s.grid.DrawBlock(area, Title(frame.Number, &frame.Pane), border, titleAttr)

	plotted := 0
	if inner := area.Inner(); !inner.Empty() {
		colors := styles.PaletteColors(frame.Pane.Palette)
		layer := NewBrailleLayer(inner, frame.Bounds)
		for _, batch := range frame.Batches {
			if len(batch.Points) == 0 {
				continue
			}
			c := colors[batch.PaletteIndex%len(colors)]
			for _, pt := range batch.Points {
				layer.Plot(pt.X, pt.Y, c)
			}
			plotted += len(batch.Points)
		}
		layer.Flush(s.grid)
	}

	if frame.Pane.FractalType == entity.FractalJulia {
		s.drawJuliaInputs(&frame.Pane)
	}

	logging.FromContext(ctx).Trace().
		Int("number", frame.Number).
		Int("points", plotted).
		Msg("pane drawn")
	return nil
}

// drawJuliaInputs draws the Cx and Cy rows above the bottom border.
func (s *Surface) drawJuliaInputs(p *entity.Pane) {
	inner := p.Area.Inner()
	for _, field := range []entity.InputField{entity.InputReal, entity.InputImag} {
		row := p.InputRow(field)
		if inner.Empty() || row < inner.Y || row >= inner.Bottom() {
			continue
		}
		attr := Attr{FG: s.theme.Accent}
		if p.ActiveInput == field {
			attr.BG = s.theme.EditBG
		}
		line := entity.Rect{X: inner.X, Y: row, W: inner.W, H: 1}
		s.grid.Fill(line, ' ', attr)
		s.grid.DrawText(line.X, row, line.W, JuliaInputText(p, field), attr)
	}
}

// JuliaInputText returns the text of a Julia input row.
func JuliaInputText(p *entity.Pane, field entity.InputField) string {
	label, suffix, value := "Cx", "_", p.JuliaReal
	if field == entity.InputImag {
		label, suffix, value = "Cy", "_i", p.JuliaImag
	}
	if p.ActiveInput == field {
		return label + ": " + string(p.InputBuffer) + suffix
	}
	return fmt.Sprintf("%s: %.4f", label, value)
}

// DrawHeader draws the three-row key summary box.
func (s *Surface) DrawHeader(area entity.Rect) {
	attr := Attr{FG: s.theme.Header}
	s.grid.Fill(area, ' ', Attr{})
	s.grid.DrawBlock(area, styles.HeaderTitle, attr, attr)
	if inner := area.Inner(); !inner.Empty() {
		s.grid.DrawText(inner.X, inner.Y, inner.W, styles.HeaderText, attr)
	}
}

// DrawHelp draws the help table centered on screen.
func (s *Surface) DrawHelp(screen entity.Rect, rows []styles.HelpRow) {
	area := CenteredRect(styles.HelpWidthPct, styles.HelpHeightPct, screen)
	if area.Empty() {
		return
	}
	s.grid.Fill(area, ' ', Attr{})
	s.grid.DrawBlock(area, styles.HelpTitle, Attr{FG: s.theme.PopupBorder}, Attr{FG: s.theme.PopupBorder})

	inner := area.Inner()
	if inner.Empty() {
		return
	}
	// 30/70 split with one column of spacing.
	keyW := inner.W * 30 / 100
	actionX := inner.X + keyW + 1
	actionW := max(inner.Right()-actionX, 0)

	header := Attr{FG: s.theme.Accent, Bold: true}
	s.grid.DrawText(inner.X, inner.Y, keyW, styles.HelpHeader.Key, header)
	s.grid.DrawText(actionX, inner.Y, actionW, styles.HelpHeader.Action, header)

	text := Attr{FG: s.theme.Text}
	for i, row := range rows {
		y := inner.Y + 1 + i
		if y >= inner.Bottom() {
			break
		}
		s.grid.DrawText(inner.X, y, keyW, row.Key, text)
		s.grid.DrawText(actionX, y, actionW, row.Action, text)
	}
}

// DrawQuitConfirm draws the quit confirmation popup centered on screen.
func (s *Surface) DrawQuitConfirm(screen entity.Rect) {
	area := CenteredRect(styles.QuitWidthPct, styles.QuitHeightPct, screen)
	if area.Empty() {
		return
	}
	attr := Attr{FG: s.theme.Error, BG: s.theme.PopupBG}
	s.grid.Fill(area, ' ', attr)
	s.grid.DrawBlock(area, styles.QuitTitle, attr, attr)
	s.grid.DrawParagraph(area.Inner(), strings.TrimRight(styles.QuitMessage, "\n"), attr, true)
}

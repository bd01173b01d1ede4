package port

import (
	"context"

	"github.com/bnema/fractui/internal/domain/entity"
)

// PaneFrame is everything a surface needs to draw one pane.
type PaneFrame struct {
	// Pane is a copy taken after layout; surfaces must not write back.
	Pane entity.Pane
	// Number is the 1-based depth-first position used by digit shortcuts.
	Number int
	Active bool
	Area   entity.Rect
	Bounds entity.Bounds
	// Batches holds one entry per palette slot, in slot order. Empty
	// batches are present and should be skipped.
	Batches []entity.PointBatch
}

// Surface rasterizes sampled panes. Calls happen on the UI goroutine,
// after sampling for the pane has finished.
type Surface interface {
	PaletteSize(p entity.Palette) int
	DrawPane(ctx context.Context, frame PaneFrame) error
}

package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/fractui/internal/application/port"
	"github.com/bnema/fractui/internal/domain/entity"
	"github.com/bnema/fractui/internal/domain/fractal"
	"github.com/bnema/fractui/internal/logging"
)

// RenderFrameUseCase lays out the pane tree and draws every pane.
type RenderFrameUseCase struct {
	sampler *SampleFractalUseCase
}

// NewRenderFrameUseCase creates a frame renderer.
func NewRenderFrameUseCase(sampler *SampleFractalUseCase) *RenderFrameUseCase {
	return &RenderFrameUseCase{sampler: sampler}
}

// Render assigns each pane its rectangle inside area, then samples and
// draws the panes one at a time in depth-first order.
func (uc *RenderFrameUseCase) Render(ctx context.Context, s *entity.Session, area entity.Rect, surface port.Surface) error {
	if s == nil || s.Root == nil {
		return fmt.Errorf("session is required")
	}
	if surface == nil {
		return fmt.Errorf("surface is required")
	}
	s.Root.Arrange(area)

	for i, pane := range s.Root.Leaves() {
		paneCtx := logging.WithPaneID(ctx, int(pane.ID))

		bounds, recovered := pane.EnsureFiniteBounds(pane.Area)
		if recovered {
			logging.FromContext(paneCtx).Warn().Msg("non-finite viewport, reset to default view")
		}

		frame := port.PaneFrame{
			Pane:   *pane.Clone(),
			Number: i + 1,
			Active: pane.ID == s.ActivePaneID,
			Area:   pane.Area,
			Bounds: bounds,
		}

		if !pane.Area.Empty() {
			batches, err := uc.sampler.Sample(paneCtx, SampleInput{
				Bounds:      bounds,
				Area:        pane.Area,
				PaletteSize: surface.PaletteSize(pane.Palette),
				Params:      fractal.ParamsFor(pane),
			})
			if err != nil {
				return fmt.Errorf("sample pane %d: %w", pane.ID, err)
			}
			frame.Batches = batches
		}

		if err := surface.DrawPane(paneCtx, frame); err != nil {
			return fmt.Errorf("draw pane %d: %w", pane.ID, err)
		}
	}
	return nil
}

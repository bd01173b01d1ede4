package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/fractui/internal/domain/entity"
	"github.com/bnema/fractui/internal/logging"
)

// ViewAction is a pane-local navigation command.
type ViewAction string

const (
	ViewPanLeft            ViewAction = "pan_left"
	ViewPanRight           ViewAction = "pan_right"
	ViewPanUp              ViewAction = "pan_up"
	ViewPanDown            ViewAction = "pan_down"
	ViewZoomIn             ViewAction = "zoom_in"
	ViewZoomOut            ViewAction = "zoom_out"
	ViewReset              ViewAction = "reset"
	ViewCyclePalette       ViewAction = "cycle_palette"
	ViewCycleFractal       ViewAction = "cycle_fractal"
	ViewIncreaseIterations ViewAction = "increase_iterations"
	ViewDecreaseIterations ViewAction = "decrease_iterations"
)

// ManageViewUseCase applies navigation commands to a single pane.
type ManageViewUseCase struct {
	defaults entity.PaneDefaults
}

// NewManageViewUseCase creates a view use case. Reset restores d.
func NewManageViewUseCase(d entity.PaneDefaults) *ManageViewUseCase {
	return &ManageViewUseCase{defaults: d}
}

// SetDefaults replaces the state Reset restores, e.g. after a config reload.
func (uc *ManageViewUseCase) SetDefaults(d entity.PaneDefaults) {
	uc.defaults = d
}

// Defaults returns the state Reset restores.
func (uc *ManageViewUseCase) Defaults() entity.PaneDefaults {
	return uc.defaults
}

// Apply runs action against the pane. It reports whether the pane changed;
// zooms past the precision floor leave the pane untouched.
func (uc *ManageViewUseCase) Apply(ctx context.Context, p *entity.Pane, action ViewAction) (bool, error) {
	if p == nil {
		return false, fmt.Errorf("pane is required")
	}
	log := logging.FromContext(ctx)

	changed := true
	switch action {
	case ViewPanLeft:
		p.Pan(-1, 0)
	case ViewPanRight:
		p.Pan(1, 0)
	case ViewPanUp:
		p.Pan(0, 1)
	case ViewPanDown:
		p.Pan(0, -1)
	case ViewZoomIn:
		changed = p.ZoomIn()
	case ViewZoomOut:
		changed = p.ZoomOut()
	case ViewReset:
		p.Reset(uc.defaults)
	case ViewCyclePalette:
		p.CyclePalette()
	case ViewCycleFractal:
		p.CycleFractalType()
	case ViewIncreaseIterations:
		p.IncreaseIterations()
	case ViewDecreaseIterations:
		p.DecreaseIterations()
	default:
		return false, fmt.Errorf("unknown view action %q", action)
	}

	if !changed {
		log.Debug().
			Int("pane_id", int(p.ID)).
			Float64("scale", p.Scale).
			Msg("zoom rejected at precision floor")
		return false, nil
	}

	log.Debug().
		Int("pane_id", int(p.ID)).
		Str("action", string(action)).
		Float64("center_x", p.CenterX).
		Float64("center_y", p.CenterY).
		Float64("scale", p.Scale).
		Int("max_iterations", p.MaxIterations).
		Msg("view updated")
	return true, nil
}

// ZoomAtCell zooms the pane by factor keeping the world point under the
// terminal cell (col, row) fixed.
func (uc *ManageViewUseCase) ZoomAtCell(ctx context.Context, p *entity.Pane, col, row int, factor float64) (bool, error) {
	if p == nil {
		return false, fmt.Errorf("pane is required")
	}
	if p.Area.Empty() {
		return false, nil
	}

	nx, ny := p.Area.Normalize(col, row)
	ok := p.ZoomAt(nx, ny, factor)

	logging.FromContext(ctx).Debug().
		Int("pane_id", int(p.ID)).
		Float64("nx", nx).
		Float64("ny", ny).
		Float64("factor", factor).
		Bool("applied", ok).
		Msg("cursor zoom")
	return ok, nil
}

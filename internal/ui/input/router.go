package input

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/fractui/internal/application/usecase"
	"github.com/bnema/fractui/internal/domain/entity"
	"github.com/bnema/fractui/internal/logging"
)

// Outcome tells the caller what to do after an event was routed.
type Outcome int

const (
	// OutcomeIgnored means the event was swallowed without changing state.
	OutcomeIgnored Outcome = iota
	// OutcomeRedraw means session state changed.
	OutcomeRedraw
	// OutcomeQuit means the user confirmed quitting.
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRedraw:
		return "redraw"
	case OutcomeQuit:
		return "quit"
	default:
		return "ignored"
	}
}

// Router applies key and mouse events to a session according to the
// current input mode.
type Router struct {
	keys  KeyMap
	panes *usecase.ManagePanesUseCase
	view  *usecase.ManageViewUseCase
	julia *usecase.EditJuliaConstantUseCase
}

// NewRouter creates a router.
func NewRouter(
	keys KeyMap,
	panes *usecase.ManagePanesUseCase,
	view *usecase.ManageViewUseCase,
	julia *usecase.EditJuliaConstantUseCase,
) *Router {
	return &Router{
		keys:  keys,
		panes: panes,
		view:  view,
		julia: julia,
	}
}

// Keys returns the router's key bindings.
func (r *Router) Keys() KeyMap {
	return r.keys
}

// HandleKey routes a key press.
func (r *Router) HandleKey(ctx context.Context, s *entity.Session, msg tea.KeyMsg) Outcome {
	mode := CurrentMode(s)
	logging.FromContext(ctx).Trace().
		Str("key", msg.String()).
		Str("mode", mode.String()).
		Msg("key event")

	switch mode {
	case ModeQuitConfirm:
		return r.handleQuitConfirm(s, msg)
	case ModeHelp:
		return r.handleHelp(s, msg)
	case ModeTextCapture:
		return r.handleTextCapture(ctx, s.EditingPane(), msg)
	default:
		return r.handleNormal(ctx, s, msg)
	}
}

func (r *Router) handleQuitConfirm(s *entity.Session, msg tea.KeyMsg) Outcome {
	switch {
	case key.Matches(msg, r.keys.Yes):
		return OutcomeQuit
	case key.Matches(msg, r.keys.No, r.keys.Cancel):
		s.ShowQuitPopup = false
		return OutcomeRedraw
	}
	return OutcomeIgnored
}

func (r *Router) handleHelp(s *entity.Session, msg tea.KeyMsg) Outcome {
	if key.Matches(msg, r.keys.Help, r.keys.Quit, r.keys.Cancel) {
		s.ShowHelpPopup = false
		return OutcomeRedraw
	}
	return OutcomeIgnored
}

func (r *Router) handleTextCapture(ctx context.Context, p *entity.Pane, msg tea.KeyMsg) Outcome {
	switch {
	case key.Matches(msg, r.keys.Submit):
		r.julia.Commit(ctx, p)
		return OutcomeRedraw
	case key.Matches(msg, r.keys.Cancel):
		r.julia.Cancel(ctx, p)
		return OutcomeRedraw
	case key.Matches(msg, r.keys.Backspace):
		r.julia.Backspace(p)
		return OutcomeRedraw
	}

	if msg.Type != tea.KeyRunes {
		return OutcomeIgnored
	}
	taken := false
	for _, c := range msg.Runes {
		if r.julia.Append(p, c) {
			taken = true
		}
	}
	if taken {
		return OutcomeRedraw
	}
	return OutcomeIgnored
}

func (r *Router) handleNormal(ctx context.Context, s *entity.Session, msg tea.KeyMsg) Outcome {
	log := logging.FromContext(ctx)

	if key.Matches(msg, r.keys.Select) {
		n := int(msg.Runes[0] - '0')
		if r.panes.SelectByNumber(ctx, s, n) {
			return OutcomeRedraw
		}
		return OutcomeIgnored
	}

	if dir, ok := r.splitDirection(msg); ok {
		if _, err := r.panes.Split(ctx, usecase.SplitPaneInput{Session: s, Direction: dir}); err != nil {
			log.Error().Err(err).Msg("split failed")
			return OutcomeIgnored
		}
		return OutcomeRedraw
	}

	switch {
	case key.Matches(msg, r.keys.Close):
		closed, err := r.panes.Close(ctx, s)
		if err != nil {
			log.Error().Err(err).Msg("close failed")
			return OutcomeIgnored
		}
		if closed {
			return OutcomeRedraw
		}
		return OutcomeIgnored
	case key.Matches(msg, r.keys.Cycle):
		if _, err := r.panes.CycleFocus(ctx, s); err != nil {
			log.Error().Err(err).Msg("cycle focus failed")
			return OutcomeIgnored
		}
		return OutcomeRedraw
	case key.Matches(msg, r.keys.Help):
		s.ShowHelpPopup = true
		return OutcomeRedraw
	case key.Matches(msg, r.keys.Quit):
		s.ShowQuitPopup = true
		return OutcomeRedraw
	}

	action, ok := r.viewAction(msg)
	if !ok {
		return OutcomeIgnored
	}
	changed, err := r.view.Apply(ctx, s.ActivePane(), action)
	if err != nil {
		log.Error().Err(err).Str("action", string(action)).Msg("view action failed")
		return OutcomeIgnored
	}
	if changed {
		return OutcomeRedraw
	}
	return OutcomeIgnored
}

func (r *Router) splitDirection(msg tea.KeyMsg) (usecase.SplitDirection, bool) {
	switch {
	case key.Matches(msg, r.keys.SplitLeft):
		return usecase.SplitLeft, true
	case key.Matches(msg, r.keys.SplitRight):
		return usecase.SplitRight, true
	case key.Matches(msg, r.keys.SplitUp):
		return usecase.SplitUp, true
	case key.Matches(msg, r.keys.SplitDown):
		return usecase.SplitDown, true
	}
	return "", false
}

func (r *Router) viewAction(msg tea.KeyMsg) (usecase.ViewAction, bool) {
	bindings := []struct {
		binding key.Binding
		action  usecase.ViewAction
	}{
		{r.keys.PanLeft, usecase.ViewPanLeft},
		{r.keys.PanRight, usecase.ViewPanRight},
		{r.keys.PanUp, usecase.ViewPanUp},
		{r.keys.PanDown, usecase.ViewPanDown},
		{r.keys.ZoomIn, usecase.ViewZoomIn},
		{r.keys.ZoomOut, usecase.ViewZoomOut},
		{r.keys.Reset, usecase.ViewReset},
		{r.keys.Palette, usecase.ViewCyclePalette},
		{r.keys.Fractal, usecase.ViewCycleFractal},
		{r.keys.MoreIters, usecase.ViewIncreaseIterations},
		{r.keys.LessIters, usecase.ViewDecreaseIterations},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action, true
		}
	}
	return "", false
}

// HandleMouse routes a mouse event. Mouse input only acts in normal mode.
func (r *Router) HandleMouse(ctx context.Context, s *entity.Session, msg tea.MouseMsg) Outcome {
	if CurrentMode(s) != ModeNormal {
		return OutcomeIgnored
	}

	wheel := tea.MouseEvent(msg).IsWheel()
	press := msg.Action == tea.MouseActionPress && !wheel
	if !wheel && !press {
		return OutcomeIgnored
	}

	p := r.panes.FindPaneAt(s, msg.X, msg.Y)
	if p == nil {
		return OutcomeIgnored
	}
	if err := r.panes.Focus(ctx, s, p.ID); err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("focus failed")
		return OutcomeIgnored
	}

	if press {
		if field := p.InputFieldAt(msg.X, msg.Y); field != entity.InputNone {
			if err := r.julia.Begin(ctx, p, field); err != nil {
				logging.FromContext(ctx).Error().Err(err).Msg("julia input failed")
			}
		}
		return OutcomeRedraw
	}

	var factor float64
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		factor = entity.WheelZoomIn
	case tea.MouseButtonWheelDown:
		factor = entity.WheelZoomOut
	default:
		// Horizontal wheel only focuses.
		return OutcomeRedraw
	}
	if _, err := r.view.ZoomAtCell(ctx, p, msg.X, msg.Y, factor); err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("cursor zoom failed")
	}
	return OutcomeRedraw
}

// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/fractui/internal/application/usecase"
	"github.com/bnema/fractui/internal/cli/styles"
	"github.com/bnema/fractui/internal/config"
	"github.com/bnema/fractui/internal/domain/entity"
	"github.com/bnema/fractui/internal/logging"
	"github.com/bnema/fractui/internal/ui/canvas"
	"github.com/bnema/fractui/internal/ui/input"
)

// Rows taken by the header box at the top of the screen.
const headerHeight = 3

// ConfigReloadedMsg carries a configuration that changed on disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// ExplorerModel is the Bubble Tea model of the interactive explorer.
// Every handled event that changes the session redraws the whole screen.
type ExplorerModel struct {
	ctx     context.Context
	session *entity.Session
	router  *input.Router

	renderer *usecase.RenderFrameUseCase
	view     *usecase.ManageViewUseCase
	sampler  *usecase.SampleFractalUseCase

	theme   *styles.Theme
	grid    *canvas.Grid
	surface *canvas.Surface

	width  int
	height int
	frame  string
	err    error
}

// ExplorerModelConfig holds the dependencies of the explorer model.
type ExplorerModelConfig struct {
	Session  *entity.Session
	Router   *input.Router
	Renderer *usecase.RenderFrameUseCase
	View     *usecase.ManageViewUseCase
	Sampler  *usecase.SampleFractalUseCase
}

// NewExplorerModel creates the explorer model. Nothing is drawn until the
// first window size is known.
func NewExplorerModel(ctx context.Context, theme *styles.Theme, cfg ExplorerModelConfig) ExplorerModel {
	grid := canvas.NewGrid(0, 0)
	return ExplorerModel{
		ctx:      logging.WithComponent(ctx, "explorer"),
		session:  cfg.Session,
		router:   cfg.Router,
		renderer: cfg.Renderer,
		view:     cfg.View,
		sampler:  cfg.Sampler,
		theme:    theme,
		grid:     grid,
		surface:  canvas.NewSurface(grid, theme),
	}
}

// Init implements tea.Model.
func (m ExplorerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.grid.Resize(msg.Width, msg.Height)
		m.redraw()
		return m, nil

	case tea.KeyMsg:
		return m.apply(m.router.HandleKey(m.ctx, m.session, msg))

	case tea.MouseMsg:
		return m.apply(m.router.HandleMouse(m.ctx, m.session, msg))

	case ConfigReloadedMsg:
		m.applyConfig(msg.Config)
		m.redraw()
		return m, nil
	}

	return m, nil
}

func (m ExplorerModel) apply(outcome input.Outcome) (tea.Model, tea.Cmd) {
	switch outcome {
	case input.OutcomeQuit:
		logging.FromContext(m.ctx).Info().Msg("quit confirmed")
		return m, tea.Quit
	case input.OutcomeRedraw:
		m.redraw()
	}
	return m, nil
}

// applyConfig installs reloaded defaults, workers and colors. Panes keep
// their state; the new defaults apply to new and reset panes.
func (m *ExplorerModel) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	log := logging.FromContext(m.ctx)

	defaults, err := cfg.PaneDefaults()
	if err != nil {
		log.Warn().Err(err).Msg("ignoring reloaded fractal defaults")
	} else {
		m.session.Defaults = defaults
		m.view.SetDefaults(defaults)
	}
	m.sampler.SetWorkers(cfg.Render.Workers)

	m.theme = styles.NewThemeFromAppearance(cfg.Appearance)
	m.surface = canvas.NewSurface(m.grid, m.theme)
	log.Debug().Int("workers", m.sampler.Workers()).Msg("config applied")
}

// Screen returns the rectangle of the whole terminal.
func (m ExplorerModel) Screen() entity.Rect {
	return entity.Rect{W: m.width, H: m.height}
}

// panesArea returns the rectangle below the header.
func (m ExplorerModel) panesArea() entity.Rect {
	h := min(headerHeight, m.height)
	return entity.Rect{Y: h, W: m.width, H: m.height - h}
}

// redraw rebuilds the grid: header, pane tree, then popups on top.
func (m *ExplorerModel) redraw() {
	if m.width <= 0 || m.height <= 0 {
		m.frame = ""
		return
	}
	m.grid.Clear()
	m.surface.DrawHeader(entity.Rect{W: m.width, H: min(headerHeight, m.height)})

	if err := m.renderer.Render(m.ctx, m.session, m.panesArea(), m.surface); err != nil {
		m.err = err
		logging.FromContext(m.ctx).Error().Err(err).Msg("render failed")
	}

	switch input.CurrentMode(m.session) {
	case input.ModeQuitConfirm:
		m.surface.DrawQuitConfirm(m.Screen())
	case input.ModeHelp:
		m.surface.DrawHelp(m.Screen(), helpRows(m.router.Keys()))
	}

	m.frame = m.grid.Render()
}

func helpRows(keys input.KeyMap) []styles.HelpRow {
	entries := keys.HelpEntries()
	rows := make([]styles.HelpRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, styles.HelpRow{Key: e.Key, Action: e.Desc})
	}
	return rows
}

// Err returns the last render error, if any.
func (m ExplorerModel) Err() error {
	return m.err
}

// Text returns the last frame without styling.
func (m ExplorerModel) Text() string {
	return m.grid.Text()
}

// View implements tea.Model.
func (m ExplorerModel) View() string {
	return m.frame
}

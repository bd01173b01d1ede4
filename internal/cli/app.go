// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/bnema/fractui/internal/application/usecase"
	"github.com/bnema/fractui/internal/cli/styles"
	"github.com/bnema/fractui/internal/config"
	"github.com/bnema/fractui/internal/domain/build"
	"github.com/bnema/fractui/internal/domain/entity"
	"github.com/bnema/fractui/internal/logging"
	"github.com/bnema/fractui/internal/ui/input"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	ConfigErr error
	Theme     *styles.Theme
	BuildInfo build.Info
	LogFile   string

	// Use cases
	SampleUC *usecase.SampleFractalUseCase
	RenderUC *usecase.RenderFrameUseCase
	PanesUC  *usecase.ManagePanesUseCase
	ViewUC   *usecase.ManageViewUseCase
	JuliaUC  *usecase.EditJuliaConstantUseCase

	// Context with logger
	ctx       context.Context
	logCloser io.Closer
}

// NewApp loads the configuration and opens the log file. An invalid config
// file does not stop the CLI: defaults are used and the error is kept in
// ConfigErr.
func NewApp() (*App, error) {
	cfgErr := config.Init()
	cfg := config.Get()
	if cfgErr != nil {
		cfg = config.DefaultConfig()
	}

	logger, closer, logFile, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	config.SetLogger(logger.With().Str("component", "config").Logger())
	ctx := logging.WithContext(context.Background(), logger)

	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("using default configuration")
	}

	sampler := usecase.NewSampleFractalUseCase(cfg.Render.Workers)

	return &App{
		Config:    cfg,
		ConfigErr: cfgErr,
		Theme:     styles.NewTheme(cfg),
		LogFile:   logFile,
		SampleUC:  sampler,
		RenderUC:  usecase.NewRenderFrameUseCase(sampler),
		PanesUC:   usecase.NewManagePanesUseCase(),
		ViewUC:    usecase.NewManageViewUseCase(entity.DefaultPaneDefaults()),
		JuliaUC:   usecase.NewEditJuliaConstantUseCase(),
		ctx:       ctx,
		logCloser: closer,
	}, nil
}

// newLogger returns the file logger when file logging is enabled, and a
// disabled logger otherwise. The terminal belongs to the TUI.
func newLogger(cfg *config.Config) (zerolog.Logger, io.Closer, string, error) {
	if !cfg.Logging.EnableFileLog {
		return zerolog.Nop(), nil, "", nil
	}

	path, err := config.GetLogFile(cfg.Logging.LogDir)
	if err != nil {
		return zerolog.Nop(), nil, "", fmt.Errorf("resolve log file: %w", err)
	}

	logCfg := logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	}
	logger, closer, err := logging.NewFileLogger(logCfg, logging.FileOptions{
		Path:       path,
		MaxSizeMB:  cfg.Logging.MaxSize,
		MaxBackups: cfg.Logging.MaxBackups,
	})
	if err != nil {
		return zerolog.Nop(), nil, "", err
	}
	return logger, closer, path, nil
}

// Session creates an explorer session from the current configuration and
// installs its defaults in the view use case.
func (a *App) Session() (*entity.Session, error) {
	defaults, err := a.Config.PaneDefaults()
	if err != nil {
		return nil, fmt.Errorf("pane defaults: %w", err)
	}
	a.ViewUC.SetDefaults(defaults)
	return entity.NewSession(defaults), nil
}

// Router creates the input router over the app's use cases.
func (a *App) Router() *input.Router {
	return input.NewRouter(input.DefaultKeyMap(), a.PanesUC, a.ViewUC, a.JuliaUC)
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCloser != nil {
		return a.logCloser.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

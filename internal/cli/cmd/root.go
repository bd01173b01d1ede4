// Package cmd provides Cobra CLI commands for fractui.
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/fractui/internal/cli"
	"github.com/bnema/fractui/internal/cli/model"
	"github.com/bnema/fractui/internal/config"
	"github.com/bnema/fractui/internal/domain/build"
	"github.com/bnema/fractui/internal/logging"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "fractui",
		Short: "Explore escape-time fractals in your terminal",
		Long: `fractui - an escape-time fractal explorer for the terminal.

Split the screen into panes like a terminal multiplexer and explore a
different fractal in each one.

Features:
  - Mandelbrot, Burning Ship and Julia sets
  - Classic, Rainbow and Magma palettes
  - Horizontal and vertical pane splits, keyboard and mouse focus
  - Pan, zoom at the viewport center or under the mouse cursor
  - Editable Julia constant per pane
  - Live configuration reload

Run 'fractui' to start the explorer. Press 'h' inside for the key
reference.`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
		RunE: runExplorer,
	}
)

func init() {
	addExplorerFlags(rootCmd)
}

func addExplorerFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.IntP("workers", "w", 0, "compute workers (0 = one per CPU)")
	flags.IntP("iterations", "i", 0, "iteration cap of new panes")
	flags.StringP("fractal", "f", "", "fractal of new panes: mandelbrot, burning_ship, julia")
	flags.StringP("palette", "p", "", "palette of new panes: classic, rainbow, magma")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// overridesFromFlags collects the flags the user actually set.
func overridesFromFlags(cmd *cobra.Command) (cli.Overrides, error) {
	var o cli.Overrides
	flags := cmd.Flags()

	if flags.Changed("workers") {
		v, err := flags.GetInt("workers")
		if err != nil {
			return o, err
		}
		o.Workers = &v
	}
	if flags.Changed("iterations") {
		v, err := flags.GetInt("iterations")
		if err != nil {
			return o, err
		}
		o.Iterations = &v
	}

	var err error
	if o.Fractal, err = flags.GetString("fractal"); err != nil {
		return o, err
	}
	if o.Palette, err = flags.GetString("palette"); err != nil {
		return o, err
	}
	return o, nil
}

func runExplorer(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	overrides, err := overridesFromFlags(cmd)
	if err != nil {
		return err
	}
	if err := app.ApplyOverrides(overrides); err != nil {
		return err
	}

	session, err := app.Session()
	if err != nil {
		return err
	}

	ctx := app.Ctx()
	log := logging.FromContext(ctx)
	defer logging.RecoverPanic(ctx)

	m := model.NewExplorerModel(ctx, app.Theme, model.ExplorerModelConfig{
		Session:  session,
		Router:   app.Router(),
		Renderer: app.RenderUC,
		View:     app.ViewUC,
		Sampler:  app.SampleUC,
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	config.OnConfigChange(func(cfg *config.Config) {
		merged, err := overrides.Apply(cfg)
		if err != nil {
			log.Warn().Err(err).Msg("reloaded config rejected")
			return
		}
		p.Send(model.ConfigReloadedMsg{Config: merged})
	})
	if err := config.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watch disabled")
	}

	log.Info().
		Int("workers", app.SampleUC.Workers()).
		Str("fractal", app.Config.Fractal.DefaultType).
		Str("palette", app.Config.Fractal.DefaultPalette).
		Msg("explorer started")

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run explorer: %w", err)
	}
	log.Info().Msg("explorer stopped")
	return nil
}

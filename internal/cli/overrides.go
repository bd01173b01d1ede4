package cli

import (
	"fmt"

	"github.com/bnema/fractui/internal/cli/styles"
	"github.com/bnema/fractui/internal/config"
)

// Overrides holds command-line values that take precedence over the
// configuration file. Nil or empty fields leave the file value untouched.
type Overrides struct {
	Workers    *int
	Iterations *int
	Fractal    string
	Palette    string
}

// Apply returns a validated copy of cfg with the overrides applied.
func (o Overrides) Apply(cfg *config.Config) (*config.Config, error) {
	out := *cfg
	if o.Workers != nil {
		out.Render.Workers = *o.Workers
	}
	if o.Iterations != nil {
		out.Fractal.MaxIterations = *o.Iterations
	}
	if o.Fractal != "" {
		out.Fractal.DefaultType = o.Fractal
	}
	if o.Palette != "" {
		out.Fractal.DefaultPalette = o.Palette
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("command-line overrides: %w", err)
	}
	return &out, nil
}

// ApplyOverrides replaces the app's configuration and derived state with
// the overridden configuration.
func (a *App) ApplyOverrides(o Overrides) error {
	cfg, err := o.Apply(a.Config)
	if err != nil {
		return err
	}
	a.Config = cfg
	a.Theme = styles.NewTheme(cfg)
	a.SampleUC.SetWorkers(cfg.Render.Workers)
	return nil
}

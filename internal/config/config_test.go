package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fractui/internal/domain/entity"
)

// isolate points the XDG directories at a temp dir and returns the config dir.
func isolate(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return filepath.Join(root, "config", appName)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), dirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), filePerm))
}

func TestDefaultConfig_IsValid(t *testing.T) {
	isolate(t)
	cfg := DefaultConfig()

	require.NoError(t, validateConfig(cfg))
	assert.Equal(t, 1100, cfg.Fractal.MaxIterations)
	assert.Equal(t, "mandelbrot", cfg.Fractal.DefaultType)
	assert.Equal(t, "classic", cfg.Fractal.DefaultPalette)
	assert.Equal(t, 0, cfg.Render.Workers)
	assert.True(t, cfg.Logging.EnableFileLog)
}

func TestValidateConfig(t *testing.T) {
	isolate(t)

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"iterations below floor", func(c *Config) { c.Fractal.MaxIterations = 9 }, "fractal.max_iterations"},
		{"iterations at floor", func(c *Config) { c.Fractal.MaxIterations = 10 }, ""},
		{"unknown fractal", func(c *Config) { c.Fractal.DefaultType = "newton" }, "fractal.default_type"},
		{"unknown palette", func(c *Config) { c.Fractal.DefaultPalette = "viridis" }, "fractal.default_palette"},
		{"negative workers", func(c *Config) { c.Render.Workers = -1 }, "render.workers"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"hex color", func(c *Config) { c.Appearance.Accent = "#ffcc00" }, ""},
		{"short hex color", func(c *Config) { c.Appearance.Accent = "#fc0" }, ""},
		{"empty color", func(c *Config) { c.Appearance.Header = "" }, ""},
		{"ansi out of range", func(c *Config) { c.Appearance.ActiveBorder = "256" }, "appearance.active_border"},
		{"named color", func(c *Config) { c.Appearance.InactiveBorder = "gray" }, "appearance.inactive_border"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfig_ReportsEveryProblem(t *testing.T) {
	isolate(t)
	cfg := DefaultConfig()
	cfg.Fractal.MaxIterations = 0
	cfg.Render.Workers = -2

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fractal.max_iterations")
	assert.Contains(t, err.Error(), "render.workers")
}

func TestConfig_PaneDefaults(t *testing.T) {
	cfg := &Config{Fractal: FractalConfig{
		MaxIterations:  300,
		DefaultType:    "julia",
		DefaultPalette: "magma",
		JuliaReal:      0.285,
		JuliaImag:      0.01,
	}}

	d, err := cfg.PaneDefaults()
	require.NoError(t, err)

	assert.Equal(t, entity.FractalJulia, d.FractalType)
	assert.Equal(t, entity.PaletteMagma, d.Palette)
	assert.Equal(t, 300, d.MaxIterations)
	assert.Equal(t, 0.285, d.JuliaReal)
	assert.Equal(t, 0.01, d.JuliaImag)
	assert.Equal(t, entity.DefaultCenterX, d.CenterX)
	assert.Equal(t, entity.DefaultScale, d.Scale)

	cfg.Fractal.DefaultPalette = "sepia"
	_, err = cfg.PaneDefaults()
	assert.Error(t, err)
}

func TestManager_LoadCreatesDefaultFile(t *testing.T) {
	configDir := isolate(t)

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	path := filepath.Join(configDir, "config.json")
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var written Config
	require.NoError(t, json.Unmarshal(data, &written))
	assert.Equal(t, 1100, written.Fractal.MaxIterations)
	assert.Equal(t, path, m.GetConfigFile())

	cfg := m.Get()
	assert.Equal(t, 1100, cfg.Fractal.MaxIterations)
	assert.Equal(t, "classic", cfg.Fractal.DefaultPalette)
	assert.NotEmpty(t, cfg.Logging.LogDir)
}

func TestManager_LoadReadsFileAndEnv(t *testing.T) {
	configDir := isolate(t)
	writeFile(t, filepath.Join(configDir, "config.yaml"), `
fractal:
  max_iterations: 500
  default_palette: Magma
render:
  workers: 2
`)
	t.Setenv("FRACTUI_WORKERS", "6")

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, 500, cfg.Fractal.MaxIterations)
	assert.Equal(t, "magma", cfg.Fractal.DefaultPalette)
	assert.Equal(t, "mandelbrot", cfg.Fractal.DefaultType)
	assert.Equal(t, 6, cfg.Render.Workers)
}

func TestManager_LoadRejectsInvalidFile(t *testing.T) {
	configDir := isolate(t)
	writeFile(t, filepath.Join(configDir, "config.yaml"), "fractal:\n  max_iterations: 3\n")

	m, err := NewManager()
	require.NoError(t, err)

	err = m.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestManager_Reload(t *testing.T) {
	configDir := isolate(t)
	path := filepath.Join(configDir, "config.yaml")
	writeFile(t, path, "fractal:\n  max_iterations: 200\n")

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	var got []*Config
	m.OnConfigChange(func(c *Config) { got = append(got, c) })

	writeFile(t, path, "fractal:\n  max_iterations: 400\n")
	m.handleChange(path)

	require.Len(t, got, 1)
	assert.Equal(t, 400, got[0].Fractal.MaxIterations)
	assert.Equal(t, 400, m.Get().Fractal.MaxIterations)

	// An invalid edit keeps the previous values and skips callbacks.
	writeFile(t, path, "fractal:\n  max_iterations: 1\n")
	m.handleChange(path)

	assert.Len(t, got, 1)
	assert.Equal(t, 400, m.Get().Fractal.MaxIterations)
}

func TestManager_GetReturnsCopy(t *testing.T) {
	isolate(t)
	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	cfg.Fractal.MaxIterations = 42

	assert.Equal(t, 1100, m.Get().Fractal.MaxIterations)
}

func TestGetXDGDirs(t *testing.T) {
	t.Run("xdg variables", func(t *testing.T) {
		root := t.TempDir()
		t.Setenv("ENV", "")
		t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "c"))
		t.Setenv("XDG_STATE_HOME", filepath.Join(root, "s"))

		dirs, err := GetXDGDirs()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "c", "fractui"), dirs.ConfigHome)
		assert.Equal(t, filepath.Join(root, "s", "fractui"), dirs.StateHome)

		logFile, err := GetLogFile("")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "s", "fractui", "logs", "fractui.log"), logFile)
	})

	t.Run("dev mode", func(t *testing.T) {
		t.Setenv("ENV", "dev")
		cwd, err := os.Getwd()
		require.NoError(t, err)

		dirs, err := GetXDGDirs()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(cwd, ".dev", "fractui"), dirs.ConfigHome)
	})

	t.Run("explicit log dir", func(t *testing.T) {
		logFile, err := GetLogFile("/var/tmp/x")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/var/tmp/x", "fractui.log"), logFile)
	})
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "fractui configuration", doc["title"])
	assert.Contains(t, string(data), "max_iterations")
	assert.Contains(t, string(data), "burning_ship")
}

func TestConfig_ValidateNormalizes(t *testing.T) {
	isolate(t)
	cfg := DefaultConfig()
	cfg.Fractal.DefaultPalette = " Rainbow "
	cfg.Fractal.DefaultType = "JULIA"

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "rainbow", cfg.Fractal.DefaultPalette)
	assert.Equal(t, "julia", cfg.Fractal.DefaultType)

	cfg.Render.Workers = -3
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestGetManDir(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_DATA_HOME", root)

	dir, err := GetManDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "man", "man1"), dir)
}

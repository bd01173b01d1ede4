// Package config provides configuration management for fractui with Viper integration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/bnema/fractui/internal/domain/entity"
)

// File permission constants
const (
	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

const envPrefix = "FRACTUI"

// ErrInvalidConfig is returned when configuration values fail validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the complete configuration for fractui.
type Config struct {
	Fractal    FractalConfig    `mapstructure:"fractal" yaml:"fractal" json:"fractal"`
	Render     RenderConfig     `mapstructure:"render" yaml:"render" json:"render"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging" json:"logging"`
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" json:"appearance"`
}

// FractalConfig holds the state new and reset panes start from.
type FractalConfig struct {
	MaxIterations  int     `mapstructure:"max_iterations" yaml:"max_iterations" json:"max_iterations" jsonschema:"minimum=10,default=1100"`
	DefaultType    string  `mapstructure:"default_type" yaml:"default_type" json:"default_type" jsonschema:"enum=mandelbrot,enum=burning_ship,enum=julia"`
	DefaultPalette string  `mapstructure:"default_palette" yaml:"default_palette" json:"default_palette" jsonschema:"enum=classic,enum=rainbow,enum=magma"`
	JuliaReal      float64 `mapstructure:"julia_real" yaml:"julia_real" json:"julia_real"`
	JuliaImag      float64 `mapstructure:"julia_imag" yaml:"julia_imag" json:"julia_imag"`
}

// RenderConfig holds compute engine settings.
type RenderConfig struct {
	// Workers is the sampling worker count. 0 means one per CPU.
	Workers int `mapstructure:"workers" yaml:"workers" json:"workers" jsonschema:"minimum=0"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" yaml:"format" json:"format" jsonschema:"enum=console,enum=json"`

	// File output configuration. The terminal belongs to the explorer,
	// so logs are either written to a file or dropped.
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" json:"log_dir"`
	MaxSize       int    `mapstructure:"max_size" yaml:"max_size" json:"max_size" jsonschema:"minimum=0"`
	MaxBackups    int    `mapstructure:"max_backups" yaml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
}

// AppearanceConfig holds terminal colors. Values are hex (#RRGGBB) or ANSI indexes.
type AppearanceConfig struct {
	ActiveBorder   string `mapstructure:"active_border" yaml:"active_border" json:"active_border"`
	InactiveBorder string `mapstructure:"inactive_border" yaml:"inactive_border" json:"inactive_border"`
	Header         string `mapstructure:"header" yaml:"header" json:"header"`
	Accent         string `mapstructure:"accent" yaml:"accent" json:"accent"`
}

// PaneDefaults converts the fractal section into pane defaults.
func (c *Config) PaneDefaults() (entity.PaneDefaults, error) {
	d := entity.DefaultPaneDefaults()

	ft, err := entity.ParseFractalType(c.Fractal.DefaultType)
	if err != nil {
		return d, err
	}
	palette, err := entity.ParsePalette(c.Fractal.DefaultPalette)
	if err != nil {
		return d, err
	}

	d.FractalType = ft
	d.Palette = palette
	d.MaxIterations = max(c.Fractal.MaxIterations, entity.MinIterations)
	d.JuliaReal = c.Fractal.JuliaReal
	d.JuliaImag = c.Fractal.JuliaImag
	return d, nil
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	logger    zerolog.Logger
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	// Finds config.json, config.yaml, config.toml
	v.SetConfigName("config")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"fractal.max_iterations":  "MAX_ITERATIONS",
		"fractal.default_type":    "FRACTAL",
		"fractal.default_palette": "PALETTE",
		"fractal.julia_real":      "JULIA_REAL",
		"fractal.julia_imag":      "JULIA_IMAG",
		"render.workers":          "WORKERS",
		"logging.level":           "LOG_LEVEL",
		"logging.format":          "LOG_FORMAT",
		"logging.enable_file_log": "LOG_FILE",
		"logging.log_dir":         "LOG_DIR",
	}

	for key, env := range bindings {
		if err := v.BindEnv(key, envPrefix+"_"+env); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable %s: %w", env, err)
		}
	}

	return &Manager{
		viper:     v,
		logger:    zerolog.Nop(),
		callbacks: make([]func(*Config), 0),
	}, nil
}

// SetLogger sets the logger used to report reload failures.
func (m *Manager) SetLogger(logger zerolog.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logger = logger
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		if err := m.createDefaultConfig(); err != nil {
			return fmt.Errorf("failed to create default config: %w", err)
		}
	}

	config, err := m.decode()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// Watch starts watching the config file for changes and reloads automatically.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		m.handleChange(e.Name)
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

func (m *Manager) handleChange(path string) {
	if err := m.reload(); err != nil {
		m.mu.RLock()
		log := m.logger
		m.mu.RUnlock()
		log.Warn().Err(err).Str("file", path).Msg("config reload failed, keeping previous values")
		return
	}

	m.mu.RLock()
	config := *m.config
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	log := m.logger
	m.mu.RUnlock()

	log.Info().Str("file", path).Msg("config reloaded")
	for _, callback := range callbacks {
		c := config
		callback(&c)
	}
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// reload re-reads the file. An invalid file leaves the current config in place.
func (m *Manager) reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}
	config, err := m.decode()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) decode() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	normalize(config)
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// normalize fills derived values and canonicalizes enum spellings.
func normalize(c *Config) {
	c.Fractal.DefaultType = strings.ToLower(strings.TrimSpace(c.Fractal.DefaultType))
	c.Fractal.DefaultPalette = strings.ToLower(strings.TrimSpace(c.Fractal.DefaultPalette))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.LogDir == "" {
		c.Logging.LogDir = getDefaultLogDir()
	}
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("fractal.max_iterations", defaults.Fractal.MaxIterations)
	m.viper.SetDefault("fractal.default_type", defaults.Fractal.DefaultType)
	m.viper.SetDefault("fractal.default_palette", defaults.Fractal.DefaultPalette)
	m.viper.SetDefault("fractal.julia_real", defaults.Fractal.JuliaReal)
	m.viper.SetDefault("fractal.julia_imag", defaults.Fractal.JuliaImag)

	m.viper.SetDefault("render.workers", defaults.Render.Workers)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size", defaults.Logging.MaxSize)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)

	m.viper.SetDefault("appearance.active_border", defaults.Appearance.ActiveBorder)
	m.viper.SetDefault("appearance.inactive_border", defaults.Appearance.InactiveBorder)
	m.viper.SetDefault("appearance.header", defaults.Appearance.Header)
	m.viper.SetDefault("appearance.accent", defaults.Appearance.Accent)
}

// createDefaultConfig writes the defaults as JSON and points viper at the new file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	configData, err := json.MarshalIndent(DefaultConfig(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configFile, configData, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	m.viper.SetConfigFile(configFile)
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read new config file: %w", err)
	}
	return nil
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// Global configuration manager instance
var globalManager *Manager
var globalManagerOnce sync.Once

// Init initializes the global configuration manager.
func Init() error {
	var err error
	globalManagerOnce.Do(func() {
		globalManager, err = NewManager()
		if err != nil {
			return
		}
		err = globalManager.Load()
	})
	return err
}

// SetLogger sets the logger of the global manager.
func SetLogger(logger zerolog.Logger) {
	if globalManager == nil {
		return
	}
	globalManager.SetLogger(logger)
}

// Get returns the global configuration.
func Get() *Config {
	if globalManager == nil {
		return DefaultConfig()
	}
	return globalManager.Get()
}

// Watch starts watching the global configuration for changes.
func Watch() error {
	if globalManager == nil {
		return fmt.Errorf("configuration not initialized")
	}
	return globalManager.Watch()
}

// OnConfigChange registers a callback for global configuration changes.
func OnConfigChange(callback func(*Config)) {
	if globalManager == nil {
		return
	}
	globalManager.OnConfigChange(callback)
}

// FileUsed returns the configuration file the global manager read, or the
// default path when none was read.
func FileUsed() string {
	if globalManager != nil {
		if used := globalManager.GetConfigFile(); used != "" {
			return used
		}
	}
	path, err := GetConfigFile()
	if err != nil {
		return ""
	}
	return path
}

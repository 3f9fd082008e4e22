// Package config loads the widgets YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/h0rv/widgets/internal/domain"
	"github.com/h0rv/widgets/internal/kv"
)

// Environment variables that override file settings.
const (
	EnvLogLevel = "WIDGETS_LOG_LEVEL"
	EnvStorage  = "WIDGETS_STORAGE"
)

var logLevels = []any{"trace", "debug", "info", "warn", "error", "fatal", "disabled"}

// Config is the root configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
	Todo    TodoConfig    `yaml:"todo"`
	Sketch  SketchConfig  `yaml:"sketch"`
	Theme   string        `yaml:"theme"`

	// DataDir is set by the caller, never read from the file.
	DataDir string `yaml:"-"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Validate validates the log configuration.
func (c *LogConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Level, validation.Required, validation.In(logLevels...)),
	)
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
	Watch  *bool  `yaml:"watch"`
}

// Validate validates the storage configuration.
func (c *StorageConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Driver, validation.Required, validation.In(kv.DriverFile, kv.DriverSQLite, kv.DriverMemory)),
		validation.Field(&c.Path, validation.When(c.Driver != kv.DriverMemory, validation.Required)),
	)
}

// Watching reports whether the file backend should be watched for outside changes.
func (c *StorageConfig) Watching() bool {
	return c.Driver == kv.DriverFile && (c.Watch == nil || *c.Watch)
}

// TodoConfig configures the todo list.
type TodoConfig struct {
	Key string `yaml:"key"`
}

// Validate validates the todo configuration.
func (c *TodoConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Key, validation.Required),
	)
}

// SketchConfig configures the sketch pad.
type SketchConfig struct {
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	HistoryDepth int    `yaml:"history_depth"`
	ExportDir    string `yaml:"export_dir"`
}

// Validate validates the sketch configuration.
func (c *SketchConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Width, validation.Required, validation.Min(4), validation.Max(400)),
		validation.Field(&c.Height, validation.Required, validation.Min(4), validation.Max(200)),
		validation.Field(&c.HistoryDepth, validation.Required, validation.Min(1), validation.Max(1000)),
		validation.Field(&c.ExportDir, validation.Required),
	)
}

// DefaultConfig returns a Config with sensible defaults. Paths that depend on
// the data directory are filled in by Load.
func DefaultConfig() Config {
	return Config{
		Log:     LogConfig{Level: "info"},
		Storage: StorageConfig{Driver: kv.DriverFile},
		Todo:    TodoConfig{Key: "todos"},
		Sketch: SketchConfig{
			Width:        48,
			Height:       16,
			HistoryDepth: 20,
		},
		Theme: domain.ThemeDark,
	}
}

// Overrides are command-line values that take precedence over the
// environment and the file. Empty fields are ignored.
type Overrides struct {
	LogLevel string
	Storage  string
}

// Load reads configuration from configPath, expanding environment variables.
// A missing file yields the defaults. dataDir anchors relative defaults.
func Load(configPath, dataDir string) (*Config, error) {
	return LoadWith(configPath, dataDir, Overrides{})
}

// LoadWith is Load with command-line overrides applied before defaults.
func LoadWith(configPath, dataDir string, ov Overrides) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
				return nil, fmt.Errorf("parse config file %s: %w", configPath, err)
			}
		}
	}

	cfg.DataDir = dataDir
	cfg.applyEnv()
	if ov.LogLevel != "" {
		cfg.Log.Level = ov.LogLevel
	}
	if ov.Storage != "" {
		cfg.Storage.Driver = ov.Storage
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvStorage); v != "" {
		c.Storage.Driver = v
	}
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	c.Log.Level = strings.ToLower(c.Log.Level)
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.File == "" && c.DataDir != "" {
		c.Log.File = filepath.Join(c.DataDir, "widgets.log")
	}

	c.Storage.Driver = strings.ToLower(c.Storage.Driver)
	if c.Storage.Driver == "" {
		c.Storage.Driver = defaults.Storage.Driver
	}
	if c.Storage.Path == "" && c.DataDir != "" {
		switch c.Storage.Driver {
		case kv.DriverFile:
			c.Storage.Path = filepath.Join(c.DataDir, "widgets.json")
		case kv.DriverSQLite:
			c.Storage.Path = filepath.Join(c.DataDir, "widgets.db")
		}
	}

	if c.Todo.Key == "" {
		c.Todo.Key = defaults.Todo.Key
	}

	if c.Sketch.Width == 0 {
		c.Sketch.Width = defaults.Sketch.Width
	}
	if c.Sketch.Height == 0 {
		c.Sketch.Height = defaults.Sketch.Height
	}
	if c.Sketch.HistoryDepth == 0 {
		c.Sketch.HistoryDepth = defaults.Sketch.HistoryDepth
	}
	if c.Sketch.ExportDir == "" && c.DataDir != "" {
		c.Sketch.ExportDir = filepath.Join(c.DataDir, "sketches")
	}

	c.Theme = strings.ToLower(c.Theme)
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
}

// Validate validates every section.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Storage.Validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.Todo.Validate(); err != nil {
		return fmt.Errorf("todo: %w", err)
	}
	if err := c.Sketch.Validate(); err != nil {
		return fmt.Errorf("sketch: %w", err)
	}
	return validation.Validate(c.Theme, validation.In(domain.ThemeDark, domain.ThemeLight).Error("must be dark or light"))
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "widgets", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "widgets")
}

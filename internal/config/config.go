// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/TheItcor/rawIDE/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"`
	Editor EditorConfig  `toml:"editor"`
	Run    RunConfig     `toml:"run"`
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	TabWidth        int  `toml:"tab_width"`
	ScrollOff       int  `toml:"scroll_off"`
	UndoDepth       int  `toml:"undo_depth"`
	SystemClipboard bool `toml:"system_clipboard"`
}

// RunConfig holds timeouts for the :r pipelines, in seconds.
type RunConfig struct {
	CompileTimeoutSec int `toml:"compile_timeout"`
	RunTimeoutSec     int `toml:"run_timeout"`
}

// CompileTimeout returns the compile-phase timeout as a duration.
func (r RunConfig) CompileTimeout() time.Duration {
	return time.Duration(r.CompileTimeoutSec) * time.Second
}

// RunTimeout returns the run-phase timeout as a duration.
func (r RunConfig) RunTimeout() time.Duration {
	return time.Duration(r.RunTimeoutSec) * time.Second
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			TabWidth:        DefaultTabWidth,
			ScrollOff:       DefaultScrollOff,
			UndoDepth:       DefaultUndoDepth,
			SystemClipboard: SystemClipboard,
		},
		Run: RunConfig{
			CompileTimeoutSec: int(DefaultCompileTimeout / time.Second),
			RunTimeoutSec:     int(DefaultRunTimeout / time.Second),
		},
	}
}

// loadFromFile attempts to load configuration from a TOML file. A missing
// file is not an error.
func loadFromFile(filePath string) (*Config, error) {
	cfg := &Config{}
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if len(metadata.Undecoded()) > 0 {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, metadata.Undecoded())
	}
	return cfg, nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.ScrollOff < 0 {
		c.Editor.ScrollOff = defaults.Editor.ScrollOff
	}
	if c.Editor.UndoDepth <= 0 {
		c.Editor.UndoDepth = defaults.Editor.UndoDepth
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if c.Run.CompileTimeoutSec <= 0 {
		c.Run.CompileTimeoutSec = defaults.Run.CompileTimeoutSec
	}
	if c.Run.RunTimeoutSec <= 0 {
		c.Run.RunTimeoutSec = defaults.Run.RunTimeoutSec
	}
}

// DefaultPath returns the config file location: $RAWIDE_CONFIG when set,
// otherwise <user config dir>/rawide/config.toml.
func DefaultPath() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		return p
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, ConfigDirName, DefaultConfigFileName)
}

// LoadConfig loads defaults, merges the config file on top, and validates.
// It should be called only once, typically from main.
func LoadConfig(configFilePath string) (*Config, error) {
	loadOnce.Do(func() {
		cfg := NewDefaultConfig()

		effectivePath := configFilePath
		if effectivePath == "" {
			effectivePath = DefaultPath()
		}

		if effectivePath != "" {
			fileCfg, err := loadFromFile(effectivePath)
			if err != nil {
				loadErr = err
			} else if fileCfg != nil {
				if fileCfg.Logger.LogLevel != "" || fileCfg.Logger.LogFilePath != "" {
					cfg.Logger = fileCfg.Logger
				}
				if fileCfg.Editor.TabWidth > 0 {
					cfg.Editor.TabWidth = fileCfg.Editor.TabWidth
				}
				if fileCfg.Editor.ScrollOff > 0 {
					cfg.Editor.ScrollOff = fileCfg.Editor.ScrollOff
				}
				if fileCfg.Editor.UndoDepth > 0 {
					cfg.Editor.UndoDepth = fileCfg.Editor.UndoDepth
				}
				cfg.Editor.SystemClipboard = fileCfg.Editor.SystemClipboard
				if fileCfg.Run.CompileTimeoutSec > 0 {
					cfg.Run.CompileTimeoutSec = fileCfg.Run.CompileTimeoutSec
				}
				if fileCfg.Run.RunTimeoutSec > 0 {
					cfg.Run.RunTimeoutSec = fileCfg.Run.RunTimeoutSec
				}
			}
		}

		cfg.validate()
		loadedConfig = cfg
	})

	return loadedConfig, loadErr
}

// Get returns the loaded application configuration. Panics if LoadConfig
// wasn't called first.
func Get() *Config {
	if loadedConfig == nil {
		panic("config.Get() called before config.LoadConfig()")
	}
	return loadedConfig
}

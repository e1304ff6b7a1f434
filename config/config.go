package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides
const EnvPrefix = "CENTERWIN"

// FileName is the config file looked up in Dir
const FileName = "config.json"

// Config is the root configuration structure
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Window  WindowConfig  `mapstructure:"window"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// AppConfig contains application metadata
type AppConfig struct {
	Name string `mapstructure:"name"`
}

// WindowConfig describes the window to open
type WindowConfig struct {
	Title   string `mapstructure:"title"`
	Width   int    `mapstructure:"width"`
	Height  int    `mapstructure:"height"`
	Backend string `mapstructure:"backend"`
}

// LoggingConfig defines logging settings
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	BasePath   string `mapstructure:"base_path"`
	Filename   string `mapstructure:"filename"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	Compress   bool   `mapstructure:"compress"`
}

// Load builds the configuration from defaults, an optional JSON file and
// CENTERWIN_* environment variables. An explicit path must exist. When
// path is empty only Dir()/config.json is considered, and a missing file
// leaves the defaults in place.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = defaultFile()
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", v.ConfigFileUsed(), err)
	}
	return &cfg, nil
}

// defaultFile returns Dir()/config.json if it exists, or ""
func defaultFile() string {
	dir, err := Dir()
	if err != nil {
		return ""
	}
	candidate := filepath.Join(dir, FileName)
	if info, err := os.Stat(candidate); err != nil || info.IsDir() {
		return ""
	}
	return candidate
}

// Dir returns the directory holding the default config file
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "centerwin"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "centerwin"), nil
}

// setDefaults registers every key so environment overrides reach Unmarshal
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "centerwin")

	v.SetDefault("window.title", "Usability Test")
	v.SetDefault("window.width", 640)
	v.SetDefault("window.height", 480)
	v.SetDefault("window.backend", "glfw")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.base_path", "")
	v.SetDefault("logging.filename", "centerwin.log")
	v.SetDefault("logging.max_size_mb", 10)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.compress", false)
}

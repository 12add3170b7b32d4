// Package config loads optional applet settings from the user's config
// directory. A missing file is not an error; every field has a default.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// ConfigFileName is the settings file inside the app config directory.
const ConfigFileName = "config.yaml"

// Config holds the applet settings.
type Config struct {
	// Interval is the sampling period of the panel tick.
	Interval time.Duration `mapstructure:"interval"`
	// DefaultSensor is the CPU temperature sensor used when no
	// preference file exists.
	DefaultSensor string `mapstructure:"default_sensor"`
	// PickerTools is the external picker priority order.
	PickerTools []string `mapstructure:"picker_tools"`
	// Record enables CSV snapshot recording.
	Record bool `mapstructure:"record"`
	// Listen is the serve-mode address.
	Listen string `mapstructure:"listen"`
	// WarnTemp and CritTemp drive the panel's temperature coloring.
	WarnTemp float64 `mapstructure:"warn_temp"`
	CritTemp float64 `mapstructure:"crit_temp"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Interval:      time.Second,
		DefaultSensor: "k10temp-pci-00c3",
		PickerTools:   []string{"rofi", "zenity"},
		Listen:        "127.0.0.1:9258",
		WarnTemp:      80,
		CritTemp:      95,
	}
}

// DefaultPath returns the standard config file location, or empty when no
// config directory can be resolved.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "resmon", ConfigFileName)
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".config", "resmon", ConfigFileName)
	}
	return ""
}

// Load reads settings from path, or from the default location when path is
// empty. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("interval", cfg.Interval)
	v.SetDefault("default_sensor", cfg.DefaultSensor)
	v.SetDefault("picker_tools", cfg.PickerTools)
	v.SetDefault("record", cfg.Record)
	v.SetDefault("listen", cfg.Listen)
	v.SetDefault("warn_temp", cfg.WarnTemp)
	v.SetDefault("crit_temp", cfg.CritTemp)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Second
	}
	return cfg, nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/san-kum/hearth/internal/fire"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFlameBase    = fire.DefaultFlameBase
	DefaultSparkDivisor = fire.DefaultSparkDivisor
	DefaultTickMs       = 30
	DefaultTheme        = "classic"
)

// Config is the on-disk form of the fire settings.
type Config struct {
	FlameBase    int    `yaml:"flame_base"`
	SparkDivisor int    `yaml:"spark_divisor"`
	TickMs       int    `yaml:"tick_ms"`
	Theme        string `yaml:"theme"`
	Seed         int64  `yaml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		FlameBase:    DefaultFlameBase,
		SparkDivisor: DefaultSparkDivisor,
		TickMs:       DefaultTickMs,
		Theme:        DefaultTheme,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as YAML, creating the parent directory if needed.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Settings converts the file form into renderer settings.
func (c *Config) Settings() fire.Settings {
	return fire.Settings{
		FlameBase:    c.FlameBase,
		SparkDivisor: c.SparkDivisor,
		Tick:         time.Duration(c.TickMs) * time.Millisecond,
		Theme:        fire.GetTheme(c.Theme),
		Seed:         c.Seed,
	}
}

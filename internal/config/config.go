package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// maxComponentTypes mirrors ecs.MaxComponentTypes; config stays free of the
// ecs import so binaries can load it before building a scene.
const maxComponentTypes = 32

type Config struct {
	Scene   SceneConfig   `toml:"scene" yaml:"scene"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
	Window  WindowConfig  `toml:"window" yaml:"window"`
	Demo    DemoConfig    `toml:"demo" yaml:"demo"`
	Stress  StressConfig  `toml:"stress" yaml:"stress"`
}

type SceneConfig struct {
	MaxEntities    uint32        `toml:"max_entities" yaml:"max_entities"`
	MaxComponents  int           `toml:"max_components" yaml:"max_components"`
	ComponentTypes int           `toml:"component_types" yaml:"component_types"` // types registered at startup
	TickRate       time.Duration `toml:"tick_rate" yaml:"tick_rate"`
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
}

type WindowConfig struct {
	Title     string `toml:"title" yaml:"title"`
	Width     int    `toml:"width" yaml:"width"`
	Height    int    `toml:"height" yaml:"height"`
	DebugUI   bool   `toml:"debug_ui" yaml:"debug_ui"`
	Resizable bool   `toml:"resizable" yaml:"resizable"`
}

type DemoConfig struct {
	Bodies  int   `toml:"bodies" yaml:"bodies"`
	Walls   bool  `toml:"walls" yaml:"walls"`
	Gravity bool  `toml:"gravity" yaml:"gravity"`
	Seed    int64 `toml:"seed" yaml:"seed"`
}

type StressConfig struct {
	Frames    int     `toml:"frames" yaml:"frames"`
	Churn     float64 `toml:"churn" yaml:"churn"` // fraction of live entities destroyed per frame
	Systems   int     `toml:"systems" yaml:"systems"`
	Component int     `toml:"components_per_entity" yaml:"components_per_entity"`
}

// Load reads path over the defaults. Files ending in .yaml or .yml are
// parsed as YAML, everything else as TOML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = toml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return defaults()
}

// Validate reports every out-of-range setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Scene.MaxEntities == 0 {
		errs = append(errs, errors.New("scene.max_entities must be positive"))
	}
	if c.Scene.MaxComponents <= 0 {
		errs = append(errs, errors.New("scene.max_components must be positive"))
	}
	if c.Scene.ComponentTypes < 0 || c.Scene.ComponentTypes > maxComponentTypes {
		errs = append(errs, fmt.Errorf("scene.component_types must be between 0 and %d", maxComponentTypes))
	}
	if c.Scene.TickRate <= 0 {
		errs = append(errs, errors.New("scene.tick_rate must be positive"))
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("logging.format %q must be json or console", c.Logging.Format))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, errors.New("window size must be positive"))
	}
	if c.Stress.Churn < 0 || c.Stress.Churn > 1 {
		errs = append(errs, errors.New("stress.churn must be between 0 and 1"))
	}
	return errors.Join(errs...)
}

func defaults() *Config {
	return &Config{
		Scene: SceneConfig{
			MaxEntities:    5000,
			MaxComponents:  5000,
			ComponentTypes: 11,
			TickRate:       time.Second / 60,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Window: WindowConfig{
			Title:     "scene2d",
			Width:     1280,
			Height:    720,
			DebugUI:   true,
			Resizable: true,
		},
		Demo: DemoConfig{
			Bodies:  64,
			Walls:   true,
			Gravity: true,
		},
		Stress: StressConfig{
			Frames:    1000,
			Churn:     0.05,
			Systems:   4,
			Component: 3,
		},
	}
}

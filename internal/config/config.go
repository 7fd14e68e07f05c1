package config

import (
	"fmt"
	"os"
	"time"

	"github.com/san-kum/fireworks/internal/show"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDuration = 15.0
	DefaultFPS      = 60
	DefaultTitle    = "Fireworks Display"
	DefaultTheme    = "cyberpunk"
)

type Config struct {
	// Seed 0 means seed from the current time.
	Seed int64 `yaml:"seed"`
	// Duration in seconds before the show quits on its own; 0 runs until quit.
	Duration float64      `yaml:"duration"`
	FPS      int          `yaml:"fps"`
	Width    int          `yaml:"width"`
	Height   int          `yaml:"height"`
	Title    string       `yaml:"title"`
	Theme    string       `yaml:"theme"`
	Audio    bool         `yaml:"audio"`
	Params   ParamsConfig `yaml:"params"`
	Launch   LaunchConfig `yaml:"launch"`
}

type ParamsConfig struct {
	Particles int `yaml:"particles"`
	Speed     int `yaml:"speed"`
	Lifespan  int `yaml:"lifespan"`
}

// LaunchConfig holds the automatic launch schedule, in ticks.
type LaunchConfig struct {
	MinInterval   int `yaml:"min_interval"`
	MaxInterval   int `yaml:"max_interval"`
	FirstInterval int `yaml:"first_interval"`
}

func DefaultConfig() *Config {
	return &Config{
		Duration: DefaultDuration,
		FPS:      DefaultFPS,
		Width:    show.DefaultWidth,
		Height:   show.DefaultHeight,
		Title:    DefaultTitle,
		Theme:    DefaultTheme,
		Params: ParamsConfig{
			Particles: show.DefaultParticles,
			Speed:     show.DefaultSpeed,
			Lifespan:  show.DefaultLifespan,
		},
		Launch: LaunchConfig{
			MinInterval:   show.DefaultMinInterval,
			MaxInterval:   show.DefaultMaxInterval,
			FirstInterval: show.DefaultFirstInterval,
		},
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := cfg.Overlay(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Overlay reads a yaml file over c. Fields absent from the file keep
// their current values.
func (c *Config) Overlay(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Duration < 0 {
		return fmt.Errorf("duration must not be negative, got %f", c.Duration)
	}
	if c.Launch.MinInterval < 0 || c.Launch.FirstInterval < 0 {
		return fmt.Errorf("launch intervals must not be negative")
	}
	if c.Launch.MinInterval > c.Launch.MaxInterval {
		return fmt.Errorf("launch min_interval %d exceeds max_interval %d", c.Launch.MinInterval, c.Launch.MaxInterval)
	}
	return c.ShowParams().Validate()
}

func (c *Config) ShowParams() show.Params {
	return show.Params{
		Particles: c.Params.Particles,
		Speed:     c.Params.Speed,
		Lifespan:  c.Params.Lifespan,
	}
}

func (c *Config) ShowOptions() show.Options {
	return show.Options{
		Width:         c.Width,
		Height:        c.Height,
		Params:        c.ShowParams(),
		MinInterval:   c.Launch.MinInterval,
		MaxInterval:   c.Launch.MaxInterval,
		FirstInterval: c.Launch.FirstInterval,
	}
}

// Timeout returns Duration as a time.Duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Duration * float64(time.Second))
}

// ResolveSeed returns Seed, or a time-based seed when Seed is 0.
func (c *Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

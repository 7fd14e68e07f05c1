package config

import "sort"

var Presets = map[string]*Config{
	"classic": DefaultConfig(),
	"finale": withDefaults(func(c *Config) {
		c.Duration = 30
		c.Params = ParamsConfig{Particles: 150, Speed: 8, Lifespan: 120}
		c.Launch = LaunchConfig{MinInterval: 5, MaxInterval: 15, FirstInterval: 0}
	}),
	"gentle": withDefaults(func(c *Config) {
		c.Duration = 20
		c.Params = ParamsConfig{Particles: 30, Speed: 3, Lifespan: 150}
		c.Launch = LaunchConfig{MinInterval: 60, MaxInterval: 120, FirstInterval: 30}
	}),
	"long": withDefaults(func(c *Config) {
		c.Duration = 0
	}),
}

func withDefaults(apply func(*Config)) *Config {
	c := DefaultConfig()
	apply(c)
	return c
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

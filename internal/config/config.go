package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/groeilab/internal/growth"
)

const (
	DefaultStart       = 3
	DefaultK           = 3
	DefaultGenerations = 20
	DefaultFrameMs     = 500
	MinFrameMs         = 50
	MaxFrameMs         = 2000
)

type Config struct {
	Demo           string `yaml:"demo"`
	Locale         string `yaml:"locale"`
	Start          int    `yaml:"start"`
	K              int    `yaml:"k"`
	Generations    int    `yaml:"generations"`
	IncludeParents bool   `yaml:"include_parents"`
	FrameMs        int    `yaml:"frame_ms"`
	Scale          string `yaml:"scale"` // "log" or "linear"
	Theme          string `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Demo:        "groei",
		Locale:      "nl",
		Start:       DefaultStart,
		K:           DefaultK,
		Generations: DefaultGenerations,
		FrameMs:     DefaultFrameMs,
		Scale:       "log",
		Theme:       "krijtbord",
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

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Params() growth.Params {
	return growth.Params{
		Start:          c.Start,
		K:              c.K,
		Generations:    c.Generations,
		IncludeParents: c.IncludeParents,
	}
}

// ClampFrameMs keeps the animation interval inside the supported range.
func (c *Config) ClampFrameMs() int {
	ms := c.FrameMs
	if ms < MinFrameMs {
		ms = MinFrameMs
	}
	if ms > MaxFrameMs {
		ms = MaxFrameMs
	}
	return ms
}

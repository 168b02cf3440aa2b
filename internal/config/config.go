package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/engine"
)

const (
	DefaultAlgorithm = "bubble"
	DefaultTheme     = "cyberpunk"
	DefaultLocale    = "en"
)

type Config struct {
	Algorithm string      `yaml:"algorithm" toml:"algorithm"`
	Speed     float64     `yaml:"speed" toml:"speed"`
	Size      array.Range `yaml:"size" toml:"size"`
	Values    array.Range `yaml:"values" toml:"values"`
	Seed      int64       `yaml:"seed" toml:"seed"`
	Theme     string      `yaml:"theme" toml:"theme"`
	Locale    string      `yaml:"locale" toml:"locale"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		Speed:     engine.DefaultSpeed,
		Size:      array.DefaultSize(),
		Values:    array.DefaultValues(),
		Theme:     DefaultTheme,
		Locale:    DefaultLocale,
	}
}

// Load reads a YAML file, or a TOML file when path ends in .toml. Fields
// missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if isTOML(path) {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	var (
		data []byte
		err  error
	)
	if isTOML(path) {
		var b strings.Builder
		err = toml.NewEncoder(&b).Encode(cfg)
		data = []byte(b.String())
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if _, err := engine.Lookup(c.Algorithm); err != nil {
		return err
	}
	if err := c.Size.Validate(); err != nil {
		return fmt.Errorf("size: %w", err)
	}
	if c.Size.Min < 0 {
		return fmt.Errorf("size: %w: negative length %d", array.ErrInvalidRange, c.Size.Min)
	}
	if err := c.Values.Validate(); err != nil {
		return fmt.Errorf("values: %w", err)
	}
	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

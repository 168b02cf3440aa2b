package config

import (
	"sort"

	"github.com/san-kum/sortviz/internal/array"
)

var Presets = map[string]*Config{
	"small": {
		Algorithm: "insertion", Speed: 0.2, Theme: "minimal", Locale: DefaultLocale,
		Size: array.Range{Min: 8, Max: 12}, Values: array.Range{Min: 1, Max: 20},
	},
	"default": DefaultConfig(),
	"large": {
		Algorithm: "quick", Speed: 0.01, Theme: DefaultTheme, Locale: DefaultLocale,
		Size: array.Range{Min: 80, Max: 120}, Values: array.Range{Min: 1, Max: 100},
	},
	"dense": {
		Algorithm: "merge", Speed: 0.03, Theme: "retro", Locale: DefaultLocale,
		Size: array.Range{Min: 40, Max: 50}, Values: array.Range{Min: 1, Max: 5},
	},
	"wide": {
		Algorithm: "shell", Speed: 0.02, Theme: "ocean", Locale: DefaultLocale,
		Size: array.Range{Min: 50, Max: 70}, Values: array.Range{Min: 1, Max: 1000},
	},
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

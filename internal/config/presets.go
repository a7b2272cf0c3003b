package config

import "sort"

var Presets = map[string]*Config{
	"classic": {
		FlameBase: 65, SparkDivisor: 9, TickMs: 30, Theme: "classic",
	},
	"calm": {
		FlameBase: 40, SparkDivisor: 14, TickMs: 50, Theme: "ember",
	},
	"inferno": {
		FlameBase: 90, SparkDivisor: 4, TickMs: 20, Theme: "ember",
	},
	"embers": {
		FlameBase: 30, SparkDivisor: 20, TickMs: 60, Theme: "mono",
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
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

package config

var Presets = map[string]map[string]*Config{
	"groei": {
		"klassiek": {
			Demo: "groei", Locale: "nl", Start: 3, K: 3, Generations: 20,
			FrameMs: 500, Scale: "log",
		},
		"traag": {
			Demo: "groei", Locale: "nl", Start: 1, K: 2, Generations: 30,
			FrameMs: 800, Scale: "log",
		},
		"explosie": {
			Demo: "groei", Locale: "nl", Start: 3, K: 6, Generations: 15,
			FrameMs: 300, Scale: "log",
		},
	},
	"tegels": {
		"les": {
			Demo: "tegels", Locale: "nl", Start: 3, K: 3, Generations: 5,
			Scale: "linear",
		},
		"fijn": {
			Demo: "tegels", Locale: "nl", Start: 1, K: 4, Generations: 6,
			Scale: "linear",
		},
	},
	"gezin": {
		"klein": {
			Demo: "gezin", Locale: "nl", Start: 2, K: 2, Generations: 8,
			IncludeParents: true, FrameMs: 600, Scale: "linear",
		},
		"druk": {
			Demo: "gezin", Locale: "nl", Start: 3, K: 3, Generations: 6,
			IncludeParents: true, FrameMs: 600, Scale: "linear",
		},
	},
	"potencias": {
		"cuadrados": {
			Demo: "potencias", Locale: "es", Start: 1, K: 2, Generations: 10,
			Scale: "linear",
		},
		"cubos": {
			Demo: "potencias", Locale: "es", Start: 1, K: 3, Generations: 7,
			Scale: "linear",
		},
	},
	"crecimiento": {
		"aula": {
			Demo: "crecimiento", Locale: "es", Start: 3, K: 2, Generations: 10,
			FrameMs: 400, Scale: "log",
		},
		"rapido": {
			Demo: "crecimiento", Locale: "es", Start: 2, K: 5, Generations: 8,
			FrameMs: 250, Scale: "log",
		},
	},
}

func GetPreset(demo, preset string) *Config {
	demoPresets, ok := Presets[demo]
	if !ok {
		return nil
	}
	cfg, ok := demoPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(demo string) []string {
	demoPresets, ok := Presets[demo]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(demoPresets))
	for name := range demoPresets {
		names = append(names, name)
	}
	return names
}

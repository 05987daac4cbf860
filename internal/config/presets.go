package config

var Presets = map[string]map[string]*Config{
	"decay": {
		"slow": {
			Model: "decay", Dt: 0.01, Duration: 10.0,
			InitState: InitStateConfig{Y: 1.0},
		},
		"fine": {
			Model: "decay", Dt: 0.001, Duration: 5.0,
			InitState: InitStateConfig{Y: 1.0},
		},
	},
	"oscillator": {
		"unit": {
			Model: "oscillator", Dt: 0.01, Duration: 20.0,
			InitState: InitStateConfig{Y: 1.0, V: 0.0},
		},
		"kicked": {
			Model: "oscillator", Dt: 0.01, Duration: 20.0,
			InitState: InitStateConfig{Y: 0.0, V: 2.0},
		},
	},
	"pendulum": {
		"small": {
			Model: "pendulum", Dt: 0.01, Duration: 20.0,
			InitState: InitStateConfig{Theta: 0.2, Omega: 0.0},
		},
		"large": {
			Model: "pendulum", Dt: 0.01, Duration: 20.0,
			InitState: InitStateConfig{Theta: 2.5, Omega: 0.0},
		},
		"spinning": {
			Model: "pendulum", Dt: 0.01, Duration: 30.0,
			InitState: InitStateConfig{Theta: 0.1, Omega: 8.0},
		},
	},
}

func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	return names
}

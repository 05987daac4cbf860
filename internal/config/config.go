package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt         = 0.01
	DefaultDuration   = 10.0
	DefaultSamples    = 256
	DefaultRate       = 100.0
	DefaultFrequency  = 3.0
	DefaultAmplitude  = 1.0
	DefaultIterations = 50
)

type Config struct {
	Model     string          `yaml:"model"`
	Method    string          `yaml:"method"`
	Dt        float64         `yaml:"dt"`
	Duration  float64         `yaml:"duration"`
	Signal    SignalConfig    `yaml:"signal"`
	Rootfind  RootConfig      `yaml:"rootfind"`
	InitState InitStateConfig `yaml:"init_state"`
}

// SignalConfig describes the generated test signal for the transform
// and convolve commands.
type SignalConfig struct {
	Samples    int     `yaml:"samples"`
	Rate       float64 `yaml:"rate"`
	Frequency  float64 `yaml:"frequency"`
	Frequency2 float64 `yaml:"frequency2"`
	Amplitude  float64 `yaml:"amplitude"`
}

type RootConfig struct {
	A          float64 `yaml:"a"`
	B          float64 `yaml:"b"`
	Guess      float64 `yaml:"guess"`
	Guess2     float64 `yaml:"guess2"`
	Iterations int     `yaml:"iterations"`
}

type InitStateConfig struct {
	Y     float64 `yaml:"y"`
	V     float64 `yaml:"v"`
	Theta float64 `yaml:"theta"`
	Omega float64 `yaml:"omega"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:    "decay",
		Method:   "bisection",
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Signal: SignalConfig{
			Samples:   DefaultSamples,
			Rate:      DefaultRate,
			Frequency: DefaultFrequency,
			Amplitude: DefaultAmplitude,
		},
		Rootfind: RootConfig{
			A:          1.0,
			B:          2.0,
			Guess:      1.5,
			Guess2:     2.0,
			Iterations: DefaultIterations,
		},
		InitState: InitStateConfig{
			Y:     1.0,
			Theta: 0.5,
		},
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

// GetInitState assembles the initial state vector for the configured
// integration model.
func (c *Config) GetInitState() []float64 {
	switch c.Model {
	case "oscillator":
		return []float64{c.InitState.Y, c.InitState.V}
	case "pendulum":
		return []float64{c.InitState.Theta, c.InitState.Omega}
	default:
		return []float64{c.InitState.Y}
	}
}

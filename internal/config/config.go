package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultXMin      = -10.0
	DefaultXMax      = 10.0
	DefaultN         = 512
	DefaultMass      = 1.0
	DefaultDt        = 0.005
	DefaultSteps     = 400
	DefaultNumStates = 4
)

type Config struct {
	Potential string          `yaml:"potential"`
	Mode      string          `yaml:"mode"` // "stationary" or "dynamic"
	Scheme    string          `yaml:"scheme"`
	Mass      float64         `yaml:"mass"`
	NumStates int             `yaml:"num_states"`
	Dt        float64         `yaml:"dt"`
	Steps     int             `yaml:"steps"`
	Grid      GridConfig      `yaml:"grid"`
	Params    PotentialConfig `yaml:"params"`
	Packet    PacketConfig    `yaml:"packet"`
	Absorb    float64         `yaml:"absorb_width"`
}

type GridConfig struct {
	XMin float64 `yaml:"x_min"`
	XMax float64 `yaml:"x_max"`
	N    int     `yaml:"n"`
}

type PotentialConfig struct {
	Width      float64 `yaml:"width"`
	Depth      float64 `yaml:"depth"`
	Height     float64 `yaml:"height"`
	Omega      float64 `yaml:"omega"`
	WallHeight float64 `yaml:"wall_height"`
}

type PacketConfig struct {
	Center   float64 `yaml:"center"`
	Width    float64 `yaml:"width"`
	Momentum float64 `yaml:"momentum"`
}

func DefaultConfig() *Config {
	return &Config{
		Potential: "harmonic",
		Mode:      "stationary",
		Scheme:    "crank-nicolson",
		Mass:      DefaultMass,
		NumStates: DefaultNumStates,
		Dt:        DefaultDt,
		Steps:     DefaultSteps,
		Grid:      GridConfig{XMin: DefaultXMin, XMax: DefaultXMax, N: DefaultN},
		Params:    PotentialConfig{Width: 2.0, Depth: 10.0, Height: 5.0, Omega: 1.0},
		Packet:    PacketConfig{Center: -5.0, Width: 1.0, Momentum: 2.0},
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

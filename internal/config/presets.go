package config

var Presets = map[string]map[string]*Config{
	"infinite_well": {
		"ground": {
			Potential: "infinite_well", Mode: "stationary", Mass: 1.0, NumStates: 3,
			Grid:   GridConfig{XMin: -1.5, XMax: 1.5, N: 256},
			Params: PotentialConfig{Width: 2.0},
		},
		"spectrum": {
			Potential: "infinite_well", Mode: "stationary", Mass: 1.0, NumStates: 8,
			Grid:   GridConfig{XMin: -1.5, XMax: 1.5, N: 512},
			Params: PotentialConfig{Width: 2.0},
		},
	},
	"finite_well": {
		"shallow": {
			Potential: "finite_well", Mode: "stationary", Mass: 1.0, NumStates: 2,
			Grid:   GridConfig{XMin: -8, XMax: 8, N: 512},
			Params: PotentialConfig{Width: 2.0, Depth: 2.0},
		},
		"deep": {
			Potential: "finite_well", Mode: "stationary", Mass: 1.0, NumStates: 6,
			Grid:   GridConfig{XMin: -6, XMax: 6, N: 512},
			Params: PotentialConfig{Width: 2.0, Depth: 50.0},
		},
	},
	"harmonic": {
		"spectrum": {
			Potential: "harmonic", Mode: "stationary", Mass: 1.0, NumStates: 6,
			Grid:   GridConfig{XMin: -10, XMax: 10, N: 512},
			Params: PotentialConfig{Omega: 1.0},
		},
		"coherent": {
			Potential: "harmonic", Mode: "dynamic", Scheme: "crank-nicolson",
			Mass: 1.0, Dt: 0.005, Steps: 1257,
			Grid:   GridConfig{XMin: -10, XMax: 10, N: 512},
			Params: PotentialConfig{Omega: 1.0},
			Packet: PacketConfig{Center: 1.0, Width: 1.0},
		},
	},
	"barrier": {
		"tunneling": {
			Potential: "barrier", Mode: "dynamic", Scheme: "crank-nicolson",
			Mass: 1.0, Dt: 0.005, Steps: 800, Absorb: 2.0,
			Grid:   GridConfig{XMin: -20, XMax: 20, N: 1024},
			Params: PotentialConfig{Width: 0.5, Height: 5.0},
			Packet: PacketConfig{Center: -5.0, Width: 1.0, Momentum: 2.449},
		},
		"over_barrier": {
			Potential: "barrier", Mode: "dynamic", Scheme: "crank-nicolson",
			Mass: 1.0, Dt: 0.005, Steps: 500, Absorb: 2.0,
			Grid:   GridConfig{XMin: -20, XMax: 20, N: 1024},
			Params: PotentialConfig{Width: 0.5, Height: 1.0},
			Packet: PacketConfig{Center: -5.0, Width: 1.0, Momentum: 5.0},
		},
	},
}

func GetPreset(pot, preset string) *Config {
	potPresets, ok := Presets[pot]
	if !ok {
		return nil
	}
	cfg, ok := potPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(pot string) []string {
	potPresets, ok := Presets[pot]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(potPresets))
	for name := range potPresets {
		names = append(names, name)
	}
	return names
}

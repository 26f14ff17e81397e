package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Potential != "harmonic" || cfg.Mode != "stationary" {
		t.Errorf("unexpected defaults: %s/%s", cfg.Potential, cfg.Mode)
	}
	if cfg.Grid.N != DefaultN || cfg.Mass != DefaultMass {
		t.Errorf("grid/mass defaults wrong: N=%d mass=%g", cfg.Grid.N, cfg.Mass)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")

	cfg := DefaultConfig()
	cfg.Potential = "barrier"
	cfg.Mode = "dynamic"
	cfg.Scheme = "split-step"
	cfg.Dt = 0.002
	cfg.Steps = 1234
	cfg.Params.Height = 7.5
	cfg.Packet.Momentum = 3.3
	cfg.Absorb = 2.5

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.Potential != "barrier" || loaded.Scheme != "split-step" {
		t.Errorf("scenario fields lost: %+v", loaded)
	}
	if loaded.Dt != 0.002 || loaded.Steps != 1234 {
		t.Errorf("timing fields lost: dt=%g steps=%d", loaded.Dt, loaded.Steps)
	}
	if loaded.Params.Height != 7.5 || loaded.Packet.Momentum != 3.3 || loaded.Absorb != 2.5 {
		t.Errorf("nested fields lost: %+v", loaded)
	}
}

// Partial files keep defaults for everything they do not mention.
func TestLoadPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	partial := []byte("potential: finite_well\nparams:\n  depth: 3.5\n")
	if err := os.WriteFile(path, partial, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Potential != "finite_well" || cfg.Params.Depth != 3.5 {
		t.Errorf("explicit fields lost: %+v", cfg)
	}
	if cfg.Grid.N != DefaultN || cfg.Mass != DefaultMass {
		t.Errorf("defaults not preserved for omitted fields: %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("barrier", "tunneling")
	if cfg == nil {
		t.Fatal("barrier/tunneling preset missing")
	}
	if cfg.Mode != "dynamic" || cfg.Params.Height != 5.0 {
		t.Errorf("tunneling preset fields wrong: %+v", cfg)
	}
	if GetPreset("barrier", "nope") != nil {
		t.Error("unknown preset should return nil")
	}
	if GetPreset("nope", "tunneling") != nil {
		t.Error("unknown potential should return nil")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets("harmonic")
	if len(names) == 0 {
		t.Fatal("harmonic should have presets")
	}
	found := false
	for _, n := range names {
		if n == "coherent" {
			found = true
		}
	}
	if !found {
		t.Errorf("coherent preset missing from %v", names)
	}
	if ListPresets("nope") != nil {
		t.Error("unknown potential should list nil")
	}
}

// Every preset must build a valid scenario once defaults are filled in.
func TestPresetsAreRunnable(t *testing.T) {
	for pot, group := range Presets {
		for name, preset := range group {
			if preset.Potential != pot {
				t.Errorf("%s/%s: potential field %q disagrees with its group", pot, name, preset.Potential)
			}
			if preset.Grid.N < 3 || preset.Grid.XMax <= preset.Grid.XMin {
				t.Errorf("%s/%s: bad grid %+v", pot, name, preset.Grid)
			}
			if preset.Mode == "dynamic" && (preset.Dt <= 0 || preset.Steps < 1) {
				t.Errorf("%s/%s: dynamic preset with dt=%g steps=%d", pot, name, preset.Dt, preset.Steps)
			}
			if preset.Mode == "stationary" && preset.NumStates < 1 {
				t.Errorf("%s/%s: stationary preset with num_states=%d", pot, name, preset.NumStates)
			}
		}
	}
}

package sweep

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/qwave/internal/config"
	"github.com/san-kum/qwave/internal/quantum"
)

func sweepConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Potential = "barrier"
	cfg.Mode = "dynamic"
	cfg.Grid = config.GridConfig{XMin: -15, XMax: 15, N: 512}
	cfg.Params.Width = 0.5
	cfg.Params.Height = 2.0
	cfg.Packet = config.PacketConfig{Center: -5, Width: 1}
	cfg.Dt = 0.01
	cfg.Steps = 400
	return cfg
}

func TestTransmissionSweep(t *testing.T) {
	cfg := sweepConfig()
	momenta := []float64{2.5, 4}

	points, err := Transmission(context.Background(), cfg, momenta)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	for i, p := range points {
		if p.Momentum != momenta[i] {
			t.Errorf("point %d: momentum %g, want %g", i, p.Momentum, momenta[i])
		}
		if p.Energy <= 0 {
			t.Errorf("point %d: non-positive mean energy %g", i, p.Energy)
		}
		if p.T < 0 || p.T > 1.01 {
			t.Errorf("point %d: T = %g out of range", i, p.T)
		}
	}
	// Transmission must grow with energy across the sweep.
	if points[1].T <= points[0].T {
		t.Errorf("T should increase with momentum: %g then %g", points[0].T, points[1].T)
	}
	if cfg.Packet.Momentum != 0 {
		t.Error("base config was mutated by the sweep")
	}
}

func TestTransmissionSweepValidation(t *testing.T) {
	if _, err := Transmission(context.Background(), sweepConfig(), nil); !errors.Is(err, quantum.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter for empty sweep, got %v", err)
	}
}

func TestTransmissionSweepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Transmission(ctx, sweepConfig(), []float64{2, 3}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

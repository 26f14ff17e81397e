package transmission

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/qwave/internal/hamiltonian"
	"github.com/san-kum/qwave/internal/potential"
	"github.com/san-kum/qwave/internal/propagate"
	"github.com/san-kum/qwave/internal/quantum"
	"github.com/san-kum/qwave/internal/wavepacket"
)

func barrier(t *testing.T, height, width float64) *potential.Potential {
	t.Helper()
	g, err := quantum.NewGrid(-20, 20, 1024)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	v, err := potential.Evaluate(g, potential.RectangularBarrier, potential.Params{Height: height, Width: width})
	if err != nil {
		t.Fatalf("potential: %v", err)
	}
	return v
}

// Barrier 5.0 high, 0.5 wide, E = 3: κ = 2 inside, so the analytic
// estimate is exp(-2·κ·w) = e⁻² ≈ 0.135. Grid sampling widens the
// barrier by up to one spacing, pushing the estimate slightly lower.
func TestEstimateWKBTunneling(t *testing.T) {
	v := barrier(t, 5, 0.5)
	got, err := EstimateWKB(v, 1, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got < 0.10 || got > 0.16 {
		t.Errorf("T_WKB = %g, expected near e^-2 = %g", got, math.Exp(-2))
	}
}

func TestEstimateWKBAboveBarrier(t *testing.T) {
	v := barrier(t, 5, 0.5)
	got, err := EstimateWKB(v, 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1 {
		t.Errorf("no forbidden region above the barrier, want T=1, got %g", got)
	}
}

func TestEstimateWKBOpaqueBarrier(t *testing.T) {
	v := barrier(t, 1e4, 4)
	got, err := EstimateWKB(v, 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got < 0 || got > 1e-10 {
		t.Errorf("opaque barrier should be essentially impenetrable, got %g", got)
	}
}

func TestEstimateWKBValidation(t *testing.T) {
	v := barrier(t, 5, 0.5)
	if _, err := EstimateWKB(v, 0, 3); !errors.Is(err, quantum.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter for zero mass, got %v", err)
	}
}

func tunnelingRun(t *testing.T, momentum float64, steps int) (*quantum.Grid, *quantum.Trajectory) {
	t.Helper()
	v := barrier(t, 5, 0.5)
	g := v.Grid
	h, err := hamiltonian.Build(g, v, 1)
	if err != nil {
		t.Fatalf("hamiltonian: %v", err)
	}
	psi0, err := wavepacket.Gaussian(g, -5, 1, momentum, 1)
	if err != nil {
		t.Fatalf("packet: %v", err)
	}
	traj, err := propagate.Run(h, psi0, 0.005, steps, propagate.Options{Scheme: propagate.CrankNicolson})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	return g, traj
}

// Full tunneling scenario: the numerically measured T must beat the
// WKB estimate (which underestimates for thin barriers) while T+R
// stays close to unity.
func TestFromTrajectoryTunneling(t *testing.T) {
	g, traj := tunnelingRun(t, 2.449, 800)

	res, err := FromTrajectory(g, traj, -0.25, 0.25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.T < 0.15 || res.T > 0.7 {
		t.Errorf("T = %g out of the plausible range for E≈3 against a 5.0/0.5 barrier", res.T)
	}
	if res.R <= 0 {
		t.Errorf("R = %g, some reflection is mandatory below the barrier top", res.R)
	}
	if res.Sum < 0.9 || res.Sum > 1.02 {
		t.Errorf("T+R = %g, want near 1", res.Sum)
	}

	v := barrier(t, 5, 0.5)
	wkb, _ := EstimateWKB(v, 1, 3)
	if res.T <= wkb {
		t.Errorf("numerical T %g should exceed the WKB estimate %g", res.T, wkb)
	}
}

func TestFromTrajectoryOverBarrier(t *testing.T) {
	g, traj := tunnelingRun(t, 5, 500)

	res, err := FromTrajectory(g, traj, -0.25, 0.25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.T < 0.8 {
		t.Errorf("T = %g, a packet at E≈12.5 should mostly clear a 5.0 barrier", res.T)
	}
	if res.Sum < 0.9 || res.Sum > 1.02 {
		t.Errorf("T+R = %g, want near 1", res.Sum)
	}
}

func TestFromTrajectoryValidation(t *testing.T) {
	g, _ := quantum.NewGrid(-5, 5, 32)
	traj := &quantum.Trajectory{Steps: []*quantum.WaveFunction{quantum.NewWaveFunction(32)}}

	if _, err := FromTrajectory(g, traj, 1, -1); !errors.Is(err, quantum.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter for empty region, got %v", err)
	}
	if _, err := FromTrajectory(g, &quantum.Trajectory{}, -1, 1); !errors.Is(err, quantum.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter for empty trajectory, got %v", err)
	}
	bad := &quantum.Trajectory{Steps: []*quantum.WaveFunction{quantum.NewWaveFunction(8)}}
	if _, err := FromTrajectory(g, bad, -1, 1); !errors.Is(err, quantum.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter for length mismatch, got %v", err)
	}
}

// A packet still sitting inside the measurement window should produce a
// depressed sum and the leakage advisory.
func TestFromTrajectoryLeakageWarning(t *testing.T) {
	g, _ := quantum.NewGrid(-5, 5, 256)
	psi0, _ := wavepacket.Gaussian(g, 0, 0.5, 0, 1)
	traj := &quantum.Trajectory{Steps: []*quantum.WaveFunction{psi0}}

	res, err := FromTrajectory(g, traj, -2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Sum > 0.1 {
		t.Errorf("Sum = %g, nearly all density is inside the window", res.Sum)
	}
	if len(res.Warnings) == 0 {
		t.Error("expected a leakage warning for a depressed T+R")
	}
}

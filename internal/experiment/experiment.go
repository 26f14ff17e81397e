// Package experiment assembles a full simulation from a scenario
// config: grid, potential, Hamiltonian, and either the stationary
// solve or the time-evolution run. The CLI and the live view both go
// through it so flag and yaml handling stay in one place.
package experiment

import (
	"fmt"

	"github.com/san-kum/qwave/internal/config"
	"github.com/san-kum/qwave/internal/hamiltonian"
	"github.com/san-kum/qwave/internal/potential"
	"github.com/san-kum/qwave/internal/propagate"
	"github.com/san-kum/qwave/internal/quantum"
	"github.com/san-kum/qwave/internal/solver"
	"github.com/san-kum/qwave/internal/transmission"
	"github.com/san-kum/qwave/internal/wavepacket"
)

type Experiment struct {
	Cfg       *config.Config
	Grid      *quantum.Grid
	Potential *potential.Potential
	H         *hamiltonian.Hamiltonian
}

// New validates the scenario and builds the shared numerical setup.
func New(cfg *config.Config) (*Experiment, error) {
	g, err := quantum.NewGrid(cfg.Grid.XMin, cfg.Grid.XMax, cfg.Grid.N)
	if err != nil {
		return nil, err
	}

	kind, err := potential.KindFromString(cfg.Potential)
	if err != nil {
		return nil, err
	}
	params := potential.Params{
		Width:      cfg.Params.Width,
		Depth:      cfg.Params.Depth,
		Height:     cfg.Params.Height,
		Omega:      cfg.Params.Omega,
		WallHeight: cfg.Params.WallHeight,
		Mass:       cfg.Mass,
	}
	pot, err := potential.Evaluate(g, kind, params)
	if err != nil {
		return nil, err
	}

	h, err := hamiltonian.Build(g, pot, cfg.Mass)
	if err != nil {
		return nil, err
	}

	return &Experiment{Cfg: cfg, Grid: g, Potential: pot, H: h}, nil
}

// Solve runs the stationary eigenproblem for the configured state count.
func (e *Experiment) Solve() (*quantum.EigenstateSet, error) {
	return solver.Solve(e.H, e.Cfg.NumStates)
}

// Packet builds the configured initial Gaussian.
func (e *Experiment) Packet() (*quantum.WaveFunction, error) {
	return wavepacket.Gaussian(e.Grid, e.Cfg.Packet.Center, e.Cfg.Packet.Width, e.Cfg.Packet.Momentum, 1.0)
}

// Evolve propagates the configured packet through the configured steps.
func (e *Experiment) Evolve() (*quantum.Trajectory, error) {
	psi0, err := e.Packet()
	if err != nil {
		return nil, err
	}
	scheme, err := propagate.ParseScheme(e.Cfg.Scheme)
	if err != nil {
		return nil, err
	}
	opts := propagate.Options{Scheme: scheme, AbsorbWidth: e.Cfg.Absorb}
	return propagate.Run(e.H, psi0, e.Cfg.Dt, e.Cfg.Steps, opts)
}

// BarrierRegion reports the barrier extent for transmission accounting;
// ok is false for non-barrier potentials.
func (e *Experiment) BarrierRegion() (left, right float64, ok bool) {
	if e.Potential.Kind != potential.RectangularBarrier {
		return 0, 0, false
	}
	half := e.Potential.Params.Width / 2
	return -half, half, true
}

// Transmission runs the numerical T/R accounting for a finished
// trajectory against the configured barrier.
func (e *Experiment) Transmission(traj *quantum.Trajectory) (*transmission.Result, error) {
	left, right, ok := e.BarrierRegion()
	if !ok {
		return nil, fmt.Errorf("%w: transmission requires a barrier potential, got %s", quantum.ErrInvalidParameter, e.Potential.Kind)
	}
	return transmission.FromTrajectory(e.Grid, traj, left, right)
}

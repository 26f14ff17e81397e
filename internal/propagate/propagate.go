package propagate

import (
	"fmt"
	"math"

	"github.com/san-kum/qwave/internal/hamiltonian"
	"github.com/san-kum/qwave/internal/quantum"
)

// Scheme selects the time-stepping method.
type Scheme string

const (
	// CrankNicolson is the implicit, unconditionally stable default:
	// one complex tridiagonal solve per step, norm preserved to solver
	// precision regardless of dt.
	CrankNicolson Scheme = "crank-nicolson"

	// SplitStep alternates position- and momentum-space phase rotations
	// via FFT, symmetrized for second-order accuracy. Best suited to
	// free or near-free propagation; note the FFT implies periodic
	// rather than hard-wall edges.
	SplitStep Scheme = "split-step"
)

// ParseScheme maps a config/CLI name to a Scheme.
func ParseScheme(s string) (Scheme, error) {
	switch Scheme(s) {
	case CrankNicolson, SplitStep:
		return Scheme(s), nil
	case "":
		return CrankNicolson, nil
	}
	return "", fmt.Errorf("%w: unknown scheme %q", quantum.ErrInvalidParameter, s)
}

// DefaultNormTol is the relative probability drift beyond which a
// trajectory picks up an advisory warning.
const DefaultNormTol = 0.01

// Options tunes a propagation run.
type Options struct {
	Scheme Scheme

	// AbsorbWidth enables a cos² damping mask over this many x-units at
	// each domain edge. Probability reaching the mask is deliberately
	// leaked; the norm-drift warning is suppressed and the leakage is
	// left to the transmission accounting instead.
	AbsorbWidth float64

	// NormTol overrides DefaultNormTol when positive.
	NormTol float64
}

type stepper interface {
	step(in, out []complex128)
}

// Stepper advances wavefunctions one dt at a time. Run wraps it for
// batch trajectories; the live view drives it directly.
type Stepper struct {
	h      *hamiltonian.Hamiltonian
	impl   stepper
	mask   []float64
	dt     float64
	scheme Scheme
}

// NewStepper validates the propagation parameters and prepares the
// per-step machinery (Thomas factorization or FFT phase tables).
func NewStepper(h *hamiltonian.Hamiltonian, dt float64, opts Options) (*Stepper, error) {
	if dt <= 0 {
		return nil, fmt.Errorf("%w: dt must be positive, got %g", quantum.ErrInvalidParameter, dt)
	}
	scheme := opts.Scheme
	if scheme == "" {
		scheme = CrankNicolson
	}

	var impl stepper
	var err error
	switch scheme {
	case CrankNicolson:
		impl, err = newCrankNicolson(h, dt)
	case SplitStep:
		impl = newSplitStep(h, dt)
	default:
		err = fmt.Errorf("%w: unknown scheme %q", quantum.ErrInvalidParameter, scheme)
	}
	if err != nil {
		return nil, err
	}

	s := &Stepper{h: h, impl: impl, dt: dt, scheme: scheme}
	if opts.AbsorbWidth > 0 {
		s.mask = absorbMask(h.Grid, opts.AbsorbWidth)
	}
	return s, nil
}

func (s *Stepper) Dt() float64    { return s.dt }
func (s *Stepper) Scheme() Scheme { return s.scheme }

// Step produces the wavefunction one dt later. The input is never
// mutated; the result is a fresh value.
func (s *Stepper) Step(w *quantum.WaveFunction) *quantum.WaveFunction {
	next := quantum.NewWaveFunction(len(w.Psi))
	s.impl.step(w.Psi, next.Psi)
	if s.mask != nil {
		for i := range next.Psi {
			next.Psi[i] *= complex(s.mask[i], 0)
		}
	}
	next.Time = w.Time + s.dt
	return next
}

// Run advances psi0 through steps increments of dt under H and returns
// the fully materialized trajectory, snapshot zero included. Each step
// is a fresh WaveFunction; psi0 is never touched.
func Run(h *hamiltonian.Hamiltonian, psi0 *quantum.WaveFunction, dt float64, steps int, opts Options) (*quantum.Trajectory, error) {
	if steps < 1 {
		return nil, fmt.Errorf("%w: num_steps must be >= 1, got %d", quantum.ErrInvalidParameter, steps)
	}
	if len(psi0.Psi) != h.Grid.N {
		return nil, fmt.Errorf("%w: wavefunction has %d samples for a %d-point grid", quantum.ErrInvalidParameter, len(psi0.Psi), h.Grid.N)
	}
	st, err := NewStepper(h, dt, opts)
	if err != nil {
		return nil, err
	}
	tol := opts.NormTol
	if tol <= 0 {
		tol = DefaultNormTol
	}

	traj := &quantum.Trajectory{
		Steps:  make([]*quantum.WaveFunction, 0, steps+1),
		Dt:     dt,
		Scheme: string(st.Scheme()),
	}
	traj.Steps = append(traj.Steps, psi0.Clone())

	norm0 := psi0.Norm(h.Grid)
	maxDrift := 0.0
	cur := psi0
	for n := 0; n < steps; n++ {
		next := st.Step(cur)
		if drift := math.Abs(next.Norm(h.Grid)-norm0) / norm0; drift > maxDrift {
			maxDrift = drift
		}
		traj.Steps = append(traj.Steps, next)
		cur = next
	}

	if st.mask == nil && maxDrift > tol {
		traj.Warnings = append(traj.Warnings,
			fmt.Sprintf("probability drift %.3g exceeds tolerance %.3g", maxDrift, tol))
	}
	return traj, nil
}

// absorbMask ramps from 1 down to 0 over width x-units at both edges.
func absorbMask(g *quantum.Grid, width float64) []float64 {
	mask := make([]float64, g.N)
	for i, x := range g.Points {
		mask[i] = 1
		d := math.Min(x-g.Min, g.Max-x)
		if d < width {
			c := math.Cos((1 - d/width) * math.Pi / 2)
			mask[i] = c * c
		}
	}
	return mask
}

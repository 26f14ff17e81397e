package quantum

import (
	"math"
	"math/cmplx"
)

// WaveFunction holds complex amplitudes sampled on a grid together with
// the simulation time they belong to. Propagation produces a fresh
// WaveFunction per step rather than mutating in place, so trajectories
// stay replayable.
type WaveFunction struct {
	Psi  []complex128
	Time float64
}

func NewWaveFunction(n int) *WaveFunction {
	return &WaveFunction{Psi: make([]complex128, n)}
}

func (w *WaveFunction) Clone() *WaveFunction {
	c := &WaveFunction{Psi: make([]complex128, len(w.Psi)), Time: w.Time}
	copy(c.Psi, w.Psi)
	return c
}

// Density returns |ψ(x_i)|² for every grid point.
func (w *WaveFunction) Density() []float64 {
	d := make([]float64, len(w.Psi))
	for i, p := range w.Psi {
		re, im := real(p), imag(p)
		d[i] = re*re + im*im
	}
	return d
}

// Norm computes ∫|ψ|²dx by trapezoidal quadrature.
func (w *WaveFunction) Norm(g *Grid) float64 {
	return g.Trapezoid(w.Density())
}

// Normalize rescales ψ so that ∫|ψ|²dx = 1.
func (w *WaveFunction) Normalize(g *Grid) {
	n := w.Norm(g)
	if n <= 0 {
		return
	}
	s := complex(1.0/math.Sqrt(n), 0)
	for i := range w.Psi {
		w.Psi[i] *= s
	}
}

// IsValid reports whether all amplitudes are finite.
func (w *WaveFunction) IsValid() bool {
	for _, p := range w.Psi {
		if cmplx.IsNaN(p) || cmplx.IsInf(p) {
			return false
		}
	}
	return true
}

// Trajectory is a fully materialized sequence of wavefunction snapshots
// over increasing time. Warnings carry advisory numerical-quality notes
// (norm drift beyond tolerance and the like); they are not errors.
type Trajectory struct {
	Steps    []*WaveFunction
	Dt       float64
	Scheme   string
	Warnings []string
}

// Final returns the last snapshot, or nil for an empty trajectory.
func (t *Trajectory) Final() *WaveFunction {
	if len(t.Steps) == 0 {
		return nil
	}
	return t.Steps[len(t.Steps)-1]
}

func (t *Trajectory) Times() []float64 {
	ts := make([]float64, len(t.Steps))
	for i, s := range t.Steps {
		ts[i] = s.Time
	}
	return ts
}

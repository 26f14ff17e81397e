package hamiltonian

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/qwave/internal/potential"
	"github.com/san-kum/qwave/internal/quantum"
)

// Hamiltonian is the discrete operator -ħ²/(2m)·d²/dx² + V(x) under the
// three-point central finite-difference stencil. It is tridiagonal:
// a constant off-diagonal kinetic coupling plus a diagonal that folds
// the potential in. The wavefunction is held at zero just outside the
// first and last grid points (hard wall), which is the correct boundary
// condition for bound states on a finite domain; for barrier runs the
// domain must be wide enough that edge reflections stay clear of the
// transmission measurement.
type Hamiltonian struct {
	Grid *quantum.Grid
	Mass float64

	// Diag[i] = V(x_i) + ħ²/(m·dx²); Off = -ħ²/(2m·dx²).
	// The kinetic coefficient sign is load-bearing: flipping it yields a
	// self-consistent operator with negative "energies" and no other
	// symptom, so the analytic-agreement tests pin it down per family.
	Diag []float64
	Off  float64

	// Pot keeps the bare V(x) samples for split-step phase factors and
	// expectation values.
	Pot []float64
}

// Build assembles the Hamiltonian for a grid/potential pair. A new
// Hamiltonian is built whenever parameters change; it is never mutated.
func Build(g *quantum.Grid, v *potential.Potential, mass float64) (*Hamiltonian, error) {
	if mass <= 0 {
		return nil, fmt.Errorf("%w: mass must be positive, got %g", quantum.ErrInvalidParameter, mass)
	}
	if len(v.Values) != g.N {
		return nil, fmt.Errorf("%w: potential has %d samples for a %d-point grid", quantum.ErrInvalidParameter, len(v.Values), g.N)
	}

	k := quantum.HBar * quantum.HBar / (2 * mass * g.Dx * g.Dx)
	h := &Hamiltonian{
		Grid: g,
		Mass: mass,
		Diag: make([]float64, g.N),
		Off:  -k,
		Pot:  v.Values,
	}
	for i, vi := range v.Values {
		h.Diag[i] = vi + 2*k
	}
	return h, nil
}

// Apply computes out = H·psi with hard-wall boundaries.
func (h *Hamiltonian) Apply(psi, out []complex128) {
	n := len(h.Diag)
	off := complex(h.Off, 0)
	for i := 0; i < n; i++ {
		acc := complex(h.Diag[i], 0) * psi[i]
		if i > 0 {
			acc += off * psi[i-1]
		}
		if i < n-1 {
			acc += off * psi[i+1]
		}
		out[i] = acc
	}
}

// Sym returns the dense symmetric form consumed by the eigensolver.
func (h *Hamiltonian) Sym() *mat.SymDense {
	n := len(h.Diag)
	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		s.SetSym(i, i, h.Diag[i])
		if i < n-1 {
			s.SetSym(i, i+1, h.Off)
		}
	}
	return s
}

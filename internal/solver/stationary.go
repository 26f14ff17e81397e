package solver

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/qwave/internal/hamiltonian"
	"github.com/san-kum/qwave/internal/quantum"
)

// Solve extracts the lowest numStates eigenpairs of the Hamiltonian,
// ascending by energy. Each eigenvector is renormalized so that
// ∫|ψ|²dx = 1 over the grid (gonum returns unit l2 vectors, which is
// off by a factor of √dx).
//
// A failed factorization is reported as ErrNoConvergence rather than
// retried with altered parameters; silently substituting grid or state
// counts would make results non-reproducible.
func Solve(h *hamiltonian.Hamiltonian, numStates int) (*quantum.EigenstateSet, error) {
	n := h.Grid.N
	if numStates < 1 || numStates > n {
		return nil, fmt.Errorf("%w: num_states must be in [1, %d], got %d", quantum.ErrInvalidParameter, n, numStates)
	}

	var eig mat.EigenSym
	if !eig.Factorize(h.Sym(), true) {
		return nil, fmt.Errorf("%w: symmetric eigendecomposition failed for N=%d", quantum.ErrNoConvergence, n)
	}

	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	set := &quantum.EigenstateSet{Grid: h.Grid, States: make([]quantum.Eigenstate, numStates)}
	for s := 0; s < numStates; s++ {
		psi := make([]float64, n)
		mat.Col(psi, s, &vecs)
		normalize(h.Grid, psi)
		set.States[s] = quantum.Eigenstate{Energy: vals[s], Psi: psi}
	}
	return set, nil
}

// normalize rescales to unit probability and fixes the sign so the
// largest-magnitude sample is positive. Eigenvectors are only defined
// up to sign; pinning it keeps superpositions reproducible.
func normalize(g *quantum.Grid, psi []float64) {
	d := make([]float64, len(psi))
	peak := 0
	for i, v := range psi {
		d[i] = v * v
		if d[i] > d[peak] {
			peak = i
		}
	}
	norm := g.Trapezoid(d)
	if norm <= 0 {
		return
	}
	s := 1.0 / math.Sqrt(norm)
	if psi[peak] < 0 {
		s = -s
	}
	for i := range psi {
		psi[i] *= s
	}
}

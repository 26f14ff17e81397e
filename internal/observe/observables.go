// Package observe computes expectation values over wavefunctions:
// total probability, mean position, and mean energy. The CLI reports
// them per run and the tests use them as physics invariants.
package observe

import (
	"github.com/san-kum/qwave/internal/hamiltonian"
	"github.com/san-kum/qwave/internal/quantum"
)

// Norm is the total probability ∫|ψ|²dx.
func Norm(g *quantum.Grid, w *quantum.WaveFunction) float64 {
	return w.Norm(g)
}

// MeanPosition is ⟨x⟩ = ∫x·|ψ|²dx.
func MeanPosition(g *quantum.Grid, w *quantum.WaveFunction) float64 {
	f := make([]float64, g.N)
	for i, d := range w.Density() {
		f[i] = g.Points[i] * d
	}
	return g.Trapezoid(f)
}

// Energy is ⟨H⟩ = Re ∫ψ*·(Hψ)dx, real for a Hermitian H up to
// round-off.
func Energy(h *hamiltonian.Hamiltonian, w *quantum.WaveFunction) float64 {
	hw := make([]complex128, len(w.Psi))
	h.Apply(w.Psi, hw)
	f := make([]float64, len(w.Psi))
	for i, p := range w.Psi {
		prod := (complex(real(p), -imag(p))) * hw[i]
		f[i] = real(prod)
	}
	return h.Grid.Trapezoid(f)
}

// Package wavepacket builds the initial conditions for time evolution:
// Gaussian packets and renormalized eigenstate superpositions.
package wavepacket

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/san-kum/qwave/internal/quantum"
)

// Gaussian builds a normalized packet
//
//	ψ(x) = A · exp(-(x-center)²/(2·width²)) · exp(i·momentum·x)
//
// at t = 0. The amplitude only matters up to the final normalization
// but is kept as a parameter so callers can superpose raw envelopes.
func Gaussian(g *quantum.Grid, center, width, momentum, amplitude float64) (*quantum.WaveFunction, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: packet width must be positive, got %g", quantum.ErrInvalidParameter, width)
	}
	w := quantum.NewWaveFunction(g.N)
	for i, x := range g.Points {
		env := amplitude * math.Exp(-(x-center)*(x-center)/(2*width*width))
		w.Psi[i] = complex(env, 0) * cmplx.Exp(complex(0, momentum*x))
	}
	w.Normalize(g)
	return w, nil
}

// Superpose combines eigenstates with complex coefficients and
// renormalizes, yielding a valid t = 0 initial condition.
func Superpose(set *quantum.EigenstateSet, coeffs []complex128) (*quantum.WaveFunction, error) {
	if len(coeffs) == 0 || len(coeffs) > len(set.States) {
		return nil, fmt.Errorf("%w: need 1..%d coefficients, got %d", quantum.ErrInvalidParameter, len(set.States), len(coeffs))
	}
	w := quantum.NewWaveFunction(set.Grid.N)
	for s, c := range coeffs {
		for i, v := range set.States[s].Psi {
			w.Psi[i] += c * complex(v, 0)
		}
	}
	w.Normalize(set.Grid)
	return w, nil
}

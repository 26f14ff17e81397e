package propagate

import (
	"fmt"
	"math/cmplx"

	"github.com/san-kum/qwave/internal/hamiltonian"
	"github.com/san-kum/qwave/internal/quantum"
)

// crankNicolson solves (I + i·dt/2ħ·H)ψ' = (I - i·dt/2ħ·H)ψ each step.
// The left-hand matrix is a constant complex tridiagonal system, so the
// Thomas forward elimination is factorized once up front and every step
// costs one matvec plus one back-substitution, O(N) total.
type crankNicolson struct {
	h *hamiltonian.Hamiltonian

	aOff complex128   // off-diagonal of the implicit matrix
	bOff complex128   // off-diagonal of the explicit matrix
	bDia []complex128 // diagonal of the explicit matrix
	cp   []complex128 // eliminated super-diagonal coefficients
	den  []complex128 // pivots after forward elimination

	rhs, y []complex128
}

func newCrankNicolson(h *hamiltonian.Hamiltonian, dt float64) (*crankNicolson, error) {
	n := h.Grid.N
	lam := complex(0, dt/(2*quantum.HBar))

	c := &crankNicolson{
		h:    h,
		aOff: lam * complex(h.Off, 0),
		bOff: -lam * complex(h.Off, 0),
		bDia: make([]complex128, n),
		cp:   make([]complex128, n),
		den:  make([]complex128, n),
		rhs:  make([]complex128, n),
		y:    make([]complex128, n),
	}

	const pivotEps = 1e-300
	for i := 0; i < n; i++ {
		aDia := 1 + lam*complex(h.Diag[i], 0)
		c.bDia[i] = 1 - lam*complex(h.Diag[i], 0)
		if i == 0 {
			c.den[i] = aDia
		} else {
			c.den[i] = aDia - c.aOff*c.cp[i-1]
		}
		if cmplx.Abs(c.den[i]) < pivotEps {
			return nil, fmt.Errorf("%w: tridiagonal solve hit a vanishing pivot at row %d", quantum.ErrNoConvergence, i)
		}
		c.cp[i] = c.aOff / c.den[i]
	}
	return c, nil
}

func (c *crankNicolson) step(in, out []complex128) {
	n := len(in)

	// Explicit half: rhs = (I - i·dt/2ħ·H)·ψ, hard-wall edges.
	for i := 0; i < n; i++ {
		acc := c.bDia[i] * in[i]
		if i > 0 {
			acc += c.bOff * in[i-1]
		}
		if i < n-1 {
			acc += c.bOff * in[i+1]
		}
		c.rhs[i] = acc
	}

	// Implicit half: Thomas substitution against the cached pivots.
	c.y[0] = c.rhs[0] / c.den[0]
	for i := 1; i < n; i++ {
		c.y[i] = (c.rhs[i] - c.aOff*c.y[i-1]) / c.den[i]
	}
	out[n-1] = c.y[n-1]
	for i := n - 2; i >= 0; i-- {
		out[i] = c.y[i] - c.cp[i]*out[i+1]
	}
}

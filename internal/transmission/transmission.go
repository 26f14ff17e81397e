// Package transmission estimates barrier transmission and reflection,
// either analytically (WKB) or from a finished propagation trajectory.
package transmission

import (
	"fmt"
	"math"

	"github.com/san-kum/qwave/internal/potential"
	"github.com/san-kum/qwave/internal/quantum"
)

// Result reports transmission and reflection probabilities together
// with their sum, so callers can judge probability leakage for
// themselves instead of having it folded into R.
type Result struct {
	T, R, Sum float64
	Method    string
	Warnings  []string
}

// leakage tolerance on T+R before a numerical result picks up an
// advisory warning
const sumTol = 0.05

// EstimateWKB computes the semi-classical tunneling estimate
//
//	T ≈ exp(-2·∫κ dx),  κ(x) = √(2m·(V(x)-E))/ħ
//
// integrated over the classically forbidden region V > E, clamped to
// [0, 1]. WKB systematically underestimates T for barriers that are
// not much wider than the particle's wavelength; that bias is part of
// the approximation and deliberately left uncorrected.
func EstimateWKB(v *potential.Potential, mass, energy float64) (float64, error) {
	if mass <= 0 {
		return 0, fmt.Errorf("%w: mass must be positive, got %g", quantum.ErrInvalidParameter, mass)
	}
	kappa := make([]float64, v.Grid.N)
	for i, vi := range v.Values {
		if vi > energy {
			kappa[i] = math.Sqrt(2*mass*(vi-energy)) / quantum.HBar
		}
	}
	t := math.Exp(-2 * v.Grid.Trapezoid(kappa))
	return math.Min(1, math.Max(0, t)), nil
}

// FromTrajectory integrates the final snapshot's probability density to
// the right of the barrier for T and to the left for R. The trajectory
// must have run long enough for the packet to clear [left, right];
// density still inside the barrier shows up as a depressed Sum.
func FromTrajectory(g *quantum.Grid, traj *quantum.Trajectory, left, right float64) (*Result, error) {
	if right <= left {
		return nil, fmt.Errorf("%w: barrier region [%g, %g] is empty", quantum.ErrInvalidParameter, left, right)
	}
	final := traj.Final()
	if final == nil {
		return nil, fmt.Errorf("%w: empty trajectory", quantum.ErrInvalidParameter)
	}
	if len(final.Psi) != g.N {
		return nil, fmt.Errorf("%w: trajectory has %d samples for a %d-point grid", quantum.ErrInvalidParameter, len(final.Psi), g.N)
	}

	density := final.Density()
	trans := make([]float64, g.N)
	refl := make([]float64, g.N)
	for i, x := range g.Points {
		switch {
		case x > right:
			trans[i] = density[i]
		case x < left:
			refl[i] = density[i]
		}
	}

	res := &Result{
		T:      g.Trapezoid(trans),
		R:      g.Trapezoid(refl),
		Method: "numerical",
	}
	res.Sum = res.T + res.R
	if math.Abs(res.Sum-1) > sumTol {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("T+R = %.4f deviates from 1 beyond %.2f; probability absorbed or still inside the barrier", res.Sum, sumTol))
	}
	return res, nil
}

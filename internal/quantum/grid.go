package quantum

import "fmt"

// HBar is the reduced Planck constant in the natural units used
// throughout the solver (ħ = 1).
const HBar = 1.0

// Grid is an evenly spaced 1D spatial discretization over [Min, Max].
// It is immutable once constructed.
type Grid struct {
	Min, Max float64
	N        int
	Dx       float64
	Points   []float64
}

// NewGrid builds a grid of n sample points over [min, max].
// At least 3 points are required for the second-derivative stencil.
func NewGrid(min, max float64, n int) (*Grid, error) {
	if max <= min {
		return nil, fmt.Errorf("%w: x_max %.4g <= x_min %.4g", ErrInvalidDomain, max, min)
	}
	if n < 3 {
		return nil, fmt.Errorf("%w: need N >= 3, got %d", ErrInvalidDomain, n)
	}
	dx := (max - min) / float64(n-1)
	pts := make([]float64, n)
	for i := range pts {
		pts[i] = min + float64(i)*dx
	}
	return &Grid{Min: min, Max: max, N: n, Dx: dx, Points: pts}, nil
}

// Trapezoid integrates sampled values over the grid.
func (g *Grid) Trapezoid(f []float64) float64 {
	sum := 0.0
	for _, v := range f {
		sum += v
	}
	sum -= 0.5 * (f[0] + f[len(f)-1])
	return sum * g.Dx
}

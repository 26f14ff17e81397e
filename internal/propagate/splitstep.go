package propagate

import (
	"math"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/qwave/internal/hamiltonian"
	"github.com/san-kum/qwave/internal/quantum"
)

// splitStep applies exp(-i·V·dt/2ħ), a full kinetic rotation in
// momentum space, then exp(-i·V·dt/2ħ) again. The symmetric splitting
// is second-order in dt and every factor has unit modulus, so the norm
// is conserved exactly up to FFT round-off.
type splitStep struct {
	expVHalf []complex128
	expK     []complex128
}

func newSplitStep(h *hamiltonian.Hamiltonian, dt float64) *splitStep {
	n := h.Grid.N
	s := &splitStep{
		expVHalf: make([]complex128, n),
		expK:     make([]complex128, n),
	}
	for i, v := range h.Pot {
		phase := -v * dt / (2 * quantum.HBar)
		s.expVHalf[i] = complex(math.Cos(phase), math.Sin(phase))
	}
	// FFT bin j carries wavenumber 2π·j/(N·dx), folded to negative
	// frequencies past the midpoint.
	for j := 0; j < n; j++ {
		m := j
		if j > n/2 {
			m = j - n
		}
		k := 2 * math.Pi * float64(m) / (float64(n) * h.Grid.Dx)
		phase := -quantum.HBar * k * k * dt / (2 * h.Mass)
		s.expK[j] = complex(math.Cos(phase), math.Sin(phase))
	}
	return s
}

func (s *splitStep) step(in, out []complex128) {
	n := len(in)
	buf := make([]complex128, n)
	for i := range in {
		buf[i] = in[i] * s.expVHalf[i]
	}
	spec := fft.FFT(buf)
	for i := range spec {
		spec[i] *= s.expK[i]
	}
	res := fft.IFFT(spec)
	for i := range res {
		out[i] = res[i] * s.expVHalf[i]
	}
}

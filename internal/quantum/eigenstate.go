package quantum

// Eigenstate is one stationary solution of the time-independent
// Schrödinger equation: a real eigenvector with its energy.
type Eigenstate struct {
	Energy float64
	Psi    []float64
}

// EigenstateSet is a read-only snapshot of the lowest eigenpairs,
// sorted ascending by energy, each normalized over the grid.
type EigenstateSet struct {
	Grid   *Grid
	States []Eigenstate
}

func (s *EigenstateSet) Energies() []float64 {
	es := make([]float64, len(s.States))
	for i, st := range s.States {
		es[i] = st.Energy
	}
	return es
}

// Densities returns |ψ_n(x_i)|² for every state.
func (s *EigenstateSet) Densities() [][]float64 {
	ds := make([][]float64, len(s.States))
	for i, st := range s.States {
		d := make([]float64, len(st.Psi))
		for j, v := range st.Psi {
			d[j] = v * v
		}
		ds[i] = d
	}
	return ds
}

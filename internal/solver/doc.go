// Package solver extracts stationary states from an assembled
// Hamiltonian via symmetric eigendecomposition.
package solver

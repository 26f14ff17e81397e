// Package hamiltonian assembles the finite-difference Hamiltonian for
// a grid/potential pair. The operator is symmetric by construction
// (symmetric stencil, diagonal potential), which guarantees real
// eigenvalues downstream.
package hamiltonian

// Package quantum holds the value types shared by the 1D Schrödinger
// solver: the spatial [Grid], complex [WaveFunction] snapshots,
// materialized [Trajectory] sequences, and [EigenstateSet] results.
//
// Every type here is either immutable after construction (Grid,
// EigenstateSet) or produced as a fresh value per propagation step
// (WaveFunction, Trajectory), so nothing needs locking and independent
// simulations can run concurrently without shared state.
//
// Natural units are used throughout: ħ = 1 (see [HBar]), and masses,
// lengths and energies are dimensionless multiples of it.
package quantum

// Package propagate advances wavefunctions through time under a fixed
// Hamiltonian. Two interchangeable schemes are provided:
//
//   - [CrankNicolson]: implicit, unconditionally stable, one complex
//     tridiagonal solve per step. The default for bound and barrier
//     problems where long-time stability matters more than per-step cost.
//   - [SplitStep]: FFT-based split-operator stepping for free and
//     near-free propagation.
//
// Steps within one trajectory are strictly sequential; step n+1
// consumes step n. Independent runs share no state and may execute
// concurrently on the caller's side.
package propagate

// Package potential evaluates V(x) for the four supported families:
//
//   - [InfiniteWell]: flat well with a finite wall sentinel
//   - [FiniteWell]: flat well of finite depth
//   - [HarmonicOscillator]: ½·m·ω²·x²
//   - [RectangularBarrier]: flat barrier of either sign
//
// Families form a closed tagged variant rather than an open interface:
// four fixed cases keep evaluation exhaustive-checkable.
package potential

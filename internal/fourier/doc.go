// Package fourier provides discrete Fourier transforms and discrete
// convolution over complex sample sequences.
//
// Both transform variants use the unitary convention: forward and
// inverse directions are each scaled by 1/sqrt(N), so applying one
// after the other reconstructs the input up to rounding.
//
//   - [DFT] / [InverseDFT]: direct O(N^2) sums, any length
//   - [FFT] / [InverseFFT]: recursive radix-2 Cooley-Tukey,
//     power-of-two lengths only
//   - [Convolve] / [ConvolveComplex]: causal truncated convolution
//   - [PowerSpectrum]: magnitudes of the positive-frequency bins
//
// The two transform variants agree within floating tolerance on any
// power-of-two input.
package fourier

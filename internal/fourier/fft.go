package fourier

import (
	"errors"
	"fmt"
	"math"

	"github.com/numlab/numlab/internal/cplx"
)

// ErrInvalidLength indicates an FFT input whose length is not a power of two.
var ErrInvalidLength = errors.New("fourier: input length must be a power of two")

// FFT returns the forward transform of x using the recursive radix-2
// Cooley-Tukey algorithm. The length of x must be a power of two
// (>= 1), otherwise it fails with ErrInvalidLength. The result matches
// DFT within floating tolerance.
func FFT(x []cplx.Complex) ([]cplx.Complex, error) {
	return fft(x, -1)
}

// InverseFFT is the radix-2 counterpart of InverseDFT.
func InverseFFT(X []cplx.Complex) ([]cplx.Complex, error) {
	return fft(X, +1)
}

// RealFFT casts a real sample sequence and runs the forward FFT.
func RealFFT(x []float64) ([]cplx.Complex, error) {
	return FFT(FromReal(x))
}

func fft(x []cplx.Complex, sign float64) ([]cplx.Complex, error) {
	n := len(x)
	if n == 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: got length %d", ErrInvalidLength, n)
	}
	out := recurse(x, sign)

	// The 1/sqrt(N) normalization is applied exactly once, for the
	// outermost length, never inside the recursion.
	norm := 1 / math.Sqrt(float64(n))
	for i := range out {
		out[i] = out[i].MulReal(norm)
	}
	return out, nil
}

func recurse(x []cplx.Complex, sign float64) []cplx.Complex {
	n := len(x)
	if n == 1 {
		return []cplx.Complex{x[0]}
	}

	even := make([]cplx.Complex, n/2)
	odd := make([]cplx.Complex, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = x[2*i]
		odd[i] = x[2*i+1]
	}

	feven := recurse(even, sign)
	fodd := recurse(odd, sign)

	out := make([]cplx.Complex, n)
	for k := 0; k < n/2; k++ {
		w := cplx.Exp(cplx.New(0, sign*2*math.Pi*float64(k)/float64(n)))
		t := w.Mul(fodd[k])
		out[k] = feven[k].Add(t)
		out[k+n/2] = feven[k].Sub(t)
	}
	return out
}

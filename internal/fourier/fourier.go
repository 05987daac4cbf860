package fourier

import (
	"math"

	"github.com/numlab/numlab/internal/cplx"
)

// DFT returns the forward discrete Fourier transform of x:
//
//	X[k] = (1/sqrt(N)) * sum_n x[n] * exp(-2*pi*i*n*k/N)
//
// The direct sum places no restriction on the length of x.
func DFT(x []cplx.Complex) []cplx.Complex {
	return direct(x, -1)
}

// InverseDFT returns the inverse discrete Fourier transform of X,
// the same sum as DFT with the sign of the exponent flipped and the
// same 1/sqrt(N) scale.
func InverseDFT(X []cplx.Complex) []cplx.Complex {
	return direct(X, +1)
}

func direct(x []cplx.Complex, sign float64) []cplx.Complex {
	n := len(x)
	out := make([]cplx.Complex, n)
	if n == 0 {
		return out
	}
	norm := 1 / math.Sqrt(float64(n))
	for k := 0; k < n; k++ {
		var sum cplx.Complex
		for j := 0; j < n; j++ {
			w := cplx.Exp(cplx.New(0, sign*2*math.Pi*float64(j)*float64(k)/float64(n)))
			sum = sum.Add(x[j].Mul(w))
		}
		out[k] = sum.MulReal(norm)
	}
	return out
}

// FromReal casts a real sample sequence to complex samples.
func FromReal(x []float64) []cplx.Complex {
	out := make([]cplx.Complex, len(x))
	for i, v := range x {
		out[i] = cplx.FromReal(v)
	}
	return out
}

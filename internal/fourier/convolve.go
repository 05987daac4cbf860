package fourier

import "github.com/numlab/numlab/internal/cplx"

// Convolve returns the causal discrete convolution of f and g:
//
//	result[i] = sum_{j <= i} f[i-j] * g[j]
//
// Terms that would index f at a negative position are omitted rather
// than wrapped or zero-extended. The output has the length of f.
func Convolve(f, g []float64) []float64 {
	result := make([]float64, len(f))
	for i := range f {
		sum := 0.0
		for j := range g {
			if i >= j {
				sum += f[i-j] * g[j]
			}
		}
		result[i] = sum
	}
	return result
}

// ConvolveComplex is Convolve over complex sample sequences.
func ConvolveComplex(f, g []cplx.Complex) []cplx.Complex {
	result := make([]cplx.Complex, len(f))
	for i := range f {
		var sum cplx.Complex
		for j := range g {
			if i >= j {
				sum = sum.Add(f[i-j].Mul(g[j]))
			}
		}
		result[i] = sum
	}
	return result
}

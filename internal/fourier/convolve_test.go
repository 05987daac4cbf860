package fourier

import (
	"math"
	"testing"

	"github.com/numlab/numlab/internal/cplx"
)

func TestConvolve_Identity(t *testing.T) {
	f := []float64{1, 2, 3, 4, 5}
	impulse := []float64{1, 0, 0, 0, 0}

	got := Convolve(f, impulse)
	for i := range f {
		if got[i] != f[i] {
			t.Errorf("convolving with impulse changed element %d: %v", i, got)
			break
		}
	}
}

func TestConvolve_Length(t *testing.T) {
	tests := []struct {
		lenF, lenG int
	}{
		{5, 5},
		{8, 3},
		{3, 8},
		{1, 1},
		{0, 4},
	}

	for _, tt := range tests {
		f := make([]float64, tt.lenF)
		g := make([]float64, tt.lenG)
		if got := len(Convolve(f, g)); got != tt.lenF {
			t.Errorf("len(Convolve(f[%d], g[%d])) = %d, want %d", tt.lenF, tt.lenG, got, tt.lenF)
		}
	}
}

func TestConvolve_Values(t *testing.T) {
	// [1 2 3] * [1 1] truncated to len(f): [1, 1+2, 2+3]
	got := Convolve([]float64{1, 2, 3}, []float64{1, 1})
	want := []float64{1, 3, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Convolve = %v, want %v", got, want)
		}
	}

	// delayed impulse shifts the signal
	got = Convolve([]float64{1, 2, 3, 4}, []float64{0, 1, 0, 0})
	want = []float64{0, 1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("delayed impulse = %v, want %v", got, want)
		}
	}
}

func TestConvolveComplex(t *testing.T) {
	f := []cplx.Complex{cplx.New(1, 1), cplx.New(2, 0), cplx.New(0, 3)}
	impulse := []cplx.Complex{cplx.New(1, 0), {}, {}}

	got := ConvolveComplex(f, impulse)
	for i := range f {
		if math.Abs(got[i].Re-f[i].Re) > 1e-15 || math.Abs(got[i].Im-f[i].Im) > 1e-15 {
			t.Errorf("element %d = %v, want %v", i, got[i], f[i])
		}
	}
}

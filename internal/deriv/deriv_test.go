package deriv

import (
	"math"
	"testing"
)

func sampled(fn func(float64) float64, n int, h float64) []Sample {
	out := make([]Sample, n)
	for i := range out {
		x := float64(i) * h
		out[i] = Sample{X: x, Y: fn(x)}
	}
	return out
}

func TestDiff_Linear(t *testing.T) {
	// derivative of 3x + 1 is exactly 3 everywhere
	res := Diff(sampled(func(x float64) float64 { return 3*x + 1 }, 10, 0.5))

	if len(res) != 9 {
		t.Fatalf("expected 9 points, got %d", len(res))
	}
	for _, s := range res {
		if math.Abs(s.Y-3) > 1e-12 {
			t.Errorf("slope at x=%v is %v, want 3", s.X, s.Y)
		}
	}
}

func TestDiff_SkipsEqualX(t *testing.T) {
	values := []Sample{{0, 0}, {1, 1}, {1, 5}, {2, 2}}
	res := Diff(values)

	if len(res) != 2 {
		t.Fatalf("expected duplicate x to be skipped, got %d points", len(res))
	}
	for _, s := range res {
		if s.X == 1 && math.IsInf(s.Y, 0) {
			t.Error("equal-x pair produced an infinite slope")
		}
	}
}

func TestDiff_TooShort(t *testing.T) {
	if res := Diff([]Sample{{0, 1}}); res != nil {
		t.Errorf("expected nil for a single sample, got %v", res)
	}
	if res := Diff(nil); res != nil {
		t.Errorf("expected nil for no samples, got %v", res)
	}
}

func TestDiff5_Cubic(t *testing.T) {
	// the five-point stencil is exact for cubics on a uniform grid
	res := Diff5(sampled(func(x float64) float64 { return x * x * x }, 20, 0.1))

	if len(res) != 16 {
		t.Fatalf("expected 16 interior points, got %d", len(res))
	}
	for _, s := range res {
		want := 3 * s.X * s.X
		if math.Abs(s.Y-want) > 1e-10 {
			t.Errorf("slope at x=%v is %v, want %v", s.X, s.Y, want)
		}
	}
}

func TestDiff5_Sine(t *testing.T) {
	res := Diff5(sampled(math.Sin, 100, 0.01))

	for _, s := range res {
		want := math.Cos(s.X)
		if math.Abs(s.Y-want) > 1e-8 {
			t.Errorf("slope at x=%v is %v, want %v", s.X, s.Y, want)
		}
	}
}

func TestDiff5_InteriorOnly(t *testing.T) {
	res := Diff5(sampled(func(x float64) float64 { return x }, 5, 1))

	if len(res) != 1 {
		t.Fatalf("expected only the single interior point, got %d", len(res))
	}
	if res[0].X != 2 {
		t.Errorf("interior point at x=%v, want 2", res[0].X)
	}
}

func TestDiff5_TooShort(t *testing.T) {
	if res := Diff5(sampled(math.Sin, 4, 0.1)); res != nil {
		t.Errorf("expected nil below five samples, got %v", res)
	}
}

package roots

import (
	"errors"
	"math"
	"testing"
)

func sqrt2Fn(x float64) float64 { return x*x - 2 }

func cubicFn(x float64) float64  { return x*x*x - x - 2 }
func cubicDfn(x float64) float64 { return 3*x*x - 1 }

// real root of x^3 - x - 2
const cubicRoot = 1.5213797068045675

func TestBisect(t *testing.T) {
	got, err := Bisect(sqrt2Fn, 1, 2, 50)
	if err != nil {
		t.Fatalf("Bisect: %v", err)
	}
	if math.Abs(got-math.Sqrt2) > 1e-6 {
		t.Errorf("Bisect = %.10f, want %.10f", got, math.Sqrt2)
	}
}

func TestBisect_ReordersBracket(t *testing.T) {
	got, err := Bisect(sqrt2Fn, 2, 1, 50)
	if err != nil {
		t.Fatalf("Bisect: %v", err)
	}
	if math.Abs(got-math.Sqrt2) > 1e-6 {
		t.Errorf("Bisect = %.10f, want %.10f", got, math.Sqrt2)
	}
}

func TestBisect_ExactZero(t *testing.T) {
	// an exact zero at an endpoint or midpoint returns immediately
	got, err := Bisect(func(x float64) float64 { return x - 1 }, 1, 3, 10)
	if err != nil {
		t.Fatalf("Bisect: %v", err)
	}
	if got != 1 {
		t.Errorf("Bisect = %v, want exact endpoint 1", got)
	}

	got, err = Bisect(func(x float64) float64 { return x - 2 }, 1, 3, 10)
	if err != nil {
		t.Fatalf("Bisect: %v", err)
	}
	if got != 2 {
		t.Errorf("Bisect = %v, want exact midpoint 2", got)
	}
}

func TestBisect_NoConvergence(t *testing.T) {
	_, err := Bisect(sqrt2Fn, 1, 2, 3)
	if !errors.Is(err, ErrNoConvergence) {
		t.Errorf("got %v, want ErrNoConvergence", err)
	}
}

func TestBisect_NaNBracket(t *testing.T) {
	_, err := Bisect(sqrt2Fn, math.NaN(), 2, 10)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument", err)
	}
}

func TestLinear(t *testing.T) {
	got, err := Linear(sqrt2Fn, 1, 2, 50)
	if err != nil {
		t.Fatalf("Linear: %v", err)
	}
	if math.Abs(got-math.Sqrt2) > 1e-6 {
		t.Errorf("Linear = %.10f, want %.10f", got, math.Sqrt2)
	}
}

func TestLinear_ReordersBracket(t *testing.T) {
	got, err := Linear(cubicFn, 2, 1, 50)
	if err != nil {
		t.Fatalf("Linear: %v", err)
	}
	if math.Abs(got-cubicRoot) > 1e-6 {
		t.Errorf("Linear = %.10f, want %.10f", got, cubicRoot)
	}
}

func TestLinear_FlatFunction(t *testing.T) {
	_, err := Linear(func(x float64) float64 { return 1 }, 0, 1, 10)
	if !errors.Is(err, ErrDivideByZero) {
		t.Errorf("got %v, want ErrDivideByZero", err)
	}
}

func TestNewton(t *testing.T) {
	got, err := Newton(cubicFn, cubicDfn, 1.5, 20)
	if err != nil {
		t.Fatalf("Newton: %v", err)
	}
	if math.Abs(got-cubicRoot) > 1e-6 {
		t.Errorf("Newton = %.10f, want %.10f", got, cubicRoot)
	}
}

func TestNewton_ZeroDerivative(t *testing.T) {
	fn := func(x float64) float64 { return x*x + 1 }
	dfn := func(x float64) float64 { return 2 * x }

	_, err := Newton(fn, dfn, 0, 10)
	if !errors.Is(err, ErrDivideByZero) {
		t.Errorf("got %v, want ErrDivideByZero", err)
	}
}

func TestNewton_ExactZero(t *testing.T) {
	got, err := Newton(func(x float64) float64 { return x }, func(x float64) float64 { return 1 }, 0, 10)
	if err != nil {
		t.Fatalf("Newton: %v", err)
	}
	if got != 0 {
		t.Errorf("Newton = %v, want exact 0", got)
	}
}

func TestSecant(t *testing.T) {
	got, err := Secant(sqrt2Fn, 1, 2, 50)
	if err != nil {
		t.Fatalf("Secant: %v", err)
	}
	if math.Abs(got-math.Sqrt2) > 1e-6 {
		t.Errorf("Secant = %.10f, want %.10f", got, math.Sqrt2)
	}
}

func TestSecant_CubicRoot(t *testing.T) {
	got, err := Secant(cubicFn, 1, 2, 50)
	if err != nil {
		t.Fatalf("Secant: %v", err)
	}
	if math.Abs(got-cubicRoot) > 1e-6 {
		t.Errorf("Secant = %.10f, want %.10f", got, cubicRoot)
	}
}

func TestSecant_EqualValues(t *testing.T) {
	_, err := Secant(func(x float64) float64 { return 1 }, 0, 1, 10)
	if !errors.Is(err, ErrDivideByZero) {
		t.Errorf("got %v, want ErrDivideByZero", err)
	}
}

func TestSecant_NaNGuess(t *testing.T) {
	_, err := Secant(sqrt2Fn, 1, math.NaN(), 10)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument", err)
	}
}

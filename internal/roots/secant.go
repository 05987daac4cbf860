package roots

import (
	"fmt"
	"math"
)

// Secant runs the secant iteration from two initial guesses for at
// most iterations steps:
//
//	c = g1 - fn(g1)*(g1-g2) / (fn(g1)-fn(g2))
//
// then shifts (g1, g2) <- (c, g1). It returns early on an exact zero
// at either guess or when the guesses are within Tolerance of each
// other. Equal function values at the two guesses fail with
// ErrDivideByZero.
func Secant(fn Func, guess1, guess2 float64, iterations int) (float64, error) {
	if math.IsNaN(guess1) || math.IsNaN(guess2) {
		return 0, fmt.Errorf("%w: NaN guess", ErrInvalidArgument)
	}

	for i := 0; i < iterations; i++ {
		f1 := fn(guess1)
		f2 := fn(guess2)

		if f1 == 0 || math.Abs(guess1-guess2) <= Tolerance {
			return guess1, nil
		}
		if f2 == 0 {
			return guess2, nil
		}
		if f1 == f2 {
			return 0, fmt.Errorf("%w: fn(%g) = fn(%g)", ErrDivideByZero, guess1, guess2)
		}

		c := guess1 - f1*(guess1-guess2)/(f1-f2)
		guess2 = guess1
		guess1 = c
	}
	return guess1, nil
}

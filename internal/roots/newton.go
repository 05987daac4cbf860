package roots

import (
	"fmt"
	"math"
)

// Newton runs the Newton-Raphson iteration c <- c - fn(c)/dfn(c) from
// guess for at most iterations steps, returning early on an exact
// zero of fn. A vanishing derivative fails with ErrDivideByZero; there
// is no stagnation or divergence guard.
func Newton(fn, dfn Func, guess float64, iterations int) (float64, error) {
	if math.IsNaN(guess) {
		return 0, fmt.Errorf("%w: NaN guess", ErrInvalidArgument)
	}

	c := guess
	for i := 0; i < iterations; i++ {
		fc := fn(c)
		if fc == 0 {
			return c, nil
		}
		d := dfn(c)
		if d == 0 {
			return 0, fmt.Errorf("%w: derivative vanished at %g", ErrDivideByZero, c)
		}
		c -= fc / d
	}
	return c, nil
}

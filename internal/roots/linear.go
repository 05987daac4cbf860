package roots

import (
	"fmt"
	"math"
)

// Linear searches [a, b] for a root of fn by linear interpolation
// between the bracket endpoints:
//
//	c = a - (b-a) / (fn(b)/fn(a) - 1)
//
// The bracket is reordered so a <= b. The full iteration count always
// runs; there is no tolerance-based early exit, and the last
// interpolant is returned. An exact zero at c returns immediately.
func Linear(fn Func, a, b float64, iterations int) (float64, error) {
	if math.IsNaN(a) || math.IsNaN(b) {
		return 0, fmt.Errorf("%w: NaN bracket", ErrInvalidArgument)
	}
	if a > b {
		a, b = b, a
	}

	c := a
	for i := 0; i < iterations; i++ {
		fa := fn(a)
		fb := fn(b)
		if fa == 0 {
			return 0, fmt.Errorf("%w: fn(a) = 0 at a = %g", ErrDivideByZero, a)
		}
		denom := fb/fa - 1
		if denom == 0 {
			return 0, fmt.Errorf("%w: fn(a) = fn(b) on [%g, %g]", ErrDivideByZero, a, b)
		}
		c = a - (b-a)/denom

		fc := fn(c)
		if fc == 0 {
			return c, nil
		}
		if fc*fa > 0 {
			a = c
		} else {
			b = c
		}
	}
	return c, nil
}

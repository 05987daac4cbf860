package roots

import (
	"fmt"
	"math"
)

// Bisect searches [a, b] for a root of fn by repeated halving, for at
// most iterations steps. The bracket is reordered so a <= b. The
// endpoints and midpoint are checked for an exact zero before and
// during iteration. The result is undefined when fn(a) and fn(b)
// share a sign; supplying a straddling bracket is the caller's
// responsibility.
func Bisect(fn Func, a, b float64, iterations int) (float64, error) {
	if math.IsNaN(a) || math.IsNaN(b) {
		return 0, fmt.Errorf("%w: NaN bracket", ErrInvalidArgument)
	}
	if a > b {
		a, b = b, a
	}

	c := (a + b) / 2
	for _, v := range [3]float64{a, b, c} {
		if fn(v) == 0 {
			return v, nil
		}
	}

	for i := 0; i < iterations-1; i++ {
		if fn(c)*fn(a) > 0 {
			a = c
		} else {
			b = c
		}
		c = (a + b) / 2
		if fn(c) == 0 || math.Abs(a-b)/2 <= Tolerance {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: last bracket [%g, %g]", ErrNoConvergence, a, b)
}

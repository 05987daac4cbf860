// Package roots provides four scalar root-finding algorithms over
// real-valued callables: bisection, linear interpolation,
// Newton-Raphson, and the secant method.
//
// Newton-Raphson and the secant method carry no divergence or
// oscillation guard; a vanishing denominator surfaces ErrDivideByZero
// and the caller retries with better inputs.
package roots

import "errors"

// Func is a real-valued function of one real variable. The algorithms
// assume continuity over the searched interval.
type Func func(float64) float64

// Tolerance bounds the half-bracket width for bisection and the guess
// gap for the secant method.
const Tolerance = 1e-6

var (
	// ErrNoConvergence indicates the iteration budget ran out before a
	// root was bracketed to within Tolerance.
	ErrNoConvergence = errors.New("roots: no root found within iteration budget")

	// ErrDivideByZero indicates a vanishing denominator in an update step.
	ErrDivideByZero = errors.New("roots: divide by zero")

	// ErrInvalidArgument indicates a non-numeric bracket or guess.
	ErrInvalidArgument = errors.New("roots: invalid argument")
)

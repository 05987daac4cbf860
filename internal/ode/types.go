package ode

import "math"

// Vector constrains a state type to the two operations RK4 needs: the
// type must be closed under addition and scalar multiplication.
type Vector[S any] interface {
	Add(S) S
	Scale(float64) S
}

// Deriv computes dy/dt at time t for state y.
type Deriv[S Vector[S]] func(t float64, y S) S

// Scalar adapts a float64 to the Vector constraint for
// one-dimensional problems.
type Scalar float64

func (s Scalar) Add(other Scalar) Scalar {
	return s + other
}

func (s Scalar) Scale(factor float64) Scalar {
	return Scalar(float64(s) * factor)
}

// State is a vector state. When lengths differ, the shorter operand
// is treated as zero-padded.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (s State) Add(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] + other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] - other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

func (s State) Scale(factor float64) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i] * factor
	}
	return result
}

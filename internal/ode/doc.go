// Package ode provides a single-step classical Runge-Kutta (order 4)
// integrator generic over any state type closed under addition and
// scalar multiplication.
//
//   - [RK4]: one integration step
//   - [Integrate]: repeated stepping over an interval, recording the
//     trajectory
//   - [Scalar], [State]: ready-made state types for scalar and vector
//     problems
//
// # Example
//
//	decay := func(t float64, y ode.Scalar) ode.Scalar { return -y }
//	y := ode.Scalar(1.0)
//	for i := 0; i < 100; i++ {
//	    y = ode.RK4(y, decay, float64(i)*0.01, 0.01)
//	}
package ode

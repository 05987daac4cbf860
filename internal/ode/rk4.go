package ode

// RK4 advances y by one classical 4th-order Runge-Kutta step of size
// dt, evaluating the derivative f four times:
//
//	k1 = f(t, y)
//	k2 = f(t+dt/2, y + k1*dt/2)
//	k3 = f(t+dt/2, y + k2*dt/2)
//	k4 = f(t+dt,   y + k3*dt)
//	y' = y + (dt/6)*(k1 + 2*k2 + 2*k3 + k4)
//
// Repeated stepping over an interval is the caller's responsibility;
// see Integrate.
func RK4[S Vector[S]](y S, f Deriv[S], t, dt float64) S {
	k1 := f(t, y)
	k2 := f(t+dt/2, y.Add(k1.Scale(dt/2)))
	k3 := f(t+dt/2, y.Add(k2.Scale(dt/2)))
	k4 := f(t+dt, y.Add(k3.Scale(dt)))

	sum := k1.Add(k2.Scale(2)).Add(k3.Scale(2)).Add(k4)
	return y.Add(sum.Scale(dt / 6))
}

package ode

// Trajectory records the states visited during an integration run,
// including the initial state.
type Trajectory[S Vector[S]] struct {
	Times  []float64
	States []S
}

// Len returns the number of recorded points.
func (tr Trajectory[S]) Len() int {
	return len(tr.Times)
}

// Final returns the last recorded state.
func (tr Trajectory[S]) Final() S {
	return tr.States[len(tr.States)-1]
}

// Integrate drives RK4 for the given number of steps starting from y0
// at time t0 and records the trajectory.
func Integrate[S Vector[S]](y0 S, f Deriv[S], t0, dt float64, steps int) Trajectory[S] {
	tr := Trajectory[S]{
		Times:  make([]float64, 0, steps+1),
		States: make([]S, 0, steps+1),
	}
	tr.Times = append(tr.Times, t0)
	tr.States = append(tr.States, y0)

	y := y0
	for i := 0; i < steps; i++ {
		t := t0 + float64(i)*dt
		y = RK4(y, f, t, dt)
		tr.Times = append(tr.Times, t0+float64(i+1)*dt)
		tr.States = append(tr.States, y)
	}
	return tr
}

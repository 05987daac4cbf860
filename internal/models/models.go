// Package models provides the demo ODE systems the CLI integrates.
// These are thin callables over the generic stepper; they carry no
// physics machinery of their own.
package models

import (
	"fmt"
	"math"

	"github.com/numlab/numlab/internal/ode"
)

// Model couples a derivative callable with a default initial state
// and an optional energy readout for the live view.
type Model struct {
	Name    string
	Deriv   ode.Deriv[ode.State]
	Energy  func(x ode.State) float64
	Initial ode.State
	Labels  []string
}

var registry = map[string]Model{
	"decay": {
		Name: "decay",
		Deriv: func(t float64, y ode.State) ode.State {
			return ode.State{-y[0]}
		},
		Initial: ode.State{1.0},
		Labels:  []string{"y"},
	},
	"oscillator": {
		Name: "oscillator",
		Deriv: func(t float64, x ode.State) ode.State {
			return ode.State{x[1], -x[0]}
		},
		Energy: func(x ode.State) float64 {
			return 0.5 * (x[0]*x[0] + x[1]*x[1])
		},
		Initial: ode.State{1.0, 0.0},
		Labels:  []string{"y", "v"},
	},
	"pendulum": {
		Name: "pendulum",
		Deriv: func(t float64, x ode.State) ode.State {
			return ode.State{x[1], -math.Sin(x[0])}
		},
		Energy: func(x ode.State) float64 {
			return 0.5*x[1]*x[1] + (1 - math.Cos(x[0]))
		},
		Initial: ode.State{0.5, 0.0},
		Labels:  []string{"theta", "omega"},
	},
}

func Get(name string) (Model, error) {
	m, ok := registry[name]
	if !ok {
		return Model{}, fmt.Errorf("unknown model: %s (available: %v)", name, Names())
	}
	return m, nil
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

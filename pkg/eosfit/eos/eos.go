// Package eos provides the equation-of-state model functions relating
// pressure and volume via (V0, K0, K0').
package eos

import (
	"fmt"
	"math"
)

// Params holds the parameters shared by all supported equations of state.
type Params struct {
	// V0 is the zero-pressure (reference) volume.
	V0 float64
	// K0 is the isothermal bulk modulus at zero pressure.
	K0 float64
	// K0Prime is the pressure derivative of the bulk modulus at zero pressure.
	K0Prime float64
}

// Model is a pure mapping from volume and parameters to predicted pressure.
// Parameter fixing is a fitting-time concern and is not handled here.
type Model struct {
	// Name is the model display name (used in reports and plot legends).
	Name string
	// Pressure evaluates the model at volume v. The result is NaN when
	// v <= 0 or p.V0 <= 0.
	Pressure func(v float64, p Params) float64
}

// BirchMurnaghan is the 3rd-order Birch-Murnaghan equation of state:
//
//	P(V) = (3/2)*K0 * [(V0/V)^(7/3) - (V0/V)^(5/3)]
//	       * {1 + (3/4)*(K0'-4) * [(V0/V)^(2/3) - 1]}
var BirchMurnaghan = Model{
	Name: "Birch-Murnaghan",
	Pressure: func(v float64, p Params) float64 {
		if v <= 0 || p.V0 <= 0 {
			return math.NaN()
		}
		r := p.V0 / v
		r13 := math.Cbrt(r)
		r23 := r13 * r13
		r53 := r * r23
		r73 := r * r * r13
		return 1.5 * p.K0 * (r73 - r53) * (1 + 0.75*(p.K0Prime-4)*(r23-1))
	},
}

// Vinet is the Vinet equation of state:
//
//	x = (V/V0)^(1/3)
//	P(V) = 3*K0 * (1-x)/x^2 * exp[(3/2)*(K0'-1)*(1-x)]
var Vinet = Model{
	Name: "Vinet",
	Pressure: func(v float64, p Params) float64 {
		if v <= 0 || p.V0 <= 0 {
			return math.NaN()
		}
		x := math.Cbrt(v / p.V0)
		eta := 1.5 * (p.K0Prime - 1)
		return 3 * p.K0 * (1 - x) / (x * x) * math.Exp(eta*(1-x))
	},
}

// ByName resolves a model from its CLI identifier ("bm" or "vinet").
func ByName(name string) (Model, error) {
	switch name {
	case "bm", "birch-murnaghan":
		return BirchMurnaghan, nil
	case "vinet":
		return Vinet, nil
	}
	return Model{}, fmt.Errorf("unknown EOS model %q (must be bm or vinet)", name)
}

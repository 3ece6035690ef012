// Package fitter implements nonlinear least-squares fitting of EOS models
// to pressure-volume observations.
package fitter

// FixedMask selects which EOS parameters are held constant during a fit.
// Fixed parameters keep their initial-guess value and carry no standard error.
type FixedMask struct {
	// V0 holds the zero-pressure volume fixed (permitted but unusual).
	V0 bool
	// K0 holds the bulk modulus fixed.
	K0 bool
	// K0Prime holds the bulk modulus pressure derivative fixed.
	K0Prime bool
}

// FreeCount returns the number of parameters the optimizer may vary.
func (m FixedMask) FreeCount() int {
	n := 3
	if m.V0 {
		n--
	}
	if m.K0 {
		n--
	}
	if m.K0Prime {
		n--
	}
	return n
}

// Config holds the optimizer settings.
type Config struct {
	// Tau scales the initial Levenberg-Marquardt damping.
	Tau float64
	// Eps1 is the gradient-norm stopping tolerance.
	Eps1 float64
	// Eps2 is the step-size stopping tolerance.
	Eps2 float64
	// ObjectiveTol stops the fit when the summed squared residuals fall
	// below this value.
	ObjectiveTol float64
	// MaxIterations is the optimizer iteration budget.
	MaxIterations int
}

// DefaultConfig returns the default optimizer settings.
func DefaultConfig() Config {
	return Config{
		Tau:           1e-6,
		Eps1:          1e-8,
		Eps2:          1e-8,
		ObjectiveTol:  1e-16,
		MaxIterations: 1000,
	}
}

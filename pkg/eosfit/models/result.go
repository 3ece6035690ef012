package models

import "github.com/minphys/eosfit-go/pkg/eosfit/eos"

// Parameter is one fitted (or fixed) EOS parameter.
type Parameter struct {
	// Name is the parameter display name ("V0", "K0", "K0'").
	Name string
	// Value is the fitted value, or the held value when Fixed.
	Value float64
	// StdErr is the 1-sigma standard error from the fit covariance.
	// NaN for fixed parameters and when no degrees of freedom remain.
	StdErr float64
	// Fixed reports whether the parameter was held constant during the fit.
	Fixed bool
}

// FitResult holds the outcome of one fit invocation.
type FitResult struct {
	// Model is the EOS model name the fit was run against.
	Model string
	// Series is the label of the fitted ObservationSet.
	Series string
	// V0, K0 and K0Prime are the parameters after optimization.
	V0      Parameter
	K0      Parameter
	K0Prime Parameter
	// RSS is the sum of squared pressure residuals at the solution.
	RSS float64
	// ReducedRSS is RSS divided by the degrees of freedom (NaN when DoF is 0).
	ReducedRSS float64
	// DoF is the number of data points minus the number of free parameters.
	DoF int
	// Converged reports whether the optimizer met its tolerances within the
	// iteration budget.
	Converged bool
}

// Params returns the fitted parameter values as an eos.Params for model
// evaluation (plot curves, residual checks).
func (r *FitResult) Params() eos.Params {
	return eos.Params{V0: r.V0.Value, K0: r.K0.Value, K0Prime: r.K0Prime.Value}
}

// Parameters returns the three parameters in conventional order.
func (r *FitResult) Parameters() []Parameter {
	return []Parameter{r.V0, r.K0, r.K0Prime}
}

package fitter

import (
	"errors"
	"fmt"
	"math"

	"github.com/maorshutman/lm"
	"gonum.org/v1/gonum/floats"

	"github.com/minphys/eosfit-go/pkg/eosfit/eos"
	"github.com/minphys/eosfit-go/pkg/eosfit/models"
)

// ErrInsufficientData indicates fewer data points than free parameters.
var ErrInsufficientData = errors.New("insufficient data")

// ErrMalformedObservations indicates an observation set with mismatched
// column lengths or non-finite values.
var ErrMalformedObservations = errors.New("malformed observations")

// ErrInvalidGuess indicates the initial guess produces non-finite model
// pressures (e.g. V0 <= 0).
var ErrInvalidGuess = errors.New("invalid initial guess")

// ErrConvergenceFailure indicates the optimizer did not meet its tolerances
// within the iteration budget.
var ErrConvergenceFailure = errors.New("fit did not converge")

// ErrNonPhysicalResult indicates the fit converged to a non-physical
// solution (V0 or K0 not positive).
var ErrNonPhysicalResult = errors.New("non-physical fit result")

// firstOrderTol bounds the relative gradient norm accepted at a solution.
// J^T r vanishes at a least-squares minimum, so a returned point whose
// gradient is still a sizeable fraction of the starting gradient is a
// budget-exhausted iterate, not a fit.
const firstOrderTol = 1e-4

// Fit performs a nonlinear least-squares fit of model to obs, starting from
// guess, holding the parameters selected by fixed constant. It minimizes the
// sum of squared pressure residuals with a Levenberg-Marquardt optimizer and
// estimates standard errors for the free parameters from the fit covariance.
//
// A fit that fails is reported as an error, never as a FitResult with
// misleading parameter values.
func Fit(model eos.Model, obs models.ObservationSet, guess eos.Params, fixed FixedMask, cfg Config) (*models.FitResult, error) {
	if err := obs.Validate(); err != nil {
		if obs.Len() == 0 && len(obs.Pressures) == 0 {
			return nil, fmt.Errorf("%w: %v", ErrInsufficientData, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedObservations, err)
	}

	nFree := fixed.FreeCount()
	if nFree == 0 {
		return nil, fmt.Errorf("%w: all parameters fixed, nothing to fit", ErrInsufficientData)
	}
	n := obs.Len()
	if n < nFree {
		return nil, fmt.Errorf("%w: %d data points for %d free parameters", ErrInsufficientData, n, nFree)
	}

	resid := func(dst, x []float64) {
		p := unpack(x, guess, fixed)
		for i, v := range obs.Volumes {
			dst[i] = model.Pressure(v, p) - obs.Pressures[i]
		}
	}

	x0 := pack(guess, fixed)
	r := make([]float64, n)
	resid(r, x0)
	if !allFinite(r) {
		return nil, fmt.Errorf("%w: %s model is undefined at V0=%g, K0=%g, K0'=%g",
			ErrInvalidGuess, model.Name, guess.V0, guess.K0, guess.K0Prime)
	}

	numJac := lm.NumJac{Func: resid}
	prob := lm.LMProblem{
		Dim:        nFree,
		Size:       n,
		Func:       resid,
		Jac:        numJac.Jac,
		InitParams: x0,
		Tau:        cfg.Tau,
		Eps1:       cfg.Eps1,
		Eps2:       cfg.Eps2,
	}
	res, err := lm.LM(prob, &lm.Settings{Iterations: cfg.MaxIterations, ObjectiveTol: cfg.ObjectiveTol})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConvergenceFailure, err)
	}
	if !allFinite(res.X) {
		return nil, fmt.Errorf("%w: optimizer returned non-finite parameters", ErrConvergenceFailure)
	}

	// An optimizer that exhausts its iteration budget hands back its best
	// iterate; accept the solution only if the first-order condition holds
	// there. The tolerance is relative to the gradient at the guess.
	g0 := gradientInfNorm(resid, x0, n)
	g1 := gradientInfNorm(resid, res.X, n)
	if g1 > firstOrderTol*(1+g0) {
		return nil, fmt.Errorf("%w: gradient norm %.3g at the returned point (started at %.3g)",
			ErrConvergenceFailure, g1, g0)
	}

	best := unpack(res.X, guess, fixed)
	if best.V0 <= 0 || best.K0 <= 0 {
		return nil, fmt.Errorf("%w: V0=%g, K0=%g", ErrNonPhysicalResult, best.V0, best.K0)
	}

	resid(r, res.X)
	rss := floats.Dot(r, r)
	dof := n - nFree
	reduced := math.NaN()
	s2 := 0.0
	if dof > 0 {
		reduced = rss / float64(dof)
		s2 = reduced
	}

	se := standardErrors(resid, res.X, n, s2)
	if dof == 0 {
		for k := range se {
			se[k] = math.NaN()
		}
	}

	result := &models.FitResult{
		Model:      model.Name,
		Series:     obs.Label,
		RSS:        rss,
		ReducedRSS: reduced,
		DoF:        dof,
		Converged:  true,
	}
	result.V0, se = buildParam("V0", best.V0, fixed.V0, se)
	result.K0, se = buildParam("K0", best.K0, fixed.K0, se)
	result.K0Prime, _ = buildParam("K0'", best.K0Prime, fixed.K0Prime, se)
	return result, nil
}

// pack extracts the free parameters, in (V0, K0, K0') order, into the
// optimizer vector.
func pack(p eos.Params, m FixedMask) []float64 {
	x := make([]float64, 0, 3)
	if !m.V0 {
		x = append(x, p.V0)
	}
	if !m.K0 {
		x = append(x, p.K0)
	}
	if !m.K0Prime {
		x = append(x, p.K0Prime)
	}
	return x
}

// unpack rebuilds a full parameter set from the optimizer vector, taking
// fixed parameters from base.
func unpack(x []float64, base eos.Params, m FixedMask) eos.Params {
	p := base
	i := 0
	if !m.V0 {
		p.V0 = x[i]
		i++
	}
	if !m.K0 {
		p.K0 = x[i]
		i++
	}
	if !m.K0Prime {
		p.K0Prime = x[i]
	}
	return p
}

// buildParam consumes the next standard error from se for a free parameter.
func buildParam(name string, value float64, isFixed bool, se []float64) (models.Parameter, []float64) {
	if isFixed {
		return models.Parameter{Name: name, Value: value, StdErr: math.NaN(), Fixed: true}, se
	}
	return models.Parameter{Name: name, Value: value, StdErr: se[0]}, se[1:]
}

func allFinite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

package fitter

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// numJacobian builds the residual Jacobian at x by forward differences.
func numJacobian(resid func(dst, x []float64), x []float64, n int) *mat.Dense {
	nf := len(x)
	eps := math.Nextafter(1, 2) - 1

	r0 := make([]float64, n)
	resid(r0, x)

	jac := mat.NewDense(n, nf, nil)
	r1 := make([]float64, n)
	xh := make([]float64, nf)
	for k := 0; k < nf; k++ {
		copy(xh, x)
		h := math.Sqrt(eps) * math.Max(math.Abs(x[k]), 1)
		xh[k] += h
		resid(r1, xh)
		for i := 0; i < n; i++ {
			jac.Set(i, k, (r1[i]-r0[i])/h)
		}
	}
	return jac
}

// gradientInfNorm returns the infinity norm of the objective gradient J^T r
// at x. It vanishes at a least-squares minimum.
func gradientInfNorm(resid func(dst, x []float64), x []float64, n int) float64 {
	jac := numJacobian(resid, x, n)

	rv := make([]float64, n)
	resid(rv, x)
	r := mat.NewVecDense(n, rv)

	var g mat.VecDense
	g.MulVec(jac.T(), r)
	return mat.Norm(&g, math.Inf(1))
}

// standardErrors estimates 1-sigma parameter uncertainties at the solution x:
// sqrt of the diagonal of s2 * (J^T J)^-1, with J the residual Jacobian built
// by forward differences. Returns NaN entries when J^T J is singular.
func standardErrors(resid func(dst, x []float64), x []float64, n int, s2 float64) []float64 {
	nf := len(x)
	jac := numJacobian(resid, x, n)

	var jtj mat.Dense
	jtj.Mul(jac.T(), jac)

	se := make([]float64, nf)
	var cov mat.Dense
	if err := cov.Inverse(&jtj); err != nil {
		for k := range se {
			se[k] = math.NaN()
		}
		return se
	}
	for k := range se {
		se[k] = math.Sqrt(s2 * cov.At(k, k))
	}
	return se
}

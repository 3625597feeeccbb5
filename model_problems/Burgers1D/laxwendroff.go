package Burgers1D

import (
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gonanpack/TVD"
)

/*
LaxWendroffStep is the unlimited second order scheme the TVD corrections are
built on, written with the same face flux

	h(i+1/2) = (E(i+1) + E(i) + phi(i+1/2)) / 2,  phi = -Courant * alpha² * dU

It overshoots at discontinuities and serves as a reference for the limited
schemes. Only cells 2..N-3 are updated, like TVD.Stepper.
*/
func LaxWendroffStep(U []float64, Courant float64) (UNew []float64, residual float64, err error) {
	var (
		N = len(U)
	)
	if N < TVD.MinFieldLength {
		err = &TVD.DimensionMismatchError{Rows: N, Cols: 1, Min: TVD.MinFieldLength}
		return
	}
	E := TVD.FluxVariable(U)
	UNew = make([]float64, N)
	copy(UNew, U)
	face := func(i int) (h float64) {
		dU, alpha := TVD.CalcAlpha(U[i], U[i+1], E[i], E[i+1])
		h = 0.5 * (E[i+1] + E[i] - Courant*alpha*alpha*dU)
		return
	}
	for i := 2; i < N-2; i++ {
		UNew[i] = U[i] - Courant*(face(i)-face(i-1))
	}
	residual = floats.Distance(U[2:N-2], UNew[2:N-2], 1)
	return
}

package TVD

import "github.com/notargets/gonanpack/utils"

// Stencil is the five point neighborhood u[i-2..i+2] of cell i with the
// differences and characteristic speeds at its four faces
type Stencil struct {
	U                                                        [5]float64
	DUiMinus32, DUiMinus12, DUiPlus12, DUiPlus32             float64
	AlphaiMinus32, AlphaiMinus12, AlphaiPlus12, AlphaiPlus32 float64
}

// FluxVariable returns the Burgers flux E = u²/2 at every point of U
func FluxVariable(U []float64) (E []float64) {
	E = make([]float64, len(U))
	for i, u := range U {
		E[i] = 0.5 * utils.POW(u, 2)
	}
	return
}

// CalcAlpha returns the difference and characteristic speed at the face
// between a left and right state. A flat face takes the average state as its
// speed, the flux Jacobian of equal states.
func CalcAlpha(ULeft, URight, ELeft, ERight float64) (dU, alpha float64) {
	dU = URight - ULeft
	if dU != 0 {
		alpha = (ERight - ELeft) / dU
		return
	}
	alpha = 0.5 * (URight + ULeft)
	return
}

// NewStencil gathers the stencil of cell i, 2 <= i <= len(U)-3
func NewStencil(U, E []float64, i int) (st Stencil) {
	copy(st.U[:], U[i-2:i+3])
	st.DUiMinus32, st.AlphaiMinus32 = CalcAlpha(U[i-2], U[i-1], E[i-2], E[i-1])
	st.DUiMinus12, st.AlphaiMinus12 = CalcAlpha(U[i-1], U[i], E[i-1], E[i])
	st.DUiPlus12, st.AlphaiPlus12 = CalcAlpha(U[i], U[i+1], E[i], E[i+1])
	st.DUiPlus32, st.AlphaiPlus32 = CalcAlpha(U[i+1], U[i+2], E[i+1], E[i+2])
	return
}

// MinDifference is the smallest face difference used as a ratio denominator
const MinDifference = 1.e-12

// UpwindRatio returns r at the face between stencil points left and left+1:
// the difference one face upwind, per the sign of alpha, over the face
// difference. Faces flatter than MinDifference give r = 0.
func (st *Stencil) UpwindRatio(left int, alpha, dU float64) (r float64) {
	if dU < MinDifference && dU > -MinDifference {
		return
	}
	s := int(sign(alpha))
	r = (st.U[left+1-s] - st.U[left-s]) / dU
	return
}

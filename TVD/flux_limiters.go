package TVD

import "math"

// divideOrZero returns num/den, or zero for a flat face (den == 0)
func divideOrZero(num, den float64) (q float64) {
	if den != 0 {
		q = num / den
	}
	return
}

/*
The flux limiter functions return the numerical flux corrections phi at the two
faces of cell i, used as

	h(i+1/2) = (E(i+1) + E(i) + phiPlus) / 2
	h(i-1/2) = (E(i) + E(i-1) + phiMinus) / 2

The minus face expressions are the plus face expressions shifted by one cell, so
neighboring cells agree on the flux through their shared face.
*/

// HartenYeeFlux is the Harten-Yee upwind correction
func HartenYeeFlux(GiMinus1, Gi, GiPlus1, dUiPlus12, dUiMinus12,
	alphaiPlus12, alphaiMinus12, Eps float64) (phiPlus, phiMinus float64) {
	var (
		betaPlus  = divideOrZero(GiPlus1-Gi, dUiPlus12)
		betaMinus = divideOrZero(Gi-GiMinus1, dUiMinus12)
		siPlus    = EntropyFix(alphaiPlus12+betaPlus, Eps)
		siMinus   = EntropyFix(alphaiMinus12+betaMinus, Eps)
	)
	phiPlus = (GiPlus1 + Gi) - siPlus*dUiPlus12
	phiMinus = (Gi + GiMinus1) - siMinus*dUiMinus12
	return
}

// ModifiedHartenYeeFlux weights the limiter values by
// sigma = psi(alpha)/2 + Courant*alpha²
func ModifiedHartenYeeFlux(GiMinus1, Gi, GiPlus1, dUiPlus12, dUiMinus12,
	alphaiPlus12, alphaiMinus12, Eps, Courant float64) (phiPlus, phiMinus float64) {
	var (
		sigmaPlus  = 0.5*EntropyFix(alphaiPlus12, Eps) + Courant*alphaiPlus12*alphaiPlus12
		sigmaMinus = 0.5*EntropyFix(alphaiMinus12, Eps) + Courant*alphaiMinus12*alphaiMinus12
		betaPlus   float64
		betaMinus  float64
	)
	if dUiPlus12 != 0 {
		betaPlus = sigmaPlus * (GiPlus1 - Gi) / dUiPlus12
	}
	if dUiMinus12 != 0 {
		betaMinus = sigmaMinus * (Gi - GiMinus1) / dUiMinus12
	}
	siPlus := EntropyFix(alphaiPlus12+betaPlus, Eps)
	siMinus := EntropyFix(alphaiMinus12+betaMinus, Eps)
	phiPlus = sigmaPlus*(GiPlus1+Gi) - siPlus*dUiPlus12
	phiMinus = sigmaMinus*(Gi+GiMinus1) - siMinus*dUiMinus12
	return
}

// RoeSwebyFlux takes the limiter values already evaluated at the upwind
// ratio of each face
func RoeSwebyFlux(GiPlus12, GiMinus12, dUiPlus12, dUiMinus12,
	alphaiPlus12, alphaiMinus12, Courant float64) (phiPlus, phiMinus float64) {
	phiPlus = roeSwebyFace(GiPlus12, dUiPlus12, alphaiPlus12, Courant)
	phiMinus = roeSwebyFace(GiMinus12, dUiMinus12, alphaiMinus12, Courant)
	return
}

func roeSwebyFace(G, dU, alpha, Courant float64) (phi float64) {
	var (
		absAlpha = math.Abs(alpha)
	)
	phi = (G/2*(absAlpha+Courant*alpha*alpha) - absAlpha) * dU
	return
}

// DavisYeeFlux is the symmetric TVD correction, G values are face centered
func DavisYeeFlux(GiPlus12, GiMinus12, dUiPlus12, dUiMinus12,
	alphaiPlus12, alphaiMinus12, Eps, Courant float64) (phiPlus, phiMinus float64) {
	phiPlus = -(Courant*alphaiPlus12*alphaiPlus12*GiPlus12 +
		EntropyFix(alphaiPlus12, Eps)*(dUiPlus12-GiPlus12))
	phiMinus = -(Courant*alphaiMinus12*alphaiMinus12*GiMinus12 +
		EntropyFix(alphaiMinus12, Eps)*(dUiMinus12-GiMinus12))
	return
}

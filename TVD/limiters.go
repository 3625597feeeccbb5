package TVD

import "math"

// Omega keeps the denominator of the smooth rational limiter away from zero
const Omega = 1.e-7

type (
	// HartenYeeLimiter computes G from the two face differences and speeds around a cell
	HartenYeeLimiter func(alpha1, alpha2, dU1, dU2, Courant, Eps float64) float64
	// DifferenceLimiter computes G from two neighboring differences
	DifferenceLimiter func(dU1, dU2 float64) float64
	// RatioLimiter computes G from the ratio of consecutive differences
	RatioLimiter func(r float64) float64
	// SymmetricLimiter computes G at a face from three consecutive differences
	SymmetricLimiter func(dU1, dU2, dU3 float64) float64
)

func sign(x float64) (s float64) {
	switch {
	case x > 0:
		s = 1
	case x < 0:
		s = -1
	}
	return
}

// limited returns S*max(0,m), with an exact zero when m <= 0
func limited(S, m float64) (G float64) {
	if m > 0 {
		G = S * m
	}
	return
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

/*
Harten-Yee family
*/

// HartenYeeG is the classic Harten-Yee limiter, weighted by the local
// dissipation sigma(alpha) = (psi(alpha) - Courant*alpha²)/2
func HartenYeeG(alpha1, alpha2, dU1, dU2, Courant, Eps float64) (G float64) {
	var (
		sigma1 = 0.5 * (EntropyFix(alpha1, Eps) - Courant*alpha1*alpha1)
		sigma2 = 0.5 * (EntropyFix(alpha2, Eps) - Courant*alpha2*alpha2)
		S      = sign(dU1)
	)
	G = limited(S, math.Min(sigma1*math.Abs(dU1), S*sigma2*dU2))
	return
}

// HartenYeeG1 is minmod
func HartenYeeG1(dU1, dU2 float64) (G float64) {
	S := sign(dU2)
	G = limited(S, math.Min(math.Abs(dU2), S*dU1))
	return
}

// HartenYeeG2 is the van Leer harmonic limiter
func HartenYeeG2(dU1, dU2 float64) (G float64) {
	// (dU1*dU2 + |dU1*dU2|)/(dU1 + dU2), zero unless the product is positive
	if p := dU1 * dU2; p > 0 {
		G = 2 * p / (dU1 + dU2)
	}
	return
}

// HartenYeeG3 is the smooth van Albada style rational limiter
func HartenYeeG3(dU1, dU2 float64) (G float64) {
	G = (dU2*(dU1*dU1+Omega) + dU1*(dU2*dU2+Omega)) /
		(dU1*dU1 + dU2*dU2 + 2*Omega)
	return
}

// HartenYeeG4 is the monotonized central limiter
func HartenYeeG4(dU1, dU2 float64) (G float64) {
	S := sign(dU2)
	G = limited(S, min3(math.Abs(2*dU2), S*2*dU1, S*0.5*(dU1+dU2)))
	return
}

// HartenYeeG5 is superbee. The outer max takes zero and two separate
// two-term minimums.
func HartenYeeG5(dU1, dU2 float64) (G float64) {
	S := sign(dU1)
	G = limited(S, math.Max(
		math.Min(2*math.Abs(dU1), S*dU2),
		math.Min(math.Abs(dU1), 2*S*dU2)))
	return
}

/*
Roe-Sweby family, functions of r = upwind difference / local difference
*/

// RoeSwebyG1 is minmod
func RoeSwebyG1(r float64) (G float64) {
	G = math.Max(0, math.Min(1, r))
	return
}

// RoeSwebyG2 is van Leer
func RoeSwebyG2(r float64) (G float64) {
	if r > 0 {
		G = (r + math.Abs(r)) / (1 + r)
	}
	return
}

// RoeSwebyG3 is superbee
func RoeSwebyG3(r float64) (G float64) {
	G = math.Max(0, math.Max(math.Min(2*r, 1), math.Min(r, 2)))
	return
}

/*
Davis-Yee family, dU1..dU3 are the differences at i-1/2, i+1/2 and i+3/2
*/

// DavisYeeG1 is the four term minmod with the central average
func DavisYeeG1(dU1, dU2, dU3 float64) (G float64) {
	S := sign(2 * dU1)
	G = limited(S, math.Min(
		math.Min(math.Abs(2*dU1), S*2*dU2),
		math.Min(S*2*dU3, S*0.5*(dU1+dU3))))
	return
}

// DavisYeeG2 is the three term minmod
func DavisYeeG2(dU1, dU2, dU3 float64) (G float64) {
	S := sign(dU1)
	G = limited(S, min3(math.Abs(dU1), S*dU2, S*dU3))
	return
}

// DavisYeeG3 is the modified minmod: two minmods anchored on dU1, less S*dU2
func DavisYeeG3(dU1, dU2, dU3 float64) (G float64) {
	var (
		S  = sign(dU1)
		a1 = math.Abs(dU1)
	)
	G = limited(S, math.Min(a1, S*dU2)) + limited(S, math.Min(a1, S*dU3)) - S*dU2
	return
}

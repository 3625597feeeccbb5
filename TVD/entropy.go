package TVD

import "math"

const (
	// DefaultEps is the entropy fix constant used when none is supplied
	DefaultEps = 0.1
	// MaxStableEps is the upper end of the proven stable range for Eps
	MaxStableEps = 0.125
)

/*
EntropyFix is Harten's entropy correction of |y|:

	psi(y) = |y|                     |y| >= eps
	psi(y) = (y² + eps²) / (2 eps)   |y| <  eps

The parabola joins |y| with matching value and slope at |y| = eps, so wave
speeds near zero keep a minimum dissipation of eps/2. Eps is expected in
(0, MaxStableEps]; values outside are not rejected.
*/
func EntropyFix(y, eps float64) (psi float64) {
	if math.Abs(y) >= eps {
		psi = math.Abs(y)
		return
	}
	psi = (y*y + eps*eps) / (2 * eps)
	return
}

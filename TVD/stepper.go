package TVD

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gonanpack/utils"
)

// MinFieldLength is the shortest field holding one full five point stencil
const MinFieldLength = 5

// Config carries the scalar parameters of a TVD step
type Config struct {
	Scheme, Limiter string
	Courant         float64 // dt/dx
	Eps             float64 // Entropy fix constant, zero selects DefaultEps
	ParallelDegree  int     // Number of go routines sweeping the field, 0 or 1 is serial, < 0 uses every CPU
}

// Stepper advances a Burgers field one step with a second order TVD scheme
type Stepper struct {
	Scheme         *Scheme
	Courant, Eps   float64
	ParallelDegree int
}

// NewStepper validates the scheme and limiter pair before any field is touched
func NewStepper(cfg Config) (ts *Stepper, err error) {
	var (
		s *Scheme
	)
	if s, err = NewScheme(cfg.Scheme, cfg.Limiter); err != nil {
		return
	}
	ts = &Stepper{
		Scheme:         s,
		Courant:        cfg.Courant,
		Eps:            cfg.Eps,
		ParallelDegree: cfg.ParallelDegree,
	}
	if ts.Eps == 0 {
		ts.Eps = DefaultEps
	}
	return
}

/*
Step returns the next field and the L1 change over the updated cells. Cells
2..N-3 are updated from U only; the two cells at each end are copied unchanged
and belong to the boundary conditions. U is not modified.
*/
func (ts *Stepper) Step(U []float64) (UNew []float64, residual float64, err error) {
	var (
		N = len(U)
	)
	if N < MinFieldLength {
		err = &DimensionMismatchError{Rows: N, Cols: 1, Min: MinFieldLength}
		return
	}
	E := FluxVariable(U)
	UNew = make([]float64, N)
	copy(UNew, U)
	iMin, iMax := 2, N-2
	NP := ts.ParallelDegree
	if NP < 0 {
		NP = utils.ParallelDegreeFor(0, iMax-iMin)
	}
	if NP <= 1 || NP > iMax-iMin {
		ts.sweep(U, E, UNew, iMin, iMax)
	} else {
		pm := utils.NewPartitionMap(NP, iMax-iMin)
		pm.Range(func(_, kMin, kMax int) {
			ts.sweep(U, E, UNew, iMin+kMin, iMin+kMax)
		})
	}
	residual = floats.Distance(U[iMin:iMax], UNew[iMin:iMax], 1)
	return
}

// StepField steps a field held in a gonum row or column vector
func (ts *Stepper) StepField(U mat.Matrix) (UNew *mat.VecDense, residual float64, err error) {
	var (
		nr, nc = U.Dims()
		u      []float64
		uNew   []float64
	)
	switch {
	case nc == 1:
		u = mat.Col(nil, 0, U)
	case nr == 1:
		u = mat.Row(nil, 0, U)
	default:
		err = &DimensionMismatchError{Rows: nr, Cols: nc, Min: MinFieldLength}
		return
	}
	if uNew, residual, err = ts.Step(u); err != nil {
		err = &DimensionMismatchError{Rows: nr, Cols: nc, Min: MinFieldLength}
		return
	}
	UNew = mat.NewVecDense(len(uNew), uNew)
	return
}

func (ts *Stepper) sweep(U, E, UNew []float64, iMin, iMax int) {
	var (
		C = ts.Courant
	)
	for i := iMin; i < iMax; i++ {
		st := NewStencil(U, E, i)
		phiPlus, phiMinus := ts.Scheme.Correction(&st, C, ts.Eps)
		hPlus := 0.5 * (E[i+1] + E[i] + phiPlus)
		hMinus := 0.5 * (E[i] + E[i-1] + phiMinus)
		UNew[i] = U[i] - C*(hPlus-hMinus)
	}
}

package utils

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DifferenceOperator is the (N-1)xN forward difference matrix taking a field
// of N points to the N-1 jumps across its faces, (D U)[i] = U[i+1] - U[i]
type DifferenceOperator struct {
	D *sparse.CSR
	N int
}

func NewDifferenceOperator(N int) (do *DifferenceOperator, err error) {
	if N < 2 {
		err = fmt.Errorf("difference operator needs at least 2 points, have %d", N)
		return
	}
	dok := sparse.NewDOK(N-1, N)
	for i := 0; i < N-1; i++ {
		dok.Set(i, i, -1)
		dok.Set(i, i+1, 1)
	}
	do = &DifferenceOperator{
		D: dok.ToCSR(),
		N: N,
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (do *DifferenceOperator) Dims() (r, c int)    { return do.D.Dims() }
func (do *DifferenceOperator) At(i, j int) float64 { return do.D.At(i, j) }
func (do *DifferenceOperator) T() mat.Matrix       { return do.D.T() }

// Apply returns the face jumps of U
func (do *DifferenceOperator) Apply(U []float64) (dU []float64, err error) {
	if len(U) != do.N {
		err = fmt.Errorf("dimension mismatch: operator is sized for %d points, field has %d",
			do.N, len(U))
		return
	}
	var (
		jumps = mat.NewVecDense(do.N-1, nil)
	)
	jumps.MulVec(do.D, mat.NewVecDense(do.N, U))
	dU = jumps.RawVector().Data
	return
}

// TotalVariation returns sum |U[i+1] - U[i]|
func (do *DifferenceOperator) TotalVariation(U []float64) (tv float64, err error) {
	var (
		dU []float64
	)
	if dU, err = do.Apply(U); err != nil {
		return
	}
	tv = floats.Norm(dU, 1)
	return
}

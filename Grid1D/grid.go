package Grid1D

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// MinPoints is the smallest grid carrying a five point stencil
const MinPoints = 5

// Grid1D is a uniform 1D grid of IMax points, X[0] = XMin and X[IMax-1] = XMax.
// The two points at each end are ghost cells owned by the boundary conditions.
type Grid1D struct {
	XMin, XMax, DX float64
	IMax           int
	X              []float64
}

func NewGrid1D(xmin, xmax float64, imax int) (g *Grid1D, err error) {
	if imax < MinPoints {
		err = fmt.Errorf("grid needs at least %d points, have %d", MinPoints, imax)
		return
	}
	if !(xmax > xmin) {
		err = fmt.Errorf("grid bounds [%8.5f,%8.5f] are empty", xmin, xmax)
		return
	}
	g = &Grid1D{
		XMin: xmin,
		XMax: xmax,
		IMax: imax,
		DX:   (xmax - xmin) / float64(imax-1),
		X:    make([]float64, imax),
	}
	floats.Span(g.X, xmin, xmax)
	return
}

// Interior returns the index range [iMin,iMax) updated by the TVD step
func (g *Grid1D) Interior() (iMin, iMax int) {
	return 2, g.IMax - 2
}

// TimeStep returns the time step dt = Courant * DX
func (g *Grid1D) TimeStep(Courant float64) (dt float64) {
	return Courant * g.DX
}

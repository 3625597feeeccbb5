package Burgers1D

import (
	"github.com/notargets/gonanpack/utils"
)

// ApplyBCs fills the two ghost cells at each end of U
func (c *Burgers) ApplyBCs(U []float64) {
	var (
		N = len(U)
	)
	switch c.BCLeft {
	case utils.BCDirichlet:
		U[0], U[1] = c.dirichletLeft[0], c.dirichletLeft[1]
	case utils.BCNeumann:
		U[0], U[1] = U[2], U[2]
	case utils.BCPeriodic:
		// Interior cells 2..N-3 repeat with period N-4
		U[0], U[1] = U[N-4], U[N-3]
	}
	switch c.BCRight {
	case utils.BCDirichlet:
		U[N-2], U[N-1] = c.dirichletRight[0], c.dirichletRight[1]
	case utils.BCNeumann:
		U[N-2], U[N-1] = U[N-3], U[N-3]
	case utils.BCPeriodic:
		U[N-2], U[N-1] = U[2], U[3]
	}
}

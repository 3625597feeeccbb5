package Burgers1D

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

/*
RiemannExact is the entropy solution of Burgers' equation for a jump from uL to
uR located at x0 at time zero:

	uL > uR, shock with speed s = (uL + uR)/2
		u = uL for x - x0 < s*t, uR otherwise
	uL <= uR, centered rarefaction
		u = uL for (x - x0)/t <= uL
		u = (x - x0)/t inside the fan
		u = uR for (x - x0)/t >= uR
*/
func RiemannExact(uL, uR, x0, t, x float64) (u float64) {
	if t <= 0 {
		if x < x0 {
			return uL
		}
		return uR
	}
	if uL > uR {
		if x-x0 < 0.5*(uL+uR)*t {
			u = uL
		} else {
			u = uR
		}
		return
	}
	xi := (x - x0) / t
	switch {
	case xi <= uL:
		u = uL
	case xi >= uR:
		u = uR
	default:
		u = xi
	}
	return
}

// ExactSolution evaluates RiemannExact at every grid point for the current time
func (c *Burgers) ExactSolution() (UExact []float64, ok bool) {
	if c.Init == SINE {
		return
	}
	x0 := c.X0()
	UExact = make([]float64, c.Grid.IMax)
	for i, x := range c.Grid.X {
		UExact[i] = RiemannExact(c.ULeft, c.URight, x0, c.Time, x)
	}
	ok = true
	return
}

// ExactError is the L1 norm, DX * sum |u - u_exact|, over the interior. It is
// only available for the Riemann problems and is meaningful until the waves
// reach the boundaries.
func (c *Burgers) ExactError() (l1 float64, ok bool) {
	var (
		UExact     []float64
		iMin, iMax = c.Grid.Interior()
	)
	if UExact, ok = c.ExactSolution(); !ok {
		return
	}
	l1 = c.Grid.DX * floats.Distance(c.U[iMin:iMax], UExact[iMin:iMax], 1)
	if math.IsNaN(l1) {
		ok = false
	}
	return
}

package Burgers1D

import (
	"fmt"
	"math"
	"strings"

	"github.com/notargets/gonanpack/utils"
)

type InitType uint

const (
	STEP InitType = iota
	RAREFACTION
	SINE
)

var (
	InitNames = map[string]InitType{
		"step":        STEP,
		"shock":       STEP,
		"rarefaction": RAREFACTION,
		"expansion":   RAREFACTION,
		"sine":        SINE,
	}
	InitPrintNames = []string{"Step", "Rarefaction", "Sine Wave"}
)

func (it InitType) String() string {
	if int(it) < len(InitPrintNames) {
		return InitPrintNames[it]
	}
	return fmt.Sprintf("InitType(%d)", it)
}

func NewInitType(label string) (it InitType, err error) {
	var (
		ok bool
	)
	if len(label) == 0 {
		err = fmt.Errorf("empty init type, must be one of %v", InitPrintNames)
		return
	}
	label = strings.ToLower(strings.TrimSpace(label))
	if it, ok = InitNames[label]; !ok {
		err = fmt.Errorf("unable to use init type named %s", label)
	}
	return
}

// X0 is the location of the initial discontinuity
func (c *Burgers) X0() float64 {
	return 0.5 * (c.Grid.XMin + c.Grid.XMax)
}

/*
InitializeSolution sets the field at time zero
	Step, Rarefaction:	u = ULeft for x < X0, URight otherwise
	Sine:			u = ULeft + URight*sin(2π(x-XMin)/(XMax-XMin))
With periodic boundaries the sine period is the interior, (IMax-4)*DX starting
at X[2], so the wrap from cell IMax-3 to cell 2 is one smooth grid step.
The ghost cells are then set by the boundary conditions, Dirichlet ghost cells
hold their initial values for the whole run.
*/
func (c *Burgers) InitializeSolution() {
	var (
		g              = c.Grid
		x0             = c.X0()
		xStart, period = g.XMin, g.XMax - g.XMin
	)
	if c.BCLeft == utils.BCPeriodic && c.BCRight == utils.BCPeriodic {
		xStart, period = g.X[2], float64(g.IMax-4)*g.DX
	}
	c.U = make([]float64, g.IMax)
	for i, x := range g.X {
		switch c.Init {
		case STEP, RAREFACTION:
			if x < x0 {
				c.U[i] = c.ULeft
			} else {
				c.U[i] = c.URight
			}
		case SINE:
			c.U[i] = c.ULeft + c.URight*math.Sin(2*math.Pi*(x-xStart)/period)
		}
	}
	N := g.IMax
	c.dirichletLeft = [2]float64{c.U[0], c.U[1]}
	c.dirichletRight = [2]float64{c.U[N-2], c.U[N-1]}
	c.Time, c.Steps, c.History = 0, 0, nil
	c.ApplyBCs(c.U)
}

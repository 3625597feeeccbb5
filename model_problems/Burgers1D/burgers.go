package Burgers1D

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gonanpack/Grid1D"
	"github.com/notargets/gonanpack/InputParameters"
	"github.com/notargets/gonanpack/TVD"
	"github.com/notargets/gonanpack/utils"
)

/*
The 1D inviscid Burgers' equation in conservative form:

	∂u/∂t + ∂E/∂x = 0,  E = ½ u²

is advanced with an explicit second order TVD scheme on a uniform grid. The two
points at each end of the grid are ghost cells refilled by the boundary
conditions after every step.
*/

var ErrDiverged = errors.New("solution diverged")

type Burgers struct {
	Title                           string
	Grid                            *Grid1D.Grid1D
	Stepper                         *TVD.Stepper
	U                               []float64
	Init                            InitType
	ULeft, URight                   float64
	BCLeft, BCRight                 utils.BCType
	MaxIterations                   int
	ConvergenceTolerance, FinalTime float64
	PrintFrequency                  int
	OutputFile, HistoryFile         string
	ErrorFile                       string
	Time                            float64
	Steps                           int
	History                         []HistoryEntry
	dirichletLeft, dirichletRight   [2]float64
	diff                            *utils.DifferenceOperator
	plotOnce                        sync.Once
	chart                           *chart2d.Chart2D
	colorMap                        *utils2.ColorMap
}

// HistoryEntry is the state of the run after one step
type HistoryEntry struct {
	Step                           int
	Time, Residual, TotalVariation float64
}

func NewBurgers(ip *InputParameters.InputParameters1D) (c *Burgers, err error) {
	if err = ip.Validate(); err != nil {
		return
	}
	c = &Burgers{
		Title:                ip.Title,
		ULeft:                ip.ULeft,
		URight:               ip.URight,
		MaxIterations:        ip.MaxIterations,
		ConvergenceTolerance: ip.ConvergenceTolerance,
		FinalTime:            ip.FinalTime,
		PrintFrequency:       ip.PrintFrequency,
		OutputFile:           ip.OutputFile,
		HistoryFile:          ip.HistoryFile,
		ErrorFile:            ip.ErrorFile,
	}
	if c.Grid, err = Grid1D.NewGrid1D(ip.XMin, ip.XMax, ip.IMax); err != nil {
		return
	}
	if c.Stepper, err = TVD.NewStepper(TVD.Config{
		Scheme:         ip.Scheme,
		Limiter:        ip.Limiter,
		Courant:        ip.CFL,
		Eps:            ip.Eps,
		ParallelDegree: ip.ParallelDegree,
	}); err != nil {
		return
	}
	if c.Init, err = NewInitType(ip.InitType); err != nil {
		return
	}
	if c.BCLeft, err = utils.ParseBCName(ip.BCLeft); err != nil {
		return
	}
	if c.BCRight, err = utils.ParseBCName(ip.BCRight); err != nil {
		return
	}
	if c.diff, err = utils.NewDifferenceOperator(ip.IMax); err != nil {
		return
	}
	c.InitializeSolution()
	return
}

// Iterate advances the solution one step and refills the ghost cells
func (c *Burgers) Iterate() (residual float64, err error) {
	var (
		UNew *mat.VecDense
		tv   float64
	)
	if UNew, residual, err = c.Stepper.StepField(mat.NewVecDense(len(c.U), c.U)); err != nil {
		return
	}
	c.Steps++
	if utils.IsNan(UNew) {
		err = fmt.Errorf("%w: NaN in solution at step %d", ErrDiverged, c.Steps)
		return
	}
	c.U = UNew.RawVector().Data
	c.ApplyBCs(c.U)
	c.Time += c.Grid.TimeStep(c.Stepper.Courant)
	if tv, err = c.TotalVariation(); err != nil {
		return
	}
	c.History = append(c.History, HistoryEntry{
		Step:           c.Steps,
		Time:           c.Time,
		Residual:       residual,
		TotalVariation: tv,
	})
	return
}

func (c *Burgers) Run(showGraph bool, graphDelay ...time.Duration) (err error) {
	var (
		start    = time.Now()
		residual float64
		finished bool
	)
	c.PrintInitialization()
	c.Plot(showGraph, graphDelay)
	for !finished {
		if residual, err = c.Iterate(); err != nil {
			return
		}
		finished = c.CheckIfFinished(residual)
		if (c.PrintFrequency > 0 && c.Steps%c.PrintFrequency == 0) || finished {
			c.PrintUpdate(residual)
			c.Plot(showGraph, graphDelay)
		}
	}
	c.PrintFinal(time.Since(start))
	if len(c.OutputFile) != 0 {
		if err = c.SaveSolution(c.OutputFile); err != nil {
			return
		}
	}
	if len(c.HistoryFile) != 0 {
		if err = c.SaveHistory(c.HistoryFile); err != nil {
			return
		}
	}
	if len(c.ErrorFile) != 0 {
		if err = c.AppendError(c.ErrorFile); err != nil {
			return
		}
	}
	return
}

// CheckIfFinished applies the stopping criteria that are set, any one of them ends the run
func (c *Burgers) CheckIfFinished(residual float64) (finished bool) {
	switch {
	case c.MaxIterations > 0 && c.Steps >= c.MaxIterations:
		finished = true
	case c.FinalTime > 0 && c.Time >= c.FinalTime-1.e-12:
		finished = true
	case c.ConvergenceTolerance > 0 && residual < c.ConvergenceTolerance:
		finished = true
	}
	return
}

// TotalVariation of the whole field, ghost cells included
func (c *Burgers) TotalVariation() (tv float64, err error) {
	return c.diff.TotalVariation(c.U)
}

// Solution returns a copy of the field
func (c *Burgers) Solution() (U *mat.VecDense) {
	U = mat.NewVecDense(len(c.U), append([]float64{}, c.U...))
	return
}

func (c *Burgers) PrintInitialization() {
	fmt.Printf("Burgers Equation in 1 Dimension\nSolving \"%s\"\n", c.Title)
	fmt.Printf("Scheme: %s\n", c.Stepper.Scheme)
	fmt.Printf("Courant = %8.4f, Eps = %8.4f, Num Points = %d, DX = %8.5f\n",
		c.Stepper.Courant, c.Stepper.Eps, c.Grid.IMax, c.Grid.DX)
	fmt.Printf("Initial condition: %s, BCs: [%s,%s]\n", c.Init, c.BCLeft, c.BCRight)
	if c.FinalTime > 0 {
		fmt.Printf("Solving until finaltime = %8.5f\n", c.FinalTime)
	} else {
		fmt.Printf("Solving until Max Iterations = %d\n", c.MaxIterations)
	}
	fmt.Printf("    iter    time   Residual       TV     Umin     Umax\n")
}

func (c *Burgers) PrintUpdate(residual float64) {
	var (
		tv   float64
		umin = c.U[0]
		umax = c.U[0]
	)
	if len(c.History) != 0 {
		tv = c.History[len(c.History)-1].TotalVariation
	}
	for _, u := range c.U {
		if u < umin {
			umin = u
		}
		if u > umax {
			umax = u
		}
	}
	fmt.Printf("%8d%8.5f%11.4e%9.5f%9.5f%9.5f\n", c.Steps, c.Time, residual, tv, umin, umax)
}

func (c *Burgers) PrintFinal(elapsed time.Duration) {
	if c.Steps == 0 {
		return
	}
	rate := float64(elapsed.Microseconds()) / (float64(c.Grid.IMax * c.Steps))
	fmt.Printf("\nRate of execution = %8.5f us/(cell*iteration) over %d iterations\n", rate, c.Steps)
	fmt.Printf("%s\n", utils.GetMemUsage())
	if l1, ok := c.ExactError(); ok {
		fmt.Printf("L1 error against the exact solution at time %8.5f = %11.4e\n", c.Time, l1)
	}
}

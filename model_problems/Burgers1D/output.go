package Burgers1D

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// WriteSolution writes "x u" columns, with a third column holding the exact
// solution for the Riemann problems
func (c *Burgers) WriteSolution(w io.Writer) (err error) {
	var (
		U                 = c.Solution()
		UExact, haveExact = c.ExactSolution()
	)
	if _, err = fmt.Fprintf(w, "# %s, %s, time = %8.5f, steps = %d\n",
		c.Title, c.Stepper.Scheme, c.Time, c.Steps); err != nil {
		return
	}
	for i, x := range c.Grid.X {
		if haveExact {
			_, err = fmt.Fprintf(w, "%14.7e %14.7e %14.7e\n", x, U.AtVec(i), UExact[i])
		} else {
			_, err = fmt.Fprintf(w, "%14.7e %14.7e\n", x, U.AtVec(i))
		}
		if err != nil {
			return
		}
	}
	return
}

// WriteHistory writes "iteration time residual totalVariation" per step
func (c *Burgers) WriteHistory(w io.Writer) (err error) {
	if _, err = fmt.Fprintf(w, "# iteration time residual totalVariation\n"); err != nil {
		return
	}
	for _, h := range c.History {
		if _, err = fmt.Fprintf(w, "%8d %14.7e %14.7e %14.7e\n",
			h.Step, h.Time, h.Residual, h.TotalVariation); err != nil {
			return
		}
	}
	return
}

func (c *Burgers) SaveSolution(fileName string) (err error) {
	return writeFile(fileName, c.WriteSolution)
}

func (c *Burgers) SaveHistory(fileName string) (err error) {
	return writeFile(fileName, c.WriteHistory)
}

func writeFile(fileName string, write func(w io.Writer) error) (err error) {
	var (
		file *os.File
	)
	if file, err = os.Create(fileName); err != nil {
		return
	}
	if err = write(file); err != nil {
		file.Close()
		return
	}
	err = file.Close()
	return
}

// ErrorFileHeader is the first line of a convergence study file
var ErrorFileHeader = []string{"title", "numPoints", "L1"}

// WriteError writes one "title,numPoints,L1" record of a grid convergence
// study, preceded by the header when header is set
func (c *Burgers) WriteError(w io.Writer, header bool) (err error) {
	l1, ok := c.ExactError()
	if !ok {
		return fmt.Errorf("no exact solution for initial condition %s", c.Init)
	}
	cw := csv.NewWriter(w)
	if header {
		if err = cw.Write(ErrorFileHeader); err != nil {
			return
		}
	}
	if err = cw.Write([]string{c.Title, fmt.Sprintf("%d", c.Grid.IMax), fmt.Sprintf("%.10e", l1)}); err != nil {
		return
	}
	cw.Flush()
	return cw.Error()
}

// AppendError adds this run to a convergence study file, creating it with a
// header line if needed
func (c *Burgers) AppendError(fileName string) (err error) {
	var (
		file *os.File
		info os.FileInfo
	)
	if file, err = os.OpenFile(fileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err != nil {
		return
	}
	if info, err = file.Stat(); err != nil {
		file.Close()
		return
	}
	if err = c.WriteError(file, info.Size() == 0); err != nil {
		file.Close()
		return
	}
	err = file.Close()
	return
}

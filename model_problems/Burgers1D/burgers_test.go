package Burgers1D

import (
	"bytes"
	"encoding/csv"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gonanpack/InputParameters"
	"github.com/notargets/gonanpack/TVD"
	"github.com/notargets/gonanpack/utils"
)

func newTestBurgers(t *testing.T, set func(ip *InputParameters.InputParameters1D)) (c *Burgers) {
	ip := InputParameters.NewInputParameters1D()
	if set != nil {
		set(ip)
	}
	c, err := NewBurgers(ip)
	require.NoError(t, err)
	return
}

func TestInitialization(t *testing.T) {
	{
		c := newTestBurgers(t, nil)
		assert.Equal(t, 51, len(c.U))
		assert.Equal(t, 1., c.U[24])
		assert.Equal(t, 0., c.U[25]) // x = 0.5 is on the right state
		assert.Equal(t, STEP, c.Init)
		assert.Equal(t, utils.BCDirichlet, c.BCLeft)
	}
	{
		c := newTestBurgers(t, func(ip *InputParameters.InputParameters1D) {
			ip.InitType, ip.ULeft, ip.URight = "sine", 0.2, 0.5
			ip.BCLeft, ip.BCRight = "periodic", "periodic"
			ip.IMax = 41
		})
		N := len(c.U)
		period := float64(N-4) * c.Grid.DX
		assert.InDelta(t, 0.2+0.5*math.Sin(2*math.Pi*(c.Grid.X[10]-c.Grid.X[2])/period), c.U[10], 1.e-14)
		assert.Equal(t, c.U[N-4], c.U[0])
		assert.Equal(t, c.U[3], c.U[N-1])
		// The wrap from the last interior cell to the first is no larger than an interior jump
		var maxJump float64
		for i := 2; i < N-3; i++ {
			maxJump = math.Max(maxJump, math.Abs(c.U[i+1]-c.U[i]))
		}
		wrapJump := math.Abs(c.U[2] - c.U[N-3])
		assert.Greater(t, wrapJump, 0.)
		assert.LessOrEqual(t, wrapJump, maxJump+1.e-12)
	}
	{ // Without periodic boundaries the sine spans the whole domain
		c := newTestBurgers(t, func(ip *InputParameters.InputParameters1D) {
			ip.InitType, ip.ULeft, ip.URight = "sine", 0.2, 0.5
			ip.IMax = 41
		})
		assert.InDelta(t, 0.2+0.5*math.Sin(2*math.Pi*0.25), c.U[10], 1.e-14)
	}
	{
		_, err := NewInitType("vortex")
		assert.Error(t, err)
		_, err = NewInitType("")
		assert.Error(t, err)
		it, err := NewInitType("Rarefaction")
		assert.NoError(t, err)
		assert.Equal(t, RAREFACTION, it)
	}
	{
		ip := InputParameters.NewInputParameters1D()
		ip.Scheme, ip.Limiter = "roe-sweby-upwind", "G5"
		_, err := NewBurgers(ip)
		assert.True(t, errors.Is(err, TVD.ErrInvalidSchemeCombination))
		ip = InputParameters.NewInputParameters1D()
		ip.InitType = "vortex"
		_, err = NewBurgers(ip)
		assert.Error(t, err)
	}
}

func TestBoundaryConditions(t *testing.T) {
	c := newTestBurgers(t, func(ip *InputParameters.InputParameters1D) {
		ip.IMax = 8
	})
	U := []float64{9, 9, 1, 2, 3, 4, 9, 9}
	c.BCLeft, c.BCRight = utils.BCNeumann, utils.BCNeumann
	c.ApplyBCs(U)
	assert.Equal(t, []float64{1, 1, 1, 2, 3, 4, 4, 4}, U)
	c.BCLeft, c.BCRight = utils.BCPeriodic, utils.BCPeriodic
	c.ApplyBCs(U)
	assert.Equal(t, []float64{3, 4, 1, 2, 3, 4, 1, 2}, U)
	c.BCLeft, c.BCRight = utils.BCDirichlet, utils.BCDirichlet
	c.ApplyBCs(U)
	assert.Equal(t, []float64{1, 1, 1, 2, 3, 4, 0, 0}, U)
}

func TestIterate(t *testing.T) {
	c := newTestBurgers(t, func(ip *InputParameters.InputParameters1D) {
		ip.IMax = 9
	})
	assert.Equal(t, []float64{1, 1, 1, 1, 0, 0, 0, 0, 0}, c.U)
	residual, err := c.Iterate()
	assert.NoError(t, err)
	assert.InDelta(t, 0.25, residual, 1.e-6)
	assert.InDelta(t, 0.25, c.U[4], 1.e-6)
	assert.Equal(t, 1, c.Steps)
	assert.InDelta(t, 0.0625, c.Time, 1.e-15)
	require.Equal(t, 1, len(c.History))
	assert.Equal(t, residual, c.History[0].Residual)
	{ // A NaN stops the run
		c.U[4] = math.NaN()
		_, err = c.Iterate()
		assert.True(t, errors.Is(err, ErrDiverged))
	}
}

func TestRunShock(t *testing.T) {
	c := newTestBurgers(t, func(ip *InputParameters.InputParameters1D) {
		ip.Scheme, ip.Limiter = "mhy", "G1"
		ip.IMax = 101
		ip.MaxIterations = 0
		ip.FinalTime = 0.2
		ip.PrintFrequency = 0
	})
	require.NoError(t, c.Run(false))
	assert.Equal(t, 40, c.Steps)
	assert.InDelta(t, 0.2, c.Time, 1.e-12)
	l1, ok := c.ExactError()
	assert.True(t, ok)
	assert.Less(t, l1, 0.02)
	assert.LessOrEqual(t, floats.Max(c.U), 1+1.e-12)
	assert.GreaterOrEqual(t, floats.Min(c.U), -1.e-12)
	// Total variation never grows
	for i := 1; i < len(c.History); i++ {
		assert.LessOrEqual(t, c.History[i].TotalVariation, c.History[i-1].TotalVariation+1.e-9)
	}
	// The shock sits at x0 + t/2 = 0.6
	UExact, ok := c.ExactSolution()
	assert.True(t, ok)
	assert.Equal(t, 1., UExact[59])
	assert.Equal(t, 0., UExact[61])
}

func TestRunRarefaction(t *testing.T) {
	c := newTestBurgers(t, func(ip *InputParameters.InputParameters1D) {
		ip.Scheme, ip.Limiter = "roe-sweby-upwind", "G2"
		ip.InitType, ip.ULeft, ip.URight = "rarefaction", 0, 1
		ip.BCLeft, ip.BCRight = "outflow", "outflow"
		ip.IMax = 101
		ip.MaxIterations = 1000
		ip.FinalTime = 0.2
		ip.PrintFrequency = 0
	})
	require.NoError(t, c.Run(false))
	assert.Equal(t, 40, c.Steps)
	l1, ok := c.ExactError()
	assert.True(t, ok)
	assert.Less(t, l1, 0.01)
}

func TestRunPeriodicConservation(t *testing.T) {
	for _, sl := range [][2]string{{"hy", "G"}, {"mhy", "G3"}, {"rs", "G3"}, {"dys", "G3"}} {
		c := newTestBurgers(t, func(ip *InputParameters.InputParameters1D) {
			ip.Scheme, ip.Limiter = sl[0], sl[1]
			ip.InitType, ip.ULeft, ip.URight = "sine", 0.2, 0.5
			ip.BCLeft, ip.BCRight = "periodic", "periodic"
			ip.IMax = 41
			ip.MaxIterations = 30
			ip.PrintFrequency = 0
		})
		N := len(c.U)
		before := floats.Sum(c.U[2 : N-2])
		require.NoError(t, c.Run(false))
		assert.InDelta(t, before, floats.Sum(c.U[2:N-2]), 1.e-12, "%s %s", sl[0], sl[1])
		_, ok := c.ExactError()
		assert.False(t, ok)
	}
}

func TestCheckIfFinished(t *testing.T) {
	c := newTestBurgers(t, func(ip *InputParameters.InputParameters1D) {
		ip.MaxIterations = 0
		ip.ConvergenceTolerance = 1.e-8
	})
	assert.False(t, c.CheckIfFinished(1))
	assert.True(t, c.CheckIfFinished(1.e-9))
	c.MaxIterations, c.Steps = 10, 10
	assert.True(t, c.CheckIfFinished(1))
}

func TestLaxWendroff(t *testing.T) {
	U := []float64{1, 1, 1, 1, 0, 0, 0, 0, 0}
	UNew, residual, err := LaxWendroffStep(U, 0.5)
	assert.NoError(t, err)
	assert.InDelta(t, 1.09375, UNew[3], 1.e-14) // Overshoot behind the shock
	assert.InDelta(t, 0.15625, UNew[4], 1.e-14)
	assert.Greater(t, residual, 0.)
	// The limited scheme stays bounded where Lax-Wendroff does not
	ts, err := TVD.NewStepper(TVD.Config{Scheme: "mhy", Limiter: "G3", Courant: 0.5})
	assert.NoError(t, err)
	UTVD, _, err := ts.Step(U)
	assert.NoError(t, err)
	assert.Less(t, floats.Max(UTVD), floats.Max(UNew))
	_, _, err = LaxWendroffStep(U[:4], 0.5)
	assert.True(t, errors.Is(err, TVD.ErrDimensionMismatch))
}

func TestRiemannExact(t *testing.T) {
	// Shock moving at (uL + uR)/2
	assert.Equal(t, 2., RiemannExact(2, 0, 0, 1, 0.9))
	assert.Equal(t, 0., RiemannExact(2, 0, 0, 1, 1.1))
	// Rarefaction fan
	assert.Equal(t, -1., RiemannExact(-1, 1, 0, 1, -1.5))
	assert.Equal(t, 0.25, RiemannExact(-1, 1, 0, 1, 0.25))
	assert.Equal(t, 1., RiemannExact(-1, 1, 0, 1, 1.5))
	// Initial data
	assert.Equal(t, -1., RiemannExact(-1, 1, 0, 0, -0.1))
	assert.Equal(t, 1., RiemannExact(-1, 1, 0, 0, 0))
}

func TestOutput(t *testing.T) {
	c := newTestBurgers(t, func(ip *InputParameters.InputParameters1D) {
		ip.IMax = 11
		ip.MaxIterations = 3
		ip.PrintFrequency = 1
	})
	require.NoError(t, c.Run(false))
	{
		var buf bytes.Buffer
		require.NoError(t, c.WriteSolution(&buf))
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		assert.Equal(t, 12, len(lines))
		assert.True(t, strings.HasPrefix(lines[0], "#"))
		assert.Equal(t, 3, len(strings.Fields(lines[1])))
	}
	{
		var buf bytes.Buffer
		require.NoError(t, c.WriteHistory(&buf))
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		assert.Equal(t, 4, len(lines))
		assert.Equal(t, "3", strings.Fields(lines[3])[0])
	}
	{
		dir := t.TempDir()
		c.OutputFile = filepath.Join(dir, "solution.dat")
		c.HistoryFile = filepath.Join(dir, "history.dat")
		require.NoError(t, c.SaveSolution(c.OutputFile))
		require.NoError(t, c.SaveHistory(c.HistoryFile))
		data, err := os.ReadFile(c.HistoryFile)
		require.NoError(t, err)
		assert.Contains(t, string(data), "totalVariation")
		assert.Error(t, c.SaveSolution(filepath.Join(dir, "missing", "solution.dat")))
	}
	{
		U := c.Solution()
		assert.Equal(t, len(c.U), U.Len())
		U.SetVec(3, 99)
		assert.NotEqual(t, 99., c.U[3])
	}
}

func TestErrorFile(t *testing.T) {
	errorFile := filepath.Join(t.TempDir(), "errors.csv")
	for _, iMax := range []int{51, 101} {
		c := newTestBurgers(t, func(ip *InputParameters.InputParameters1D) {
			ip.Scheme, ip.Limiter = "mhy", "G1"
			ip.IMax = iMax
			ip.MaxIterations = 0
			ip.FinalTime = 0.2
			ip.PrintFrequency = 0
			ip.ErrorFile = errorFile
		})
		require.NoError(t, c.Run(false))
	}
	f, err := os.Open(errorFile)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Equal(t, 3, len(records))
	assert.Equal(t, ErrorFileHeader, records[0])
	var l1 [2]float64
	for i, rec := range records[1:] {
		assert.Equal(t, "Burgers Step", rec[0])
		l1[i], err = strconv.ParseFloat(rec[2], 64)
		require.NoError(t, err)
	}
	assert.Equal(t, "51", records[1][1])
	assert.Equal(t, "101", records[2][1])
	assert.InDelta(t, 0.020, l1[0], 1.e-3)
	assert.InDelta(t, 0.010, l1[1], 1.e-3)
	{ // No exact solution for the sine wave
		c := newTestBurgers(t, func(ip *InputParameters.InputParameters1D) {
			ip.InitType = "sine"
		})
		var buf bytes.Buffer
		assert.Error(t, c.WriteError(&buf, true))
		assert.Equal(t, 0, buf.Len())
	}
}

package Grid1D

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrid1D(t *testing.T) {
	{
		g, err := NewGrid1D(0, 1, 11)
		assert.NoError(t, err)
		assert.InDelta(t, 0.1, g.DX, 1.e-15)
		assert.Equal(t, 11, len(g.X))
		assert.Equal(t, 0., g.X[0])
		assert.Equal(t, 1., g.X[10])
		assert.InDelta(t, 0.5, g.X[5], 1.e-15)
		iMin, iMax := g.Interior()
		assert.Equal(t, 2, iMin)
		assert.Equal(t, 9, iMax)
		assert.InDelta(t, 0.05, g.TimeStep(0.5), 1.e-15)
	}
	{
		_, err := NewGrid1D(0, 1, 4)
		assert.Error(t, err)
		_, err = NewGrid1D(1, 1, 11)
		assert.Error(t, err)
		_, err = NewGrid1D(2, 1, 11)
		assert.Error(t, err)
	}
}

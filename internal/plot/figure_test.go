package plot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/srcsim/internal/angle"
	"github.com/san-kum/srcsim/internal/source"
	"github.com/san-kum/srcsim/internal/space"
)

func TestEnergyOverlayAssociative(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{2, 4, 6, 8}
	opts := []Option{Bins(10), Range(0, 10)}

	fig1, err := Energy(nil, "a", a, opts...)
	require.NoError(t, err)
	fig1, err = Energy(fig1, "b", b)
	require.NoError(t, err)

	fig2, err := Energy(nil, "b", b, opts...)
	require.NoError(t, err)
	fig2, err = Energy(fig2, "a", a)
	require.NoError(t, err)

	agg1, err := fig1.Aggregate()
	require.NoError(t, err)
	agg2, err := fig2.Aggregate()
	require.NoError(t, err)

	assert.Equal(t, agg1.Counts, agg2.Counts)
	assert.Equal(t, len(a)+len(b), agg1.Total())
}

func TestEnergySameSeriesAccumulates(t *testing.T) {
	fig, err := Energy(nil, "s", []float64{1, 2}, Bins(4), Range(0, 4))
	require.NoError(t, err)
	fig, err = Energy(fig, "s", []float64{3})
	require.NoError(t, err)

	agg, err := fig.Aggregate()
	require.NoError(t, err)
	assert.Equal(t, 3, agg.Total())
}

func TestEnergyRejectsEmpty(t *testing.T) {
	_, err := Energy(nil, "s", nil)
	assert.Error(t, err)
}

func testParticles() []source.Particle {
	return []source.Particle{
		{Position: space.Position{X: 1, Y: 0, Z: 2}, Direction: angle.Direction{U: 1}, Energy: 1e6},
		{Position: space.Position{X: 0, Y: 1, Z: -2}, Direction: angle.Direction{V: 1}, Energy: 2e6},
		{Position: space.Position{X: -1, Y: 0, Z: 0}, Direction: angle.Direction{W: 1}, Energy: 3e6},
	}
}

func TestPositionScatter(t *testing.T) {
	fig, err := Position(nil, "s", testParticles(), XY)
	require.NoError(t, err)
	assert.Equal(t, 3, fig.NumPoints())

	out := fig.Render(40, 10)
	assert.Contains(t, out, "x [cm]")
	assert.Contains(t, out, "3 points")
}

func TestDirectionScatter(t *testing.T) {
	fig, err := Direction(nil, "s", testParticles())
	require.NoError(t, err)

	fig, err = Direction(fig, "s2", testParticles())
	require.NoError(t, err)
	assert.Equal(t, 6, fig.NumPoints())
}

func TestMixedFigureRejected(t *testing.T) {
	fig, err := Energy(nil, "e", []float64{1, 2, 3})
	require.NoError(t, err)

	_, err = Position(fig, "p", testParticles(), XY)
	assert.Error(t, err)

	fig2, err := Direction(nil, "d", testParticles())
	require.NoError(t, err)
	_, err = Energy(fig2, "e", []float64{1})
	assert.Error(t, err)
}

func TestRenderHistogram(t *testing.T) {
	fig, err := Energy(nil, "watt", []float64{1, 2, 2, 3, 3, 3}, Bins(3), Range(0, 3))
	require.NoError(t, err)

	out := fig.Render(40, 8)
	assert.Contains(t, out, "bins: 3")
	assert.Contains(t, out, "watt")
}

func TestSVGOutput(t *testing.T) {
	fig, err := Energy(nil, "e", []float64{1, 2, 3}, Bins(3), Range(0, 3))
	require.NoError(t, err)
	svg := fig.SVG(320, 240)
	assert.True(t, strings.HasPrefix(svg, "<?xml"))
	assert.Contains(t, svg, "<path")

	fig2, err := Position(nil, "p", testParticles(), RZ)
	require.NoError(t, err)
	svg2 := fig2.SVG(320, 240)
	assert.Contains(t, svg2, "<circle")
}

func TestCanvasBounds(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(100, 0)
	c.Set(0, 100)
	assert.Equal(t, strings.Repeat("⠀", 4)+"\n"+strings.Repeat("⠀", 4)+"\n", c.String())

	c.Set(0, 0)
	assert.NotEqual(t, rune(0x2800), c.Grid[0][0])
}

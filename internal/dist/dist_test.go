package dist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscreteValidation(t *testing.T) {
	_, err := NewDiscrete(nil, nil)
	assert.Error(t, err)

	_, err = NewDiscrete([]float64{1, 2}, []float64{1})
	assert.Error(t, err)

	_, err = NewDiscrete([]float64{1}, []float64{-1})
	assert.Error(t, err)

	_, err = NewDiscrete([]float64{1, 2}, []float64{0, 0})
	assert.Error(t, err)
}

func TestDeltaCollapses(t *testing.T) {
	d := Delta(14.1e6)
	rng := NewRand(1)
	for i := 0; i < 1000; i++ {
		assert.Equal(t, 14.1e6, d.Sample(rng))
	}
}

func TestDiscreteWeights(t *testing.T) {
	d, err := NewDiscrete([]float64{1, 2}, []float64{3, 1})
	require.NoError(t, err)

	rng := NewRand(7)
	ones := 0
	const n = 100000
	for i := 0; i < n; i++ {
		if d.Sample(rng) == 1 {
			ones++
		}
	}
	assert.InDelta(t, 0.75, float64(ones)/n, 0.01)
}

func TestUniformRange(t *testing.T) {
	u, err := NewUniform(0, 2*math.Pi)
	require.NoError(t, err)

	rng := NewRand(3)
	for i := 0; i < 10000; i++ {
		v := u.Sample(rng)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 2*math.Pi)
	}

	_, err = NewUniform(1, 1)
	assert.Error(t, err)
}

func TestPowerLawBounds(t *testing.T) {
	p, err := NewPowerLaw(1, 10, 2)
	require.NoError(t, err)

	rng := NewRand(5)
	for i := 0; i < 10000; i++ {
		v := p.Sample(rng)
		assert.GreaterOrEqual(t, v, 1.0)
		assert.LessOrEqual(t, v, 10.0)
	}
}

func TestMaxwellMean(t *testing.T) {
	// mean of a Maxwellian energy spectrum is 3/2 theta
	m, err := NewMaxwell(1e6)
	require.NoError(t, err)

	rng := NewRand(11)
	sum := 0.0
	const n = 200000
	for i := 0; i < n; i++ {
		sum += m.Sample(rng)
	}
	assert.InEpsilon(t, 1.5e6, sum/n, 0.02)
}

func TestWattSpectrum(t *testing.T) {
	// thermal fission of U-235
	w, err := NewWatt(0.988e6, 2.249e-6)
	require.NoError(t, err)

	// mean of the Watt spectrum is a^2 b / 4 + 3a/2
	want := 0.988e6*0.988e6*2.249e-6/4 + 1.5*0.988e6

	rng := NewRand(13)
	sum := 0.0
	const n = 200000
	for i := 0; i < n; i++ {
		v := w.Sample(rng)
		assert.Greater(t, v, 0.0)
		sum += v
	}
	assert.InEpsilon(t, want, sum/n, 0.02)

	_, err = NewWatt(-1, 2e-6)
	assert.Error(t, err)
}

func TestMuirWidth(t *testing.T) {
	m, err := NewMuir(14.08e6, 5.0, 2e4)
	require.NoError(t, err)

	// Brysk broadening for D-T at 20 keV is about 336 keV
	assert.InEpsilon(t, 3.356e5, m.StdDev(), 0.01)

	rng := NewRand(17)
	sum, ss := 0.0, 0.0
	const n = 200000
	for i := 0; i < n; i++ {
		v := m.Sample(rng)
		sum += v
		d := v - 14.08e6
		ss += d * d
	}
	assert.InEpsilon(t, 14.08e6, sum/n, 0.001)
	assert.InEpsilon(t, m.StdDev(), math.Sqrt(ss/n), 0.02)
}

func TestSampleNDeterministic(t *testing.T) {
	u, err := NewUniform(0, 1)
	require.NoError(t, err)

	a := SampleN(u, NewRand(42), 100)
	b := SampleN(u, NewRand(42), 100)
	assert.Equal(t, a, b)
}

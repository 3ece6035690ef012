package eos

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testParams = []Params{
	{V0: 100, K0: 150, K0Prime: 4},
	{V0: 163.2, K0: 160, K0Prime: 4.2},
	{V0: 40.5, K0: 254, K0Prime: 4.4},
	{V0: 74.7, K0: 125, K0Prime: 5.5},
}

func TestPressureVanishesAtReferenceVolume(t *testing.T) {
	for _, model := range []Model{BirchMurnaghan, Vinet} {
		for _, p := range testParams {
			got := model.Pressure(p.V0, p)
			assert.InDelta(t, 0, got, 1e-10, "%s at V0=%g", model.Name, p.V0)
		}
	}
}

func TestPressureIncreasesUnderCompression(t *testing.T) {
	// On the compression side (V < V0) pressure must rise monotonically as
	// volume shrinks.
	for _, model := range []Model{BirchMurnaghan, Vinet} {
		for _, p := range testParams {
			prev := model.Pressure(p.V0, p)
			for i := 1; i <= 30; i++ {
				v := p.V0 * (1 - 0.01*float64(i))
				got := model.Pressure(v, p)
				assert.Greater(t, got, prev, "%s at V=%g", model.Name, v)
				prev = got
			}
		}
	}
}

func TestNonPositiveVolumeIsNaN(t *testing.T) {
	p := testParams[0]
	for _, model := range []Model{BirchMurnaghan, Vinet} {
		assert.True(t, math.IsNaN(model.Pressure(0, p)), "%s at V=0", model.Name)
		assert.True(t, math.IsNaN(model.Pressure(-10, p)), "%s at V=-10", model.Name)
		assert.True(t, math.IsNaN(model.Pressure(50, Params{V0: -1, K0: 100, K0Prime: 4})),
			"%s with V0=-1", model.Name)
	}
}

func TestBirchMurnaghanReferenceValue(t *testing.T) {
	// Direct evaluation of the published formula at V/V0 = 0.9.
	p := Params{V0: 100, K0: 150, K0Prime: 4}
	r := p.V0 / 90.0
	want := 1.5 * p.K0 * (math.Pow(r, 7.0/3) - math.Pow(r, 5.0/3))
	assert.InDelta(t, want, BirchMurnaghan.Pressure(90, p), 1e-9)
}

func TestByName(t *testing.T) {
	m, err := ByName("bm")
	require.NoError(t, err)
	assert.Equal(t, "Birch-Murnaghan", m.Name)

	m, err = ByName("vinet")
	require.NoError(t, err)
	assert.Equal(t, "Vinet", m.Name)

	_, err = ByName("murnaghan")
	assert.Error(t, err)
}

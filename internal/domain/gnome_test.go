package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeGnomeOil(t *testing.T) {
	oil := makeOil(t, true)
	g := oil.Gnome
	require.NotNil(t, g)

	t.Run("pseudo-components from distillation cuts", func(t *testing.T) {
		// Four cuts at cumulative fractions 0.1/0.3/0.5/0.7 plus a 0.3 residual.
		require.Equal(t, 5, g.Components())
		assert.InEpsilon(t, 0.1, g.MassFraction[0], 1e-9)
		assert.InEpsilon(t, 0.2, g.MassFraction[1], 1e-9)
		assert.InEpsilon(t, 0.2, g.MassFraction[2], 1e-9)
		assert.InEpsilon(t, 0.2, g.MassFraction[3], 1e-9)
		assert.InEpsilon(t, 0.3, g.MassFraction[4], 1e-9)

		assert.Equal(t, []float64{340.0, 420.0, 510.0, 610.0, 710.0}, g.BoilingPoint)
	})

	t.Run("fractions sum to one", func(t *testing.T) {
		var total float64
		for _, f := range g.MassFraction {
			total += f
		}
		assert.InEpsilon(t, 1.0, total, 1e-12)
	})

	t.Run("parallel property slices", func(t *testing.T) {
		require.Len(t, g.BoilingPoint, g.Components())
		require.Len(t, g.MolecularWeight, g.Components())
		for i, bp := range g.BoilingPoint {
			assert.Equal(t, MolecularWeightFromBoilingPoint(bp), g.MolecularWeight[i])
		}
	})

	t.Run("scalar weathering parameters", func(t *testing.T) {
		assert.Equal(t, 26.8, g.API)
		assert.Equal(t, -999.0, g.BullwinkleTime)
		assert.Equal(t, BullwinkleFractionFromAPI(26.8), g.BullwinkleFraction)
		assert.Equal(t, 0.9, g.EmulsionWaterFractionMax)
		assert.Equal(t, 2.024e-6, g.K0Y)
	})
}

func TestMakeGnomeOil_RefinedProduct(t *testing.T) {
	oil := makeOil(t, true)
	rec := *oil.Record
	rec.Metadata.ProductType = "Refined Product NOS"

	g, err := MakeGnomeOil(&rec)
	require.NoError(t, err)
	assert.Equal(t, 0.0, g.EmulsionWaterFractionMax, "refined products do not emulsify")
}

func TestMakeGnomeOil_NoCuts(t *testing.T) {
	oil := makeOil(t, true)
	rec := *oil.Record
	fresh := rec.SubSamples[0]
	fresh.Distillation.Cuts = nil
	rec.SubSamples = []SubSample{fresh}

	_, err := MakeGnomeOil(&rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "distillation")
}

func TestMakeGnomeOil_APIFromDensity(t *testing.T) {
	oil := makeOil(t, true)
	rec := *oil.Record
	rec.Metadata.API = nil

	g, err := MakeGnomeOil(&rec)
	require.NoError(t, err)

	// Derived from the measured density curve at the reference temperature.
	curve, err := newDensityCurve(&rec)
	require.NoError(t, err)
	assert.InEpsilon(t, APIFromDensity(curve.atTemp(refTempK)), g.API, 1e-9)
}

func TestResidualBoilingPointCap(t *testing.T) {
	assert.Equal(t, 710.0, residualBoilingPoint([]float64{510.0, 610.0}))
	assert.Equal(t, maxBoilingPoint, residualBoilingPoint([]float64{900.0, 1000.0}))
	assert.Equal(t, 540.0, residualBoilingPoint([]float64{440.0}))
}

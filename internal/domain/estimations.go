package domain

import "math"

// Empirical correlations carried over from the ADIOS2 oil library. All take
// and return SI units unless noted.

const (
	// waterDensity15C is the density of fresh water at 15.6 °C in kg/m³,
	// the reference for specific gravity in the API scale.
	waterDensity15C = 999.0

	// refTempK is the API-scale reference temperature (15.6 °C).
	refTempK = 288.75
)

// OilWaterSurfaceTensionFromAPI estimates the oil/water interfacial tension
// in N/m from API gravity.
func OilWaterSurfaceTensionFromAPI(api float64) float64 {
	return 0.001 * (39.0 - 0.2571*api)
}

// DensityFromAPI returns the density in kg/m³ at 15.6 °C for an API gravity.
func DensityFromAPI(api float64) float64 {
	return waterDensity15C * 141.5 / (api + 131.5)
}

// APIFromDensity returns the API gravity for a density in kg/m³ at 15.6 °C.
func APIFromDensity(density float64) float64 {
	return 141.5*waterDensity15C/density - 131.5
}

// MolecularWeightFromBoilingPoint estimates a pseudo-component's molecular
// weight in kg/mol from its boiling point in Kelvin.
func MolecularWeightFromBoilingPoint(bp float64) float64 {
	return 0.04132 - 1.985e-4*bp + 9.494e-7*bp*bp
}

// BullwinkleFractionFromAPI estimates the evaporated mass fraction at which a
// stable water-in-oil emulsion starts to form. Lighter oils shed more mass
// before emulsifying; the estimate is clamped to [0, 0.5].
func BullwinkleFractionFromAPI(api float64) float64 {
	if api <= 0 {
		return 0
	}
	f := 0.5762*math.Log10(api) - 0.5
	return math.Min(math.Max(f, 0.0), 0.5)
}

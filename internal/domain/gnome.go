package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

const (
	// k0y is the vertical dispersion parameter consumed by GNOME-style
	// weathering models.
	k0y = 2.024e-6

	// bullwinkleTimeUnset marks an unmeasured emulsification onset time.
	bullwinkleTimeUnset = -999.0

	// maxBoilingPoint caps the extrapolated residual boiling point (K).
	maxBoilingPoint = 1015.0
)

// GnomeOil is the flattened, simulation-ready property set derived from a
// GNOME-suitable record. The slice fields are parallel, one entry per
// pseudo-component.
type GnomeOil struct {
	API                      float64   `json:"api"`
	MassFraction             []float64 `json:"mass_fraction"`
	BoilingPoint             []float64 `json:"boiling_point"`
	MolecularWeight          []float64 `json:"molecular_weight"`
	BullwinkleTime           float64   `json:"bullwinkle_time"`
	BullwinkleFraction       float64   `json:"bullwinkle_fraction"`
	EmulsionWaterFractionMax float64   `json:"emulsion_water_fraction_max"`
	K0Y                      float64   `json:"k0y"`
}

// Components returns the number of pseudo-components.
func (g *GnomeOil) Components() int { return len(g.MassFraction) }

// MakeGnomeOil converts a parsed record into its simplified GNOME
// representation. The record must carry distillation cuts (the source of the
// pseudo-components) and either an API gravity or density data.
func MakeGnomeOil(rec *OilRecord) (*GnomeOil, error) {
	api, err := apiGravity(rec)
	if err != nil {
		return nil, err
	}

	massFraction, boilingPoint, err := pseudoComponents(rec)
	if err != nil {
		return nil, err
	}

	mw := make([]float64, len(boilingPoint))
	for i, bp := range boilingPoint {
		mw[i] = MolecularWeightFromBoilingPoint(bp)
	}

	emulsionMax := 0.9
	if strings.Contains(rec.Metadata.ProductType, "Refined") {
		emulsionMax = 0.0
	}

	return &GnomeOil{
		API:                      api,
		MassFraction:             massFraction,
		BoilingPoint:             boilingPoint,
		MolecularWeight:          mw,
		BullwinkleTime:           bullwinkleTimeUnset,
		BullwinkleFraction:       BullwinkleFractionFromAPI(api),
		EmulsionWaterFractionMax: emulsionMax,
		K0Y:                      k0y,
	}, nil
}

// apiGravity takes the record's reported API gravity, or derives it from the
// density curve at the reference temperature.
func apiGravity(rec *OilRecord) (float64, error) {
	if rec.Metadata.API != nil {
		return *rec.Metadata.API, nil
	}
	curve, err := newDensityCurve(rec)
	if err != nil {
		return 0, fmt.Errorf("derive API gravity: %w", err)
	}
	return APIFromDensity(curve.atTemp(refTempK)), nil
}

// pseudoComponents turns the fresh sub-sample's distillation cuts into
// per-component mass fractions and boiling points. Mass beyond the last cut
// becomes a residual component with an extrapolated boiling point, and the
// fractions are normalized to sum to one.
func pseudoComponents(rec *OilRecord) (massFraction, boilingPoint []float64, err error) {
	fresh, err := rec.Fresh()
	if err != nil {
		return nil, nil, err
	}
	cuts := append([]DistillationCut(nil), fresh.Distillation.Cuts...)
	if len(cuts) == 0 {
		return nil, nil, errors.New("record has no distillation cuts")
	}
	sort.Slice(cuts, func(i, j int) bool {
		return cuts[i].Fraction.Value < cuts[j].Fraction.Value
	})

	prev := 0.0
	for _, cut := range cuts {
		tk, err := ToKelvin(cut.VaporTemp.Value, cut.VaporTemp.Unit)
		if err != nil {
			return nil, nil, fmt.Errorf("distillation cut: %w", err)
		}
		delta := cut.Fraction.Value - prev
		if delta <= 0 {
			continue
		}
		massFraction = append(massFraction, delta)
		boilingPoint = append(boilingPoint, tk)
		prev = cut.Fraction.Value
	}
	if len(massFraction) == 0 {
		return nil, nil, errors.New("record has no usable distillation cuts")
	}

	if residual := 1.0 - prev; residual > 1e-9 {
		massFraction = append(massFraction, residual)
		boilingPoint = append(boilingPoint, residualBoilingPoint(boilingPoint))
	}

	var total float64
	for _, f := range massFraction {
		total += f
	}
	for i := range massFraction {
		massFraction[i] /= total
	}
	return massFraction, boilingPoint, nil
}

// residualBoilingPoint extends the cut temperature sequence by one step for
// the uncut residual, capped at maxBoilingPoint.
func residualBoilingPoint(boilingPoint []float64) float64 {
	n := len(boilingPoint)
	last := boilingPoint[n-1]
	step := 100.0
	if n >= 2 {
		step = last - boilingPoint[n-2]
	}
	if step <= 0 {
		step = 100.0
	}
	bp := last + step
	if bp > maxBoilingPoint {
		return maxBoilingPoint
	}
	return bp
}

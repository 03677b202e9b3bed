package domain

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// defaultViscosityCoeff is the Andrade temperature coefficient B (Kelvin) in
// ln ν = A + B/T, applied when only one viscosity measurement exists.
const defaultViscosityCoeff = 2416.0

// kvisPoints collects a record's kinematic viscosity measurements in m²/s at
// Kelvin reference temperatures. Dynamic viscosity measurements are divided by
// the density at their reference temperature when no kinematic points exist.
func kvisPoints(rec *OilRecord) (temps, kvis []float64, err error) {
	fresh, err := rec.Fresh()
	if err != nil {
		return nil, nil, err
	}

	for _, p := range fresh.PhysicalProperties.KinematicViscosities {
		nu, err := kvisToM2S(p.Viscosity)
		if err != nil {
			return nil, nil, fmt.Errorf("viscosity point: %w", err)
		}
		tk, err := ToKelvin(p.RefTemp.Value, p.RefTemp.Unit)
		if err != nil {
			return nil, nil, fmt.Errorf("viscosity point: %w", err)
		}
		temps = append(temps, tk)
		kvis = append(kvis, nu)
	}
	if len(temps) > 0 {
		return temps, kvis, nil
	}

	curve, err := newDensityCurve(rec)
	if err != nil {
		return nil, nil, err
	}
	for _, p := range fresh.PhysicalProperties.DynamicViscosities {
		mu, err := dvisToPaS(p.Viscosity)
		if err != nil {
			return nil, nil, fmt.Errorf("viscosity point: %w", err)
		}
		tk, err := ToKelvin(p.RefTemp.Value, p.RefTemp.Unit)
		if err != nil {
			return nil, nil, fmt.Errorf("viscosity point: %w", err)
		}
		temps = append(temps, tk)
		kvis = append(kvis, mu/curve.atTemp(tk))
	}
	if len(temps) == 0 {
		return nil, nil, errors.New("record has no viscosity data")
	}
	return temps, kvis, nil
}

// KvisAtTemp evaluates the canonical record's kinematic viscosity model at a
// temperature in the given unit ("K", "C" or "F"). Result in m²/s.
//
// The measured points are fit to the Andrade form ln ν = A + B/T by least
// squares; a single point uses the default temperature coefficient.
func KvisAtTemp(rec *OilRecord, t float64, unit string) (float64, error) {
	tk, err := ToKelvin(t, unit)
	if err != nil {
		return 0, err
	}
	temps, kvis, err := kvisPoints(rec)
	if err != nil {
		return 0, err
	}
	sort.Sort(byTemp{temps, kvis})

	a, b := fitAndrade(temps, kvis)
	return math.Exp(a + b/tk), nil
}

// fitAndrade fits ln ν = A + B/T over the measured points.
func fitAndrade(temps, kvis []float64) (a, b float64) {
	if len(temps) == 1 {
		b = defaultViscosityCoeff
		a = math.Log(kvis[0]) - b/temps[0]
		return a, b
	}

	// Least squares in (x=1/T, y=ln ν) space.
	var sx, sy, sxx, sxy float64
	n := float64(len(temps))
	for i := range temps {
		x := 1.0 / temps[i]
		y := math.Log(kvis[i])
		sx += x
		sy += y
		sxx += x * x
		sxy += x * y
	}
	denom := n*sxx - sx*sx
	if denom == 0 {
		// Identical reference temperatures; fall back to the first point.
		b = defaultViscosityCoeff
		a = math.Log(kvis[0]) - b/temps[0]
		return a, b
	}
	b = (n*sxy - sx*sy) / denom
	a = (sy - b*sx) / n
	return a, b
}

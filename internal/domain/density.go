package domain

import (
	"errors"
	"fmt"
	"sort"
)

// thermalExpansion is the volumetric thermal-expansion coefficient (1/K) used
// when extrapolating density outside the measured range.
const thermalExpansion = 0.0008

type densityCurve struct {
	temps     []float64 // Kelvin, ascending
	densities []float64 // kg/m³, parallel to temps
}

// newDensityCurve collects a record's measured density points in SI units.
// Records without measured densities fall back to a single point derived from
// the metadata API gravity.
func newDensityCurve(rec *OilRecord) (*densityCurve, error) {
	fresh, err := rec.Fresh()
	if err != nil {
		return nil, err
	}

	c := &densityCurve{}
	for _, p := range fresh.PhysicalProperties.Densities {
		rho, err := densityToKgM3(p.Density)
		if err != nil {
			return nil, fmt.Errorf("density point: %w", err)
		}
		tk, err := ToKelvin(p.RefTemp.Value, p.RefTemp.Unit)
		if err != nil {
			return nil, fmt.Errorf("density point: %w", err)
		}
		c.temps = append(c.temps, tk)
		c.densities = append(c.densities, rho)
	}

	if len(c.temps) == 0 {
		if rec.Metadata.API == nil {
			return nil, errors.New("record has no density data and no API gravity")
		}
		c.temps = []float64{refTempK}
		c.densities = []float64{DensityFromAPI(*rec.Metadata.API)}
	}

	sort.Sort(byTemp{c.temps, c.densities})
	return c, nil
}

// atTemp evaluates the density curve at a temperature in Kelvin. Between
// measured points the curve is linear; outside the measured range it follows
// the nearest point with the standard thermal-expansion coefficient.
func (c *densityCurve) atTemp(tk float64) float64 {
	n := len(c.temps)
	switch {
	case tk <= c.temps[0]:
		return expand(c.densities[0], c.temps[0], tk)
	case tk >= c.temps[n-1]:
		return expand(c.densities[n-1], c.temps[n-1], tk)
	}
	i := sort.SearchFloat64s(c.temps, tk)
	t0, t1 := c.temps[i-1], c.temps[i]
	d0, d1 := c.densities[i-1], c.densities[i]
	return d0 + (d1-d0)*(tk-t0)/(t1-t0)
}

func expand(rho, tref, tk float64) float64 {
	return rho * (1.0 - thermalExpansion*(tk-tref))
}

// DensityAtTemp evaluates the canonical record's density model at a
// temperature in the given unit ("K", "C" or "F"). Result in kg/m³.
func DensityAtTemp(rec *OilRecord, t float64, unit string) (float64, error) {
	tk, err := ToKelvin(t, unit)
	if err != nil {
		return 0, err
	}
	curve, err := newDensityCurve(rec)
	if err != nil {
		return 0, err
	}
	return curve.atTemp(tk), nil
}

// byTemp sorts two parallel slices by the first.
type byTemp struct {
	temps  []float64
	values []float64
}

func (s byTemp) Len() int           { return len(s.temps) }
func (s byTemp) Less(i, j int) bool { return s.temps[i] < s.temps[j] }
func (s byTemp) Swap(i, j int) {
	s.temps[i], s.temps[j] = s.temps[j], s.temps[i]
	s.values[i], s.values[j] = s.values[j], s.values[i]
}

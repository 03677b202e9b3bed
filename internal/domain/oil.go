package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
)

// ErrNotFullOil is returned by accessors that need the GNOME representation
// when the oil was built from a record that is not GNOME-suitable. Callers
// check for it with errors.Is to distinguish "oil not suitable for this
// computation" from structural failures.
var ErrNotFullOil = errors.New("oil has no GNOME representation")

// Oil is a fully fetched and parsed ADIOS record. Record is the canonical
// parsed object; Gnome is set iff the record was GNOME-suitable at
// construction. Instances are immutable after NewOil; derived values are
// recomputed on every call.
type Oil struct {
	ID   string
	Name string

	// Data is the raw record as fetched, kept for provenance.
	Data []byte

	Record *OilRecord
	Gnome  *GnomeOil
}

// NewOil parses a full record response ({data: {_id, attributes: {...}}}).
// A record that is not GNOME-suitable is logged and kept without a GnomeOil;
// it still serves identity and raw-record queries, but the guarded accessors
// fail with ErrNotFullOil.
func NewOil(raw []byte, logger *slog.Logger) (*Oil, error) {
	var envelope struct {
		Data struct {
			ID         string          `json:"_id"`
			Attributes json.RawMessage `json:"attributes"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("parse full record: %w", err)
	}
	if envelope.Data.ID == "" {
		return nil, fmt.Errorf("parse full record: missing key %q", "data._id")
	}

	rec, err := ParseOilRecord(envelope.Data.Attributes)
	if err != nil {
		return nil, err
	}

	o := &Oil{
		ID:     envelope.Data.ID,
		Name:   rec.Metadata.Name,
		Data:   raw,
		Record: rec,
	}
	logger.Debug("parsing oil", "id", o.ID, "name", o.Name)

	if !rec.Metadata.GnomeSuitable {
		logger.Error("oil is not GNOME suitable", "id", o.ID, "name", o.Name)
		return o, nil
	}

	gnome, err := MakeGnomeOil(rec)
	if err != nil {
		return nil, fmt.Errorf("%s: gnome conversion: %w", o.ID, err)
	}
	o.Gnome = gnome
	return o, nil
}

func (o *Oil) String() string {
	return fmt.Sprintf("[<adios.Oil> %s] %s", o.ID, o.Name)
}

// requireGnome is the single guard shared by all accessors that depend on a
// successful GNOME conversion.
func (o *Oil) requireGnome() error {
	if o.Gnome == nil {
		return ErrNotFullOil
	}
	return nil
}

// DensityAtTemp returns the density in kg/m³ at a temperature in the given
// unit ("K" by default). Evaluated against the canonical record, but guarded
// like the GNOME accessors so unsuitable oils fail the same way.
func (o *Oil) DensityAtTemp(t float64, unit string) (float64, error) {
	if err := o.requireGnome(); err != nil {
		return 0, err
	}
	return DensityAtTemp(o.Record, t, unit)
}

// KvisAtTemp returns the kinematic viscosity in m²/s at a temperature in the
// given unit ("K" by default). Guarded like DensityAtTemp.
func (o *Oil) KvisAtTemp(t float64, unit string) (float64, error) {
	if err := o.requireGnome(); err != nil {
		return 0, err
	}
	return KvisAtTemp(o.Record, t, unit)
}

// MassFraction returns the pseudo-component mass fractions.
func (o *Oil) MassFraction() ([]float64, error) {
	if err := o.requireGnome(); err != nil {
		return nil, err
	}
	return slices.Clone(o.Gnome.MassFraction), nil
}

// MolecularWeight returns the pseudo-component molecular weights in kg/mol.
func (o *Oil) MolecularWeight() ([]float64, error) {
	if err := o.requireGnome(); err != nil {
		return nil, err
	}
	return slices.Clone(o.Gnome.MolecularWeight), nil
}

// OilWaterSurfaceTension returns the oil/water interfacial tension in N/m,
// estimated from the GNOME set's API gravity.
func (o *Oil) OilWaterSurfaceTension() (float64, error) {
	if err := o.requireGnome(); err != nil {
		return 0, err
	}
	return OilWaterSurfaceTensionFromAPI(o.Gnome.API), nil
}

// Bulltime returns the emulsification onset time.
func (o *Oil) Bulltime() (float64, error) {
	if err := o.requireGnome(); err != nil {
		return 0, err
	}
	return o.Gnome.BullwinkleTime, nil
}

// Bullwinkle returns the emulsification onset mass fraction.
func (o *Oil) Bullwinkle() (float64, error) {
	if err := o.requireGnome(); err != nil {
		return 0, err
	}
	return o.Gnome.BullwinkleFraction, nil
}

// EmulsionWaterFractionMax returns the maximum water fraction of a stable
// emulsion.
func (o *Oil) EmulsionWaterFractionMax() (float64, error) {
	if err := o.requireGnome(); err != nil {
		return 0, err
	}
	return o.Gnome.EmulsionWaterFractionMax, nil
}

// K0Y returns the vertical dispersion parameter.
func (o *Oil) K0Y() (float64, error) {
	if err := o.requireGnome(); err != nil {
		return 0, err
	}
	return o.Gnome.K0Y, nil
}

const (
	atmosPressure = 101325.0 // Pa
	dZb           = 0.97
	rCal          = 1.987 // cal/(mol·K)
)

// VaporPressure returns the vapor pressure in Pa of each pseudo-component at
// a temperature in Kelvin, using the ADIOS2 boiling-point correlation.
//
// A component whose boiling point coincides with its C2 constant, or a temp
// that does, produces Inf or NaN for that component; IEEE-754 semantics are
// deliberately preserved rather than raised as errors.
func (o *Oil) VaporPressure(temp float64) ([]float64, error) {
	if err := o.requireGnome(); err != nil {
		return nil, err
	}

	pressures := make([]float64, len(o.Gnome.BoilingPoint))
	for i, bp := range o.Gnome.BoilingPoint {
		dS := 8.75 + 1.987*math.Log(bp)
		c2 := 0.19*bp - 18.0

		v := 1.0/(bp-c2) - 1.0/(temp-c2)
		lnRatio := dS * (bp - c2) * (bp - c2) / (dZb * rCal * bp) * v
		pressures[i] = math.Exp(lnRatio) * atmosPressure
	}
	return pressures, nil
}

package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// OilSnapshot is the flattened export record published for drift/weathering
// simulation workers: identity plus the full GNOME property set and the
// reference-condition values models initialize from.
type OilSnapshot struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	ProductType       string   `json:"product_type,omitempty"`
	Labels            []string `json:"labels,omitempty"`
	ModelCompleteness float64  `json:"model_completeness"`

	API                      float64   `json:"api"`
	MassFraction             []float64 `json:"mass_fraction"`
	BoilingPoint             []float64 `json:"boiling_point"`
	MolecularWeight          []float64 `json:"molecular_weight"`
	BullwinkleTime           float64   `json:"bullwinkle_time"`
	BullwinkleFraction       float64   `json:"bullwinkle_fraction"`
	EmulsionWaterFractionMax float64   `json:"emulsion_water_fraction_max"`
	K0Y                      float64   `json:"k0y"`

	// Reference conditions evaluated at 15 °C (288.15 K).
	DensityRef         float64 `json:"density_ref"`
	KvisRef            float64 `json:"kvis_ref"`
	OilWaterTensionRef float64 `json:"oil_water_surface_tension"`

	FetchedAt time.Time `json:"fetched_at"`
}

// OutputEvent is the serialized form destined for the sink topic.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}

// snapshotRefTemp is the reference temperature for exported density and
// viscosity (15 °C in Kelvin).
const snapshotRefTemp = 288.15

// BuildSnapshot flattens a full oil into its export form. Fails with
// ErrNotFullOil for oils without a GNOME representation.
func BuildSnapshot(o *Oil) (OilSnapshot, error) {
	if err := o.requireGnome(); err != nil {
		return OilSnapshot{}, fmt.Errorf("snapshot %s: %w", o.ID, err)
	}

	density, err := o.DensityAtTemp(snapshotRefTemp, "K")
	if err != nil {
		return OilSnapshot{}, fmt.Errorf("snapshot %s: %w", o.ID, err)
	}
	kvis, err := o.KvisAtTemp(snapshotRefTemp, "K")
	if err != nil {
		return OilSnapshot{}, fmt.Errorf("snapshot %s: %w", o.ID, err)
	}

	g := o.Gnome
	return OilSnapshot{
		ID:                o.ID,
		Name:              o.Name,
		ProductType:       o.Record.Metadata.ProductType,
		Labels:            o.Record.Metadata.Labels,
		ModelCompleteness: o.Record.Metadata.ModelCompleteness,

		API:                      g.API,
		MassFraction:             g.MassFraction,
		BoilingPoint:             g.BoilingPoint,
		MolecularWeight:          g.MolecularWeight,
		BullwinkleTime:           g.BullwinkleTime,
		BullwinkleFraction:       g.BullwinkleFraction,
		EmulsionWaterFractionMax: g.EmulsionWaterFractionMax,
		K0Y:                      g.K0Y,

		DensityRef:         density,
		KvisRef:            kvis,
		OilWaterTensionRef: OilWaterSurfaceTensionFromAPI(g.API),

		FetchedAt: clock.Now().UTC(),
	}, nil
}

// SerializeSnapshot marshals a snapshot into an output event keyed by oil id.
func SerializeSnapshot(s OilSnapshot) (OutputEvent, error) {
	value, err := json.Marshal(s)
	if err != nil {
		return OutputEvent{}, fmt.Errorf("serialize snapshot: %w", err)
	}
	return OutputEvent{
		Key:   []byte(s.ID),
		Value: value,
		Headers: map[string]string{
			"product_type": s.ProductType,
			"fetched_at":   s.FetchedAt.Format(time.RFC3339),
		},
	}, nil
}

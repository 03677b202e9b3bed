package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Measurement is a value/unit pair as reported by ADIOS.
type Measurement struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// DensityPoint is one measured density at a reference temperature.
type DensityPoint struct {
	Density Measurement `json:"density"`
	RefTemp Measurement `json:"ref_temp"`
}

// ViscosityPoint is one measured viscosity at a reference temperature.
type ViscosityPoint struct {
	Viscosity Measurement `json:"viscosity"`
	RefTemp   Measurement `json:"ref_temp"`
}

// DistillationCut marks the cumulative mass fraction boiled off at a vapor
// temperature.
type DistillationCut struct {
	Fraction  Measurement `json:"fraction"`
	VaporTemp Measurement `json:"vapor_temp"`
}

// Distillation holds a sub-sample's distillation data.
type Distillation struct {
	Type string            `json:"type"`
	Cuts []DistillationCut `json:"cuts"`
}

// PhysicalProperties groups a sub-sample's measured property curves.
type PhysicalProperties struct {
	Densities            []DensityPoint   `json:"densities"`
	KinematicViscosities []ViscosityPoint `json:"kinematic_viscosities"`
	DynamicViscosities   []ViscosityPoint `json:"dynamic_viscosities"`
}

// SubSample is one weathering state of the oil. The first sub-sample of a
// record is the fresh oil.
type SubSample struct {
	Metadata struct {
		Name      string `json:"name"`
		ShortName string `json:"short_name"`
	} `json:"metadata"`
	PhysicalProperties PhysicalProperties `json:"physical_properties"`
	Distillation       Distillation       `json:"distillation_data"`
}

// RecordMetadata is the full record's metadata block. API is a pointer since
// some records omit it.
type RecordMetadata struct {
	Name              string   `json:"name"`
	API               *float64 `json:"API"`
	GnomeSuitable     bool     `json:"gnome_suitable"`
	Labels            []string `json:"labels"`
	Location          string   `json:"location"`
	ModelCompleteness float64  `json:"model_completeness"`
	ProductType       string   `json:"product_type"`
	SampleDate        string   `json:"sample_date"`
}

// OilRecord is the parsed form of a full record's attributes object: the
// canonical source of truth for all derived properties.
type OilRecord struct {
	OilID      string         `json:"oil_id"`
	Metadata   RecordMetadata `json:"metadata"`
	SubSamples []SubSample    `json:"sub_samples"`
	Status     []string       `json:"status"`
}

// ParseOilRecord parses a full record's attributes object.
func ParseOilRecord(attributes []byte) (*OilRecord, error) {
	var rec OilRecord
	if err := json.Unmarshal(attributes, &rec); err != nil {
		return nil, fmt.Errorf("parse oil record: %w", err)
	}
	if rec.Metadata.Name == "" {
		return nil, errors.New("parse oil record: metadata has no name")
	}
	return &rec, nil
}

// Fresh returns the fresh (unweathered) sub-sample.
func (r *OilRecord) Fresh() (*SubSample, error) {
	if len(r.SubSamples) == 0 {
		return nil, errors.New("oil record has no sub-samples")
	}
	return &r.SubSamples[0], nil
}

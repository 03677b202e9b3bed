package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// ThinOil is the lightweight summary record returned by the ADIOS listing
// endpoint. It carries identity and classification metadata only; upgrade to
// a full Oil via MakeFull for derived properties.
// All fields are set at parse time and never mutated.
type ThinOil struct {
	ID                string   `json:"id"`
	Type              string   `json:"type"`
	Name              string   `json:"name"`
	API               float64  `json:"API"`
	GnomeSuitable     bool     `json:"gnome_suitable"`
	Labels            []string `json:"labels"`
	Location          string   `json:"location"`
	ModelCompleteness float64  `json:"model_completeness"`
	ProductType       string   `json:"product_type"`
	SampleDate        string   `json:"sample_date"`
}

// thinMetadata mirrors the listing fragment's attributes.metadata object.
// Pointer fields let the parser distinguish absent keys from zero values.
type thinMetadata struct {
	Name              *string   `json:"name"`
	API               *float64  `json:"API"`
	GnomeSuitable     *bool     `json:"gnome_suitable"`
	Labels            *[]string `json:"labels"`
	Location          *string   `json:"location"`
	ModelCompleteness *float64  `json:"model_completeness"`
	ProductType       *string   `json:"product_type"`
	SampleDate        *string   `json:"sample_date"`
}

// ParseThinOil parses one listing fragment. The metadata object must carry
// exactly the recognized field set: unknown keys and missing keys are both
// structural errors.
func ParseThinOil(data []byte) (ThinOil, error) {
	var frag struct {
		ID         string `json:"_id"`
		Type       string `json:"type"`
		Attributes struct {
			Metadata json.RawMessage `json:"metadata"`
		} `json:"attributes"`
	}
	if err := json.Unmarshal(data, &frag); err != nil {
		return ThinOil{}, fmt.Errorf("parse listing fragment: %w", err)
	}
	if frag.ID == "" {
		return ThinOil{}, fmt.Errorf("parse listing fragment: missing key %q", "_id")
	}
	if len(frag.Attributes.Metadata) == 0 {
		return ThinOil{}, fmt.Errorf("parse listing fragment: missing key %q", "attributes.metadata")
	}

	var meta thinMetadata
	dec := json.NewDecoder(bytes.NewReader(frag.Attributes.Metadata))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&meta); err != nil {
		return ThinOil{}, fmt.Errorf("parse listing metadata: %w", err)
	}
	if err := meta.checkComplete(); err != nil {
		return ThinOil{}, err
	}

	return ThinOil{
		ID:                frag.ID,
		Type:              frag.Type,
		Name:              *meta.Name,
		API:               *meta.API,
		GnomeSuitable:     *meta.GnomeSuitable,
		Labels:            *meta.Labels,
		Location:          *meta.Location,
		ModelCompleteness: *meta.ModelCompleteness,
		ProductType:       *meta.ProductType,
		SampleDate:        *meta.SampleDate,
	}, nil
}

func (m thinMetadata) checkComplete() error {
	missing := func(key string) error {
		return fmt.Errorf("parse listing metadata: missing key %q", key)
	}
	switch {
	case m.Name == nil:
		return missing("name")
	case m.API == nil:
		return missing("API")
	case m.GnomeSuitable == nil:
		return missing("gnome_suitable")
	case m.Labels == nil:
		return missing("labels")
	case m.Location == nil:
		return missing("location")
	case m.ModelCompleteness == nil:
		return missing("model_completeness")
	case m.ProductType == nil:
		return missing("product_type")
	case m.SampleDate == nil:
		return missing("sample_date")
	}
	return nil
}

// IsGeneric reports whether this is one of the synthetic "GENERIC" oils ADIOS
// provides for modeling. Case-sensitive, matching the database convention.
func (t ThinOil) IsGeneric() bool {
	return strings.Contains(t.Name, "GENERIC")
}

// MakeFull fetches the full record for this oil and parses it into an Oil.
func (t ThinOil) MakeFull(ctx context.Context, fetcher OilFetcher) (*Oil, error) {
	return fetcher.GetFullOil(ctx, t.ID)
}

func (t ThinOil) String() string {
	return fmt.Sprintf("[<adios.ThinOil> %s] %s", t.ID, t.Name)
}

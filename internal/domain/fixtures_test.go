package domain

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

// fullRecord builds a complete fetch response in the ADIOS envelope shape.
func fullRecord(gnomeSuitable bool) []byte {
	return []byte(fmt.Sprintf(`{
	"data": {
		"_id": "AD00020",
		"type": "oils",
		"attributes": {
			"oil_id": "AD00020",
			"metadata": {
				"name": "ALASKA NORTH SLOPE",
				"API": 26.8,
				"gnome_suitable": %t,
				"labels": ["Crude Oil", "Medium Crude"],
				"location": "Alaska, USA",
				"model_completeness": 80,
				"product_type": "Crude Oil NOS",
				"sample_date": "1992-01-01"
			},
			"sub_samples": [
				{
					"metadata": {"name": "Fresh Oil Sample", "short_name": "Fresh Oil"},
					"physical_properties": {
						"densities": [
							{"density": {"value": 905.0, "unit": "kg/m^3"}, "ref_temp": {"value": 273.15, "unit": "K"}},
							{"density": {"value": 893.0, "unit": "kg/m^3"}, "ref_temp": {"value": 288.15, "unit": "K"}}
						],
						"kinematic_viscosities": [
							{"viscosity": {"value": 3.9e-5, "unit": "m^2/s"}, "ref_temp": {"value": 273.15, "unit": "K"}},
							{"viscosity": {"value": 1.68e-5, "unit": "m^2/s"}, "ref_temp": {"value": 288.15, "unit": "K"}}
						]
					},
					"distillation_data": {
						"type": "mass fraction",
						"cuts": [
							{"fraction": {"value": 0.1, "unit": "fraction"}, "vapor_temp": {"value": 340.0, "unit": "K"}},
							{"fraction": {"value": 0.3, "unit": "fraction"}, "vapor_temp": {"value": 420.0, "unit": "K"}},
							{"fraction": {"value": 0.5, "unit": "fraction"}, "vapor_temp": {"value": 510.0, "unit": "K"}},
							{"fraction": {"value": 0.7, "unit": "fraction"}, "vapor_temp": {"value": 610.0, "unit": "K"}}
						]
					}
				}
			],
			"status": []
		}
	}
}`, gnomeSuitable))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func makeOil(t *testing.T, gnomeSuitable bool) *Oil {
	t.Helper()
	oil, err := NewOil(fullRecord(gnomeSuitable), discardLogger())
	require.NoError(t, err)
	return oil
}

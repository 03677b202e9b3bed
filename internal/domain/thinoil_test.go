package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingFragment = `{
	"_id": "AD00020",
	"type": "oils",
	"attributes": {
		"metadata": {
			"name": "ALASKA NORTH SLOPE",
			"API": 26.8,
			"gnome_suitable": true,
			"labels": ["Crude Oil", "Medium Crude"],
			"location": "Alaska, USA",
			"model_completeness": 80,
			"product_type": "Crude Oil NOS",
			"sample_date": "1992-01-01"
		}
	}
}`

func TestParseThinOil(t *testing.T) {
	t.Run("valid fragment", func(t *testing.T) {
		thin, err := ParseThinOil([]byte(listingFragment))
		require.NoError(t, err)

		assert.Equal(t, "AD00020", thin.ID)
		assert.Equal(t, "oils", thin.Type)
		assert.Equal(t, "ALASKA NORTH SLOPE", thin.Name)
		assert.Equal(t, 26.8, thin.API)
		assert.True(t, thin.GnomeSuitable)
		assert.Equal(t, []string{"Crude Oil", "Medium Crude"}, thin.Labels)
		assert.Equal(t, "Alaska, USA", thin.Location)
		assert.Equal(t, 80.0, thin.ModelCompleteness)
		assert.Equal(t, "Crude Oil NOS", thin.ProductType)
		assert.Equal(t, "1992-01-01", thin.SampleDate)
	})

	t.Run("missing metadata key", func(t *testing.T) {
		frag := `{"_id":"AD1","type":"oils","attributes":{"metadata":{
			"name":"X","API":10,"gnome_suitable":false,"labels":[],
			"location":"","model_completeness":0,"product_type":""}}}`
		_, err := ParseThinOil([]byte(frag))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sample_date")
	})

	t.Run("unknown metadata key", func(t *testing.T) {
		frag := `{"_id":"AD1","type":"oils","attributes":{"metadata":{
			"name":"X","API":10,"gnome_suitable":false,"labels":[],
			"location":"","model_completeness":0,"product_type":"",
			"sample_date":"","comments":"extra"}}}`
		_, err := ParseThinOil([]byte(frag))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "comments")
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := ParseThinOil([]byte(`{"type":"oils","attributes":{"metadata":{}}}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "_id")
	})

	t.Run("missing metadata", func(t *testing.T) {
		_, err := ParseThinOil([]byte(`{"_id":"AD1","type":"oils","attributes":{}}`))
		require.Error(t, err)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := ParseThinOil([]byte("{not json"))
		require.Error(t, err)
	})
}

func TestThinOil_IsGeneric(t *testing.T) {
	assert.True(t, ThinOil{Name: "GENERIC CRUDE"}.IsGeneric())
	assert.True(t, ThinOil{Name: "GENERIC LIGHT CRUDE"}.IsGeneric())
	assert.False(t, ThinOil{Name: "generic crude"}.IsGeneric())
	assert.False(t, ThinOil{Name: "ALASKA NORTH SLOPE"}.IsGeneric())
}

func TestThinOil_String(t *testing.T) {
	thin := ThinOil{ID: "AD00020", Name: "ALASKA NORTH SLOPE"}
	assert.Equal(t, "[<adios.ThinOil> AD00020] ALASKA NORTH SLOPE", thin.String())
}

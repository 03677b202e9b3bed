package adios

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/couchcryptid/adios-oil-etl/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingItem = `{
	"_id": "AD00020",
	"type": "oils",
	"attributes": {
		"metadata": {
			"name": "ALASKA NORTH SLOPE",
			"API": 26.8,
			"gnome_suitable": true,
			"labels": ["Crude Oil"],
			"location": "Alaska, USA",
			"model_completeness": 80,
			"product_type": "Crude Oil NOS",
			"sample_date": "1992-01-01"
		}
	}
}`

const fullRecord = `{
	"data": {
		"_id": "AD00020",
		"type": "oils",
		"attributes": {
			"oil_id": "AD00020",
			"metadata": {
				"name": "ALASKA NORTH SLOPE",
				"API": 26.8,
				"gnome_suitable": true,
				"labels": ["Crude Oil"],
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
							{"density": {"value": 893.0, "unit": "kg/m^3"}, "ref_temp": {"value": 288.15, "unit": "K"}}
						],
						"kinematic_viscosities": [
							{"viscosity": {"value": 1.68e-5, "unit": "m^2/s"}, "ref_temp": {"value": 288.15, "unit": "K"}}
						]
					},
					"distillation_data": {
						"type": "mass fraction",
						"cuts": [
							{"fraction": {"value": 0.5, "unit": "fraction"}, "vapor_temp": {"value": 420.0, "unit": "K"}}
						]
					}
				}
			]
		}
	}
}`

func testClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		metrics:    observability.NewMetricsForTesting(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestClient_List_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/oils", r.URL.Path)
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		assert.Equal(t, "0", r.URL.Query().Get("page"))
		assert.Equal(t, "alaska", r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"data":[%s]}`, listingItem)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	oils, err := c.List(context.Background(), "alaska", 20, 0)
	require.NoError(t, err)

	require.Len(t, oils, 1)
	assert.Equal(t, "AD00020", oils[0].ID)
	assert.Equal(t, "ALASKA NORTH SLOPE", oils[0].Name)
	assert.Equal(t, 26.8, oils[0].API)
	assert.True(t, oils[0].GnomeSuitable)
}

func TestClient_List_NoQueryParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.URL.Query()["q"]
		assert.False(t, present, "empty query must not be sent")
		fmt.Fprint(w, `{"data":[]}`)
	}))
	defer srv.Close()

	oils, err := testClient(srv.URL).List(context.Background(), "", 50, 3)
	require.NoError(t, err)
	assert.Empty(t, oils)
}

func TestClient_List_MalformedFragment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"data":[{"type":"oils","attributes":{"metadata":{}}}]}`)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).List(context.Background(), "", 50, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "_id")
}

func TestClient_GetFullOil_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/oils/AD00020", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, fullRecord)
	}))
	defer srv.Close()

	oil, err := testClient(srv.URL).GetFullOil(context.Background(), "AD00020")
	require.NoError(t, err)

	assert.Equal(t, "AD00020", oil.ID)
	assert.Equal(t, "ALASKA NORTH SLOPE", oil.Name)
	require.NotNil(t, oil.Gnome)
	assert.Equal(t, 2, oil.Gnome.Components())
}

func TestClient_GetFullOil_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"no such oil"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).GetFullOil(context.Background(), "AD99999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestClient_GetFullOil_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	c.httpClient.Timeout = 50 * time.Millisecond

	_, err := c.GetFullOil(context.Background(), "AD00020")
	require.Error(t, err)
}

func TestPager_WalksListingToCompletion(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		switch r.URL.Query().Get("page") {
		case "0":
			fmt.Fprintf(w, `{"data":[%s,%s]}`, listingItem, listingItem)
		default:
			fmt.Fprintf(w, `{"data":[%s]}`, listingItem)
		}
	}))
	defer srv.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	pager := NewPager(testClient(srv.URL), "", logger)

	batch, err := pager.ExtractBatch(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, batch, 2)

	// Short page ends the listing.
	batch, err = pager.ExtractBatch(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, batch, 1)

	// Exhausted pager stops without another request.
	batch, err = pager.ExtractBatch(context.Background(), 2)
	require.NoError(t, err)
	assert.Empty(t, batch)
	assert.Equal(t, 2, requests)
}

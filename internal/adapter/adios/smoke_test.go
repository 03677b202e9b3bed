//go:build adios

package adios

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/couchcryptid/adios-oil-etl/internal/domain"
	"github.com/couchcryptid/adios-oil-etl/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests hit the real NOAA ADIOS API.
// Run with: go test -tags=adios ./internal/adapter/adios/ -v -count=1
// Override the endpoint with ADIOS_API_URL if needed.

func smokeClient(t *testing.T) *Client {
	t.Helper()
	baseURL := os.Getenv("ADIOS_API_URL")
	if baseURL == "" {
		baseURL = "https://adios.orr.noaa.gov/api"
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		metrics:    observability.NewMetricsForTesting(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestSmoke_List(t *testing.T) {
	c := smokeClient(t)

	oils, err := c.List(context.Background(), "", 5, 0)
	require.NoError(t, err)

	require.Len(t, oils, 5)
	for _, o := range oils {
		assert.NotEmpty(t, o.ID)
		assert.NotEmpty(t, o.Name)
	}
}

func TestSmoke_ListWithQuery(t *testing.T) {
	c := smokeClient(t)

	oils, err := c.List(context.Background(), "alaska north slope", 10, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, oils)
}

func TestSmoke_GetFullOil(t *testing.T) {
	c := smokeClient(t)

	// AD00020 is the classic Alaska North Slope record.
	oil, err := c.GetFullOil(context.Background(), "AD00020")
	require.NoError(t, err)

	assert.Equal(t, "AD00020", oil.ID)
	assert.NotEmpty(t, oil.Name)
	if oil.Gnome != nil {
		assert.Greater(t, oil.Gnome.Components(), 0)
	}
}

func TestSmoke_GetFullOil_NotFound(t *testing.T) {
	c := smokeClient(t)

	_, err := c.GetFullOil(context.Background(), "ZZ99999")
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrNotFullOil))
}

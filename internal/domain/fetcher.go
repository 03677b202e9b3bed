package domain

import "context"

// OilFetcher retrieves full oil records by id. Implemented by the ADIOS API
// client; tests substitute fakes.
type OilFetcher interface {
	// GetFullOil fetches and parses the complete record for one oil.
	// The call blocks on network I/O; failures are opaque to callers.
	GetFullOil(ctx context.Context, id string) (*Oil, error)
}

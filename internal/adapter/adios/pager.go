package adios

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/adios-oil-etl/internal/domain"
)

// Pager walks the ADIOS listing page by page. It implements
// pipeline.BatchExtractor; an empty batch signals the end of the listing.
// Not safe for concurrent use; the pipeline calls it from a single goroutine.
type Pager struct {
	client *Client
	query  string
	page   int
	done   bool
	logger *slog.Logger
}

// NewPager creates a pager over the listing matching query ("" for all oils).
func NewPager(client *Client, query string, logger *slog.Logger) *Pager {
	return &Pager{client: client, query: query, logger: logger}
}

// ExtractBatch fetches the next listing page of up to batchSize entries.
// Returns an empty batch once the listing is exhausted.
func (p *Pager) ExtractBatch(ctx context.Context, batchSize int) ([]domain.ThinOil, error) {
	if p.done {
		return nil, nil
	}

	oils, err := p.client.List(ctx, p.query, batchSize, p.page)
	if err != nil {
		return nil, err
	}
	if len(oils) < batchSize {
		p.done = true
	}
	p.page++

	p.logger.Debug("listing page extracted", "page", p.page, "entries", len(oils), "done", p.done)
	return oils, nil
}

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/adios-oil-etl/internal/domain"
)

// ErrGenericOil marks the synthetic GENERIC oils the export excludes by
// default.
var ErrGenericOil = errors.New("generic oil excluded from export")

// OilTransformer implements Transformer: it upgrades a listing entry to a
// full oil through the fetcher and flattens it into a serialized snapshot.
type OilTransformer struct {
	fetcher        domain.OilFetcher
	includeGeneric bool
	logger         *slog.Logger
}

// NewTransformer creates an OilTransformer. Set includeGeneric to also export
// the synthetic GENERIC oils.
func NewTransformer(fetcher domain.OilFetcher, includeGeneric bool, logger *slog.Logger) *OilTransformer {
	return &OilTransformer{
		fetcher:        fetcher,
		includeGeneric: includeGeneric,
		logger:         logger,
	}
}

func (t *OilTransformer) Transform(ctx context.Context, thin domain.ThinOil) (domain.OutputEvent, error) {
	if thin.IsGeneric() && !t.includeGeneric {
		return domain.OutputEvent{}, ErrGenericOil
	}

	oil, err := thin.MakeFull(ctx, t.fetcher)
	if err != nil {
		return domain.OutputEvent{}, fmt.Errorf("fetch %s: %w", thin.ID, err)
	}

	snapshot, err := domain.BuildSnapshot(oil)
	if err != nil {
		return domain.OutputEvent{}, err
	}
	return domain.SerializeSnapshot(snapshot)
}

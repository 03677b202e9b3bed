package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/adios-oil-etl/internal/domain"
	"github.com/couchcryptid/adios-oil-etl/internal/observability"
)

// BatchExtractor reads up to batchSize listing entries from the source.
// An empty batch with a nil error means the listing is exhausted.
type BatchExtractor interface {
	ExtractBatch(ctx context.Context, batchSize int) ([]domain.ThinOil, error)
}

// Transformer upgrades a listing entry to a full oil and serializes its
// snapshot.
type Transformer interface {
	Transform(ctx context.Context, thin domain.ThinOil) (domain.OutputEvent, error)
}

// BatchLoader writes multiple output events to the destination.
type BatchLoader interface {
	LoadBatch(ctx context.Context, events []domain.OutputEvent) error
}

// Pipeline orchestrates the list-fetch-publish loop over the ADIOS database.
// Unlike a streaming consumer it terminates: the run ends when the listing is
// exhausted.
type Pipeline struct {
	extractor   BatchExtractor
	transformer Transformer
	loader      BatchLoader
	logger      *slog.Logger
	metrics     *observability.Metrics
	ready       atomic.Bool
	batchSize   int
}

// New creates a Pipeline with the given stages and observability.
func New(e BatchExtractor, t Transformer, l BatchLoader, logger *slog.Logger, metrics *observability.Metrics, batchSize int) *Pipeline {
	return &Pipeline{
		extractor:   e,
		transformer: t,
		loader:      l,
		logger:      logger,
		metrics:     metrics,
		batchSize:   batchSize,
	}
}

// CheckReadiness returns nil once the pipeline has published at least one
// batch, or an error describing why the service is not yet ready.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("pipeline has not published any snapshots yet")
	}
	return nil
}

// Run executes the export loop until the listing is exhausted or the context
// is cancelled. Extraction failures are fatal; publish failures back off and
// retry.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("export pipeline started", "batch_size", p.batchSize)
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	// Exponential backoff for publish retries: start at 200ms, double each
	// retry, cap at 5s.
	backoff := 200 * time.Millisecond
	maxBackoff := 5 * time.Second

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("export pipeline stopping", "reason", ctx.Err())
			return nil
		default:
		}

		done, err := p.processBatch(ctx, &backoff, maxBackoff)
		if err != nil {
			return err
		}
		if done {
			p.logger.Info("export complete")
			return nil
		}
	}
}

// processBatch runs one list-fetch-publish cycle. Returns done=true when the
// listing is exhausted or the pipeline should stop.
func (p *Pipeline) processBatch(ctx context.Context, backoff *time.Duration, maxBackoff time.Duration) (bool, error) {
	start := time.Now()

	thinBatch, err := p.extractor.ExtractBatch(ctx, p.batchSize)
	if err != nil {
		if ctx.Err() != nil {
			return true, nil
		}
		return true, err
	}
	if len(thinBatch) == 0 {
		return true, nil
	}

	p.metrics.BatchSize.Observe(float64(len(thinBatch)))
	*backoff = 200 * time.Millisecond

	outBatch := make([]domain.OutputEvent, 0, len(thinBatch))
	for _, thin := range thinBatch {
		out, err := p.transformer.Transform(ctx, thin)
		if err != nil {
			if ctx.Err() != nil {
				return true, nil
			}
			p.skip(thin, err)
			continue
		}
		outBatch = append(outBatch, out)
	}

	if len(outBatch) == 0 {
		return false, nil
	}

	for {
		err := p.loader.LoadBatch(ctx, outBatch)
		if err == nil {
			break
		}
		p.logger.Error("publish batch failed", "error", err, "batch_size", len(outBatch))
		if !p.backoffOrStop(ctx, backoff, maxBackoff) {
			return true, nil
		}
	}

	p.metrics.SnapshotsPublished.Add(float64(len(outBatch)))
	p.metrics.BatchProcessingDuration.Observe(time.Since(start).Seconds())
	p.ready.Store(true)
	return false, nil
}

// skip records why one oil produced no snapshot. Unsuitable and generic oils
// are expected and logged quietly; anything else is a transform error.
func (p *Pipeline) skip(thin domain.ThinOil, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFullOil):
		p.metrics.OilsUnsuitable.Inc()
		p.logger.Debug("oil not GNOME suitable, skipping", "id", thin.ID, "name", thin.Name)
	case errors.Is(err, ErrGenericOil):
		p.metrics.OilsGeneric.Inc()
		p.logger.Debug("generic oil, skipping", "id", thin.ID, "name", thin.Name)
	default:
		p.metrics.TransformErrors.Inc()
		p.logger.Warn("transform failed, skipping oil", "error", err, "id", thin.ID, "name", thin.Name)
	}
}

// backoffOrStop checks for context cancellation, sleeps with the current backoff,
// and advances the backoff. Returns false if the pipeline should stop.
func (p *Pipeline) backoffOrStop(ctx context.Context, backoff *time.Duration, maxBackoff time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}
	if !sleepWithContext(ctx, *backoff) {
		return false
	}
	*backoff = nextBackoff(*backoff, maxBackoff)
	return true
}

func nextBackoff(current, maxBackoff time.Duration) time.Duration {
	next := current * 2
	if next > maxBackoff {
		return maxBackoff
	}
	return next
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

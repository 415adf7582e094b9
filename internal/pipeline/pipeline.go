// Package pipeline runs the load-select-aggregate batch and holds its result.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/PeterChiang0101/CSCE679-Assignment1/internal/domain"
	"github.com/PeterChiang0101/CSCE679-Assignment1/internal/observability"
)

// RecordSource reads all daily records from the input, reporting the number
// of rows it skipped as malformed.
type RecordSource interface {
	Records(ctx context.Context) (records []domain.DailyRecord, skipped int, err error)
}

// Pipeline executes the aggregation batch once and exposes the immutable
// result. It is the readiness gate for the HTTP server: not ready until the
// batch has completed successfully.
type Pipeline struct {
	source    RecordSource
	yearStart int
	yearEnd   int
	scale     domain.ColorScale
	logger    *slog.Logger
	metrics   *observability.Metrics

	dataset domain.Dataset
	ready   atomic.Bool
}

// New creates a Pipeline over the given source and configuration.
func New(source RecordSource, yearStart, yearEnd int, scale domain.ColorScale, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		source:    source,
		yearStart: yearStart,
		yearEnd:   yearEnd,
		scale:     scale,
		logger:    logger,
		metrics:   metrics,
	}
}

// Run executes the batch: load, filter to the year window, aggregate.
// It runs to completion once; a failure leaves the pipeline not ready.
func (p *Pipeline) Run(ctx context.Context) error {
	start := time.Now()

	records, skipped, err := p.source.Records(ctx)
	if err != nil {
		p.logger.Error("load records failed", "error", err)
		return err
	}
	p.metrics.RowsLoaded.Add(float64(len(records)))
	p.metrics.RowsSkipped.Add(float64(skipped))
	if skipped > 0 {
		p.logger.Warn("skipped malformed rows", "skipped", skipped)
	}

	selected, years := domain.SelectYearRange(records, p.yearStart, p.yearEnd)
	summaries := domain.Aggregate(selected, years)

	p.dataset = domain.Dataset{
		Summaries: summaries,
		Years:     years,
		Scale:     p.scale,
	}

	p.metrics.SummariesBuilt.Set(float64(len(summaries)))
	p.metrics.DatasetLoaded.Set(1)
	p.metrics.LoadDuration.Observe(time.Since(start).Seconds())
	p.ready.Store(true)

	p.logger.Info("aggregation complete",
		"rows", len(records),
		"selected", len(selected),
		"years", len(years),
		"summaries", len(summaries),
	)
	return nil
}

// Dataset returns the aggregation result. Valid only after Run succeeded.
func (p *Pipeline) Dataset() domain.Dataset {
	return p.dataset
}

// CheckReadiness returns nil once the dataset has been loaded and aggregated.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("dataset has not been loaded yet")
	}
	return nil
}

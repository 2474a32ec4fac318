// Package runner drives the batch-sequential generation loop: generate one
// batch, flush it, release it, repeat. Peak memory stays bounded to one batch
// plus the fixed-size catalogs.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/datasmith/datasmith/pkg/core"
	"go.uber.org/zap"
)

// Options configures a Runner.
type Options struct {
	Generator core.BatchGenerator
	Writer    core.BatchWriter
	Logger    *zap.Logger

	// ProgressEvery logs progress every N batches. Zero disables it.
	ProgressEvery int
}

// Result summarizes a completed (or interrupted) run.
type Result struct {
	RowsWritten int64
	Batches     int
	Duration    time.Duration
}

// Runner owns nothing but the loop; generator and writer are injected.
type Runner struct {
	gen           core.BatchGenerator
	writer        core.BatchWriter
	log           *zap.Logger
	progressEvery int
}

// New creates a Runner.
func New(opts Options) (*Runner, error) {
	if opts.Generator == nil {
		return nil, fmt.Errorf("generator is required")
	}
	if opts.Writer == nil {
		return nil, fmt.Errorf("writer is required")
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		gen:           opts.Generator,
		writer:        opts.Writer,
		log:           log,
		progressEvery: opts.ProgressEvery,
	}, nil
}

// Run writes ceil(totalRows/batchSize) batches to the sink. The terminal batch
// carries the remainder; a non-positive remainder short-circuits the loop. On
// cancellation the sink is left valid: header plus every fully flushed batch.
func (r *Runner) Run(ctx context.Context, totalRows, batchSize int64) (*Result, error) {
	if totalRows <= 0 {
		return nil, fmt.Errorf("total rows must be positive, got %d", totalRows)
	}
	if batchSize <= 0 {
		return nil, fmt.Errorf("batch size must be positive, got %d", batchSize)
	}

	numBatches := int((totalRows + batchSize - 1) / batchSize)
	start := time.Now()
	result := &Result{}

	for n := 0; n < numBatches; n++ {
		select {
		case <-ctx.Done():
			result.Duration = time.Since(start)
			return result, ctx.Err()
		default:
		}

		size := batchSize
		if remaining := totalRows - int64(n)*batchSize; remaining < size {
			size = remaining
		}
		if size <= 0 {
			break
		}

		record, err := r.gen.Generate(n, int(size))
		if err != nil {
			result.Duration = time.Since(start)
			return result, fmt.Errorf("generating batch %d: %w", n, err)
		}

		err = r.writer.Write(ctx, record)
		record.Release()
		if err != nil {
			result.Duration = time.Since(start)
			return result, fmt.Errorf("writing batch %d: %w", n, err)
		}

		result.RowsWritten += size
		result.Batches++

		if r.progressEvery > 0 && result.Batches%r.progressEvery == 0 {
			elapsed := time.Since(start)
			rate := float64(result.RowsWritten) / elapsed.Seconds()
			remaining := totalRows - result.RowsWritten
			var eta time.Duration
			if rate > 0 {
				eta = time.Duration(float64(remaining)/rate) * time.Second
			}
			r.log.Info("progress",
				zap.Int64("rows_written", result.RowsWritten),
				zap.Int64("total_rows", totalRows),
				zap.Duration("elapsed", elapsed),
				zap.Float64("rows_per_second", rate),
				zap.Duration("eta", eta),
			)
		}
	}

	result.Duration = time.Since(start)
	return result, nil
}

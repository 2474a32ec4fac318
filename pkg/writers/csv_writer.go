package writers

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/csv"
	"github.com/datasmith/datasmith/pkg/core"
)

// CSVWriter implements a streaming writer for delimited tabular files. The
// header row is emitted exactly once on the first write; later records append
// rows to the same file. Each record is flushed as a unit.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
	schema *arrow.Schema
	delim  rune
}

// NewCSVWriter creates a new CSV writer.
func NewCSVWriter(config core.WriterConfig) (core.BatchWriter, error) {
	if config.Path == "" {
		return nil, errors.New("path is required for CSV writer")
	}

	file, err := os.Create(config.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV file: %w", err)
	}

	delim := config.Delimiter
	if delim == 0 {
		delim = ','
	}

	// The underlying writer is created on the first record because it needs
	// the schema.
	return &CSVWriter{
		file:  file,
		delim: delim,
	}, nil
}

// Write appends a record to the file, flushing it before returning so a batch
// is never left partially buffered.
func (w *CSVWriter) Write(ctx context.Context, record arrow.Record) error {
	// Check if context is canceled
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if w.writer == nil {
		schema := record.Schema()
		w.writer = csv.NewWriter(w.file, schema,
			csv.WithComma(w.delim),
			csv.WithHeader(true),
			csv.WithNullWriter(""),
		)
		w.schema = schema
	}

	if err := w.writer.Write(record); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	if err := w.writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush record: %w", err)
	}
	return nil
}

// Schema returns the schema seen on the first write, or nil before that.
func (w *CSVWriter) Schema() *arrow.Schema {
	return w.schema
}

// Close flushes pending data and closes the file.
func (w *CSVWriter) Close() error {
	var err error

	if w.writer != nil {
		if flushErr := w.writer.Flush(); flushErr != nil {
			err = flushErr
		}
	}

	if w.file != nil {
		if closeErr := w.file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		w.file = nil
	}

	return err
}

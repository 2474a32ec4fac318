// Package core provides the core types and interfaces for the datasmith generation engine.
package core

import (
	"context"

	"github.com/apache/arrow-go/v18/arrow"
)

// Value represents one scalar cell of a generated row before serialization.
// A missing value (Null) is written to the sink as an empty cell; the literal
// string "NULL" is a distinct, second null encoding and travels as a plain string.
type Value struct {
	// Raw is the string form of the value.
	Raw string

	// Null marks the value as missing.
	Null bool
}

// String wraps a string in a Value.
func String(s string) Value {
	return Value{Raw: s}
}

// Missing returns a missing value.
func Missing() Value {
	return Value{Null: true}
}

// IsNull reports whether the value is missing.
func (v Value) IsNull() bool {
	return v.Null
}

// BatchGenerator defines an interface for producing record batches.
type BatchGenerator interface {
	// Generate produces one batch of exactly size rows. The batch index seeds
	// the batch's randomness stream so batches are independently reproducible.
	Generate(batchIndex int, size int) (arrow.Record, error)

	// Schema returns the schema shared by all generated batches.
	Schema() *arrow.Schema
}

// BatchWriter defines an interface for writing record batches to a sink.
type BatchWriter interface {
	// Write appends a record to the sink. The first write emits the header.
	Write(ctx context.Context, record arrow.Record) error

	// Close closes the writer and flushes any pending data.
	Close() error
}

// WriterConfig provides configuration for creating a writer.
type WriterConfig struct {
	// Type is the type of the writer.
	Type string

	// Path is the path to the output file.
	Path string

	// Delimiter is the field separator. Zero means comma.
	Delimiter rune
}

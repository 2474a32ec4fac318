package writers

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/datasmith/datasmith/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringRecord(t *testing.T, cols []string, rows [][]string) arrow.Record {
	t.Helper()

	fields := make([]arrow.Field, len(cols))
	for i, name := range cols {
		fields[i] = arrow.Field{Name: name, Type: arrow.BinaryTypes.String, Nullable: true}
	}
	schema := arrow.NewSchema(fields, nil)

	b := array.NewRecordBuilder(memory.NewGoAllocator(), schema)
	defer b.Release()

	for col := range cols {
		sb := b.Field(col).(*array.StringBuilder)
		for _, row := range rows {
			if row[col] == "<null>" {
				sb.AppendNull()
			} else {
				sb.Append(row[col])
			}
		}
	}
	return b.NewRecord()
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestCSVWriterRequiresPath(t *testing.T) {
	_, err := NewCSVWriter(core.WriterConfig{Type: "csv"})
	assert.Error(t, err)
}

func TestCSVWriterHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	w, err := NewCSVWriter(core.WriterConfig{Type: "csv", Path: path})
	require.NoError(t, err)

	cols := []string{"id", "status"}
	rec1 := stringRecord(t, cols, [][]string{{"1", "shipped"}, {"2", "pending"}})
	defer rec1.Release()
	rec2 := stringRecord(t, cols, [][]string{{"3", "delivered"}})
	defer rec2.Release()

	ctx := context.Background()
	require.NoError(t, w.Write(ctx, rec1))
	require.NoError(t, w.Write(ctx, rec2))
	require.NoError(t, w.Close())

	lines := readCSV(t, path)
	require.Len(t, lines, 4)
	assert.Equal(t, cols, lines[0])
	assert.Equal(t, []string{"1", "shipped"}, lines[1])
	assert.Equal(t, []string{"3", "delivered"}, lines[3])
}

func TestCSVWriterNullCells(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	w, err := NewCSVWriter(core.WriterConfig{Type: "csv", Path: path})
	require.NoError(t, err)

	rec := stringRecord(t, []string{"a", "b"}, [][]string{{"x", "<null>"}})
	defer rec.Release()

	require.NoError(t, w.Write(context.Background(), rec))
	require.NoError(t, w.Close())

	lines := readCSV(t, path)
	require.Len(t, lines, 2)
	// Missing cells render as empty fields.
	assert.Equal(t, []string{"x", ""}, lines[1])
}

func TestCSVWriterContextCanceled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	w, err := NewCSVWriter(core.WriterConfig{Type: "csv", Path: path})
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := stringRecord(t, []string{"a"}, [][]string{{"x"}})
	defer rec.Release()

	assert.ErrorIs(t, w.Write(ctx, rec), context.Canceled)
}

func TestCSVWriterDoubleClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	w, err := NewCSVWriter(core.WriterConfig{Type: "csv", Path: path})
	require.NoError(t, err)

	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestFactoryCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	w, err := DefaultFactory.Create(core.WriterConfig{Type: "csv", Path: path})
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = DefaultFactory.Create(core.WriterConfig{Type: "parquet", Path: path})
	assert.Error(t, err)
}

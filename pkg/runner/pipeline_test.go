package runner

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/datasmith/datasmith/pkg/catalog"
	"github.com/datasmith/datasmith/pkg/core"
	"github.com/datasmith/datasmith/pkg/corrupt"
	"github.com/datasmith/datasmith/pkg/generator"
	"github.com/datasmith/datasmith/pkg/writers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runPipeline generates totalRows rows with the full stack and returns the
// output path.
func runPipeline(t *testing.T, dir string, name string, seed, totalRows, batchSize int64) string {
	t.Helper()

	cat, err := catalog.Build(seed)
	require.NoError(t, err)

	gen, err := generator.New(generator.Options{
		Catalog:           cat,
		Seed:              seed,
		WarehouseAffinity: 0.8,
		ShippingAffinity:  0.85,
		Injector:          corrupt.NewInjector(),
		ZipRule:           corrupt.NewZipRule(cat.Geography, nil),
	})
	require.NoError(t, err)

	path := filepath.Join(dir, name)
	w, err := writers.DefaultFactory.Create(core.WriterConfig{Type: "csv", Path: path})
	require.NoError(t, err)

	r, err := New(Options{Generator: gen, Writer: w})
	require.NoError(t, err)

	res, err := r.Run(context.Background(), totalRows, batchSize)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.Equal(t, totalRows, res.RowsWritten)

	return path
}

func TestPipelineRowAndColumnCounts(t *testing.T) {
	dir := t.TempDir()
	path := runPipeline(t, dir, "out.csv", 42, 1000, 500)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	reader := csv.NewReader(f)
	lines, err := reader.ReadAll()
	require.NoError(t, err)

	// Header plus exactly one line per row, constant column count throughout.
	require.Len(t, lines, 1001)
	require.Len(t, lines[0], len(generator.Columns()))
	assert.Equal(t, generator.Columns(), lines[0])
	for i, line := range lines {
		require.Len(t, line, len(lines[0]), "line %d", i)
	}
}

func TestPipelineTinyDataset(t *testing.T) {
	dir := t.TempDir()
	path := runPipeline(t, dir, "tiny.csv", 42, 7, 500)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	lines, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	assert.NotEmpty(t, raw)
	assert.Len(t, lines, 8)
}

func TestPipelineDeterministic(t *testing.T) {
	dir := t.TempDir()
	a := runPipeline(t, dir, "a.csv", 42, 1000, 250)
	b := runPipeline(t, dir, "b.csv", 42, 1000, 250)

	rawA, err := os.ReadFile(a)
	require.NoError(t, err)
	rawB, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.Equal(t, rawA, rawB, "same seed must produce byte-identical output")

	c := runPipeline(t, dir, "c.csv", 43, 1000, 250)
	rawC, err := os.ReadFile(c)
	require.NoError(t, err)
	assert.NotEqual(t, rawA, rawC, "different seeds must diverge")
}

package runner

import (
	"context"
	"errors"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	sizes   []int
	indices []int
	err     error
}

func (g *fakeGenerator) Schema() *arrow.Schema {
	return arrow.NewSchema([]arrow.Field{
		{Name: "v", Type: arrow.BinaryTypes.String, Nullable: true},
	}, nil)
}

func (g *fakeGenerator) Generate(batchIndex, size int) (arrow.Record, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.indices = append(g.indices, batchIndex)
	g.sizes = append(g.sizes, size)

	b := array.NewRecordBuilder(memory.NewGoAllocator(), g.Schema())
	defer b.Release()
	sb := b.Field(0).(*array.StringBuilder)
	for i := 0; i < size; i++ {
		sb.Append("x")
	}
	return b.NewRecord(), nil
}

type fakeWriter struct {
	writes []int64
	err    error
}

func (w *fakeWriter) Write(_ context.Context, record arrow.Record) error {
	if w.err != nil {
		return w.err
	}
	w.writes = append(w.writes, record.NumRows())
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestNewValidation(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)

	_, err = New(Options{Generator: &fakeGenerator{}})
	assert.Error(t, err)
}

func TestRunExactBatches(t *testing.T) {
	gen := &fakeGenerator{}
	w := &fakeWriter{}
	r, err := New(Options{Generator: gen, Writer: w})
	require.NoError(t, err)

	res, err := r.Run(context.Background(), 1000, 500)
	require.NoError(t, err)

	assert.Equal(t, int64(1000), res.RowsWritten)
	assert.Equal(t, 2, res.Batches)
	assert.Equal(t, []int{500, 500}, gen.sizes)
	assert.Equal(t, []int{0, 1}, gen.indices)
	assert.Equal(t, []int64{500, 500}, w.writes)
}

func TestRunRemainderBatch(t *testing.T) {
	gen := &fakeGenerator{}
	w := &fakeWriter{}
	r, err := New(Options{Generator: gen, Writer: w})
	require.NoError(t, err)

	res, err := r.Run(context.Background(), 1200, 500)
	require.NoError(t, err)

	assert.Equal(t, int64(1200), res.RowsWritten)
	assert.Equal(t, 3, res.Batches)
	assert.Equal(t, []int{500, 500, 200}, gen.sizes)
}

func TestRunSmallerThanBatch(t *testing.T) {
	gen := &fakeGenerator{}
	w := &fakeWriter{}
	r, err := New(Options{Generator: gen, Writer: w})
	require.NoError(t, err)

	res, err := r.Run(context.Background(), 7, 500)
	require.NoError(t, err)

	assert.Equal(t, int64(7), res.RowsWritten)
	assert.Equal(t, 1, res.Batches)
	assert.Equal(t, []int{7}, gen.sizes)
}

func TestRunInvalidArgs(t *testing.T) {
	r, err := New(Options{Generator: &fakeGenerator{}, Writer: &fakeWriter{}})
	require.NoError(t, err)

	_, err = r.Run(context.Background(), 0, 500)
	assert.Error(t, err)
	_, err = r.Run(context.Background(), 1000, 0)
	assert.Error(t, err)
	_, err = r.Run(context.Background(), -1, -1)
	assert.Error(t, err)
}

func TestRunCanceledBeforeStart(t *testing.T) {
	gen := &fakeGenerator{}
	w := &fakeWriter{}
	r, err := New(Options{Generator: gen, Writer: w})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := r.Run(ctx, 1000, 500)
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Equal(t, int64(0), res.RowsWritten)
	assert.Empty(t, gen.sizes)
}

func TestRunGeneratorError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("boom")}
	w := &fakeWriter{}
	r, err := New(Options{Generator: gen, Writer: w})
	require.NoError(t, err)

	res, err := r.Run(context.Background(), 1000, 500)
	assert.ErrorContains(t, err, "generating batch 0")
	require.NotNil(t, res)
	assert.Equal(t, 0, res.Batches)
}

func TestRunWriterError(t *testing.T) {
	gen := &fakeGenerator{}
	w := &fakeWriter{err: errors.New("disk full")}
	r, err := New(Options{Generator: gen, Writer: w})
	require.NoError(t, err)

	res, err := r.Run(context.Background(), 1000, 500)
	assert.ErrorContains(t, err, "writing batch 0")
	require.NotNil(t, res)
	assert.Equal(t, int64(0), res.RowsWritten)
}

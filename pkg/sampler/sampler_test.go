package sampler

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightedListEmpty(t *testing.T) {
	l := NewWeightedList()
	rng := rand.New(rand.NewSource(1))
	_, err := l.Draw(rng)
	assert.Error(t, err)
}

func TestWeightedListExpansion(t *testing.T) {
	l := NewWeightedList()
	l.Add("heavy", 8)
	l.Add("light", 1)
	l.Add("ignored", 0)
	l.Add("negative", -3)
	assert.Equal(t, 9, l.Len())
}

func TestWeightedListRatio(t *testing.T) {
	l := NewWeightedList()
	l.Add("heavy", 8)
	l.Add("light", 1)

	rng := rand.New(rand.NewSource(42))
	counts := map[string]int{}
	const draws = 90000
	for i := 0; i < draws; i++ {
		id, err := l.Draw(rng)
		require.NoError(t, err)
		counts[id]++
	}

	// Heavy should come out roughly 8x as often as light.
	ratio := float64(counts["heavy"]) / float64(counts["light"])
	assert.InDelta(t, 8.0, ratio, 0.8)
}

func TestWeightedListUniformDegenerate(t *testing.T) {
	// All weights equal: behavior degenerates to uniform sampling.
	l := NewWeightedList()
	ids := []string{"a", "b", "c", "d"}
	for _, id := range ids {
		l.Add(id, 3)
	}

	rng := rand.New(rand.NewSource(42))
	counts := map[string]int{}
	const draws = 40000
	for i := 0; i < draws; i++ {
		id, err := l.Draw(rng)
		require.NoError(t, err)
		counts[id]++
	}

	for _, id := range ids {
		assert.InDelta(t, draws/len(ids), counts[id], float64(draws)*0.02, "id %s", id)
	}
}

func TestDrawReseeding(t *testing.T) {
	l := NewWeightedList()
	l.Add("a", 2)
	l.Add("b", 5)
	l.Add("c", 1)

	first := make([]string, 50)
	rng := rand.New(rand.NewSource(7))
	for i := range first {
		first[i], _ = l.Draw(rng)
	}

	second := make([]string, 50)
	rng = rand.New(rand.NewSource(7))
	for i := range second {
		second[i], _ = l.Draw(rng)
	}

	assert.Equal(t, first, second)
}

func TestGate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		assert.False(t, Gate(rng, 0))
		assert.True(t, Gate(rng, 1))
	}
}

func TestChoice(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	items := []string{"x", "y", "z"}
	for i := 0; i < 50; i++ {
		assert.Contains(t, items, Choice(rng, items))
	}
}

// Package sampler provides weighted and uniform random selection over reference pools.
package sampler

import (
	"errors"
	"math/rand"
)

// WeightedList is a draw list where elements are pre-expanded in proportion to
// their weight, trading O(n*maxWeight) memory for O(1) draws.
type WeightedList struct {
	entries []string
}

// NewWeightedList creates an empty weighted draw list.
func NewWeightedList() *WeightedList {
	return &WeightedList{}
}

// Add appends an element with the given weight. Non-positive weights are ignored.
func (l *WeightedList) Add(id string, weight int) {
	for i := 0; i < weight; i++ {
		l.entries = append(l.entries, id)
	}
}

// Draw returns a uniformly random entry of the expanded list, so higher-weight
// elements are selected proportionally more often.
func (l *WeightedList) Draw(rng *rand.Rand) (string, error) {
	if len(l.entries) == 0 {
		return "", errors.New("draw from empty weighted list")
	}
	return l.entries[rng.Intn(len(l.entries))], nil
}

// Len returns the expanded length of the draw list.
func (l *WeightedList) Len() int {
	return len(l.entries)
}

// Choice returns a uniformly random element of items.
func Choice(rng *rand.Rand, items []string) string {
	return items[rng.Intn(len(items))]
}

// ChoiceIndex returns a uniformly random index into a collection of length n.
func ChoiceIndex(rng *rand.Rand, n int) int {
	return rng.Intn(n)
}

// Gate reports true with probability p.
func Gate(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

package corrupt

import (
	"math/rand"
	"testing"

	"github.com/datasmith/datasmith/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zipFixture(t *testing.T) (*catalog.Geography, string, string, string) {
	t.Helper()
	cat, err := catalog.Build(42)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	pair := cat.Geography.DrawPair(rng)
	zip := cat.Geography.RandomZipFor(rng, pair.City, pair.State)
	require.NotEmpty(t, zip)
	return cat.Geography, zip, pair.City, pair.State
}

func TestZipRuleRateZero(t *testing.T) {
	geo, zip, city, state := zipFixture(t)
	rule := NewZipRule(geo, nil)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		out := rule.Corrupt(rng, zip, city, state, 0)
		require.False(t, out.IsNull())
		assert.Equal(t, zip, out.Raw)
	}
}

func TestZipRuleDefectShapes(t *testing.T) {
	geo, zip, city, state := zipFixture(t)

	counts := map[string]int{}
	rule := NewZipRule(geo, func(field, kind string) {
		assert.Equal(t, "shipping_zip", field)
		counts[kind]++
	})

	rng := rand.New(rand.NewSource(42))
	invalid := map[string]bool{}
	for _, s := range invalidZipShapes {
		invalid[s] = true
	}
	own := map[string]bool{}
	for _, z := range geo.ZipsFor(city, state) {
		own[z] = true
	}

	borrowed, unknown := 0, 0
	for i := 0; i < 4000; i++ {
		out := rule.Corrupt(rng, zip, city, state, 1)
		if out.IsNull() || out.Raw == "NULL" {
			continue
		}
		if invalid[out.Raw] {
			continue
		}
		// Remaining shapes are five digits: either a real ZIP borrowed from a
		// different city/state, or a well-formed ZIP absent from the catalog.
		require.Len(t, out.Raw, 5)
		if _, known := geo.LookupZip(out.Raw); known {
			if !own[out.Raw] {
				borrowed++
			}
		} else {
			unknown++
		}
	}
	assert.Greater(t, borrowed, 500, "cross-city mismatches")
	assert.Greater(t, unknown, 500, "well-formed unknown ZIPs")

	// All four defect classes fire under a uniform split.
	for _, kind := range []string{"null", "mismatch", "invalid_format", "invalid_zip"} {
		assert.Greater(t, counts[kind], 500, kind)
	}
}

func TestZipRuleDeterministic(t *testing.T) {
	geo, zip, city, state := zipFixture(t)

	run := func() []string {
		rule := NewZipRule(geo, nil)
		rng := rand.New(rand.NewSource(7))
		out := make([]string, 300)
		for i := range out {
			v := rule.Corrupt(rng, zip, city, state, 0.5)
			out[i] = v.Raw
		}
		return out
	}

	assert.Equal(t, run(), run())
}

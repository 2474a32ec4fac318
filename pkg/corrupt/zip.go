package corrupt

import (
	"math/rand"
	"strconv"

	"github.com/datasmith/datasmith/pkg/catalog"
	"github.com/datasmith/datasmith/pkg/core"
)

var invalidZipShapes = []string{"1234", "ABCDE", "00000-000", "ZIP123", "12AB5"}

// ZipRule corrupts shipping ZIP codes. It is not routed through the generic
// injector because its defect shapes need the geography catalog: a ZIP
// borrowed from a different city/state (foreign-key mismatch), a syntactically
// invalid shape, or a well-formed ZIP that exists nowhere. The input must be
// the geography-correct ZIP for the chosen shipping city/state.
type ZipRule struct {
	geo      *catalog.Geography
	observer Observer
}

// NewZipRule creates a ZIP corruption rule over the geography catalog.
func NewZipRule(geo *catalog.Geography, obs Observer) *ZipRule {
	return &ZipRule{geo: geo, observer: obs}
}

// Corrupt replaces the correct ZIP with one of the ZIP defect shapes with
// probability rate.
func (z *ZipRule) Corrupt(rng *rand.Rand, zip, city, state string, rate float64) core.Value {
	if rate <= 0 || rng.Float64() > rate {
		return core.String(zip)
	}

	var out core.Value
	var kind string

	switch rng.Intn(4) {
	case 0:
		kind = "null"
		out = nullValue(rng)
	case 1:
		// Borrow a correct ZIP from a different city/state.
		kind = "mismatch"
		wrong := z.geo.DrawPairExcept(rng, catalog.CityState{City: city, State: state})
		out = core.String(z.geo.RandomZipFor(rng, wrong.City, wrong.State))
	case 2:
		kind = "invalid_format"
		out = core.String(invalidZipShapes[rng.Intn(len(invalidZipShapes))])
	default:
		// Well-formed five digits, but no such ZIP in the catalog.
		kind = "invalid_zip"
		out = core.String(strconv.Itoa(10000 + rng.Intn(90000)))
	}

	if z.observer != nil {
		z.observer("shipping_zip", kind)
	}
	return out
}

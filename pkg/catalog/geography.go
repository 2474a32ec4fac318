package catalog

import (
	"errors"
	"fmt"
	"math/rand"
)

// CityState identifies a geography entry.
type CityState struct {
	City  string
	State string
}

// geoEntry pairs a city/state with its valid ZIP codes. Kept as an ordered
// slice so random draws are stable across builds.
type geoEntry struct {
	CityState
	zips []string
}

var geoEntries = []geoEntry{
	{CityState{"New York", "NY"}, []string{"10001", "10002", "10003", "10004", "10005", "10010", "10011", "10012", "10013", "10014"}},
	{CityState{"Los Angeles", "CA"}, []string{"90001", "90002", "90003", "90004", "90005", "90210", "90211", "90212", "90213", "90220"}},
	{CityState{"Chicago", "IL"}, []string{"60601", "60602", "60603", "60604", "60605", "60610", "60611", "60612", "60613", "60614"}},
	{CityState{"Houston", "TX"}, []string{"77001", "77002", "77003", "77004", "77005", "77010", "77011", "77012", "77013", "77014"}},
	{CityState{"Phoenix", "AZ"}, []string{"85001", "85002", "85003", "85004", "85005", "85006", "85007", "85008", "85009", "85010"}},
	{CityState{"Philadelphia", "PA"}, []string{"19101", "19102", "19103", "19104", "19105", "19106", "19107", "19108", "19109", "19110"}},
	{CityState{"San Antonio", "TX"}, []string{"78201", "78202", "78203", "78204", "78205", "78210", "78211", "78212", "78213", "78214"}},
	{CityState{"San Diego", "CA"}, []string{"92101", "92102", "92103", "92104", "92105", "92106", "92107", "92108", "92109", "92110"}},
	{CityState{"Dallas", "TX"}, []string{"75201", "75202", "75203", "75204", "75205", "75206", "75207", "75208", "75209", "75210"}},
	{CityState{"San Jose", "CA"}, []string{"95101", "95102", "95103", "95104", "95105", "95106", "95107", "95108", "95109", "95110"}},
	{CityState{"Austin", "TX"}, []string{"78701", "78702", "78703", "78704", "78705", "78710", "78711", "78712", "78713", "78714"}},
	{CityState{"Jacksonville", "FL"}, []string{"32201", "32202", "32203", "32204", "32205", "32206", "32207", "32208", "32209", "32210"}},
	{CityState{"Fort Worth", "TX"}, []string{"76101", "76102", "76103", "76104", "76105", "76106", "76107", "76108", "76109", "76110"}},
	{CityState{"Columbus", "OH"}, []string{"43201", "43202", "43203", "43204", "43205", "43206", "43207", "43208", "43209", "43210"}},
	{CityState{"Charlotte", "NC"}, []string{"28201", "28202", "28203", "28204", "28205", "28206", "28207", "28208", "28209", "28210"}},
	{CityState{"Seattle", "WA"}, []string{"98101", "98102", "98103", "98104", "98105", "98106", "98107", "98108", "98109", "98110"}},
	{CityState{"Denver", "CO"}, []string{"80201", "80202", "80203", "80204", "80205", "80206", "80207", "80208", "80209", "80210"}},
	{CityState{"Boston", "MA"}, []string{"02101", "02102", "02103", "02104", "02105", "02106", "02107", "02108", "02109", "02110"}},
	{CityState{"Nashville", "TN"}, []string{"37201", "37202", "37203", "37204", "37205", "37206", "37207", "37208", "37209", "37210"}},
	{CityState{"Baltimore", "MD"}, []string{"21201", "21202", "21203", "21204", "21205", "21206", "21207", "21208", "21209", "21210"}},
}

// Geography maps (city, state) to its valid ZIP set and every ZIP back to its
// owning city/state. Each ZIP belongs to exactly one city/state pair.
type Geography struct {
	entries []geoEntry
	byPair  map[CityState][]string
	byZip   map[string]CityState
	allZips []string
	pairs   []CityState
}

func buildGeography() (*Geography, error) {
	if len(geoEntries) == 0 {
		return nil, errors.New("empty geography table")
	}

	geo := &Geography{
		entries: geoEntries,
		byPair:  make(map[CityState][]string, len(geoEntries)),
		byZip:   make(map[string]CityState),
	}

	for _, e := range geoEntries {
		if len(e.zips) == 0 {
			return nil, fmt.Errorf("city %s, %s has no ZIP codes", e.City, e.State)
		}
		geo.byPair[e.CityState] = e.zips
		geo.pairs = append(geo.pairs, e.CityState)
		for _, zip := range e.zips {
			if owner, dup := geo.byZip[zip]; dup {
				return nil, fmt.Errorf("ZIP %s claimed by both %s, %s and %s, %s",
					zip, owner.City, owner.State, e.City, e.State)
			}
			geo.byZip[zip] = e.CityState
			geo.allZips = append(geo.allZips, zip)
		}
	}

	return geo, nil
}

// ZipsFor returns the valid ZIP codes for a city/state pair, or nil when the
// pair is not in the catalog.
func (g *Geography) ZipsFor(city, state string) []string {
	return g.byPair[CityState{City: city, State: state}]
}

// RandomZipFor returns a random valid ZIP for the city/state pair, falling
// back to an arbitrary valid ZIP when the pair is unknown.
func (g *Geography) RandomZipFor(rng *rand.Rand, city, state string) string {
	zips := g.ZipsFor(city, state)
	if len(zips) == 0 {
		return g.AnyZip(rng)
	}
	return zips[rng.Intn(len(zips))]
}

// AnyZip returns an arbitrary valid ZIP code.
func (g *Geography) AnyZip(rng *rand.Rand) string {
	return g.allZips[rng.Intn(len(g.allZips))]
}

// IsValid reports whether zip is a correct ZIP for the city/state pair.
func (g *Geography) IsValid(zip, city, state string) bool {
	owner, ok := g.byZip[zip]
	return ok && owner.City == city && owner.State == state
}

// LookupZip returns the city/state owning a ZIP code.
func (g *Geography) LookupZip(zip string) (CityState, bool) {
	cs, ok := g.byZip[zip]
	return cs, ok
}

// Pairs returns every city/state pair in catalog order.
func (g *Geography) Pairs() []CityState {
	return g.pairs
}

// DrawPair returns a uniformly random city/state pair.
func (g *Geography) DrawPair(rng *rand.Rand) CityState {
	return g.pairs[rng.Intn(len(g.pairs))]
}

// DrawPairExcept returns a uniformly random city/state pair other than the
// given one. Used by the ZIP-mismatch defect.
func (g *Geography) DrawPairExcept(rng *rand.Rand, exclude CityState) CityState {
	for {
		cs := g.pairs[rng.Intn(len(g.pairs))]
		if cs != exclude {
			return cs
		}
	}
}

// ZipCount returns the number of valid ZIP codes in the catalog.
func (g *Geography) ZipCount() int {
	return len(g.allZips)
}

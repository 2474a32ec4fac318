package catalog

import (
	"errors"
	"fmt"
	"math/rand"
)

const warehousesPerCity = 5

// warehouseCities are the 10 fulfillment cities, 5 warehouses each.
var warehouseCities = []CityState{
	{"New York", "NY"}, {"Los Angeles", "CA"}, {"Chicago", "IL"}, {"Houston", "TX"}, {"Phoenix", "AZ"},
	{"Philadelphia", "PA"}, {"San Antonio", "TX"}, {"San Diego", "CA"}, {"Dallas", "TX"}, {"San Jose", "CA"},
}

// Warehouse is one entry of the warehouse network.
type Warehouse struct {
	ID      string
	City    string
	State   string
	Country string
}

// WarehouseNetwork holds the warehouse pool plus a state index used for
// same-state affinity draws.
type WarehouseNetwork struct {
	byID    map[string]*Warehouse
	ids     []string
	byState map[string][]string
}

func buildWarehouses() (*WarehouseNetwork, error) {
	if len(warehouseCities) == 0 {
		return nil, errors.New("empty warehouse city table")
	}

	net := &WarehouseNetwork{
		byID:    make(map[string]*Warehouse, len(warehouseCities)*warehousesPerCity),
		byState: make(map[string][]string),
	}

	num := 1
	for _, cs := range warehouseCities {
		for i := 0; i < warehousesPerCity; i++ {
			w := &Warehouse{
				ID:      fmt.Sprintf("WH_%03d", num),
				City:    cs.City,
				State:   cs.State,
				Country: "US",
			}
			net.byID[w.ID] = w
			net.ids = append(net.ids, w.ID)
			net.byState[w.State] = append(net.byState[w.State], w.ID)
			num++
		}
	}

	return net, nil
}

// Warehouse returns the warehouse with the given id.
func (n *WarehouseNetwork) Warehouse(id string) (*Warehouse, bool) {
	w, ok := n.byID[id]
	return w, ok
}

// Draw selects a uniformly random warehouse id.
func (n *WarehouseNetwork) Draw(rng *rand.Rand) string {
	return n.ids[rng.Intn(len(n.ids))]
}

// DrawInState selects a warehouse in the given state. ok is false when the
// state has no warehouses, and the caller should fall back to Draw.
func (n *WarehouseNetwork) DrawInState(rng *rand.Rand, state string) (string, bool) {
	ids := n.byState[state]
	if len(ids) == 0 {
		return "", false
	}
	return ids[rng.Intn(len(ids))], true
}

// IDs returns the warehouse ids in build order.
func (n *WarehouseNetwork) IDs() []string {
	return n.ids
}

// Len returns the number of warehouses.
func (n *WarehouseNetwork) Len() int {
	return len(n.ids)
}

// Package catalog builds the immutable reference pools sampled during row generation.
//
// All pools are constructed once from a fixed seed and never mutated afterwards,
// so they can be shared freely between batches (and, later, between workers).
package catalog

import (
	"fmt"
	"math/rand"
)

// Catalog aggregates every reference pool needed to generate a row.
type Catalog struct {
	Customers  *CustomerPopulation
	Products   *ProductSet
	Warehouses *WarehouseNetwork
	Geography  *Geography
	Calendar   *Calendar
}

// Build constructs all catalogs deterministically from the seed. The same seed
// always yields byte-identical pools. Construction order is fixed because the
// pools share one random stream.
func Build(seed int64) (*Catalog, error) {
	rng := rand.New(rand.NewSource(seed))

	geo, err := buildGeography()
	if err != nil {
		return nil, fmt.Errorf("building geography: %w", err)
	}

	customers, err := buildCustomers(rng)
	if err != nil {
		return nil, fmt.Errorf("building customers: %w", err)
	}

	products, err := buildProducts(rng)
	if err != nil {
		return nil, fmt.Errorf("building products: %w", err)
	}

	warehouses, err := buildWarehouses()
	if err != nil {
		return nil, fmt.Errorf("building warehouses: %w", err)
	}

	cal, err := buildCalendar()
	if err != nil {
		return nil, fmt.Errorf("building calendar: %w", err)
	}

	return &Catalog{
		Customers:  customers,
		Products:   products,
		Warehouses: warehouses,
		Geography:  geo,
		Calendar:   cal,
	}, nil
}

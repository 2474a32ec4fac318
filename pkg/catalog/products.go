package catalog

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/shopspring/decimal"
)

// productCategory describes one category's subcategories, brand pool and price band.
type productCategory struct {
	name          string
	subcategories []string
	brands        []string
	minPrice      float64
	maxPrice      float64
}

var productCategories = []productCategory{
	{
		name: "Electronics",
		subcategories: []string{"Smartphones", "Laptops", "Speakers", "Headphones", "Tablets",
			"Smart TVs", "Washing Machines", "Refrigerators", "Microwaves", "Air Conditioners"},
		brands:   []string{"Apple", "Samsung", "Mi", "Sony", "LG", "HP", "Dell", "Asus"},
		minPrice: 25, maxPrice: 2500,
	},
	{
		name: "Apparel",
		subcategories: []string{"Shirts", "Pants", "Dresses", "Shoes", "Jackets",
			"T-Shirts", "Jeans", "Sneakers", "Formal Wear", "Accessories"},
		brands:   []string{"Nike", "Adidas", "Puma", "Asics", "Levi", "Zara", "H&M", "Gap"},
		minPrice: 10, maxPrice: 300,
	},
	{
		name: "Healthcare",
		subcategories: []string{"Vitamins", "Personal Care", "First Aid", "Medical Devices", "Skincare",
			"Dental Care", "Eye Care", "Baby Care", "Supplements", "Senior Care"},
		brands:   []string{"Johnson", "Nivea", "Oral-B", "Colgate", "Dove", "Neutrogena", "Cetaphil", "Pampers"},
		minPrice: 5, maxPrice: 200,
	},
	{
		name: "Sports",
		subcategories: []string{"Fitness Equipment", "Outdoor Gear", "Team Sports", "Running Shoes", "Yoga Equipment",
			"Swimming Gear", "Cycling", "Sports Apparel", "Nutrition", "Recovery"},
		brands:   []string{"Nike", "Adidas", "Under Armour", "Reebok", "Wilson", "Spalding", "Yonex", "Puma"},
		minPrice: 10, maxPrice: 600,
	},
	{
		name: "Groceries",
		subcategories: []string{"Fresh Produce", "Dairy", "Meat", "Snacks", "Beverages",
			"Canned Goods", "Frozen Foods", "Bakery", "Spices", "Organic Foods"},
		brands:   []string{"Organic Valley", "Nestle", "Kellogg", "Pepsi", "Coca Cola", "Kraft", "General Mills", "Tyson"},
		minPrice: 1, maxPrice: 50,
	},
}

var electronicsSuffixes = []string{"Pro", "Max", "Ultra", "Plus", "Mini", ""}
var genericSuffixes = []string{"Premium", "Classic", "Sport", "Deluxe", ""}

// Product is one entry of the product pool. Cost is always at most ListPrice
// because it is constructed as 40-80% of the list price.
type Product struct {
	ID          string
	Name        string
	Category    string
	Subcategory string
	Brand       string
	Cost        decimal.Decimal
	ListPrice   decimal.Decimal
}

// ProductSet holds the full product pool.
type ProductSet struct {
	byID map[string]*Product
	ids  []string
}

// buildProducts generates 8-12 products per subcategory across the five
// categories, roughly 500 products in total.
func buildProducts(rng *rand.Rand) (*ProductSet, error) {
	if len(productCategories) == 0 {
		return nil, errors.New("empty category table")
	}

	set := &ProductSet{byID: make(map[string]*Product)}
	num := 1

	for _, cat := range productCategories {
		suffixes := genericSuffixes
		if cat.name == "Electronics" {
			suffixes = electronicsSuffixes
		}

		for _, sub := range cat.subcategories {
			count := 8 + rng.Intn(5)
			for i := 0; i < count; i++ {
				brand := cat.brands[rng.Intn(len(cat.brands))]
				name := strings.TrimSpace(fmt.Sprintf("%s %s %s",
					brand, strings.TrimRight(sub, "s"), suffixes[rng.Intn(len(suffixes))]))

				list := decimal.NewFromFloat(cat.minPrice + rng.Float64()*(cat.maxPrice-cat.minPrice)).Round(2)
				// Cost is 40-80% of list price.
				factor := decimal.NewFromFloat(0.4 + rng.Float64()*0.4)
				cost := list.Mul(factor).Round(2)

				p := &Product{
					ID:          fmt.Sprintf("PRD_%03d", num),
					Name:        name,
					Category:    cat.name,
					Subcategory: sub,
					Brand:       brand,
					Cost:        cost,
					ListPrice:   list,
				}
				set.byID[p.ID] = p
				set.ids = append(set.ids, p.ID)
				num++
			}
		}
	}

	return set, nil
}

// Product returns the product with the given id.
func (s *ProductSet) Product(id string) (*Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// Draw selects a uniformly random product id.
func (s *ProductSet) Draw(rng *rand.Rand) string {
	return s.ids[rng.Intn(len(s.ids))]
}

// IDs returns the product ids in build order.
func (s *ProductSet) IDs() []string {
	return s.ids
}

// Len returns the number of products.
func (s *ProductSet) Len() int {
	return len(s.ids)
}

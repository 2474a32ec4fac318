package catalog

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/datasmith/datasmith/pkg/sampler"
	"github.com/google/uuid"
)

// Buyer tier sizes and draw weights. The tiers partition the customer set
// exactly: heavy buyers repeat roughly 8x as often as light buyers.
const (
	heavyBuyers    = 500
	moderateBuyers = 750

	heavyWeight    = 8
	moderateWeight = 3
	lightWeight    = 1
)

var firstNames = []string{
	"James", "Robert", "John", "Michael", "David", "William", "Richard", "Joseph", "Thomas", "Christopher",
	"Charles", "Daniel", "Matthew", "Anthony", "Mark", "Donald", "Steven", "Paul", "Andrew", "Kenneth",
	"Joshua", "Kevin", "Brian", "George", "Timothy", "Ronald", "Jason", "Edward", "Jeffrey", "Ryan",
	"Jacob", "Gary", "Nicholas", "Eric", "Jonathan", "Stephen", "Larry", "Justin", "Scott", "Brandon",
	"Benjamin", "Samuel", "Gregory", "Alexander", "Patrick", "Frank", "Raymond", "Jack", "Dennis", "Jerry",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez",
	"Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson",
	"Walker", "Young", "Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores",
	"Green", "Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell", "Mitchell", "Carter", "Roberts",
}

var genders = []string{"M", "F", "Other"}

// Customer is one entry of the customer pool.
type Customer struct {
	ID        string
	FullName  string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Age       int
	Gender    string
}

// CustomerPopulation holds the full customer pool plus the weighted draw list
// that produces realistic repeat-customer behavior.
type CustomerPopulation struct {
	byID     map[string]*Customer
	ids      []string // insertion order, stable across builds
	drawList *sampler.WeightedList
}

// buildCustomers generates the cross product of the two name lists (2,500
// customers) and partitions them into the three buyer tiers.
func buildCustomers(rng *rand.Rand) (*CustomerPopulation, error) {
	if len(firstNames) == 0 || len(lastNames) == 0 {
		return nil, errors.New("empty name lists")
	}

	pop := &CustomerPopulation{
		byID:     make(map[string]*Customer, len(firstNames)*len(lastNames)),
		drawList: sampler.NewWeightedList(),
	}

	for _, first := range firstNames {
		for _, last := range lastNames {
			id, err := uuid.NewRandomFromReader(rng)
			if err != nil {
				return nil, fmt.Errorf("generating customer id: %w", err)
			}
			c := &Customer{
				ID:        id.String(),
				FullName:  first + " " + last,
				FirstName: first,
				LastName:  last,
				Email:     strings.ToLower(first) + "." + strings.ToLower(last) + "@gmail.com",
				Phone:     randomPhone(rng),
				Age:       18 + rng.Intn(63),
				Gender:    genders[rng.Intn(len(genders))],
			}
			pop.byID[c.ID] = c
			pop.ids = append(pop.ids, c.ID)
		}
	}

	for i, id := range pop.ids {
		pop.drawList.Add(id, weightFor(i))
	}

	return pop, nil
}

// weightFor assigns a draw weight by the customer's position in the pool:
// the first 500 are heavy buyers, the next 750 moderate, the rest light.
func weightFor(position int) int {
	switch {
	case position < heavyBuyers:
		return heavyWeight
	case position < heavyBuyers+moderateBuyers:
		return moderateWeight
	default:
		return lightWeight
	}
}

// randomPhone formats a random US number in one of five literal formats, so the
// clean pool already carries format variety before any corruption.
func randomPhone(rng *rand.Rand) string {
	area := 200 + rng.Intn(800)
	exchange := 200 + rng.Intn(800)
	number := 1000 + rng.Intn(9000)

	switch rng.Intn(5) {
	case 0:
		return fmt.Sprintf("(%d) %d-%d", area, exchange, number)
	case 1:
		return fmt.Sprintf("%d-%d-%d", area, exchange, number)
	case 2:
		return fmt.Sprintf("%d.%d.%d", area, exchange, number)
	case 3:
		return fmt.Sprintf("+1%d%d%d", area, exchange, number)
	default:
		return fmt.Sprintf("%d%d%d", area, exchange, number)
	}
}

// Customer returns the customer with the given id.
func (p *CustomerPopulation) Customer(id string) (*Customer, bool) {
	c, ok := p.byID[id]
	return c, ok
}

// Draw selects a customer id from the weighted draw list.
func (p *CustomerPopulation) Draw(rng *rand.Rand) (string, error) {
	return p.drawList.Draw(rng)
}

// IDs returns the customer ids in build order.
func (p *CustomerPopulation) IDs() []string {
	return p.ids
}

// Len returns the number of unique customers.
func (p *CustomerPopulation) Len() int {
	return len(p.ids)
}

// DrawListLen returns the expanded size of the weighted draw list.
func (p *CustomerPopulation) DrawListLen() int {
	return p.drawList.Len()
}

// Tier reports the buyer tier weight for the customer at the given build position.
func (p *CustomerPopulation) Tier(position int) int {
	return weightFor(position)
}

// Package generator assembles batches of correlated, corrupted rows as Arrow records.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/datasmith/datasmith/pkg/catalog"
	"github.com/datasmith/datasmith/pkg/core"
	"github.com/datasmith/datasmith/pkg/corrupt"
	"github.com/datasmith/datasmith/pkg/rules"
	"github.com/datasmith/datasmith/pkg/sampler"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Options configures a Generator.
type Options struct {
	// Catalog is the immutable reference context every draw goes through.
	Catalog *catalog.Catalog

	// Seed derives each batch's randomness stream: batch n uses seed+n+1.
	Seed int64

	// WarehouseAffinity is the probability of picking a warehouse in the
	// customer's state.
	WarehouseAffinity float64

	// ShippingAffinity is the probability the shipping address echoes the
	// customer's city/state.
	ShippingAffinity float64

	// Rates overrides per-field corruption rates.
	Rates map[string]float64

	// Injector corrupts scalar values. Required.
	Injector *corrupt.Injector

	// ZipRule corrupts shipping ZIP codes. Required.
	ZipRule *corrupt.ZipRule

	// Allocator defaults to the Go allocator.
	Allocator memory.Allocator
}

// Generator produces one arrow.Record per batch. It holds no mutable state
// between batches; all shared data lives in the immutable catalog.
type Generator struct {
	cat    *catalog.Catalog
	seed   int64
	pWare  float64
	qShip  float64
	rates  map[string]float64
	inj    *corrupt.Injector
	zip    *corrupt.ZipRule
	mem    memory.Allocator
	schema *arrow.Schema
}

// New creates a Generator.
func New(opts Options) (*Generator, error) {
	if opts.Catalog == nil {
		return nil, errors.New("catalog is required")
	}
	if opts.Injector == nil {
		return nil, errors.New("corruption injector is required")
	}
	if opts.ZipRule == nil {
		return nil, errors.New("zip rule is required")
	}

	mem := opts.Allocator
	if mem == nil {
		mem = memory.NewGoAllocator()
	}

	rates := make(map[string]float64, len(defaultRates))
	for field, rate := range defaultRates {
		rates[field] = rate
	}
	for field, rate := range opts.Rates {
		if _, known := rates[field]; !known {
			return nil, fmt.Errorf("rate override for unknown field '%s'", field)
		}
		rates[field] = rate
	}

	fields := make([]arrow.Field, len(columnNames))
	for i, name := range columnNames {
		fields[i] = arrow.Field{Name: name, Type: arrow.BinaryTypes.String, Nullable: true}
	}

	return &Generator{
		cat:    opts.Catalog,
		seed:   opts.Seed,
		pWare:  opts.WarehouseAffinity,
		qShip:  opts.ShippingAffinity,
		rates:  rates,
		inj:    opts.Injector,
		zip:    opts.ZipRule,
		mem:    mem,
		schema: arrow.NewSchema(fields, nil),
	}, nil
}

// Schema returns the shared batch schema: every column is a nullable string,
// because corrupted cells may hold any shape.
func (g *Generator) Schema() *arrow.Schema {
	return g.schema
}

// Generate produces one batch of exactly size rows. The batch index seeds the
// batch's randomness stream, so batches are reproducible independently of each
// other.
func (g *Generator) Generate(batchIndex int, size int) (arrow.Record, error) {
	if size <= 0 {
		return nil, fmt.Errorf("batch size must be positive, got %d", size)
	}

	rng := rand.New(rand.NewSource(g.seed + int64(batchIndex) + 1))

	rows, err := g.generateClean(rng, size)
	if err != nil {
		return nil, err
	}

	b := array.NewRecordBuilder(g.mem, g.schema)
	defer b.Release()

	for col, name := range columnNames {
		builder := b.Field(col).(*array.StringBuilder)
		rate := g.rates[name]
		for i := range rows {
			v := g.cellValue(rng, name, rate, &rows[i])
			if v.IsNull() {
				builder.AppendNull()
			} else {
				builder.Append(v.Raw)
			}
		}
	}

	return b.NewRecord(), nil
}

// cellValue extracts one clean cell and layers corruption on top. The shipping
// ZIP has its own rule; everything else goes through the injector registry.
func (g *Generator) cellValue(rng *rand.Rand, name string, rate float64, r *cleanRow) core.Value {
	if name == "shipping_zip" {
		return g.zip.Corrupt(rng, r.shipZip, r.shipCity, r.shipState, rate)
	}
	return g.inj.Corrupt(rng, name, r.clean[name], rate)
}

// cleanRow carries one row's clean values plus the raw date values the
// formatting stage started from.
type cleanRow struct {
	clean     map[string]core.Value
	orderDate time.Time
	regDate   time.Time
	shipCity  string
	shipState string
	shipZip   string
}

// generateClean draws all entities and applies the correlation rules in
// dependency order: payment before order status, return before refund,
// city/state before ZIP, registration before order date.
func (g *Generator) generateClean(rng *rand.Rand, size int) ([]cleanRow, error) {
	rows := make([]cleanRow, size)

	for i := range rows {
		orderID, err := uuid.NewRandomFromReader(rng)
		if err != nil {
			return nil, fmt.Errorf("generating order id: %w", err)
		}

		entry := rules.OrderDate(rng, g.cat.Calendar)
		orderTime := fmt.Sprintf("%02d:%02d:%02d", rng.Intn(24), rng.Intn(60), rng.Intn(60))

		paymentStatus := rules.DrawPaymentStatus(rng)
		orderStatus := rules.OrderStatusForPayment(rng, paymentStatus)
		shippingCost := decimal.NewFromFloat(0.5 + rng.Float64()*9.49).Round(2)

		custID, err := g.cat.Customers.Draw(rng)
		if err != nil {
			return nil, fmt.Errorf("drawing customer: %w", err)
		}
		cust, _ := g.cat.Customers.Customer(custID)
		custLoc := g.cat.Geography.DrawPair(rng)
		regDate := rules.RegistrationDate(rng, entry.Date)

		prod, _ := g.cat.Products.Product(g.cat.Products.Draw(rng))

		whID, ok := "", false
		if sampler.Gate(rng, g.pWare) {
			whID, ok = g.cat.Warehouses.DrawInState(rng, custLoc.State)
		}
		if !ok {
			whID = g.cat.Warehouses.Draw(rng)
		}
		wh, _ := g.cat.Warehouses.Warehouse(whID)

		quantity := 1 + rng.Intn(10)
		lineTotal := prod.ListPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
		discountAmount := decimal.NewFromFloat(rng.Float64() * 50).Round(2)
		discountPercent := decimal.NewFromFloat(rng.Float64() * 25).Round(1)
		coupon := fmt.Sprintf("SAVE%d", 5+rng.Intn(46))

		paymentMethod := sampler.Choice(rng, catalog.PaymentMethods)
		returned, refunded := rules.ReturnRefundPair(rng)

		addr1 := fmt.Sprintf("%d %s", 1+rng.Intn(9999), sampler.Choice(rng, catalog.StreetNames))
		addr2 := fmt.Sprintf("Apt %d", 1+rng.Intn(999))

		shipLoc := rules.ShippingLocation(rng, custLoc, g.qShip, g.cat.Geography)
		// The correct ZIP is always resolved from the chosen shipping
		// city/state, never drawn independently.
		shipZip := g.cat.Geography.RandomZipFor(rng, shipLoc.City, shipLoc.State)

		rows[i] = cleanRow{
			orderDate: entry.Date,
			regDate:   regDate,
			clean: map[string]core.Value{
				"order_id":      core.String(orderID.String()),
				"order_date":    core.String(rules.FormatDate(rng, entry.Date)),
				"order_time":    core.String(orderTime),
				"order_status":  core.String(orderStatus),
				"shipping_cost": core.String(shippingCost.StringFixed(2)),

				"customer_id":                core.String(cust.ID),
				"customer_full_name":         core.String(cust.FullName),
				"customer_first_name":        core.String(cust.FirstName),
				"customer_last_name":         core.String(cust.LastName),
				"customer_email":             core.String(cust.Email),
				"customer_phone":             core.String(cust.Phone),
				"customer_age":               core.String(fmt.Sprintf("%d", cust.Age)),
				"customer_gender":            core.String(cust.Gender),
				"customer_registration_date": core.String(rules.FormatDate(rng, regDate)),
				"customer_city":              core.String(custLoc.City),
				"customer_state":             core.String(custLoc.State),

				"product_id":          core.String(prod.ID),
				"product_name":        core.String(prod.Name),
				"product_category":    core.String(prod.Category),
				"product_subcategory": core.String(prod.Subcategory),
				"product_brand":       core.String(prod.Brand),
				"product_cost":        core.String(prod.Cost.StringFixed(2)),
				"product_list_price":  core.String(prod.ListPrice.StringFixed(2)),

				"warehouse_id":      core.String(wh.ID),
				"warehouse_city":    core.String(wh.City),
				"warehouse_state":   core.String(wh.State),
				"warehouse_country": core.String(wh.Country),

				"quantity_ordered": core.String(fmt.Sprintf("%d", quantity)),
				"line_total":       core.String(lineTotal.StringFixed(2)),
				"discount_amount":  core.String(discountAmount.StringFixed(2)),
				"discount_percent": core.String(discountPercent.StringFixed(1)),
				"coupon_code":      core.String(coupon),
				"payment_method":   core.String(paymentMethod),
				"payment_status":   core.String(paymentStatus),
				"order_returned":   core.String(returned),
				"payment_refunded": core.String(refunded),

				"shipping_address_line1": core.String(addr1),
				"shipping_address_line2": core.String(addr2),
				"shipping_city":          core.String(shipLoc.City),
				"shipping_state":         core.String(shipLoc.State),
				"shipping_country":       core.String("US"),
				"shipping_method":        core.String(sampler.Choice(rng, catalog.ShippingMethods)),
			},
		}
		rows[i].shipCity = shipLoc.City
		rows[i].shipState = shipLoc.State
		rows[i].shipZip = shipZip
	}

	return rows, nil
}

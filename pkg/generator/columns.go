package generator

// columnNames fixes the output column order: order, customer, product,
// warehouse, transaction, then shipping namespaces.
var columnNames = []string{
	"order_id",
	"order_date",
	"order_time",
	"order_status",
	"shipping_cost",

	"customer_id",
	"customer_full_name",
	"customer_first_name",
	"customer_last_name",
	"customer_email",
	"customer_phone",
	"customer_age",
	"customer_gender",
	"customer_registration_date",
	"customer_city",
	"customer_state",

	"product_id",
	"product_name",
	"product_category",
	"product_subcategory",
	"product_brand",
	"product_cost",
	"product_list_price",

	"warehouse_id",
	"warehouse_city",
	"warehouse_state",
	"warehouse_country",

	"quantity_ordered",
	"line_total",
	"discount_amount",
	"discount_percent",
	"coupon_code",
	"payment_method",
	"payment_status",
	"order_returned",
	"payment_refunded",

	"shipping_address_line1",
	"shipping_address_line2",
	"shipping_city",
	"shipping_state",
	"shipping_zip",
	"shipping_country",
	"shipping_method",
}

// defaultRates are the per-field corruption rates. Identifier and reference
// columns stay clean (rate 0) so foreign keys remain joinable; address line 2
// and coupon codes are mostly missing, as they are in real order feeds.
var defaultRates = map[string]float64{
	"order_id":      0,
	"order_date":    0,
	"order_time":    0.05,
	"order_status":  0.06,
	"shipping_cost": 0.10,

	"customer_id":                0,
	"customer_full_name":         0,
	"customer_first_name":        0,
	"customer_last_name":         0,
	"customer_email":             0.12,
	"customer_phone":             0.12,
	"customer_age":               0.12,
	"customer_gender":            0.08,
	"customer_registration_date": 0,
	"customer_city":              0.07,
	"customer_state":             0.05,

	"product_id":          0,
	"product_name":        0,
	"product_category":    0,
	"product_subcategory": 0,
	"product_brand":       0,
	"product_cost":        0,
	"product_list_price":  0,

	"warehouse_id":      0,
	"warehouse_city":    0,
	"warehouse_state":   0,
	"warehouse_country": 0,

	"quantity_ordered": 0.08,
	"line_total":       0.05,
	"discount_amount":  0.40,
	"discount_percent": 0.45,
	"coupon_code":      0.70,
	"payment_method":   0.05,
	"payment_status":   0.04,
	"order_returned":   0.10,
	"payment_refunded": 0.10,

	"shipping_address_line1": 0,
	"shipping_address_line2": 0.65,
	"shipping_city":          0,
	"shipping_state":         0,
	"shipping_zip":           0.15,
	"shipping_country":       0.03,
	"shipping_method":        0.05,
}

// Columns returns the output column names in order.
func Columns() []string {
	out := make([]string, len(columnNames))
	copy(out, columnNames)
	return out
}

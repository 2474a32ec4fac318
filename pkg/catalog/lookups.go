package catalog

// Fixed enumerations shared by the generator and the correlation rules.
var (
	OrderStatuses   = []string{"pending", "confirmed", "shipped", "delivered", "cancelled"}
	PaymentMethods  = []string{"credit_card", "debit_card", "paypal", "apple_pay", "google_pay"}
	PaymentStatuses = []string{"success", "failed", "pending"}
	ShippingMethods = []string{"standard", "express", "overnight"}

	// ReturnValues is the return-flag vocabulary: several literal spellings of
	// "yes" and "no", plus pending.
	ReturnValues = []string{"yes", "no", "pending", "true", "false", "1", "0"}

	StreetNames = []string{"Main St", "Oak Ave", "Elm Dr", "First St", "Second Ave", "Park Rd", "Maple St", "Cedar Ave"}
)

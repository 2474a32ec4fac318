// Package rules holds the cross-field correlation rules. Every rule maps
// already-sampled clean values to a constrained dependent value and runs
// strictly before corruption, so business semantics hold on the clean row and
// defects are layered independently on top.
package rules

import (
	"math/rand"
	"time"

	"github.com/datasmith/datasmith/pkg/catalog"
	"github.com/datasmith/datasmith/pkg/sampler"
)

var (
	yesSpellings = []string{"yes", "true", "1"}
	noSpellings  = []string{"no", "false", "0"}
)

// DrawPaymentStatus draws a payment status from the fixed enumeration.
func DrawPaymentStatus(rng *rand.Rand) string {
	return sampler.Choice(rng, catalog.PaymentStatuses)
}

// OrderStatusForPayment constrains the order status by the payment outcome: a
// failed payment never yields a delivered order.
func OrderStatusForPayment(rng *rand.Rand, paymentStatus string) string {
	switch paymentStatus {
	case "failed":
		return sampler.Choice(rng, []string{"pending", "cancelled"})
	case "success":
		return sampler.Choice(rng, []string{"delivered", "shipped"})
	case "pending":
		return "pending"
	default:
		return "pending"
	}
}

// ReturnRefundPair draws a return flag and the refund flag correlated with it.
// Refund truthiness always matches return truthiness, but the literal spelling
// is drawn independently within the matching vocabulary. A "no" return never
// maps to a pending refund; refund pending is only reachable via return pending.
func ReturnRefundPair(rng *rand.Rand) (returned, refunded string) {
	returned = sampler.Choice(rng, catalog.ReturnValues)

	switch {
	case IsTruthy(returned):
		refunded = sampler.Choice(rng, yesSpellings)
	case returned == "pending":
		refunded = "pending"
	default:
		refunded = sampler.Choice(rng, noSpellings)
	}
	return returned, refunded
}

// IsTruthy reports whether s is one of the "yes" spellings.
func IsTruthy(s string) bool {
	for _, y := range yesSpellings {
		if s == y {
			return true
		}
	}
	return false
}

// IsFalsy reports whether s is one of the "no" spellings.
func IsFalsy(s string) bool {
	for _, n := range noSpellings {
		if s == n {
			return true
		}
	}
	return false
}

// OrderDate draws an order date with weekday seasonality: a weekday draw is
// kept with probability 0.7, otherwise redrawn uniformly.
func OrderDate(rng *rand.Rand, cal *catalog.Calendar) catalog.CalendarEntry {
	entry := cal.Draw(rng)
	if entry.IsWeekday && !sampler.Gate(rng, 0.7) {
		return cal.Draw(rng)
	}
	return entry
}

// RegistrationDate places the customer's registration a random 30-1095 days
// before the order date, so registration strictly precedes the order.
func RegistrationDate(rng *rand.Rand, orderDate time.Time) time.Time {
	daysBefore := 30 + rng.Intn(1066)
	return orderDate.AddDate(0, 0, -daysBefore)
}

// ShippingLocation echoes the customer's city/state with probability affinity,
// otherwise draws an independent pair from the geography catalog.
func ShippingLocation(rng *rand.Rand, customer catalog.CityState, affinity float64, geo *catalog.Geography) catalog.CityState {
	if sampler.Gate(rng, affinity) {
		return customer
	}
	return geo.DrawPair(rng)
}

// dateLayouts are the literal output formats order and registration dates are
// rendered in, simulating inconsistent date encodings across source systems.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02-Jan-2006",
	"02 January 2006",
	"Jan 02, 2006",
	"January 02, 2006",
}

// FormatDate renders t in one of the randomized date layouts.
func FormatDate(rng *rand.Rand, t time.Time) string {
	return t.Format(dateLayouts[rng.Intn(len(dateLayouts))])
}

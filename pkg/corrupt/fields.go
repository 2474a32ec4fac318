package corrupt

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/datasmith/datasmith/pkg/core"
)

// fallthrough routes the strategy's remaining probability mass to the generic table.
func fallthroughDefect(weight float64) Defect {
	return Defect{Kind: KindFallthrough, Weight: weight}
}

// emailStrategy: drop the separator or simulate a duplicate-entry cell joining
// two email-like strings.
func emailStrategy() *Strategy {
	return NewStrategy("email",
		Defect{Kind: "missing_separator", Weight: 0.30, Apply: func(_ *rand.Rand, v core.Value) core.Value {
			return core.String(strings.ReplaceAll(v.Raw, "@", ""))
		}},
		Defect{Kind: "duplicate_value", Weight: 0.20, Apply: func(_ *rand.Rand, v core.Value) core.Value {
			return core.String(v.Raw + "|" + strings.ReplaceAll(v.Raw, "gmail", "yahoo"))
		}},
		fallthroughDefect(0.50),
	)
}

// phoneStrategy: missing phone numbers are common; otherwise strip formatting.
func phoneStrategy() *Strategy {
	stripper := strings.NewReplacer("-", "", "(", "", ")", "", " ", "")
	return NewStrategy("phone",
		Defect{Kind: "null", Weight: 0.25, Apply: func(rng *rand.Rand, _ core.Value) core.Value {
			return nullValue(rng)
		}},
		Defect{Kind: "format_strip", Weight: 0.20, Apply: func(_ *rand.Rand, v core.Value) core.Value {
			return core.String(stripper.Replace(v.Raw))
		}},
		fallthroughDefect(0.55),
	)
}

// ageStrategy: out-of-range, textual, or missing ages.
func ageStrategy() *Strategy {
	return NewStrategy("age",
		Defect{Kind: "invalid_age", Weight: 0.15, Apply: func(rng *rand.Rand, _ core.Value) core.Value {
			shapes := []string{"-5", "150", "999", "25 years old"}
			if rng.Intn(len(shapes)+1) == len(shapes) {
				return core.Missing()
			}
			return core.String(shapes[rng.Intn(len(shapes))])
		}},
		fallthroughDefect(0.85),
	)
}

// quantityStrategy: impossible or textual quantities.
func quantityStrategy() *Strategy {
	return NewStrategy("quantity",
		Defect{Kind: "invalid_quantity", Weight: 0.08, Apply: func(rng *rand.Rand, _ core.Value) core.Value {
			shapes := []string{"-1", "0", "two", "", "999"}
			return core.String(shapes[rng.Intn(len(shapes))])
		}},
		fallthroughDefect(0.92),
	)
}

// priceStrategy: currency symbols sneaking into numeric columns, or a garbled
// numeric suffix. Both shapes only fire on numeric clean values.
func priceStrategy() *Strategy {
	return NewStrategy("price",
		Defect{Kind: "currency_symbol", Weight: 0.05, Apply: func(_ *rand.Rand, v core.Value) core.Value {
			if !isNumeric(v.Raw) {
				return v
			}
			return core.String(fmt.Sprintf("$%s", v.Raw))
		}},
		Defect{Kind: "format_error", Weight: 0.03, Apply: func(_ *rand.Rand, v core.Value) core.Value {
			if !isNumeric(v.Raw) {
				return v
			}
			return core.String(v.Raw + "_error")
		}},
		fallthroughDefect(0.92),
	)
}

// Package corrupt implements the probabilistic data-quality defect injector.
//
// Dispatch is a registry mapping field-name substrings to corruption
// strategies, with a generic strategy for unmatched fields. A strategy is a
// declarative table of weighted defect shapes, iterated in a fixed order with
// normalized weights, so every decision point is auditable and testable on its
// own. Corrupting an already-missing value is always a no-op.
package corrupt

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/datasmith/datasmith/pkg/core"
)

// KindFallthrough routes a field-specific strategy's residual probability mass
// to the generic defect table, mirroring the layered dispatch of real sources.
const KindFallthrough = "fallthrough"

// Transform rewrites a clean value into a defect shape.
type Transform func(rng *rand.Rand, v core.Value) core.Value

// Defect is one weighted entry of a strategy's defect table.
type Defect struct {
	Kind   string
	Weight float64
	Apply  Transform
}

// Strategy is an ordered, weighted table of defect shapes for one field class.
type Strategy struct {
	Name    string
	defects []Defect
	total   float64
}

// NewStrategy builds a strategy from its defect table.
func NewStrategy(name string, defects ...Defect) *Strategy {
	s := &Strategy{Name: name, defects: defects}
	for _, d := range defects {
		s.total += d.Weight
	}
	return s
}

// apply picks one defect by normalized weight and applies it, returning the
// resulting value and the defect kind that fired.
func (s *Strategy) apply(rng *rand.Rand, v core.Value) (core.Value, string) {
	if s.total <= 0 {
		return v, ""
	}
	roll := rng.Float64() * s.total
	for _, d := range s.defects {
		roll -= d.Weight
		if roll >= 0 {
			continue
		}
		if d.Apply == nil {
			return v, d.Kind
		}
		return d.Apply(rng, v), d.Kind
	}
	return v, ""
}

// Observer is notified of every defect that fires, keyed by field and kind.
type Observer func(field, kind string)

// Injector dispatches values to corruption strategies by field name.
type Injector struct {
	matchers []matcher
	generic  *Strategy
	observer Observer
}

type matcher struct {
	substr   string
	strategy *Strategy
}

// Option configures an Injector.
type Option func(*Injector)

// WithObserver installs a defect observer (e.g. a metrics counter).
func WithObserver(obs Observer) Option {
	return func(in *Injector) {
		in.observer = obs
	}
}

// NewInjector creates an injector with the built-in field strategies and the
// generic defect table registered.
func NewInjector(opts ...Option) *Injector {
	in := &Injector{generic: genericStrategy()}

	in.Register("email", emailStrategy())
	in.Register("phone", phoneStrategy())
	in.Register("age", ageStrategy())
	in.Register("quantity", quantityStrategy())
	price := priceStrategy()
	in.Register("price", price)
	in.Register("cost", price)
	in.Register("amount", price)
	in.Register("total", price)

	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Register maps a field-name substring to a strategy. Matchers are tried in
// registration order; the first match wins.
func (in *Injector) Register(substr string, s *Strategy) {
	in.matchers = append(in.matchers, matcher{substr: substr, strategy: s})
}

// strategyFor resolves the strategy claimed by a field name, defaulting to the
// generic table.
func (in *Injector) strategyFor(field string) *Strategy {
	for _, m := range in.matchers {
		if strings.Contains(field, m.substr) {
			return m.strategy
		}
	}
	return in.generic
}

// Corrupt replaces a clean value with a defect shape with probability rate.
// Missing values pass through untouched.
func (in *Injector) Corrupt(rng *rand.Rand, field string, v core.Value, rate float64) core.Value {
	if v.IsNull() {
		return v
	}
	if rate <= 0 || rng.Float64() > rate {
		return v
	}

	out, kind := in.strategyFor(field).apply(rng, v)
	if kind == KindFallthrough {
		out, kind = in.generic.apply(rng, v)
	}
	if in.observer != nil && kind != "" {
		in.observer(field, kind)
	}
	return out
}

// isNumeric reports whether the clean value parses as a number. The
// numeric-only defect shapes gate on this.
func isNumeric(raw string) bool {
	_, err := strconv.ParseFloat(raw, 64)
	return err == nil
}

// nullValue emits one of the two null encodings: a true missing cell 70% of
// the time, the literal string "NULL" otherwise.
func nullValue(rng *rand.Rand) core.Value {
	if rng.Float64() < 0.7 {
		return core.Missing()
	}
	return core.String("NULL")
}

// corruptionAlphabet supplies the interior replacement characters for typos.
const corruptionAlphabet = "xyz123@#"

// genericStrategy is the defect table applied when no field-specific strategy
// claims a field. Shapes that do not apply to the value (typo on short
// strings, format garble on non-numerics) leave it unchanged, matching the
// behavior of uniform defect routing in operational sources.
func genericStrategy() *Strategy {
	return NewStrategy("generic",
		Defect{Kind: "null", Weight: 1, Apply: func(rng *rand.Rand, _ core.Value) core.Value {
			return nullValue(rng)
		}},
		Defect{Kind: "multiple_values", Weight: 1, Apply: func(_ *rand.Rand, v core.Value) core.Value {
			if isNumeric(v.Raw) {
				return v
			}
			return core.String(v.Raw + "|" + v.Raw + "_alt")
		}},
		Defect{Kind: "typo", Weight: 1, Apply: func(rng *rand.Rand, v core.Value) core.Value {
			if len(v.Raw) <= 3 {
				return v
			}
			// Replace one interior character, never the first or last.
			pos := 1 + rng.Intn(len(v.Raw)-2)
			c := corruptionAlphabet[rng.Intn(len(corruptionAlphabet))]
			return core.String(v.Raw[:pos] + string(c) + v.Raw[pos+1:])
		}},
		Defect{Kind: "extra_space", Weight: 1, Apply: func(rng *rand.Rand, v core.Value) core.Value {
			if rng.Float64() < 0.5 {
				return core.String("  " + v.Raw + "  ")
			}
			return core.String(v.Raw + "   ")
		}},
		Defect{Kind: "case_issue", Weight: 1, Apply: func(rng *rand.Rand, v core.Value) core.Value {
			if isNumeric(v.Raw) {
				return v
			}
			if rng.Float64() < 0.5 {
				return core.String(strings.ToUpper(v.Raw))
			}
			return core.String(strings.ToLower(v.Raw))
		}},
		Defect{Kind: "format_error", Weight: 1, Apply: func(rng *rand.Rand, v core.Value) core.Value {
			if !isNumeric(v.Raw) {
				return v
			}
			suffixes := []string{"_invalid", ".0.0", "ERROR"}
			return core.String(v.Raw + suffixes[rng.Intn(len(suffixes))])
		}},
	)
}

// Package pricing turns independently computed per-process unit costs into a
// priced total. Everything in this package is pure: no I/O, no clocks and no
// errors. Malformed inputs degrade to zero so callers always receive a fully
// populated breakdown.
package pricing

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Policy holds the fixed business constants applied on top of the process costs.
type Policy struct {
	// MiscCharge is added once per unit regardless of the process mix.
	MiscCharge      decimal.Decimal
	WastagePercent  decimal.Decimal
	OverheadPercent decimal.Decimal
}

// DefaultPolicy returns the constants the shop has always priced with.
func DefaultPolicy() Policy {
	return Policy{
		MiscCharge:      decimal.NewFromInt(5),
		WastagePercent:  decimal.NewFromInt(5),
		OverheadPercent: decimal.NewFromInt(35),
	}
}

// CostBreakdown is the full result of a cost computation.
type CostBreakdown struct {
	BaseCost         decimal.Decimal
	MiscCharge       decimal.Decimal
	BaseWithMisc     decimal.Decimal
	WastageCost      decimal.Decimal
	OverheadCost     decimal.Decimal
	Subtotal         decimal.Decimal
	MarkupCost       decimal.Decimal
	TotalCostPerUnit decimal.Decimal
	TotalCost        decimal.Decimal
}

// Engine computes breakdowns with a given Policy.
type Engine struct {
	policy Policy
}

// NewEngine returns an engine using p.
func NewEngine(p Policy) *Engine {
	return &Engine{policy: p}
}

// Policy returns the constants the engine applies.
func (e *Engine) Policy() Policy {
	return e.policy
}

// ComputeTotalCost prices a job with DefaultPolicy.
func ComputeTotalCost(perProcessCosts map[string]any, quantity int, markupPercentage float64) CostBreakdown {
	return NewEngine(DefaultPolicy()).ComputeTotalCost(perProcessCosts, quantity, markupPercentage)
}

// ComputeTotalCost aggregates the known process costs and applies misc charge,
// wastage, overhead and markup in that order. Unknown keys are ignored, and
// values that are absent, unparseable or negative contribute zero. A negative
// quantity or markup is treated as zero.
func (e *Engine) ComputeTotalCost(perProcessCosts map[string]any, quantity int, markupPercentage float64) CostBreakdown {
	base := decimal.Zero
	for _, f := range knownFields {
		raw, ok := perProcessCosts[string(f)]
		if !ok {
			continue
		}
		base = base.Add(coerce(raw))
	}

	if quantity < 0 {
		quantity = 0
	}
	markup := fromFloat(markupPercentage)

	baseWithMisc := base.Add(e.policy.MiscCharge)
	wastage := baseWithMisc.Mul(e.policy.WastagePercent).Div(hundred)
	overhead := baseWithMisc.Mul(e.policy.OverheadPercent).Div(hundred)
	subtotal := baseWithMisc.Add(wastage).Add(overhead)
	markupCost := subtotal.Mul(markup).Div(hundred)
	perUnit := subtotal.Add(markupCost)

	return CostBreakdown{
		BaseCost:         base,
		MiscCharge:       e.policy.MiscCharge,
		BaseWithMisc:     baseWithMisc,
		WastageCost:      wastage,
		OverheadCost:     overhead,
		Subtotal:         subtotal,
		MarkupCost:       markupCost,
		TotalCostPerUnit: perUnit,
		TotalCost:        perUnit.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

// coerce converts a loosely typed cost value into a non-negative decimal.
func coerce(v any) decimal.Decimal {
	var d decimal.Decimal
	switch x := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		d = x
	case *decimal.Decimal:
		if x == nil {
			return decimal.Zero
		}
		d = *x
	case float64:
		return fromFloat(x)
	case *float64:
		if x == nil {
			return decimal.Zero
		}
		return fromFloat(*x)
	case float32:
		return fromFloat(float64(x))
	case int:
		d = decimal.NewFromInt(int64(x))
	case int32:
		d = decimal.NewFromInt32(x)
	case int64:
		d = decimal.NewFromInt(x)
	case json.Number:
		return parseLenient(string(x))
	case string:
		return parseLenient(x)
	default:
		return decimal.Zero
	}
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// fromFloat rejects NaN and infinities, which decimal cannot represent.
func fromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

func parseLenient(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

package pricing

import "github.com/shopspring/decimal"

// EnhancedEstimateRecord is the flat, persisted snapshot of a computed breakdown.
// Monetary and percentage values are fixed to two decimal places.
type EnhancedEstimateRecord struct {
	BaseCost           string `json:"baseCost" dynamodbav:"baseCost"`
	MiscCharge         string `json:"miscCharge" dynamodbav:"miscCharge"`
	BaseWithMisc       string `json:"baseWithMisc" dynamodbav:"baseWithMisc"`
	WastagePercentage  string `json:"wastagePercentage" dynamodbav:"wastagePercentage"`
	WastageAmount      string `json:"wastageAmount" dynamodbav:"wastageAmount"`
	OverheadPercentage string `json:"overheadPercentage" dynamodbav:"overheadPercentage"`
	OverheadAmount     string `json:"overheadAmount" dynamodbav:"overheadAmount"`
	Subtotal           string `json:"subtotal" dynamodbav:"subtotal"`
	MarkupPercentage   string `json:"markupPercentage" dynamodbav:"markupPercentage"`
	MarkupAmount       string `json:"markupAmount" dynamodbav:"markupAmount"`
	TotalCostPerUnit   string `json:"totalCostPerUnit" dynamodbav:"totalCostPerUnit"`
	TotalCost          string `json:"totalCost" dynamodbav:"totalCost"`
	Quantity           int    `json:"quantity" dynamodbav:"quantity"`
}

// BuildEnhancedEstimateRecord projects a breakdown computed with DefaultPolicy.
func BuildEnhancedEstimateRecord(b CostBreakdown, markupPercentage float64, quantity int) EnhancedEstimateRecord {
	return NewEngine(DefaultPolicy()).BuildEnhancedEstimateRecord(b, markupPercentage, quantity)
}

// BuildEnhancedEstimateRecord projects b together with the percentages of the
// engine's policy. Negative markup and quantity are reported as zero, matching
// what ComputeTotalCost used.
func (e *Engine) BuildEnhancedEstimateRecord(b CostBreakdown, markupPercentage float64, quantity int) EnhancedEstimateRecord {
	if quantity < 0 {
		quantity = 0
	}
	return EnhancedEstimateRecord{
		BaseCost:           fixed(b.BaseCost),
		MiscCharge:         fixed(b.MiscCharge),
		BaseWithMisc:       fixed(b.BaseWithMisc),
		WastagePercentage:  fixed(e.policy.WastagePercent),
		WastageAmount:      fixed(b.WastageCost),
		OverheadPercentage: fixed(e.policy.OverheadPercent),
		OverheadAmount:     fixed(b.OverheadCost),
		Subtotal:           fixed(b.Subtotal),
		MarkupPercentage:   fixed(fromFloat(markupPercentage)),
		MarkupAmount:       fixed(b.MarkupCost),
		TotalCostPerUnit:   fixed(b.TotalCostPerUnit),
		TotalCost:          fixed(b.TotalCost),
		Quantity:           quantity,
	}
}

func fixed(d decimal.Decimal) string {
	return d.StringFixed(2)
}

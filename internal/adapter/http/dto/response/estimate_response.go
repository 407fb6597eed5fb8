package response

import (
	"time"

	"letterpress_ops/internal/domain/entities"
	"letterpress_ops/internal/pricing"
	"letterpress_ops/internal/usecase"
)

// CostBreakdownResponse renders every amount with two decimals.
type CostBreakdownResponse struct {
	BaseCost         string `json:"base_cost"`
	MiscCharge       string `json:"misc_charge"`
	BaseWithMisc     string `json:"base_with_misc"`
	WastageCost      string `json:"wastage_cost"`
	OverheadCost     string `json:"overhead_cost"`
	Subtotal         string `json:"subtotal"`
	MarkupCost       string `json:"markup_cost"`
	TotalCostPerUnit string `json:"total_cost_per_unit"`
	TotalCost        string `json:"total_cost"`
}

type QuoteResponse struct {
	Breakdown CostBreakdownResponse          `json:"breakdown"`
	Record    pricing.EnhancedEstimateRecord `json:"record"`
}

func FromQuote(q usecase.Quote) QuoteResponse {
	b := q.Breakdown
	return QuoteResponse{
		Breakdown: CostBreakdownResponse{
			BaseCost:         b.BaseCost.StringFixed(2),
			MiscCharge:       b.MiscCharge.StringFixed(2),
			BaseWithMisc:     b.BaseWithMisc.StringFixed(2),
			WastageCost:      b.WastageCost.StringFixed(2),
			OverheadCost:     b.OverheadCost.StringFixed(2),
			Subtotal:         b.Subtotal.StringFixed(2),
			MarkupCost:       b.MarkupCost.StringFixed(2),
			TotalCostPerUnit: b.TotalCostPerUnit.StringFixed(2),
			TotalCost:        b.TotalCost.StringFixed(2),
		},
		Record: q.Record,
	}
}

type EstimateResponse struct {
	ID               string                         `json:"id"`
	ClientID         string                         `json:"client_id"`
	VersionID        string                         `json:"version_id"`
	JobName          string                         `json:"job_name,omitempty"`
	Quantity         int                            `json:"quantity"`
	MarkupPercentage float64                        `json:"markup_percentage"`
	PerProcessCosts  map[string]string              `json:"per_process_costs,omitempty"`
	Calculations     pricing.EnhancedEstimateRecord `json:"calculations"`
	MovedToOrders    bool                           `json:"moved_to_orders"`
	IsCanceled       bool                           `json:"is_canceled"`
	InEscrow         bool                           `json:"in_escrow"`
	Movable          bool                           `json:"movable"`
	CreatedAt        time.Time                      `json:"created_at"`
	UpdatedAt        time.Time                      `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:               e.ID,
		ClientID:         e.ClientID,
		VersionID:        e.VersionID,
		JobName:          e.JobName,
		Quantity:         e.Quantity,
		MarkupPercentage: e.MarkupPercentage,
		PerProcessCosts:  e.PerProcessCosts,
		Calculations:     e.Calculations,
		MovedToOrders:    e.MovedToOrders,
		IsCanceled:       e.IsCanceled,
		InEscrow:         e.InEscrow,
		Movable:          e.IsMovable(),
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func FromEstimates(list []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromEstimate(e))
	}
	return out
}

type TransferFailure struct {
	EstimateID string `json:"estimate_id"`
	Error      string `json:"error"`
}

// VersionTransferResponse is returned for complete and partial transfers.
// Transferred estimates stay moved even when Failures is not empty.
type VersionTransferResponse struct {
	Transferred int               `json:"transferred"`
	Failed      int               `json:"failed"`
	Failures    []TransferFailure `json:"failures,omitempty"`
}

func FromTransferResult(transferred int, batch *usecase.PartialBatchFailure) VersionTransferResponse {
	res := VersionTransferResponse{Transferred: transferred}
	if batch == nil {
		return res
	}
	res.Failed = batch.Failed
	for _, r := range batch.Results {
		if r.Err != nil {
			res.Failures = append(res.Failures, TransferFailure{EstimateID: r.ID, Error: r.Err.Error()})
		}
	}
	return res
}

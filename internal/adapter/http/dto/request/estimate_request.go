package request

import (
	"strings"

	"letterpress_ops/internal/usecase"
)

// PricingRequest asks the cost engine for a quote without persisting it.
// Cost values may be numbers or numeric strings; anything else counts as zero.
type PricingRequest struct {
	PerProcessCosts  map[string]any `json:"per_process_costs"`
	Quantity         int            `json:"quantity"`
	MarkupPercentage float64        `json:"markup_percentage"`
}

type CreateEstimateRequest struct {
	ClientID         string         `json:"client_id" binding:"required"`
	VersionID        string         `json:"version_id"`
	JobName          string         `json:"job_name"`
	Quantity         int            `json:"quantity" binding:"required"`
	MarkupPercentage float64        `json:"markup_percentage"`
	PerProcessCosts  map[string]any `json:"per_process_costs"`
}

func (r CreateEstimateRequest) ToInput() usecase.CreateEstimateInput {
	return usecase.CreateEstimateInput{
		ClientID:         strings.TrimSpace(r.ClientID),
		VersionID:        strings.TrimSpace(r.VersionID),
		JobName:          strings.TrimSpace(r.JobName),
		Quantity:         r.Quantity,
		MarkupPercentage: r.MarkupPercentage,
		PerProcessCosts:  r.PerProcessCosts,
	}
}

type EscrowRequest struct {
	InEscrow *bool `json:"in_escrow" binding:"required"`
}

type SelectionEntryRequest struct {
	EstimateID string `json:"estimate_id" binding:"required"`
	Selected   bool   `json:"selected"`
}

// VersionTransferRequest moves the selected estimates of a client to
// TargetVersion. CurrentVersion is the version the user is looking at.
type VersionTransferRequest struct {
	Selection      []SelectionEntryRequest `json:"selection"`
	TargetVersion  string                  `json:"target_version"`
	CurrentVersion string                  `json:"current_version"`
}

// ToSelection replays the entries in order, so a later entry for the same
// estimate overrides an earlier one.
func (r VersionTransferRequest) ToSelection() usecase.Selection {
	var sel usecase.Selection
	for _, e := range r.Selection {
		sel = sel.Set(strings.TrimSpace(e.EstimateID), e.Selected)
	}
	return sel
}

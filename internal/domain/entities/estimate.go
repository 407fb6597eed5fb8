package entities

import (
	"time"

	"letterpress_ops/internal/pricing"
)

// Estimate is a priced quote for a client.
//
// Estimates are grouped per client into numbered versions ("rounds"); the
// VersionID is a string-encoded positive integer.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
//
// Monetary representation:
//   - Calculations is the two-decimal snapshot taken when the estimate was saved.
type Estimate struct {
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
	CreatedAt        time.Time                      `json:"created_at"`
	UpdatedAt        time.Time                      `json:"updated_at"`
}

// IsMovable reports whether the estimate may change version. Estimates that
// became orders, were canceled or sit in escrow are frozen.
func (e Estimate) IsMovable() bool {
	return !e.MovedToOrders && !e.IsCanceled && !e.InEscrow
}

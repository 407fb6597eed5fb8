package response

import (
	"time"

	"letterpress_ops/internal/domain/entities"
	"letterpress_ops/internal/usecase"
)

type ProductionAssignmentResponse struct {
	Assigned     string    `json:"assigned"`
	DeadlineDate time.Time `json:"deadline_date"`
	AssignedAt   time.Time `json:"assigned_at"`
}

type OrderResponse struct {
	ID                    string                        `json:"id"`
	ClientID              string                        `json:"client_id"`
	EstimateID            string                        `json:"estimate_id,omitempty"`
	OrderSerial           string                        `json:"order_serial,omitempty"`
	JobName               string                        `json:"job_name,omitempty"`
	Quantity              int                           `json:"quantity"`
	TotalCost             string                        `json:"total_cost,omitempty"`
	Stage                 string                        `json:"stage"`
	StageIndex            int                           `json:"stage_index"`
	Status                string                        `json:"status"`
	ProductionAssignments *ProductionAssignmentResponse `json:"production_assignments,omitempty"`
	ArtworkCount          int                           `json:"artwork_count"`
	CreatedAt             time.Time                     `json:"created_at"`
	LastUpdated           time.Time                     `json:"last_updated"`
	CompletedAt           *time.Time                    `json:"completed_at,omitempty"`
}

func FromOrder(o entities.Order) OrderResponse {
	res := OrderResponse{
		ID:           o.ID,
		ClientID:     o.ClientID,
		EstimateID:   o.EstimateID,
		OrderSerial:  o.OrderSerial,
		JobName:      o.JobName,
		Quantity:     o.Quantity,
		TotalCost:    o.TotalCost,
		Stage:        string(o.Stage),
		StageIndex:   entities.StageIndex(o.Stage),
		Status:       o.Status,
		ArtworkCount: len(o.ArtworkKeys),
		CreatedAt:    o.CreatedAt,
		LastUpdated:  o.LastUpdated,
		CompletedAt:  o.CompletedAt,
	}
	if a := o.ProductionAssignments; a != nil {
		res.ProductionAssignments = &ProductionAssignmentResponse{
			Assigned:     a.Assigned,
			DeadlineDate: a.DeadlineDate,
			AssignedAt:   a.AssignedAt,
		}
	}
	return res
}

func FromOrders(list []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, FromOrder(o))
	}
	return out
}

type DashboardResponse struct {
	KPIs   entities.OrderKPIs   `json:"kpis"`
	Stages []usecase.StageCount `json:"stages"`
}

func FromDashboard(d usecase.OrderDashboard) DashboardResponse {
	stages := d.Stages
	if stages == nil {
		stages = []usecase.StageCount{}
	}
	return DashboardResponse{KPIs: d.KPIs, Stages: stages}
}

type ArtworkResponse struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

func FromArtworkLink(l usecase.ArtworkLink) ArtworkResponse {
	return ArtworkResponse{Key: l.Key, URL: l.URL, ExpiresAt: l.ExpiresAt}
}

func FromArtworkLinks(list []usecase.ArtworkLink) []ArtworkResponse {
	out := make([]ArtworkResponse, 0, len(list))
	for _, l := range list {
		out = append(out, FromArtworkLink(l))
	}
	return out
}

package entities

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"
)

// ProductionAssignment records who runs an order on the floor and by when.
type ProductionAssignment struct {
	Assigned     string    `json:"assigned"`
	DeadlineDate time.Time `json:"deadline_date"`
	AssignedAt   time.Time `json:"assigned_at"`
}

// Order is a production job created from an accepted estimate.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Stage changes only through a confirmed transition; Status is always
// StatusForStage(Stage).
type Order struct {
	ID                    string                `json:"id"`
	ClientID              string                `json:"client_id"`
	EstimateID            string                `json:"estimate_id,omitempty"`
	OrderSerial           string                `json:"order_serial,omitempty"`
	JobName               string                `json:"job_name,omitempty"`
	Quantity              int                   `json:"quantity"`
	TotalCost             string                `json:"total_cost,omitempty"`
	Stage                 Stage                 `json:"stage"`
	Status                string                `json:"status"`
	ProductionAssignments *ProductionAssignment `json:"production_assignments,omitempty"`
	ArtworkKeys           []string              `json:"artwork_keys,omitempty"`
	CreatedAt             time.Time             `json:"created_at"`
	LastUpdated           time.Time             `json:"last_updated"`
	CompletedAt           *time.Time            `json:"completed_at,omitempty"`
}

// IsStageReached reports whether stage is at or behind the order's current
// stage. Unknown stages are never reached.
func IsStageReached(o Order, stage Stage) bool {
	target := StageIndex(stage)
	if target < 0 {
		return false
	}
	return o.Stage == stage || StageIndex(o.Stage) > target
}

// OrderKPIs are dashboard counters over a collection of orders.
type OrderKPIs struct {
	Total         int `json:"total"`
	Active        int `json:"active"`
	Completed     int `json:"completed"`
	Serialized    int `json:"serialized"`
	NonSerialized int `json:"non_serialized"`
}

// ComputeOrderKPIs aggregates orders without modifying them.
func ComputeOrderKPIs(orders []Order) OrderKPIs {
	k := OrderKPIs{Total: len(orders)}
	for _, o := range orders {
		if o.Stage == StageCompleted {
			k.Completed++
		} else {
			k.Active++
		}
		if o.OrderSerial != "" {
			k.Serialized++
		} else {
			k.NonSerialized++
		}
	}
	return k
}

var orderSerialPattern = regexp.MustCompile(`^FL-(\d{4})-(\d{5})$`)

// SerialSortKey maps "FL-YYYY-NNNNN" to year*100000+sequence. Anything else,
// including an empty serial, maps to 0 and therefore sorts first ascending.
func SerialSortKey(serial string) int64 {
	m := orderSerialPattern.FindStringSubmatch(serial)
	if m == nil {
		return 0
	}
	year, _ := strconv.ParseInt(m[1], 10, 64)
	seq, _ := strconv.ParseInt(m[2], 10, 64)
	return year*100000 + seq
}

// FormatOrderSerial renders a serial in the FL-YYYY-NNNNN form.
func FormatOrderSerial(year int, sequence int64) string {
	return fmt.Sprintf("FL-%04d-%05d", year, sequence)
}

// SortOrdersBySerial returns a copy of orders ordered by SerialSortKey. The
// sort is stable so orders sharing a key keep their input order.
func SortOrdersBySerial(orders []Order, descending bool) []Order {
	out := make([]Order, len(orders))
	copy(out, orders)
	sort.SliceStable(out, func(i, j int) bool {
		ki, kj := SerialSortKey(out[i].OrderSerial), SerialSortKey(out[j].OrderSerial)
		if descending {
			return ki > kj
		}
		return ki < kj
	})
	return out
}

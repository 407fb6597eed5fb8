package interfaces

import (
	"context"
	"time"

	"letterpress_ops/internal/domain/entities"
)

// StageUpdate is the set of fields written by a confirmed stage transition.
// CompletedAt is only written when non-nil.
type StageUpdate struct {
	Stage       entities.Stage
	Status      string
	LastUpdated time.Time
	CompletedAt *time.Time
}

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// The order service must be able to:
//   - create an order from an estimate atomically (order put + estimate flag)
//   - persist confirmed stage transitions
//   - record production assignments and uploaded artwork

type IOrderRepository interface {
	// CreateFromEstimate puts o and marks estimateID as moved to orders in one
	// transaction. It returns the zero Order when the estimate is missing or
	// no longer movable.
	CreateFromEstimate(ctx context.Context, o entities.Order, estimateID string, movedAt time.Time) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	UpdateStage(ctx context.Context, id string, u StageUpdate) (entities.Order, error)
	UpdateProductionAssignment(ctx context.Context, id string, a entities.ProductionAssignment, updatedAt time.Time) (entities.Order, error)
	AddArtworkKey(ctx context.Context, id string, key string, updatedAt time.Time) (entities.Order, error)
}

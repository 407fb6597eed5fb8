package interfaces

import (
	"context"
	"time"

	"letterpress_ops/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// Lookups return the zero Estimate (empty ID) when the record does not exist.
// Updates are partial field merges and apply last-write-wins; the caller
// supplies the timestamp so a batch can share one.

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Estimate, error)
	UpdateVersion(ctx context.Context, id string, versionID string, updatedAt time.Time) (entities.Estimate, error)
	UpdateCanceled(ctx context.Context, id string, canceled bool, updatedAt time.Time) (entities.Estimate, error)
	UpdateEscrow(ctx context.Context, id string, inEscrow bool, updatedAt time.Time) (entities.Estimate, error)
}

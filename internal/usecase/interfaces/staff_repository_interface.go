package interfaces

import (
	"context"

	"letterpress_ops/internal/domain/entities"
)

// IStaffRepository abstracts DynamoDB reads of the staff table.
type IStaffRepository interface {
	GetByID(ctx context.Context, id string) (entities.Staff, error)
}

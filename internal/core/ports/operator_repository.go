package ports

import (
	"context"

	"teashop/internal/core/domain/model/operator"
)

// OperatorRepository defines the persistence contract for operator entities.
// Operators are provisioned out-of-band; there is deliberately no upsert.
type OperatorRepository interface {
	// Get retrieves an operator by its stable username.
	// Returns an ObjectNotFoundError when no such operator exists.
	Get(ctx context.Context, id string) (*operator.Operator, error)

	// Add persists a new operator. Used by seeding and tests only.
	Add(ctx context.Context, aggregate *operator.Operator) error
}

// Package orderrepo provides the GORM-backed order repository. All state
// changes are single conditional UPDATE statements; the RowsAffected count
// of each statement is the only signal the core uses to decide whether a
// precondition held.
package orderrepo

import (
	"time"

	"teashop/internal/core/domain/model/kernel"
	"teashop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrderDTO represents the database row for an order across its whole
// lifecycle, the open cart included. The partial unique index declared by
// the migrator over (customer_id) WHERE state='cart' enforces the
// single-open-cart invariant at the store level.
type OrderDTO struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID string         `gorm:"index"`
	OperatorID *string        `gorm:"index"`
	ProductIDs pq.StringArray `gorm:"type:text[]"`
	State      string         `gorm:"index"`
	UpdatedAt  time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return order.RestoreOrder(id, dto.CustomerID, dto.ProductIDs, order.State(dto.State), dto.OperatorID)
}

package queries

import (
	"context"
	"database/sql"
	"errors"

	"teashop/internal/core/domain/model/kernel"
	"teashop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetCartQueryHandler retrieves open carts from the database.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart read queries.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the cart lookup. A missing cart yields an empty stub with
// no order id, the store is never written by this path.
func (h GetCartQueryHandler) Handle(
	ctx context.Context,
	query GetCartQuery,
) (CartResponse, error) {
	if err := query.Validate(); err != nil {
		return CartResponse{}, err
	}

	var id uuid.UUID
	var productIDs pq.StringArray

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, product_ids
		FROM orders
		WHERE customer_id = ? AND state = ?
	`, query.CustomerID(), order.StateCart.String()).Row()
	if err := row.Scan(&id, &productIDs); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CartResponse{
				CustomerID: query.CustomerID(),
				ProductIDs: []string{},
			}, nil
		}
		return CartResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return CartResponse{}, err
	}

	return CartResponse{
		OrderID:    &orderID,
		CustomerID: query.CustomerID(),
		ProductIDs: []string(productIDs),
	}, nil
}

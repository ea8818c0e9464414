package queries

import (
	"context"
	"database/sql"

	"teashop/internal/core/domain/model/kernel"
	"teashop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ListOpenOrdersQueryHandler retrieves submitted orders from the database.
type ListOpenOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOpenOrdersQueryHandler creates a handler for order listing queries.
func NewListOpenOrdersQueryHandler(db *gorm.DB) ListOpenOrdersQueryHandler {
	return ListOpenOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders outside the cart state.
// Results are sorted by order ID for consistent output.
func (h ListOpenOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOpenOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			operator_id,
			product_ids,
			state
		FROM orders
		WHERE state != ?
		ORDER BY id
	`, order.StateCart.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}

// scanOrderRows converts order projection rows into responses. Shared by
// every query that returns order lists.
func scanOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var orderResp OrderResponse
		var id uuid.UUID
		var operatorID sql.NullString
		var productIDs pq.StringArray

		if err := rows.Scan(
			&id,
			&orderResp.CustomerID,
			&operatorID,
			&productIDs,
			&orderResp.State,
		); err != nil {
			return nil, err
		}

		orderID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		orderResp.ID = orderID

		if operatorID.Valid {
			orderResp.OperatorID = &operatorID.String
		}
		orderResp.ProductIDs = []string(productIDs)

		orders = append(orders, orderResp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
